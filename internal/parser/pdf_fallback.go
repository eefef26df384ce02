package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// extractPDFFallback 备用的纯Go PDF解码路径，逐页拼接纯文本
// 对加密或字体信息缺失的文件可能只返回部分内容
func extractPDFFallback(reader io.ReaderAt, size int64) (string, error) {
	pdfReader, err := pdf.NewReader(reader, size)
	if err != nil {
		return "", fmt.Errorf("fallback PDF reader failed: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= pdfReader.NumPage(); i++ {
		page := pdfReader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue // 单页失败不中断整体提取
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}
