package parser

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/realrohitsingh/Resume-Screening-Tool/internal/constants"
)

// TextExtractor 按文件扩展名分发到对应的文本提取实现
// .doc 旧格式无法可靠解析，按 .docx 尝试后失败即报错
type TextExtractor struct {
	pdf *EinoPDFTextExtractor
}

// NewTextExtractor 创建统一文本提取器
func NewTextExtractor(pdf *EinoPDFTextExtractor) *TextExtractor {
	return &TextExtractor{pdf: pdf}
}

// SupportedExt 判断扩展名是否受支持
func SupportedExt(ext string) bool {
	switch strings.ToLower(ext) {
	case constants.ExtPDF, constants.ExtDOCX, constants.ExtDOC, constants.ExtTXT:
		return true
	}
	return false
}

// Extract 从上传的文件内容提取纯文本，filename 只用于确定格式和日志
func (t *TextExtractor) Extract(ctx context.Context, data []byte, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case constants.ExtPDF:
		return t.pdf.ExtractFromBytes(ctx, data, filename)
	case constants.ExtDOCX, constants.ExtDOC:
		text, err := ExtractDocxText(data)
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(text) == "" {
			return "", fmt.Errorf("%w: %s", ErrEmptyDocument, filename)
		}
		return text, nil
	case constants.ExtTXT:
		text := string(data)
		if strings.TrimSpace(text) == "" {
			return "", fmt.Errorf("%w: %s", ErrEmptyDocument, filename)
		}
		return text, nil
	default:
		return "", UnsupportedFormatError(ext)
	}
}
