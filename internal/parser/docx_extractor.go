package parser

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

var (
	docxParagraphRe = regexp.MustCompile(`</w:p>`)
	docxTagRe       = regexp.MustCompile(`<[^>]+>`)
)

// ExtractDocxText 从DOCX字节流提取纯文本
// 库返回的是word/document.xml原文，段落结束标记转为换行后再剥离其余XML标签
func ExtractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	content := doc.Editable().GetContent()
	content = docxParagraphRe.ReplaceAllString(content, "\n")
	content = docxTagRe.ReplaceAllString(content, "")
	content = strings.ReplaceAll(content, "&amp;", "&")
	content = strings.ReplaceAll(content, "&lt;", "<")
	content = strings.ReplaceAll(content, "&gt;", ">")
	return content, nil
}
