package parser

import (
	"errors"
	"fmt"
)

// 文本提取相关的哨兵错误
var (
	// ErrUnsupportedFormat 文件扩展名不在支持列表内
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrEmptyDocument 提取成功但没有得到任何文本
	ErrEmptyDocument = errors.New("document contains no extractable text")
)

// UnsupportedFormatError 构造带扩展名信息的格式错误
func UnsupportedFormatError(ext string) error {
	return fmt.Errorf("%w: %q (supported: .pdf, .docx, .txt)", ErrUnsupportedFormat, ext)
}
