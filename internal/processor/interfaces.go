package processor

import (
	"context"

	"github.com/realrohitsingh/Resume-Screening-Tool/internal/parser"
)

// TextAnnotator 文本标注接口，便于测试时替换实现
type TextAnnotator interface {
	Annotate(text string) (*parser.Annotation, error)
}

// DocumentExtractor 文档文本提取接口
type DocumentExtractor interface {
	Extract(ctx context.Context, data []byte, filename string) (string, error)
}
