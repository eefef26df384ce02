package parser

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/document/parser/pdf"
	einoParser "github.com/cloudwego/eino/components/document/parser"

	"github.com/realrohitsingh/Resume-Screening-Tool/internal/logger"
)

// EinoPDFTextExtractor 使用 Eino PDF Parser 提取文本，失败时可降级到备用解码器
type EinoPDFTextExtractor struct {
	parser   *pdf.PDFParser
	timeout  time.Duration
	fallback bool
}

// EinoPDFOption PDF提取器的配置选项
type EinoPDFOption func(*EinoPDFTextExtractor)

// WithTimeout 配置单次解析的超时时间
func WithTimeout(d time.Duration) EinoPDFOption {
	return func(e *EinoPDFTextExtractor) {
		if d > 0 {
			e.timeout = d
		}
	}
}

// WithFallback 控制主解析器失败时是否尝试备用解码器
func WithFallback(enabled bool) EinoPDFOption {
	return func(e *EinoPDFTextExtractor) {
		e.fallback = enabled
	}
}

// NewEinoPDFTextExtractor 初始化 Eino PDF 文本提取器
// 默认配置为不按页面分割，以获取整个文档的连续文本
func NewEinoPDFTextExtractor(ctx context.Context, options ...EinoPDFOption) (*EinoPDFTextExtractor, error) {
	p, err := pdf.NewPDFParser(ctx, &pdf.Config{
		ToPages: false, // 需要整个PDF的文本作为单个字符串
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create eino PDF parser: %w", err)
	}

	extractor := &EinoPDFTextExtractor{
		parser:   p,
		timeout:  30 * time.Second,
		fallback: true,
	}
	for _, option := range options {
		option(extractor)
	}
	return extractor, nil
}

// ExtractFromFile 从PDF文件提取纯文本
func (e *EinoPDFTextExtractor) ExtractFromFile(ctx context.Context, filePath string) (string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to read PDF file %s: %w", filePath, err)
	}
	return e.ExtractFromBytes(ctx, data, filePath)
}

// ExtractFromBytes 从字节数组提取纯文本
// 主解析器失败或无结果时，若启用了降级则改用备用解码器重试
func (e *EinoPDFTextExtractor) ExtractFromBytes(ctx context.Context, data []byte, uri string) (string, error) {
	startTime := time.Now()

	text, err := e.extractPrimary(ctx, bytes.NewReader(data), uri)
	if err != nil && e.fallback {
		logger.Warn().Err(err).Str("uri", uri).Msg("主PDF解析失败，尝试备用解码器")
		text, err = extractPDFFallback(bytes.NewReader(data), int64(len(data)))
	}
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: %s", ErrEmptyDocument, uri)
	}

	logger.Debug().
		Str("uri", uri).
		Int("chars", len(text)).
		Dur("duration", time.Since(startTime)).
		Msg("PDF提取完成")
	return text, nil
}

func (e *EinoPDFTextExtractor) extractPrimary(ctx context.Context, reader io.Reader, uri string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	docs, err := e.parser.Parse(ctx, reader,
		einoParser.WithURI(uri),
		einoParser.WithExtraMeta(map[string]interface{}{
			"source_uri":      uri,
			"extraction_time": time.Now().Format(time.RFC3339),
		}),
	)
	if err != nil {
		return "", fmt.Errorf("eino PDF parser failed for %s: %w", uri, err)
	}
	if len(docs) == 0 {
		return "", fmt.Errorf("eino PDF parser returned no documents for %s", uri)
	}

	// 合并所有文档的内容（以防万一返回了多个）
	var sb strings.Builder
	for i, doc := range docs {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(doc.Content)
	}
	return sb.String(), nil
}
