package tracing

import (
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// ErrorType 定义错误类型，便于分类和过滤
type ErrorType string

const (
	// ErrorTypeExtraction 文档文本提取错误
	ErrorTypeExtraction ErrorType = "extraction"
	// ErrorTypeField 单字段提取错误
	ErrorTypeField ErrorType = "field_extraction"
	// ErrorTypeScoring 打分错误
	ErrorTypeScoring ErrorType = "scoring"
	// ErrorTypeRecommendation 推荐引擎错误
	ErrorTypeRecommendation ErrorType = "recommendation"
	// ErrorTypeCache 缓存读写错误
	ErrorTypeCache ErrorType = "cache"
	// ErrorTypeStore 持久化存储错误
	ErrorTypeStore ErrorType = "store"
	// ErrorTypeValidation 请求校验错误
	ErrorTypeValidation ErrorType = "validation"
	// ErrorTypeInternal 内部错误
	ErrorTypeInternal ErrorType = "internal"
)

// RecordError 记录错误，添加统一的错误类型和详情
func RecordError(span trace.Span, err error, errorType ErrorType) {
	if span == nil || err == nil {
		return
	}

	span.RecordError(err)

	span.SetAttributes(
		attribute.String("error.type", string(errorType)),
		attribute.String("error.message", err.Error()),
	)

	span.SetStatus(codes.Error, err.Error())
}

// RecordErrorWithInfo 记录错误并附加额外属性
func RecordErrorWithInfo(span trace.Span, err error, errorType ErrorType, attributes ...attribute.KeyValue) {
	if span == nil || err == nil {
		return
	}

	span.RecordError(err)

	span.SetAttributes(
		attribute.String("error.type", string(errorType)),
		attribute.String("error.message", err.Error()),
	)

	if len(attributes) > 0 {
		span.SetAttributes(attributes...)
	}

	span.SetStatus(codes.Error, err.Error())
}
