package processor

import (
	"context"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/realrohitsingh/Resume-Screening-Tool/internal/logger"
	"github.com/realrohitsingh/Resume-Screening-Tool/internal/parser"
	"github.com/realrohitsingh/Resume-Screening-Tool/internal/tracing"
	"github.com/realrohitsingh/Resume-Screening-Tool/internal/types"
	"github.com/realrohitsingh/Resume-Screening-Tool/internal/vocabulary"
)

// Components 聚合字段提取所需的功能组件，便于集中管理和测试替换
type Components struct {
	Annotator  TextAnnotator          // 分词/词性/NER标注
	Vocabulary *vocabulary.Vocabulary // 技能词表
}

// Settings 纯配置项，不包含任何业务逻辑组件
type Settings struct {
	Now   func() time.Time // 时间源，年限计算用，测试时可固定
	Debug bool
}

// ComponentOpt 组件选项类型，仅改变 Components 结构体内的字段
type ComponentOpt func(*Components)

// SettingOpt 设置选项类型，仅改变 Settings 结构体内的字段
type SettingOpt func(*Settings)

// WithAnnotator 设置文本标注组件
func WithAnnotator(a TextAnnotator) ComponentOpt {
	return func(c *Components) {
		c.Annotator = a
	}
}

// WithVocabulary 设置技能词表组件
func WithVocabulary(v *vocabulary.Vocabulary) ComponentOpt {
	return func(c *Components) {
		c.Vocabulary = v
	}
}

// WithNow 设置时间源
func WithNow(now func() time.Time) SettingOpt {
	return func(s *Settings) {
		if now != nil {
			s.Now = now
		}
	}
}

// WithDebug 设置调试模式
func WithDebug(debug bool) SettingOpt {
	return func(s *Settings) {
		s.Debug = debug
	}
}

// ResumeExtractor 简历结构化字段提取器
// 每个字段独立提取，单字段失败只降级为空值，不影响其他字段
type ResumeExtractor struct {
	components Components
	settings   Settings
}

// NewResumeExtractor 创建字段提取器，未显式设置的组件使用默认实现
func NewResumeExtractor(compOpts []ComponentOpt, setOpts []SettingOpt) *ResumeExtractor {
	e := &ResumeExtractor{
		settings: Settings{Now: time.Now},
	}
	for _, opt := range compOpts {
		opt(&e.components)
	}
	for _, opt := range setOpts {
		opt(&e.settings)
	}
	if e.components.Annotator == nil {
		e.components.Annotator = parser.NewAnnotator()
	}
	if e.components.Vocabulary == nil {
		e.components.Vocabulary = vocabulary.Default()
	}
	return e
}

// Extract 对简历纯文本做完整的结构化字段提取
// 文本按原样和小写各标注一次：人名/机构/头衔依赖大小写信息，技能/教育/经历在小写文本上匹配
func (e *ResumeExtractor) Extract(ctx context.Context, text string) (*types.StructuredResume, error) {
	ctx, span := otel.Tracer("processor").Start(ctx, "ResumeExtractor.Extract")
	defer span.End()
	span.SetAttributes(attribute.Int("resume.text_length", len(text)))

	cased, err := e.components.Annotator.Annotate(text)
	if err != nil {
		tracing.RecordError(span, err, tracing.ErrorTypeExtraction)
		return nil, &FieldExtractError{Field: "document", BaseErr: ErrAnnotationFailed, Detail: err.Error()}
	}
	lowered, err := e.components.Annotator.Annotate(strings.ToLower(text))
	if err != nil {
		tracing.RecordError(span, err, tracing.ErrorTypeExtraction)
		return nil, &FieldExtractError{Field: "document", BaseErr: ErrAnnotationFailed, Detail: err.Error()}
	}

	result := &types.StructuredResume{}

	e.safeExtract(ctx, "name", func() {
		result.Name = e.extractName(text, cased)
	})
	e.safeExtract(ctx, "email", func() {
		result.Email = extractEmail(text)
	})
	e.safeExtract(ctx, "phone_number", func() {
		result.PhoneNumber = extractPhoneNumber(text)
	})
	e.safeExtract(ctx, "skills", func() {
		result.Skills = e.extractSkills(lowered)
	})
	e.safeExtract(ctx, "education", func() {
		result.Education = extractEducation(lowered)
	})
	e.safeExtract(ctx, "experience", func() {
		result.Experience = extractExperience(lowered, cased)
	})
	e.safeExtract(ctx, "company_names", func() {
		result.Companies = extractCompanies(cased)
	})
	e.safeExtract(ctx, "designation", func() {
		result.Designation = extractDesignations(text)
	})
	e.safeExtract(ctx, "total_experience", func() {
		result.TotalExperience = calculateTotalExperience(text)
	})

	span.SetAttributes(
		attribute.Int("resume.skills_count", len(result.Skills)),
		attribute.Bool("resume.has_contact", result.HasContact()),
	)
	return result, nil
}

// safeExtract 隔离单个字段的提取过程，panic只降级为该字段为空
func (e *ResumeExtractor) safeExtract(ctx context.Context, field string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Ctx(ctx).Error().
				Str("field", field).
				Interface("panic", r).
				Msg("字段提取发生panic，该字段降级为空值")
		}
	}()
	fn()
}
