package matching

import (
	"context"
	"sync/atomic"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/realrohitsingh/Resume-Screening-Tool/internal/constants"
	"github.com/realrohitsingh/Resume-Screening-Tool/internal/processor"
	"github.com/realrohitsingh/Resume-Screening-Tool/internal/storage"
	"github.com/realrohitsingh/Resume-Screening-Tool/internal/tracing"
	"github.com/realrohitsingh/Resume-Screening-Tool/internal/types"
	"github.com/realrohitsingh/Resume-Screening-Tool/internal/vocabulary"
)

var matchingTracer = otel.Tracer("resume-screening/matching")

// Engine 评分与推荐引擎
// 所有计算都是进程内的：TF-IDF相似度、规则评分和要求解析，不依赖外部服务
type Engine struct {
	vocab *vocabulary.Vocabulary
	jobs  *storage.JobStore
	cache storage.CacheStore

	// recomputations 完整推荐流水线的实际执行次数（缓存未命中次数）
	recomputations atomic.Int64
}

// NewEngine 创建评分与推荐引擎
func NewEngine(vocab *vocabulary.Vocabulary, jobs *storage.JobStore, cache storage.CacheStore) *Engine {
	return &Engine{
		vocab: vocab,
		jobs:  jobs,
		cache: cache,
	}
}

// Recomputations 返回推荐流水线的实际执行次数，缓存命中不计入
func (e *Engine) Recomputations() int64 {
	return e.recomputations.Load()
}

// cachedAnalysis analysis_cache 中的缓存条目
type cachedAnalysis struct {
	Result *types.AnalysisResult `json:"result"`
}

// Analyze 对结构化简历执行完整分析：岗位推荐、总体ATS分和分项反馈
// 同一内容指纹24小时内直接返回缓存结果
func (e *Engine) Analyze(ctx context.Context, resume *types.StructuredResume) (*types.AnalysisResult, error) {
	ctx, span := matchingTracer.Start(ctx, "Engine.Analyze")
	defer span.End()

	fp := processor.Fingerprint(resume)
	span.SetAttributes(attribute.String("resume.fingerprint", fp))

	var cached cachedAnalysis
	if hit, err := e.cache.Get(ctx, constants.CacheNamespaceAnalysis, fp, &cached); err == nil && hit && cached.Result != nil {
		span.SetAttributes(attribute.Bool("cache.hit", true))
		return cached.Result, nil
	}

	recommendations, err := e.Recommend(ctx, resume)
	if err != nil {
		tracing.RecordError(span, err, tracing.ErrorTypeRecommendation)
		return nil, err
	}

	// 总体ATS分取各推荐岗位的算术平均，无推荐时回落到基准分
	overall := float64(constants.ATSBaseScore)
	if len(recommendations) > 0 {
		var sum float64
		for _, rec := range recommendations {
			sum += float64(rec.ATSScore)
		}
		overall = sum / float64(len(recommendations))
	}

	result := &types.AnalysisResult{
		Status:          "success",
		Recommendations: recommendations,
		ExtractedData:   *resume,
		ATSScore:        overall,
		Feedback:        BuildFeedback(resume),
	}

	if err := e.cache.Set(ctx, constants.CacheNamespaceAnalysis, fp, cachedAnalysis{Result: result}, constants.CacheFreshnessWindow); err != nil {
		// 缓存写入失败不影响本次结果
		tracing.RecordError(span, err, tracing.ErrorTypeCache)
	}
	return result, nil
}
