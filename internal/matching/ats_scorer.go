package matching

import (
	"context"
	"math"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/realrohitsingh/Resume-Screening-Tool/internal/constants"
	"github.com/realrohitsingh/Resume-Screening-Tool/internal/processor"
	"github.com/realrohitsingh/Resume-Screening-Tool/internal/types"
)

// degreeKeywords 触发学历加分的学位关键词
var degreeKeywords = []string{"bachelor", "master", "phd", "mba"}

// ATSScore 计算简历对单个岗位描述的ATS兼容分(0-100)
// 规则：基准70分 + 技能匹配至多20分 + 学历5分 + 年限阶梯加分，封顶100
// 结果按 简历指纹_岗位指纹 缓存且不过期（分数只由内容决定）
func (e *Engine) ATSScore(ctx context.Context, resume *types.StructuredResume, jobDescription string) int {
	ctx, span := matchingTracer.Start(ctx, "Engine.ATSScore")
	defer span.End()

	cacheKey := processor.Fingerprint(resume) + "_" + processor.FingerprintText(jobDescription)

	var cached int
	if hit, err := e.cache.Get(ctx, constants.CacheNamespaceScore, cacheKey, &cached); err == nil && hit {
		span.SetAttributes(attribute.Bool("cache.hit", true))
		return cached
	}

	score := float64(constants.ATSBaseScore)

	// 技能匹配：岗位描述中出现的候选技能里，简历覆盖的比例。
	// 候选集在配置了技能CSV时为全量词表；否则退回到简历自身技能，
	// 因为内置词表里 r 这类单字母技能对任意描述做子串扫描都会误检
	var jobSkills []string
	if e.vocab.FromCSV() {
		jobSkills = e.vocab.SkillsInText(jobDescription)
	} else {
		desc := strings.ToLower(jobDescription)
		for _, skill := range lowerAll(resume.Skills) {
			if strings.Contains(desc, skill) {
				jobSkills = append(jobSkills, skill)
			}
		}
	}
	if len(jobSkills) > 0 {
		resumeSkills := make(map[string]struct{}, len(resume.Skills))
		for _, s := range resume.Skills {
			resumeSkills[strings.ToLower(s)] = struct{}{}
		}
		matching := 0
		for _, skill := range jobSkills {
			if _, ok := resumeSkills[skill]; ok {
				matching++
			}
		}
		ratio := float64(matching) / float64(len(jobSkills))
		score += math.Min(float64(constants.ATSMaxSkillBonus), ratio*float64(constants.ATSMaxSkillBonus))
	}

	// 学历加分
	educationText := strings.ToLower(strings.Join(resume.Education, " "))
	for _, degree := range degreeKeywords {
		if strings.Contains(educationText, degree) {
			score += float64(constants.ATSEducationBonus)
			break
		}
	}

	// 年限阶梯加分
	if resume.TotalExperience != nil {
		switch years := *resume.TotalExperience; {
		case years >= 5:
			score += 5
		case years >= 3:
			score += 3
		case years >= 1:
			score += 2
		}
	}

	final := int(math.Min(math.Round(score), float64(constants.ATSMaxScore)))
	span.SetAttributes(attribute.Int("ats.score", final))

	// 写缓存失败不影响返回
	_ = e.cache.Set(ctx, constants.CacheNamespaceScore, cacheKey, final, 0)
	return final
}
