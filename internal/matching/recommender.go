package matching

import (
	"context"
	"math"
	"sort"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/realrohitsingh/Resume-Screening-Tool/internal/constants"
	"github.com/realrohitsingh/Resume-Screening-Tool/internal/processor"
	"github.com/realrohitsingh/Resume-Screening-Tool/internal/types"
)

// cachedRecommendations recommendation_cache 中的缓存条目
type cachedRecommendations struct {
	Recommendations []types.ScoredJob `json:"recommendations"`
}

// Recommend 基于TF-IDF相似度为简历推荐岗位
// 岗位集合为CSV语料库加HR发布的岗位；结果按综合匹配分降序，至多保留10条
// 同一内容指纹24小时内直接返回缓存结果
func (e *Engine) Recommend(ctx context.Context, resume *types.StructuredResume) ([]types.ScoredJob, error) {
	ctx, span := matchingTracer.Start(ctx, "Engine.Recommend")
	defer span.End()

	fp := processor.Fingerprint(resume)

	var cached cachedRecommendations
	if hit, err := e.cache.Get(ctx, constants.CacheNamespaceRecommendation, fp, &cached); err == nil && hit {
		span.SetAttributes(attribute.Bool("cache.hit", true))
		return cached.Recommendations, nil
	}

	e.recomputations.Add(1)

	jobs := e.jobs.AllForMatching()
	span.SetAttributes(attribute.Int("jobs.total", len(jobs)))
	if len(jobs) == 0 {
		return []types.ScoredJob{}, nil
	}

	// 简历画像：技能+经历+学历拼成一段文本
	profileText := strings.ToLower(strings.Join([]string{
		strings.Join(lowerAll(resume.Skills), " "),
		strings.Join(resume.Experience, " "),
		strings.Join(resume.Education, " "),
	}, " "))

	// 岗位文本：岗位名+描述
	docs := make([]string, len(jobs))
	for i, job := range jobs {
		docs[i] = job.Position + " " + job.Description
	}

	vectorizer := &TFIDFVectorizer{}
	jobVectors := vectorizer.FitTransform(docs)
	profileVector := vectorizer.Transform(profileText)

	similarities := make([]float64, len(jobs))
	for i, vec := range jobVectors {
		similarities[i] = CosineSimilarity(profileVector, vec)
	}

	// 相似度最高的10个岗位
	indices := make([]int, len(jobs))
	for i := range indices {
		indices[i] = i
	}
	sort.SliceStable(indices, func(a, b int) bool {
		return similarities[indices[a]] > similarities[indices[b]]
	})
	if len(indices) > constants.RecommendationLimit {
		indices = indices[:constants.RecommendationLimit]
	}

	totalExperience := 0.0
	if resume.TotalExperience != nil {
		totalExperience = *resume.TotalExperience
	}

	recommendations := make([]types.ScoredJob, 0, len(indices))
	for _, idx := range indices {
		job := jobs[idx]
		descLower := strings.ToLower(job.Description)

		// 简历技能中出现在该岗位描述里的子集
		var matchingSkills []string
		for _, skill := range resume.Skills {
			if strings.Contains(descLower, strings.ToLower(skill)) {
				matchingSkills = append(matchingSkills, skill)
			}
		}

		experienceMatch := true
		if required, ok := RequiredExperience(job.Description); ok && totalExperience < float64(required) {
			experienceMatch = false
		}

		educationMatch := true
		if required := RequiredEducation(job.Description); required != nil {
			educationText := strings.ToLower(strings.Join(resume.Education, " "))
			educationMatch = false
			for _, req := range required {
				if strings.Contains(educationText, req) {
					educationMatch = true
					break
				}
			}
		}

		// 综合匹配分：技能40% + 年限30% + 学历20% + 文本相似度10%
		skillScore := float64(len(matchingSkills)) / math.Max(1, float64(len(resume.Skills)))
		expScore := 0.5
		if experienceMatch {
			expScore = 1
		}
		eduScore := 0.5
		if educationMatch {
			eduScore = 1
		}
		matchScore := (skillScore*0.4 + expScore*0.3 + eduScore*0.2 + similarities[idx]*0.1) * 100

		recommendations = append(recommendations, types.ScoredJob{
			Position:        job.Position,
			Company:         job.Company,
			Location:        job.Location,
			Description:     job.Description,
			MatchScore:      int(math.Round(matchScore)),
			ATSScore:        e.ATSScore(ctx, resume, job.Description),
			MatchingSkills:  matchingSkills,
			ExperienceMatch: experienceMatch,
			EducationMatch:  educationMatch,
		})
	}

	sort.SliceStable(recommendations, func(a, b int) bool {
		return recommendations[a].MatchScore > recommendations[b].MatchScore
	})

	if err := e.cache.Set(ctx, constants.CacheNamespaceRecommendation, fp, cachedRecommendations{Recommendations: recommendations}, constants.CacheFreshnessWindow); err != nil {
		// 缓存写入失败不影响本次结果
		span.SetAttributes(attribute.Bool("cache.write_failed", true))
	}
	return recommendations, nil
}

func lowerAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(s)
	}
	return out
}
