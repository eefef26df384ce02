package matching

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/realrohitsingh/Resume-Screening-Tool/internal/config"
	"github.com/realrohitsingh/Resume-Screening-Tool/internal/storage"
	"github.com/realrohitsingh/Resume-Screening-Tool/internal/types"
	"github.com/realrohitsingh/Resume-Screening-Tool/internal/vocabulary"
)

const testCorpus = `Position,Company,Location,Job_Description
Python Developer,Acme Corp,Remote,"Looking for python and django developers, 3+ years experience required, bachelor's degree preferred"
Senior Data Scientist,DataCo,NYC,"machine learning with python and pandas, 5+ years experience, master's degree required"
Frontend Engineer,WebWorks,SF,"react and javascript for modern web apps"
Marketing Manager,AdHouse,LA,"marketing campaigns and communication skills"
`

func floatPtr(f float64) *float64 { return &f }

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	return newTestEngineWithVocab(t, vocabulary.Default())
}

func newTestEngineWithVocab(t *testing.T, vocab *vocabulary.Vocabulary) *Engine {
	t.Helper()
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "jobs.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte(testCorpus), 0o644))

	fs, err := storage.NewFileStore(dir)
	require.NoError(t, err)
	cache, err := storage.NewFileCache(fs, "cache.json")
	require.NoError(t, err)
	jobs, err := storage.NewJobStore(fs, "hr_jobs.json", csvPath, nil)
	require.NoError(t, err)

	return NewEngine(vocab, jobs, cache)
}

func pythonResume() *types.StructuredResume {
	return &types.StructuredResume{
		Name:            "Alice",
		Email:           "alice@example.com",
		PhoneNumber:     "555-123-4567",
		Skills:          []string{"python", "Django", "SQL"},
		Education:       []string{"Bachelor's degree in computer science"},
		Experience:      []string{"Senior developer at Acme for four years"},
		TotalExperience: floatPtr(4),
	}
}

func TestATSScoreBounds(t *testing.T) {
	e := newTestEngine(t)

	score := e.ATSScore(context.Background(), pythonResume(), "python and django, bachelor's degree")

	assert.GreaterOrEqual(t, score, 70, "有基准分保底")
	assert.LessOrEqual(t, score, 100)
}

func TestATSScoreComponents(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	// 空简历对无技能要求的描述只有基准分
	empty := &types.StructuredResume{}
	assert.Equal(t, 70, e.ATSScore(ctx, empty, "wonderful opportunity"))

	// 学历关键词触发加分
	withDegree := &types.StructuredResume{Education: []string{"Master of science"}}
	assert.Equal(t, 75, e.ATSScore(ctx, withDegree, "wonderful opportunity"))

	// 年限阶梯
	withExp := &types.StructuredResume{TotalExperience: floatPtr(3.5)}
	assert.Equal(t, 73, e.ATSScore(ctx, withExp, "wonderful opportunity"))

	oneYear := &types.StructuredResume{TotalExperience: floatPtr(1)}
	assert.Equal(t, 72, e.ATSScore(ctx, oneYear, "wonderful opportunity"))
}

func TestATSScoreFullSkillMatch(t *testing.T) {
	e := newTestEngine(t)

	resume := &types.StructuredResume{Skills: []string{"python", "django"}}
	// 描述命中的候选技能全部被简历覆盖时拿满20分
	score := e.ATSScore(context.Background(), resume, "needs python and django")

	assert.Equal(t, 90, score)
}

func TestATSScoreResumeSkillCandidates(t *testing.T) {
	e := newTestEngine(t)

	// 未配置技能CSV时，候选集只来自简历技能：
	// react不在描述里不计入分母，python/aws全覆盖拿满技能分
	resume := &types.StructuredResume{
		Skills:          []string{"Python", "React", "AWS"},
		TotalExperience: floatPtr(4),
	}
	score := e.ATSScore(context.Background(), resume,
		"Looking for a Python developer with AWS experience, 3+ years required")

	assert.Equal(t, 93, score, "70基准 + 20技能 + 3年限")
}

func TestATSScoreVocabularyFromCSV(t *testing.T) {
	dir := t.TempDir()
	skillsPath := filepath.Join(dir, "skills.csv")
	require.NoError(t, os.WriteFile(skillsPath, []byte("Skill\npython\njava\n"), 0o644))
	vocab := vocabulary.Load(config.SkillsConfig{CSVPath: skillsPath})
	e := newTestEngineWithVocab(t, vocab)

	// 配置了CSV时整个词表参与扫描：描述命中python/java，简历只覆盖一半
	resume := &types.StructuredResume{Skills: []string{"python"}}
	score := e.ATSScore(context.Background(), resume, "python and java shop")

	assert.Equal(t, 80, score)
}

func TestATSScoreCached(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()
	resume := pythonResume()

	first := e.ATSScore(ctx, resume, "python developer role")
	second := e.ATSScore(ctx, resume, "python developer role")

	assert.Equal(t, first, second, "同一简历同一岗位的分数应稳定")
}

func TestRecommendRankingAndLimit(t *testing.T) {
	e := newTestEngine(t)

	recs, err := e.Recommend(context.Background(), pythonResume())
	require.NoError(t, err)
	require.NotEmpty(t, recs)
	assert.LessOrEqual(t, len(recs), 10)

	// 按综合匹配分降序
	for i := 1; i < len(recs); i++ {
		assert.GreaterOrEqual(t, recs[i-1].MatchScore, recs[i].MatchScore)
	}

	// Python简历的最佳匹配应是Python岗位
	assert.Equal(t, "Python Developer", recs[0].Position)
	assert.Contains(t, recs[0].MatchingSkills, "python")
	assert.True(t, recs[0].ExperienceMatch, "4年经验满足3年要求")
	assert.True(t, recs[0].EducationMatch)
}

func TestRecommendExperienceMismatch(t *testing.T) {
	e := newTestEngine(t)

	junior := pythonResume()
	junior.TotalExperience = floatPtr(1)
	recs, err := e.Recommend(context.Background(), junior)
	require.NoError(t, err)

	for _, rec := range recs {
		if rec.Position == "Python Developer" {
			assert.False(t, rec.ExperienceMatch, "1年经验不满足3年要求")
		}
	}
}

func TestRecommendUsesCache(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()
	resume := pythonResume()

	_, err := e.Recommend(ctx, resume)
	require.NoError(t, err)
	_, err = e.Recommend(ctx, resume)
	require.NoError(t, err)

	assert.Equal(t, int64(1), e.Recomputations(), "第二次请求应命中缓存")

	// 内容变化后指纹不同，需要重新计算
	changed := pythonResume()
	changed.Skills = append(changed.Skills, "kubernetes")
	_, err = e.Recommend(ctx, changed)
	require.NoError(t, err)
	assert.Equal(t, int64(2), e.Recomputations())
}

func TestRecommendSkillOrderDoesNotBustCache(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	a := pythonResume()
	b := pythonResume()
	b.Skills = []string{"SQL", "python", "Django"}

	_, err := e.Recommend(ctx, a)
	require.NoError(t, err)
	_, err = e.Recommend(ctx, b)
	require.NoError(t, err)

	assert.Equal(t, int64(1), e.Recomputations(), "技能顺序不同不应导致重新计算")
}

func TestAnalyzeOverallScore(t *testing.T) {
	e := newTestEngine(t)

	result, err := e.Analyze(context.Background(), pythonResume())
	require.NoError(t, err)

	assert.Equal(t, "success", result.Status)
	require.NotEmpty(t, result.Recommendations)

	var sum float64
	for _, rec := range result.Recommendations {
		sum += float64(rec.ATSScore)
	}
	assert.InDelta(t, sum/float64(len(result.Recommendations)), result.ATSScore, 1e-9,
		"总体分应为各推荐岗位ATS分的平均")
	assert.NotEmpty(t, result.Feedback)
}

func TestAnalyzeEmptyCorpusFallback(t *testing.T) {
	fs, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	cache, err := storage.NewFileCache(fs, "cache.json")
	require.NoError(t, err)
	jobs, err := storage.NewJobStore(fs, "hr_jobs.json", "", nil)
	require.NoError(t, err)
	e := NewEngine(vocabulary.Default(), jobs, cache)

	result, err := e.Analyze(context.Background(), pythonResume())
	require.NoError(t, err)

	assert.Empty(t, result.Recommendations)
	assert.Equal(t, float64(70), result.ATSScore, "无推荐时总体分回落到基准分")
}

func TestAnalyzeCached(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()
	resume := pythonResume()

	first, err := e.Analyze(ctx, resume)
	require.NoError(t, err)
	second, err := e.Analyze(ctx, resume)
	require.NoError(t, err)

	assert.Equal(t, first.ATSScore, second.ATSScore)
	assert.Equal(t, int64(1), e.Recomputations(), "分析缓存命中时不再执行推荐流水线")
}
