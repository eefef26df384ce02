package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tokens := tokenize("The quick Python developer and the API")

	assert.Contains(t, tokens, "quick")
	assert.Contains(t, tokens, "python")
	assert.Contains(t, tokens, "developer")
	assert.Contains(t, tokens, "api")
	assert.NotContains(t, tokens, "the", "停用词应被过滤")
	assert.NotContains(t, tokens, "and")
}

func TestTokenizeMinLength(t *testing.T) {
	tokens := tokenize("r c go java")

	assert.NotContains(t, tokens, "r", "单字符词不参与")
	assert.NotContains(t, tokens, "c")
	assert.Contains(t, tokens, "java")
}

func TestFitTransformNormalized(t *testing.T) {
	v := &TFIDFVectorizer{}
	vectors := v.FitTransform([]string{
		"python developer with django",
		"java engineer with spring",
	})

	for _, vec := range vectors {
		var norm float64
		for _, w := range vec {
			norm += w * w
		}
		assert.InDelta(t, 1.0, norm, 1e-9, "向量应L2归一化")
	}
}

func TestCosineSimilarityIdenticalDocs(t *testing.T) {
	v := &TFIDFVectorizer{}
	vectors := v.FitTransform([]string{
		"python machine learning",
		"python machine learning",
		"accounting finance audit",
	})

	assert.InDelta(t, 1.0, CosineSimilarity(vectors[0], vectors[1]), 1e-9)
	assert.InDelta(t, 0.0, CosineSimilarity(vectors[0], vectors[2]), 1e-9, "无共同词时相似度为0")
}

func TestTransformUnknownTokensIgnored(t *testing.T) {
	v := &TFIDFVectorizer{}
	v.FitTransform([]string{"python developer"})

	vec := v.Transform("quantum blockchain wizardry")
	assert.Empty(t, vec, "词表外的词应被忽略")
}

func TestSimilarityRanking(t *testing.T) {
	v := &TFIDFVectorizer{}
	vectors := v.FitTransform([]string{
		"python django flask web development",
		"java spring enterprise backend",
		"marketing sales communication",
	})

	profile := v.Transform("python flask web developer")

	simPython := CosineSimilarity(profile, vectors[0])
	simJava := CosineSimilarity(profile, vectors[1])
	simMarketing := CosineSimilarity(profile, vectors[2])

	assert.Greater(t, simPython, simJava)
	assert.Greater(t, simPython, simMarketing)
}
