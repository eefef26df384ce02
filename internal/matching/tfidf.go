package matching

import (
	"math"
	"regexp"
	"strings"
)

// tokenRe 至少两个字符的词，和常见向量化实现的默认分词保持一致
var tokenRe = regexp.MustCompile(`\b\w\w+\b`)

// tokenize 小写化分词并去掉停用词
func tokenize(text string) []string {
	var tokens []string
	for _, tok := range tokenRe.FindAllString(strings.ToLower(text), -1) {
		if !isStopWord(tok) {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// sparseVector 词表索引到权重的稀疏向量
type sparseVector map[int]float64

// dot 两个稀疏向量的点积，向量已L2归一化时即余弦相似度
func (v sparseVector) dot(other sparseVector) float64 {
	// 遍历较小的一侧
	if len(other) < len(v) {
		v, other = other, v
	}
	var sum float64
	for i, w := range v {
		if ow, ok := other[i]; ok {
			sum += w * ow
		}
	}
	return sum
}

// TFIDFVectorizer 词频-逆文档频率向量化器
// 在岗位语料上拟合词表和IDF，之后可以把任意文本投影到同一向量空间
type TFIDFVectorizer struct {
	vocab map[string]int
	idf   []float64
}

// FitTransform 在文档集合上拟合并返回各文档的归一化向量
func (t *TFIDFVectorizer) FitTransform(docs []string) []sparseVector {
	t.vocab = make(map[string]int)
	docTokens := make([][]string, len(docs))
	df := make(map[string]int)

	for i, doc := range docs {
		tokens := tokenize(doc)
		docTokens[i] = tokens

		seen := make(map[string]struct{})
		for _, tok := range tokens {
			if _, ok := t.vocab[tok]; !ok {
				t.vocab[tok] = len(t.vocab)
			}
			if _, ok := seen[tok]; !ok {
				seen[tok] = struct{}{}
				df[tok]++
			}
		}
	}

	// 平滑IDF: ln((1+n)/(1+df)) + 1
	n := float64(len(docs))
	t.idf = make([]float64, len(t.vocab))
	for tok, idx := range t.vocab {
		t.idf[idx] = math.Log((1+n)/(1+float64(df[tok]))) + 1
	}

	vectors := make([]sparseVector, len(docs))
	for i, tokens := range docTokens {
		vectors[i] = t.vectorize(tokens)
	}
	return vectors
}

// Transform 把文本投影到已拟合的向量空间，词表外的词被忽略
func (t *TFIDFVectorizer) Transform(text string) sparseVector {
	return t.vectorize(tokenize(text))
}

// VocabularySize 拟合后的词表大小
func (t *TFIDFVectorizer) VocabularySize() int {
	return len(t.vocab)
}

func (t *TFIDFVectorizer) vectorize(tokens []string) sparseVector {
	counts := make(map[int]float64)
	for _, tok := range tokens {
		if idx, ok := t.vocab[tok]; ok {
			counts[idx]++
		}
	}

	vec := make(sparseVector, len(counts))
	var norm float64
	for idx, tf := range counts {
		w := tf * t.idf[idx]
		vec[idx] = w
		norm += w * w
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for idx := range vec {
			vec[idx] /= norm
		}
	}
	return vec
}

// CosineSimilarity 计算已归一化向量间的余弦相似度
func CosineSimilarity(a, b sparseVector) float64 {
	return a.dot(b)
}
