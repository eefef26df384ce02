package parser

import (
	"fmt"
	"strings"

	prose "github.com/jdkato/prose/v2"
)

// Token 词元及其词性标注
type Token struct {
	Text string
	Tag  string // Penn Treebank词性标签
}

// Annotation 一段文本的语言学标注结果
type Annotation struct {
	Tokens    []Token
	Sentences []string
	People    []string // NER识别出的人名
}

// Annotator 基于prose的文本标注器，提供分词、词性、分句和人名识别
type Annotator struct{}

// NewAnnotator 创建标注器
func NewAnnotator() *Annotator {
	return &Annotator{}
}

// Annotate 对文本做完整标注
func (a *Annotator) Annotate(text string) (*Annotation, error) {
	doc, err := prose.NewDocument(text)
	if err != nil {
		return nil, fmt.Errorf("text annotation failed: %w", err)
	}

	ann := &Annotation{}
	for _, tok := range doc.Tokens() {
		ann.Tokens = append(ann.Tokens, Token{Text: tok.Text, Tag: tok.Tag})
	}
	for _, sent := range doc.Sentences() {
		ann.Sentences = append(ann.Sentences, sent.Text)
	}
	for _, ent := range doc.Entities() {
		if ent.Label == "PERSON" {
			ann.People = append(ann.People, ent.Text)
		}
	}
	return ann, nil
}

// NounChunks 近似名词短语：连续的形容词/名词序列且以名词结尾
func (ann *Annotation) NounChunks() []string {
	var chunks []string
	var run []Token
	flush := func() {
		// 去掉末尾的非名词词元
		end := len(run)
		for end > 0 && !strings.HasPrefix(run[end-1].Tag, "NN") {
			end--
		}
		if end > 0 {
			words := make([]string, end)
			for i := 0; i < end; i++ {
				words[i] = run[i].Text
			}
			chunks = append(chunks, strings.Join(words, " "))
		}
		run = run[:0]
	}
	for _, tok := range ann.Tokens {
		if strings.HasPrefix(tok.Tag, "JJ") || strings.HasPrefix(tok.Tag, "NN") {
			run = append(run, tok)
			continue
		}
		flush()
	}
	flush()
	return chunks
}

// ProperNounRuns 连续的专有名词序列，作为机构名候选
func (ann *Annotation) ProperNounRuns() []string {
	var runs []string
	var current []string
	flush := func() {
		if len(current) > 0 {
			runs = append(runs, strings.Join(current, " "))
			current = current[:0]
		}
	}
	for _, tok := range ann.Tokens {
		if tok.Tag == "NNP" || tok.Tag == "NNPS" {
			current = append(current, tok.Text)
			continue
		}
		flush()
	}
	flush()
	return runs
}

// Bigrams 相邻词元组成的二元组（小写），用于多词技能匹配
func (ann *Annotation) Bigrams() []string {
	if len(ann.Tokens) < 2 {
		return nil
	}
	bigrams := make([]string, 0, len(ann.Tokens)-1)
	for i := 0; i+1 < len(ann.Tokens); i++ {
		bigrams = append(bigrams, strings.ToLower(ann.Tokens[i].Text)+" "+strings.ToLower(ann.Tokens[i+1].Text))
	}
	return bigrams
}
