package processor

import (
	"sort"
	"strings"

	"github.com/realrohitsingh/Resume-Screening-Tool/internal/parser"
)

// extractSkills 三轮匹配：单个词元、相邻词元二元组、名词短语，都对照技能词表
// 命中结果去重后转为展示大小写并排序
func (e *ResumeExtractor) extractSkills(lowered *parser.Annotation) []string {
	vocab := e.components.Vocabulary
	found := make(map[string]struct{})

	for _, tok := range lowered.Tokens {
		if vocab.Contains(tok.Text) {
			found[strings.ToLower(tok.Text)] = struct{}{}
		}
	}
	for _, bigram := range lowered.Bigrams() {
		if vocab.Contains(bigram) {
			found[bigram] = struct{}{}
		}
	}
	for _, chunk := range lowered.NounChunks() {
		lc := strings.ToLower(chunk)
		if vocab.Contains(lc) {
			found[lc] = struct{}{}
		}
	}

	skills := make([]string, 0, len(found))
	for skill := range found {
		skills = append(skills, vocab.DisplayCase(skill))
	}
	sort.Strings(skills)
	return skills
}
