package processor

import (
	"strings"

	"github.com/realrohitsingh/Resume-Screening-Tool/internal/parser"
)

// extractName 提取候选人姓名
// 优先在简历首行做人名识别（姓名通常在最上方），找不到再回退到全文
func (e *ResumeExtractor) extractName(text string, cased *parser.Annotation) string {
	firstLine, _, _ := strings.Cut(text, "\n")
	if strings.TrimSpace(firstLine) != "" {
		if ann, err := e.components.Annotator.Annotate(firstLine); err == nil && len(ann.People) > 0 {
			return ann.People[0]
		}
	}
	if len(cased.People) > 0 {
		return cased.People[0]
	}
	return ""
}
