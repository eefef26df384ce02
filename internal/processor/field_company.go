package processor

import (
	"strings"

	"github.com/realrohitsingh/Resume-Screening-Tool/internal/parser"
)

// companyIndicators 公司名常见后缀
var companyIndicators = []string{
	"inc", "corp", "corporation", "ltd", "limited", "llc", "llp", "gmbh", "co", "company",
}

// extractCompanies 从专有名词序列中筛选公司名
// 带公司后缀的直接保留，多词机构名也视为公司；单词且无后缀的丢弃
func extractCompanies(cased *parser.Annotation) []string {
	seen := make(map[string]struct{})
	var companies []string

	for _, run := range cased.ProperNounRuns() {
		name := strings.TrimSpace(run)
		if name == "" {
			continue
		}
		lower := strings.ToLower(name)

		keep := false
		for _, ind := range companyIndicators {
			if strings.Contains(lower, ind) {
				keep = true
				break
			}
		}
		if !keep && len(strings.Fields(name)) > 1 {
			keep = true
		}
		if !keep {
			continue
		}
		if _, ok := seen[name]; !ok {
			seen[name] = struct{}{}
			companies = append(companies, name)
		}
	}
	return companies
}
