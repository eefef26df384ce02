package processor

import (
	"regexp"
	"strings"
)

// jobTitleRes 常见职位头衔的正则模式
var jobTitleRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(senior|lead|principal|staff|junior|associate)?\s*(software|systems|solutions|technical|it|web|cloud|data|network|security|business|product|project)?\s*(engineer|developer|architect|analyst|consultant|manager|administrator|specialist|coordinator|designer)`),
	regexp.MustCompile(`(?i)(chief|vice president|director|head|vp) (?:of )?(technology|engineering|operations|product|technical|information|software|development|business)`),
	regexp.MustCompile(`(?i)(full[ -]stack|backend|frontend|ios|android|mobile|devops|qa|sre) (engineer|developer)`),
	regexp.MustCompile(`(?i)(program|product|project|technical|engineering|team) (manager|lead)`),
}

// extractDesignations 用头衔模式在原文中匹配职位名称，统一为词首大写（of/the除外）
func extractDesignations(text string) []string {
	seen := make(map[string]struct{})
	var designations []string

	for _, re := range jobTitleRes {
		for _, match := range re.FindAllString(text, -1) {
			title := titleCaseDesignation(strings.TrimSpace(match))
			if title == "" {
				continue
			}
			if _, ok := seen[title]; !ok {
				seen[title] = struct{}{}
				designations = append(designations, title)
			}
		}
	}
	return designations
}

func titleCaseDesignation(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		lw := strings.ToLower(w)
		if lw == "of" || lw == "the" {
			words[i] = lw
			continue
		}
		words[i] = titleWord(w)
	}
	return strings.Join(words, " ")
}
