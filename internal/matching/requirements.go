package matching

import (
	"regexp"
	"strconv"
	"strings"
)

// 岗位描述中年限要求的常见表述
var experienceRequirementRes = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\+?\s*(?:years?|yrs?)(?:\s+of)?\s+experience`),
	regexp.MustCompile(`experience\s*(?:of|:)?\s*(\d+)\+?\s*(?:years?|yrs?)`),
	regexp.MustCompile(`(\d+)\+?\s*(?:years?|yrs?)(?:\s+of)?\s+work\s+experience`),
}

// educationRequirementTerms 岗位描述中学历要求的常见表述
var educationRequirementTerms = []string{
	"bachelor's degree", "bachelors degree", "b.s.", "b.a.",
	"master's degree", "masters degree", "m.s.", "m.a.",
	"phd", "ph.d.", "doctorate",
	"mba", "m.b.a.",
}

// RequiredExperience 从岗位描述中提取要求的最低年限，未提及时返回0和false
func RequiredExperience(jobDescription string) (int, bool) {
	lowered := strings.ToLower(jobDescription)
	for _, re := range experienceRequirementRes {
		if m := re.FindStringSubmatch(lowered); m != nil {
			years, err := strconv.Atoi(m[1])
			if err == nil {
				return years, true
			}
		}
	}
	return 0, false
}

// RequiredEducation 从岗位描述中提取提及的学历要求，未提及时返回nil
func RequiredEducation(jobDescription string) []string {
	lowered := strings.ToLower(jobDescription)
	var required []string
	for _, term := range educationRequirementTerms {
		if strings.Contains(lowered, term) {
			required = append(required, term)
		}
	}
	return required
}
