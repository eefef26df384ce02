package matching

import (
	"fmt"
	"strings"

	"github.com/realrohitsingh/Resume-Screening-Tool/internal/types"
)

// BuildFeedback 根据提取结果生成分项反馈
// 每个维度给一句正向描述，需要改进时附带建议；未提取到的维度不出现
func BuildFeedback(resume *types.StructuredResume) []types.FeedbackItem {
	var feedback []types.FeedbackItem

	if len(resume.Skills) > 0 {
		var suggestion *string
		if len(resume.Skills) < 10 {
			s := "Consider adding more industry-specific keywords"
			suggestion = &s
		}
		feedback = append(feedback, types.FeedbackItem{
			Category:   "Skills",
			Positive:   fmt.Sprintf("Found %d relevant skills", len(resume.Skills)),
			Suggestion: suggestion,
		})
	}

	if len(resume.Education) > 0 {
		feedback = append(feedback, types.FeedbackItem{
			Category: "Education",
			Positive: "Education section properly formatted",
		})
	}

	if resume.TotalExperience != nil && *resume.TotalExperience > 0 {
		feedback = append(feedback, types.FeedbackItem{
			Category: "Experience",
			Positive: fmt.Sprintf("Found %g years of experience", *resume.TotalExperience),
		})
	}

	var contact []string
	if resume.Email != "" {
		contact = append(contact, "email")
	}
	if resume.PhoneNumber != "" {
		contact = append(contact, "phone")
	}
	if len(contact) > 0 {
		var suggestion *string
		if len(contact) < 2 {
			s := "Add missing contact information"
			suggestion = &s
		}
		feedback = append(feedback, types.FeedbackItem{
			Category:   "Contact Information",
			Positive:   "Found " + strings.Join(contact, " and "),
			Suggestion: suggestion,
		})
	}

	return feedback
}
