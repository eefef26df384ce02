package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/realrohitsingh/Resume-Screening-Tool/internal/types"
)

func findFeedback(items []types.FeedbackItem, category string) *types.FeedbackItem {
	for i := range items {
		if items[i].Category == category {
			return &items[i]
		}
	}
	return nil
}

func TestFeedbackFewSkillsSuggestion(t *testing.T) {
	fb := BuildFeedback(&types.StructuredResume{Skills: []string{"python", "sql"}})

	skills := findFeedback(fb, "Skills")
	require.NotNil(t, skills)
	assert.Equal(t, "Found 2 relevant skills", skills.Positive)
	require.NotNil(t, skills.Suggestion, "少于10个技能应附带建议")
}

func TestFeedbackManySkillsNoSuggestion(t *testing.T) {
	many := make([]string, 12)
	for i := range many {
		many[i] = "skill"
	}
	fb := BuildFeedback(&types.StructuredResume{Skills: many})

	skills := findFeedback(fb, "Skills")
	require.NotNil(t, skills)
	assert.Nil(t, skills.Suggestion)
}

func TestFeedbackContactComplete(t *testing.T) {
	fb := BuildFeedback(&types.StructuredResume{Email: "a@b.com", PhoneNumber: "555-123-4567"})

	contact := findFeedback(fb, "Contact Information")
	require.NotNil(t, contact)
	assert.Equal(t, "Found email and phone", contact.Positive)
	assert.Nil(t, contact.Suggestion)
}

func TestFeedbackContactPartial(t *testing.T) {
	fb := BuildFeedback(&types.StructuredResume{Email: "a@b.com"})

	contact := findFeedback(fb, "Contact Information")
	require.NotNil(t, contact)
	assert.Equal(t, "Found email", contact.Positive)
	require.NotNil(t, contact.Suggestion, "缺电话时应建议补充联系方式")
}

func TestFeedbackOmitsMissingDimensions(t *testing.T) {
	fb := BuildFeedback(&types.StructuredResume{})

	assert.Empty(t, fb, "什么都没提取到时不产生反馈")
}

func TestFeedbackExperienceAndEducation(t *testing.T) {
	exp := 4.5
	fb := BuildFeedback(&types.StructuredResume{
		Education:       []string{"Bachelor's degree"},
		TotalExperience: &exp,
	})

	require.NotNil(t, findFeedback(fb, "Education"))
	expItem := findFeedback(fb, "Experience")
	require.NotNil(t, expItem)
	assert.Equal(t, "Found 4.5 years of experience", expItem.Positive)
}
