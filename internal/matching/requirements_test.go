package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequiredExperience(t *testing.T) {
	cases := []struct {
		desc  string
		years int
	}{
		{"Requires 5+ years experience in Go", 5},
		{"3 years of experience with Python", 3},
		{"experience of 7 years in management", 7},
		{"10+ yrs experience preferred", 10},
		{"2 years of work experience", 2},
	}
	for _, c := range cases {
		years, ok := RequiredExperience(c.desc)
		require.True(t, ok, "应识别 %q", c.desc)
		assert.Equal(t, c.years, years, "描述: %q", c.desc)
	}
}

func TestRequiredExperienceAbsent(t *testing.T) {
	_, ok := RequiredExperience("Great opportunity for motivated engineers")
	assert.False(t, ok)
}

func TestRequiredEducation(t *testing.T) {
	required := RequiredEducation("Candidates need a Bachelor's Degree or equivalent; MBA a plus")

	assert.Contains(t, required, "bachelor's degree")
	assert.Contains(t, required, "mba")
}

func TestRequiredEducationAbsent(t *testing.T) {
	assert.Nil(t, RequiredEducation("No formal requirements"))
}
