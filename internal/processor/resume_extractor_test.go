package processor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/realrohitsingh/Resume-Screening-Tool/internal/parser"
)

// stubAnnotator 返回预置标注结果的测试替身
type stubAnnotator struct {
	byText map[string]*parser.Annotation
	err    error
}

func (s *stubAnnotator) Annotate(text string) (*parser.Annotation, error) {
	if s.err != nil {
		return nil, s.err
	}
	if ann, ok := s.byText[text]; ok {
		return ann, nil
	}
	return &parser.Annotation{}, nil
}

func TestExtractFullResume(t *testing.T) {
	text := "John Smith\nSenior Software Engineer at Acme Corp\nSkills: Python, Docker\njohn@example.com 555-123-4567\nWorked as senior software engineer at acme corp for many years"

	stub := &stubAnnotator{byText: map[string]*parser.Annotation{
		"John Smith": {People: []string{"John Smith"}},
	}}
	// 小写全文的标注
	stub.byText["john smith\nsenior software engineer at acme corp\nskills: python, docker\njohn@example.com 555-123-4567\nworked as senior software engineer at acme corp for many years"] = &parser.Annotation{
		Tokens:    tokens("python", "NN", "docker", "NN"),
		Sentences: []string{"worked as senior software engineer at acme corp for many years"},
	}
	// 原文的标注
	stub.byText[text] = &parser.Annotation{
		Tokens: tokens("John", "NNP", "Smith", "NNP", "Acme", "NNP", "Corp", "NNP"),
		People: []string{"John Smith"},
	}

	e := NewResumeExtractor([]ComponentOpt{WithAnnotator(stub)}, nil)
	result, err := e.Extract(context.Background(), text)
	require.NoError(t, err)

	assert.Equal(t, "John Smith", result.Name)
	assert.Equal(t, "john@example.com", result.Email)
	assert.NotEmpty(t, result.PhoneNumber)
	assert.Contains(t, result.Skills, "python")
	assert.Contains(t, result.Skills, "docker")
	assert.NotEmpty(t, result.Experience)
	assert.Contains(t, result.Designation, "Senior Software Engineer")
	assert.True(t, result.HasContact())
}

func TestExtractEmptyText(t *testing.T) {
	e := NewResumeExtractor([]ComponentOpt{WithAnnotator(&stubAnnotator{})}, nil)

	result, err := e.Extract(context.Background(), "")
	require.NoError(t, err)

	assert.Empty(t, result.Name)
	assert.Empty(t, result.Skills)
	assert.Nil(t, result.TotalExperience)
}

func TestExtractAnnotationError(t *testing.T) {
	e := NewResumeExtractor([]ComponentOpt{WithAnnotator(&stubAnnotator{err: assert.AnError})}, nil)

	_, err := e.Extract(context.Background(), "anything")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAnnotationFailed)
}

func TestSafeExtractRecoversFromPanic(t *testing.T) {
	e := NewResumeExtractor(nil, nil)

	assert.NotPanics(t, func() {
		e.safeExtract(context.Background(), "demo", func() {
			panic("boom")
		})
	})
}
