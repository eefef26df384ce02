package parser

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupportedExt(t *testing.T) {
	assert.True(t, SupportedExt(".pdf"))
	assert.True(t, SupportedExt(".PDF"))
	assert.True(t, SupportedExt(".docx"))
	assert.True(t, SupportedExt(".txt"))
	assert.False(t, SupportedExt(".exe"))
	assert.False(t, SupportedExt(""))
}

func TestExtractUnsupportedFormat(t *testing.T) {
	te := NewTextExtractor(nil)

	_, err := te.Extract(context.Background(), []byte("data"), "resume.exe")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestExtractPlainText(t *testing.T) {
	te := NewTextExtractor(nil)

	text, err := te.Extract(context.Background(), []byte("Python developer with 5 years experience"), "resume.txt")
	require.NoError(t, err)
	assert.Equal(t, "Python developer with 5 years experience", text)
}

func TestExtractEmptyPlainText(t *testing.T) {
	te := NewTextExtractor(nil)

	_, err := te.Extract(context.Background(), []byte("   \n\t"), "resume.txt")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyDocument)
}

func TestExtractCorruptDocx(t *testing.T) {
	te := NewTextExtractor(nil)

	_, err := te.Extract(context.Background(), []byte("not a zip archive"), "resume.docx")
	assert.Error(t, err)
}
