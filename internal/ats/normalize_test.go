package ats

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeText_EmptyInput(t *testing.T) {
	norm := NormalizeText("")

	assert.Empty(t, norm.Words)
	assert.Equal(t, 0, norm.WordCount)
	assert.True(t, norm.Degenerate)
}

func TestNormalizeText_StripsPunctuationKeepsTechnicalChars(t *testing.T) {
	norm := NormalizeText("Shipped node.js & ci-cd pipelines (cut costs by 40%)!")

	assert.Contains(t, norm.Words, "node.js")
	assert.Contains(t, norm.Words, "ci-cd")
	assert.Contains(t, norm.Words, "40%")
	assert.NotContains(t, norm.Words, "&")
}

func TestNormalizeText_RepeatedRunIsDegenerate(t *testing.T) {
	filler := strings.Repeat("meaningful words about work experience ", 30)
	norm := NormalizeText(filler + " aaaa")

	assert.True(t, norm.Degenerate)
}

func TestNormalizeText_PunctuationGapsDoNotCountAsRuns(t *testing.T) {
	// "x!!!! y" cleans to "x     y"; whitespace runs must not flag degeneracy.
	filler := strings.Repeat("meaningful words about work experience ", 30)
	norm := NormalizeText(filler + " x!!!! y")

	assert.False(t, norm.Degenerate)
}

func TestNormalizeText_VowellessTokensAreDegenerate(t *testing.T) {
	// Over 30% of tokens are long consonant mashes, even though the text is
	// long enough and has no repeated-character runs.
	text := strings.Repeat("driving measurable outcomes for clients daily ", 10) +
		strings.Repeat("xkcdq wrtkz ", 20)
	norm := NormalizeText(text)

	assert.GreaterOrEqual(t, norm.WordCount, 80)
	assert.True(t, norm.Degenerate)
}

func TestNormalizeText_ShortTextIsDegenerate(t *testing.T) {
	norm := NormalizeText("experienced engineer with strong delivery record")

	assert.True(t, norm.Degenerate)
	assert.Equal(t, 6, norm.WordCount)
}

func TestNormalizeText_LongCleanTextIsNotDegenerate(t *testing.T) {
	text := strings.Repeat("delivered reliable software for enterprise customers across many regions ", 12)
	norm := NormalizeText(text)

	assert.False(t, norm.Degenerate)
	assert.GreaterOrEqual(t, norm.WordCount, 80)
}
