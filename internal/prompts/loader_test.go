package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_KnownPrompt(t *testing.T) {
	prompt, err := Get("analysis.json", "ats-analysis")
	require.NoError(t, err)
	assert.Contains(t, prompt, "{{.ResumeText}}")
}

func TestGet_UnknownKey(t *testing.T) {
	_, err := Get("analysis.json", "nope")
	assert.Error(t, err)
}

func TestGet_UnknownFile(t *testing.T) {
	_, err := Get("missing.json", "ats-analysis")
	assert.Error(t, err)
}

func TestFormat(t *testing.T) {
	out := Format("Hello {{.Name}}, score {{.Score}}", map[string]string{
		"Name":  "Dana",
		"Score": "88",
	})
	assert.Equal(t, "Hello Dana, score 88", out)
}

func TestMustGet_PanicsOnMissing(t *testing.T) {
	assert.Panics(t, func() { MustGet("analysis.json", "missing-key") })
}
