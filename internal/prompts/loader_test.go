package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_ProfilePrompt(t *testing.T) {
	ClearCache()

	prompt, err := Get("profile.json", "extract-preferences")
	require.NoError(t, err)
	assert.Contains(t, prompt, "{{.Text}}")
}

func TestGet_ScoringPrompt(t *testing.T) {
	ClearCache()

	prompt, err := Get("scoring.json", "score-jobs-batch")
	require.NoError(t, err)
	assert.Contains(t, prompt, "{{.Profile}}")
	assert.Contains(t, prompt, "{{.SourceText}}")
	assert.Contains(t, prompt, "{{.Jobs}}")
}

func TestGet_UnknownKey(t *testing.T) {
	_, err := Get("profile.json", "no-such-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no-such-key")
}

func TestGet_UnknownFile(t *testing.T) {
	_, err := Get("missing.json", "anything")
	assert.Error(t, err)
}

func TestFormat_ReplacesAllPlaceholders(t *testing.T) {
	template := "Analyze {{.Text}} for {{.Text}} with model {{.Model}}"
	result := Format(template, map[string]string{
		"Text":  "the bio",
		"Model": "test-model",
	})

	assert.Equal(t, "Analyze the bio for the bio with model test-model", result)
	assert.False(t, strings.Contains(result, "{{."))
}

func TestFormat_LeavesUnknownPlaceholders(t *testing.T) {
	template := "Known: {{.Known}}, unknown: {{.Unknown}}"
	result := Format(template, map[string]string{"Known": "x"})

	assert.Equal(t, "Known: x, unknown: {{.Unknown}}", result)
}

func TestMustGet_PanicsOnMissing(t *testing.T) {
	assert.Panics(t, func() {
		MustGet("profile.json", "no-such-key")
	})
}
