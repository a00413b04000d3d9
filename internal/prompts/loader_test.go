package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_KnownPrompts(t *testing.T) {
	for _, key := range []string{"single-page", "multi-page"} {
		prompt, err := Get("extraction.json", key)
		require.NoError(t, err, "prompt %q", key)
		assert.NotEmpty(t, prompt)
		assert.Contains(t, prompt, "JSON")
	}
}

func TestGet_UnknownKey(t *testing.T) {
	_, err := Get("extraction.json", "no-such-prompt")
	assert.Error(t, err)
}

func TestGet_UnknownFile(t *testing.T) {
	_, err := Get("missing.json", "single-page")
	assert.Error(t, err)
}

func TestFormat_ReplacesPlaceholders(t *testing.T) {
	out := Format("Hello {{.Name}}, from {{.City}}", map[string]string{
		"Name": "Jo",
		"City": "Austin",
	})
	assert.Equal(t, "Hello Jo, from Austin", out)
}

func TestMultiPagePrompt_HasPlaceholder(t *testing.T) {
	prompt := MustGet("extraction.json", "multi-page")
	assert.True(t, strings.Contains(prompt, "{{.Pages}}"))
}
