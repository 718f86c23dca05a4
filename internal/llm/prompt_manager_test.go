package llm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromptManager_RenderCodeReview(t *testing.T) {
	pm, err := NewPromptManager()
	require.NoError(t, err)

	code := "func sum(a, b int) int { return a + b }"
	data := reviewPromptData{Code: code}

	t.Run("default provider", func(t *testing.T) {
		prompt, err := pm.Render(CodeReviewPrompt, DefaultProvider, data)
		require.NoError(t, err)
		assert.Contains(t, prompt, code)
		assert.Contains(t, prompt, "code review")
		assert.NotContains(t, prompt, "The code is written in")
	})

	t.Run("gemini provider uses its own template", func(t *testing.T) {
		prompt, err := pm.Render(CodeReviewPrompt, ModelProvider("gemini"), data)
		require.NoError(t, err)
		assert.Contains(t, prompt, code)
		assert.Contains(t, prompt, "Markdown")
	})

	t.Run("unknown provider falls back to default", func(t *testing.T) {
		prompt, err := pm.Render(CodeReviewPrompt, ModelProvider("ollama"), data)
		require.NoError(t, err)
		assert.Contains(t, prompt, code)
	})

	t.Run("profile hints are rendered", func(t *testing.T) {
		prompt, err := pm.Render(CodeReviewPrompt, DefaultProvider, reviewPromptData{
			Code:         code,
			Language:     "Go",
			Focus:        "security, concurrency",
			Instructions: "prefer table tests",
		})
		require.NoError(t, err)
		assert.Contains(t, prompt, "The code is written in Go.")
		assert.Contains(t, prompt, "security, concurrency")
		assert.Contains(t, prompt, "prefer table tests")
	})

	t.Run("code is not escaped or truncated", func(t *testing.T) {
		raw := "<script>alert('1')</script> && \"quotes\" {{not a template}}"
		prompt, err := pm.Render(CodeReviewPrompt, DefaultProvider, reviewPromptData{Code: raw})
		require.NoError(t, err)
		assert.True(t, strings.Contains(prompt, raw), "raw code must appear verbatim in the prompt")
	})
}

func TestPromptManager_UnknownKey(t *testing.T) {
	pm, err := NewPromptManager()
	require.NoError(t, err)

	_, err = pm.Render(PromptKey("nonexistent"), DefaultProvider, nil)
	assert.Error(t, err)
}
