package llm

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevigo/snippet-warden/internal/config"
	"github.com/sevigo/snippet-warden/internal/core"
)

func newTestReviewService(t *testing.T, provider string, profile *core.ReviewProfile) *reviewService {
	t.Helper()

	pm, err := NewPromptManager()
	require.NoError(t, err)

	cfg := &config.Config{
		AI: config.AIConfig{
			LLMProvider:    provider,
			GeneratorModel: "test-model",
		},
	}

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc, ok := NewReviewService(cfg, pm, nil, profile, log).(*reviewService)
	require.True(t, ok)
	return svc
}

func TestReviewService_BuildPrompt(t *testing.T) {
	code := "def transfer(amount):\n    balance -= amount\n"

	t.Run("code appears verbatim", func(t *testing.T) {
		svc := newTestReviewService(t, config.ProviderOllama, nil)
		prompt, err := svc.buildPrompt(code)
		require.NoError(t, err)
		assert.Contains(t, prompt, code)
	})

	t.Run("nil profile falls back to defaults", func(t *testing.T) {
		svc := newTestReviewService(t, config.ProviderOllama, nil)
		prompt, err := svc.buildPrompt(code)
		require.NoError(t, err)
		assert.NotContains(t, prompt, "The code is written in")
		assert.NotContains(t, prompt, "Pay particular attention to")
	})

	t.Run("profile hints flow into the prompt", func(t *testing.T) {
		profile := &core.ReviewProfile{
			Language:     "Python",
			Focus:        []string{"security", "error handling"},
			Instructions: "the project targets Python 3.12",
		}
		svc := newTestReviewService(t, config.ProviderOllama, profile)
		prompt, err := svc.buildPrompt(code)
		require.NoError(t, err)
		assert.Contains(t, prompt, "The code is written in Python.")
		assert.Contains(t, prompt, "security, error handling")
		assert.Contains(t, prompt, "the project targets Python 3.12")
	})

	t.Run("gemini provider selects its template", func(t *testing.T) {
		svc := newTestReviewService(t, config.ProviderGemini, nil)
		prompt, err := svc.buildPrompt(code)
		require.NoError(t, err)
		assert.Contains(t, prompt, "Markdown")
		assert.Contains(t, prompt, code)
	})
}

func TestReviewService_GenerateReview(t *testing.T) {
	code := "func sum(a, b int) int { return a + b }"

	t.Run("successful generation returns the model text verbatim", func(t *testing.T) {
		svc := newTestReviewService(t, config.ProviderOllama, nil)

		var seenPrompt string
		svc.generate = func(_ context.Context, prompt string) (string, error) {
			seenPrompt = prompt
			return "## Review\n\nLooks fine.\n", nil
		}

		review, err := svc.GenerateReview(context.Background(), code)
		require.NoError(t, err)
		assert.Equal(t, "## Review\n\nLooks fine.\n", review)
		assert.Contains(t, seenPrompt, code, "the rendered prompt must carry the snippet")
	})

	t.Run("upstream failures collapse into one generic error", func(t *testing.T) {
		upstreamErrs := []struct {
			name string
			err  error
		}{
			{name: "network failure", err: errors.New("dial tcp: connection refused")},
			{name: "auth failure", err: errors.New("401: invalid api key")},
			{name: "quota failure", err: errors.New("429: resource exhausted")},
		}

		for _, tt := range upstreamErrs {
			t.Run(tt.name, func(t *testing.T) {
				svc := newTestReviewService(t, config.ProviderOllama, nil)
				svc.generate = func(context.Context, string) (string, error) {
					return "", tt.err
				}

				review, err := svc.GenerateReview(context.Background(), code)
				require.Error(t, err)
				assert.Empty(t, review)
				assert.True(t, strings.HasPrefix(err.Error(), "review generation failed"),
					"every upstream failure must surface under the same generic message, got: %v", err)
				assert.ErrorIs(t, err, tt.err, "the cause must stay wrapped for the server log")
			})
		}
	})

	t.Run("empty model response is a failure", func(t *testing.T) {
		svc := newTestReviewService(t, config.ProviderOllama, nil)
		svc.generate = func(context.Context, string) (string, error) {
			return "", nil
		}

		review, err := svc.GenerateReview(context.Background(), code)
		require.Error(t, err)
		assert.Empty(t, review)
		assert.True(t, strings.HasPrefix(err.Error(), "review generation failed"))
	})

	t.Run("unrenderable prompt never reaches the model", func(t *testing.T) {
		svc := newTestReviewService(t, config.ProviderOllama, nil)
		svc.promptMgr = &PromptManager{prompts: nil}

		called := false
		svc.generate = func(context.Context, string) (string, error) {
			called = true
			return "text", nil
		}

		_, err := svc.GenerateReview(context.Background(), code)
		require.Error(t, err)
		assert.False(t, called, "no upstream call may happen without a rendered prompt")
	})
}
