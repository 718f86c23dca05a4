package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/sevigo/goframe/llms"

	"github.com/sevigo/snippet-warden/internal/config"
	"github.com/sevigo/snippet-warden/internal/core"
)

// reviewPromptData is a type-safe struct for rendering the review prompt.
type reviewPromptData struct {
	Code         string
	Language     string
	Focus        string
	Instructions string
}

// reviewService implements core.Reviewer on top of a goframe LLM model.
// Each call is stateless and single-turn; no conversation history is kept
// and identical snippets always trigger a fresh upstream request.
type reviewService struct {
	cfg       *config.Config
	promptMgr *PromptManager
	model     llms.Model
	profile   *core.ReviewProfile
	logger    *slog.Logger

	// generate performs one single-turn upstream call. It defaults to the
	// model's generation entry point and is only replaced in tests.
	generate func(ctx context.Context, prompt string) (string, error)
}

// NewReviewService creates a Reviewer that renders the code-review prompt for
// the configured provider and forwards it to the given model. A nil profile
// means the generic reviewer persona without project-specific hints.
func NewReviewService(
	cfg *config.Config,
	promptMgr *PromptManager,
	model llms.Model,
	profile *core.ReviewProfile,
	logger *slog.Logger,
) core.Reviewer {
	if profile == nil {
		profile = core.DefaultReviewProfile()
	}
	s := &reviewService{
		cfg:       cfg,
		promptMgr: promptMgr,
		model:     model,
		profile:   profile,
		logger:    logger,
	}
	s.generate = func(ctx context.Context, prompt string) (string, error) {
		return llms.GenerateFromSinglePrompt(ctx, s.model, prompt)
	}
	return s
}

// GenerateReview builds the full review prompt for the snippet and performs
// one upstream generation call. Every upstream failure mode (auth, quota,
// network, malformed response) surfaces as a single wrapped error; callers
// are not expected to distinguish them.
func (s *reviewService) GenerateReview(ctx context.Context, code string) (string, error) {
	prompt, err := s.buildPrompt(code)
	if err != nil {
		return "", fmt.Errorf("failed to build review prompt: %w", err)
	}

	start := time.Now()
	review, err := s.generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("review generation failed: %w", err)
	}
	if review == "" {
		return "", fmt.Errorf("review generation failed: model returned an empty response")
	}

	s.logger.Debug("review generated",
		"model", s.cfg.AI.GeneratorModel,
		"prompt_chars", len(prompt),
		"review_chars", len(review),
		"duration", time.Since(start).Round(time.Millisecond),
	)
	return review, nil
}

func (s *reviewService) buildPrompt(code string) (string, error) {
	data := reviewPromptData{
		Code:         code,
		Language:     s.profile.Language,
		Focus:        strings.Join(s.profile.Focus, ", "),
		Instructions: s.profile.Instructions,
	}
	return s.promptMgr.Render(CodeReviewPrompt, ModelProvider(s.cfg.AI.LLMProvider), data)
}
