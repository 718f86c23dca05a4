package main

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/sevigo/snippet-warden/internal/app"
	"github.com/sevigo/snippet-warden/internal/core"
	"github.com/sevigo/snippet-warden/internal/llm"
	"github.com/sevigo/snippet-warden/internal/wire"
)

func initializeAppCmd() tea.Cmd {
	return func() tea.Msg {
		app, cleanup, err := wire.InitializeApp(context.Background())
		if err != nil {
			return appInitializedMsg{err: err}
		}

		return appInitializedMsg{app: app, cleanup: cleanup}
	}
}

// reviewSnippetCmd sends one snippet through the reviewer and renders the
// result as terminal markdown. The optional profile file in the working
// directory tunes the prompt, same as for the CLI.
func reviewSnippetCmd(appInstance *app.App, code string) tea.Cmd {
	return func() tea.Msg {
		profile, err := core.LoadReviewProfile(core.ProfileFileName)
		if err != nil {
			return errorMsg{err}
		}

		reviewer := llm.NewReviewService(appInstance.Cfg, appInstance.Prompts, appInstance.Model, profile, appInstance.Logger)

		start := time.Now()
		review, err := reviewer.GenerateReview(context.Background(), code)
		if err != nil {
			return errorMsg{err}
		}

		rendered, err := glamour.Render(review, "dark")
		if err != nil {
			// Show the raw review rather than hiding it behind a render error.
			rendered = review
		}

		return reviewCompleteMsg{rendered: rendered, elapsed: time.Since(start).Round(time.Second)}
	}
}
