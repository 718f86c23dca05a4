package main

import (
	"time"

	"github.com/sevigo/snippet-warden/internal/app"
)

// Indicates that the core application services have been initialized.
// cleanup releases the application's resources and must run on exit.
type appInitializedMsg struct {
	app     *app.App
	cleanup func()
	err     error
}

// Carries one finished review, already rendered for terminal display.
type reviewCompleteMsg struct {
	rendered string
	elapsed  time.Duration
}

// A generic error message for reporting failures from commands.
type errorMsg struct{ err error }

func (e errorMsg) Error() string {
	return e.err.Error()
}
