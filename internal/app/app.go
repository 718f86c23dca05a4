// Package app initializes and orchestrates the main components of the
// application. It wires together the configuration, reviewer, and server.
package app

import (
	"context"
	"log/slog"

	"github.com/sevigo/goframe/llms"

	"github.com/sevigo/snippet-warden/internal/config"
	"github.com/sevigo/snippet-warden/internal/core"
	"github.com/sevigo/snippet-warden/internal/llm"
	"github.com/sevigo/snippet-warden/internal/server"
)

// App holds the main application components. The fields are exported so the
// CLI and terminal clients can reuse the initialized reviewer and model.
type App struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Model    llms.Model
	Prompts  *llm.PromptManager
	Reviewer core.Reviewer

	ctx    context.Context
	server *server.Server
}

// NewApp assembles the application from its already-constructed components.
func NewApp(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	model llms.Model,
	prompts *llm.PromptManager,
	reviewer core.Reviewer,
	srv *server.Server,
) *App {
	logger.Info("snippet-warden initialized",
		"llm_provider", cfg.AI.LLMProvider,
		"generator_model", cfg.AI.GeneratorModel,
		"server_port", cfg.Server.Port,
	)

	return &App{
		Cfg:      cfg,
		Logger:   logger,
		Model:    model,
		Prompts:  prompts,
		Reviewer: reviewer,
		ctx:      ctx,
		server:   srv,
	}
}

// Start runs the HTTP server and blocks until shutdown or error.
func (a *App) Start() error {
	if err := a.server.Start(); err != nil {
		a.Logger.Error("failed to start HTTP server", "error", err)
		return err
	}
	return nil
}

// Stop shuts down the application cleanly, letting in-flight review
// requests finish.
func (a *App) Stop() error {
	a.Logger.Info("shutting down snippet-warden")

	if err := a.server.Stop(); err != nil {
		a.Logger.Error("error during HTTP server shutdown", "error", err)
		return err
	}

	a.Logger.Info("snippet-warden stopped successfully")
	return nil
}
