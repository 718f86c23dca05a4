package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sevigo/snippet-warden/internal/core"
	"github.com/sevigo/snippet-warden/internal/llm"
	"github.com/sevigo/snippet-warden/internal/wire"
)

var (
	reviewCmdPlain       bool
	reviewCmdProfilePath string
	reviewCmdTimeout     int
)

// Color definitions
var (
	titleColor   = color.New(color.FgCyan, color.Bold)
	successColor = color.New(color.FgGreen)
	errorColor   = color.New(color.FgRed)
	dimColor     = color.New(color.FgHiBlack)
)

var reviewCmd = &cobra.Command{
	Use:   "review [file]",
	Short: "Send a source file to the model and print its review",
	Long: `Send a source file to the configured generation model and print the
resulting review.

An optional ` + core.ProfileFileName + ` next to the file (or the file given
with --profile) tunes the reviewer persona with language and focus hints.

Examples:
  warden-cli review main.go
  warden-cli review --plain --timeout 2 handlers.py`,
	Args: cobra.ExactArgs(1),
	RunE: runReview,
}

func init() { //nolint:gochecknoinits // Cobra command registration
	reviewCmd.Flags().BoolVar(&reviewCmdPlain, "plain", false, "Print the raw review text without markdown rendering")
	reviewCmd.Flags().StringVar(&reviewCmdProfilePath, "profile", "", "Path to a review profile file")
	reviewCmd.Flags().IntVar(&reviewCmdTimeout, "timeout", 5, "Review timeout in minutes")
	rootCmd.AddCommand(reviewCmd)
}

func runReview(_ *cobra.Command, args []string) error {
	filePath := args[0]

	code, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", filePath, err)
	}
	if len(code) == 0 {
		return fmt.Errorf("%s is empty, nothing to review", filePath)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(reviewCmdTimeout)*time.Minute)
	defer cancel()

	appInstance, cleanup, err := wire.InitializeApp(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize app: %w", err)
	}
	defer cleanup()

	profilePath := reviewCmdProfilePath
	if profilePath == "" {
		profilePath = filepath.Join(filepath.Dir(filePath), core.ProfileFileName)
	}
	profile, err := core.LoadReviewProfile(profilePath)
	if err != nil {
		return fmt.Errorf("failed to load review profile: %w", err)
	}

	reviewer := llm.NewReviewService(appInstance.Cfg, appInstance.Prompts, appInstance.Model, profile, appInstance.Logger)

	titleColor.Printf("Reviewing %s with %s...\n", filePath, appInstance.Cfg.AI.GeneratorModel)
	start := time.Now()

	review, err := reviewer.GenerateReview(ctx, string(code))
	if err != nil {
		errorColor.Println("Review failed.")
		return fmt.Errorf("review generation failed: %w", err)
	}

	dimColor.Printf("Done in %s\n\n", time.Since(start).Round(time.Second))

	if reviewCmdPlain {
		fmt.Println(review)
	} else {
		rendered, renderErr := glamour.Render(review, "dark")
		if renderErr != nil {
			// Fall back to the raw text rather than failing the review.
			fmt.Println(review)
		} else {
			fmt.Print(rendered)
		}
	}

	successColor.Println("Review complete.")
	return nil
}
