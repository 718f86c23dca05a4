// Package handler provides the HTTP handlers for the review API.
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/sevigo/snippet-warden/internal/core"
)

// Fixed response bodies. Clients only ever see these two messages on
// failure; upstream error detail stays in the server log.
const (
	msgPromptRequired   = "Prompt is required"
	msgGenerationFailed = "An error occurred while processing your request."
)

// ReviewHandler accepts a code snippet and relays the model's review.
type ReviewHandler struct {
	reviewer core.Reviewer
	logger   *slog.Logger
}

// NewReviewHandler creates a new review handler with the given reviewer.
func NewReviewHandler(reviewer core.Reviewer, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{
		reviewer: reviewer,
		logger:   logger,
	}
}

// Handle processes one review request. The request is held open until the
// upstream call settles; there are no retries and no caching.
func (h *ReviewHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var req core.ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		// An undecodable body carries no usable code field; it takes the
		// same validation path as a missing one.
		h.logger.Debug("could not decode review request body", "error", err)
	}

	if err := req.Validate(); err != nil {
		writePlain(w, http.StatusBadRequest, msgPromptRequired)
		return
	}

	review, err := h.reviewer.GenerateReview(r.Context(), req.Code)
	if err != nil {
		h.logger.Error("review generation failed", "error", err)
		writePlain(w, http.StatusInternalServerError, msgGenerationFailed)
		return
	}

	writePlain(w, http.StatusOK, review)
}

// writePlain writes the body byte-exact; http.Error is avoided because it
// appends a newline the response contract does not allow.
func writePlain(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
