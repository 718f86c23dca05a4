package server

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type fixedReviewer struct{ text string }

func (f fixedReviewer) GenerateReview(_ context.Context, _ string) (string, error) {
	return f.text, nil
}

func newTestRouter(text string) http.Handler {
	return NewRouter(fixedReviewer{text: text}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestRouter_Health(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	newTestRouter("").ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("health status = %d, want %d", rec.Code, http.StatusOK)
	}
	if rec.Body.String() != "OK" {
		t.Errorf("health body = %q, want %q", rec.Body.String(), "OK")
	}
}

func TestRouter_ReviewRoute(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/review", strings.NewReader(`{"code":"print(1)"}`))
	rec := httptest.NewRecorder()
	newTestRouter("review text").ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("review status = %d, want %d", rec.Code, http.StatusOK)
	}
	if rec.Body.String() != "review text" {
		t.Errorf("review body = %q, want %q", rec.Body.String(), "review text")
	}
}

func TestRouter_ReviewRejectsGet(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/review", nil)
	rec := httptest.NewRecorder()
	newTestRouter("").ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}

func TestRouter_UnknownPath(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v2/review", nil)
	rec := httptest.NewRecorder()
	newTestRouter("").ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}
