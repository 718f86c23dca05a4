// Package core defines the essential interfaces and data structures that form the
// backbone of the application. These components are designed to be abstract,
// allowing for flexible and decoupled implementations of the application's logic.
package core

import (
	"context"
	"errors"
)

// ErrEmptyCode indicates that a review was requested without a code snippet.
var ErrEmptyCode = errors.New("code snippet is empty")

// ReviewRequest carries a single code snippet submitted for review.
// It lives for the duration of one request and is never persisted.
type ReviewRequest struct {
	Code string `json:"code"`
}

// Validate checks that the request carries a non-empty snippet.
// Only the empty string is rejected; whitespace-only input is passed
// through to the model untouched.
func (r ReviewRequest) Validate() error {
	if r.Code == "" {
		return ErrEmptyCode
	}
	return nil
}

// ReviewResult is the raw text produced by the model for one request.
// No structure is imposed on it; callers relay it verbatim.
type ReviewResult struct {
	Text string
}

// Reviewer is the capability of turning a code snippet into review text.
// Implementations issue exactly one upstream call per invocation and
// collapse every upstream failure mode into a single generic error.
type Reviewer interface {
	GenerateReview(ctx context.Context, code string) (string, error)
}
