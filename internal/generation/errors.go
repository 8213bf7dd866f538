package generation

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrEmptyResponse marks a backend reply with no usable text.
	ErrEmptyResponse = errors.New("empty response from AI model")
	// ErrNoModels indicates the chain has no available models to try.
	ErrNoModels = errors.New("no available AI models")
)

// BackendError is a single failed attempt against one model.
// The client recovers from it by advancing to the next model.
type BackendError struct {
	Model string
	Err   error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("model %s: %v", e.Model, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

// GenerationError reports that every model in the chain failed.
type GenerationError struct {
	Attempts int
	Last     error
}

func (e *GenerationError) Error() string {
	if e.Last == nil {
		return "all AI models failed"
	}
	return fmt.Sprintf("all AI models failed. Last error: %v", e.Last)
}

func (e *GenerationError) Unwrap() error {
	return e.Last
}

// MapHTTPStatus maps generation errors to HTTP status codes.
// Exhaustion is always a server error; a bare deadline is a timeout.
func MapHTTPStatus(err error) int {
	var genErr *GenerationError
	if errors.As(err, &genErr) {
		return http.StatusInternalServerError
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return http.StatusGatewayTimeout
	}
	return http.StatusInternalServerError
}
