package documents

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/docudash/internal/generation"
)

// Domain errors for document operations.
var (
	ErrNotFound             = errors.New("document not found")
	ErrValidation           = errors.New("invalid document request")
	ErrGenerationInProgress = errors.New("a document is already being generated")
	ErrNotReady             = errors.New("document store is not initialized")
)

// MapHTTPStatus maps document domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrValidation) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrGenerationInProgress) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrNotReady) {
		return http.StatusServiceUnavailable
	}
	return generation.MapHTTPStatus(err)
}
