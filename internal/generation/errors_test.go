package generation_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/JaimeStill/docudash/internal/generation"
)

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"exhausted", &generation.GenerationError{Attempts: 2, Last: errors.New("quota")}, http.StatusInternalServerError},
		{"exhausted by timeout", &generation.GenerationError{Attempts: 1, Last: context.DeadlineExceeded}, http.StatusInternalServerError},
		{"bare deadline", fmt.Errorf("generate: %w", context.DeadlineExceeded), http.StatusGatewayTimeout},
		{"other", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, generation.MapHTTPStatus(tt.err))
		})
	}
}

func TestGenerationErrorMessage(t *testing.T) {
	err := &generation.GenerationError{Attempts: 3, Last: &generation.BackendError{Model: "gemini-2.5-pro", Err: generation.ErrEmptyResponse}}

	assert.Equal(t, "all AI models failed. Last error: model gemini-2.5-pro: empty response from AI model", err.Error())
	assert.ErrorIs(t, err, generation.ErrEmptyResponse)
}
