package generation

import (
	"context"
	"strings"
)

// Backend sends a prompt to one model and returns its raw text.
type Backend interface {
	Generate(ctx context.Context, model, prompt string) (string, error)
}

// BackendFunc adapts a function to the Backend interface.
type BackendFunc func(ctx context.Context, model, prompt string) (string, error)

func (f BackendFunc) Generate(ctx context.Context, model, prompt string) (string, error) {
	return f(ctx, model, prompt)
}

// Closer is implemented by backends that hold network clients.
type Closer interface {
	Close() error
}

func joinParts(parts []string) string {
	return strings.Join(parts, "")
}
