// Package middleware provides HTTP middleware stacks and the handlers
// shared by every module: recovery, request logging, CORS and metrics.
package middleware

import (
	"net/http"
	"slices"
)

// Middleware wraps a handler.
type Middleware = func(http.Handler) http.Handler

// System manages an ordered stack of HTTP middleware. The first middleware
// added is the outermost wrapper.
type System interface {
	Use(mws ...Middleware)
	Apply(handler http.Handler) http.Handler
}

type stack []Middleware

// New creates an empty middleware System.
func New() System {
	return &stack{}
}

func (s *stack) Use(mws ...Middleware) {
	*s = append(*s, mws...)
}

func (s *stack) Apply(handler http.Handler) http.Handler {
	for _, mw := range slices.Backward(*s) {
		handler = mw(handler)
	}
	return handler
}
