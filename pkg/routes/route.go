// Package routes declares HTTP route groups and registers them on a ServeMux.
package routes

import (
	"net/http"

	"github.com/JaimeStill/docudash/pkg/openapi"
)

// Route binds an HTTP method and pattern to a handler.
// OpenAPI is optional documentation for the operation.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
	OpenAPI *openapi.Operation
}
