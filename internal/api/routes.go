package api

import (
	"fmt"
	"net/http"

	"github.com/JaimeStill/docudash/internal/config"
	"github.com/JaimeStill/docudash/internal/generation"
	"github.com/JaimeStill/docudash/pkg/openapi"
	"github.com/JaimeStill/docudash/pkg/routes"
)

// Groups returns the route groups of every domain handler.
func Groups(domain *Domain, runtime *Runtime) []routes.Group {
	return []routes.Group{
		domain.Documents.Handler(runtime.MaxBodySize).Routes(),
		domain.Preferences.Handler(runtime.MaxBodySize).Routes(),
		generation.NewHandler(domain.Generation, runtime.Logger).Routes(),
	}
}

// Spec builds the OpenAPI document for groups mounted at the API base path.
func Spec(cfg *config.Config, groups ...routes.Group) *openapi.Spec {
	spec := openapi.NewSpec(cfg.API.OpenAPI.Title, cfg.Version)
	spec.SetDescription(cfg.API.OpenAPI.Description)
	spec.AddServer(cfg.API.BasePath)
	routes.Document(spec, "", groups...)
	return spec
}

func registerRoutes(
	mux *http.ServeMux,
	cfg *config.Config,
	groups []routes.Group,
) error {
	routes.Register(mux, groups...)

	specBytes, err := openapi.MarshalJSON(Spec(cfg, groups...))
	if err != nil {
		return fmt.Errorf("openapi spec: %w", err)
	}
	mux.HandleFunc("GET /openapi.json", openapi.ServeSpec(specBytes))

	return nil
}
