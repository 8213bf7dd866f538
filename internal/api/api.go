// Package api assembles the API module with all domain systems and route registration.
package api

import (
	"net/http"

	"github.com/JaimeStill/docudash/internal/config"
	"github.com/JaimeStill/docudash/internal/infrastructure"
	"github.com/JaimeStill/docudash/pkg/middleware"
	"github.com/JaimeStill/docudash/pkg/module"
)

// NewModule creates the API module with all domain handlers and middleware.
// Domain systems are registered with the lifecycle coordinator and load their
// persisted state once infrastructure startup runs.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*module.Module, error) {
	runtime := NewRuntime(cfg, infra)

	domain, err := NewDomain(runtime.Lifecycle.Context(), cfg, runtime)
	if err != nil {
		return nil, err
	}
	domain.Start(runtime)

	mux := http.NewServeMux()
	if err := registerRoutes(mux, cfg, Groups(domain, runtime)); err != nil {
		return nil, err
	}

	m, err := module.New(cfg.API.BasePath, mux)
	if err != nil {
		return nil, err
	}
	m.Use(middleware.Recover(runtime.Logger))
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(middleware.Logger(runtime.Logger))
	m.Use(middleware.Metrics(middleware.NewHTTPMetrics(infra.Metrics, infrastructure.MetricsNamespace)))

	return m, nil
}
