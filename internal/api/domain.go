package api

import (
	"context"
	"fmt"

	"github.com/JaimeStill/docudash/internal/config"
	"github.com/JaimeStill/docudash/internal/documents"
	"github.com/JaimeStill/docudash/internal/generation"
	"github.com/JaimeStill/docudash/internal/infrastructure"
	"github.com/JaimeStill/docudash/internal/preferences"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Generation  *generation.Client
	Documents   documents.System
	Preferences preferences.System

	backend generation.Backend
}

// NewDomain creates all domain systems from the API runtime.
// The generation backend is built from cfg.Generation; ctx bounds its setup.
func NewDomain(ctx context.Context, cfg *config.Config, runtime *Runtime) (*Domain, error) {
	backend, err := generation.NewBackend(ctx, &cfg.Generation)
	if err != nil {
		return nil, fmt.Errorf("generation backend init failed: %w", err)
	}

	client := NewGenerationClient(backend, &cfg.Generation, runtime.Infrastructure)

	return &Domain{
		Generation: client,
		Documents: documents.New(
			client,
			runtime.Storage,
			runtime.Logger,
			runtime.Pagination,
			cfg.Store,
		),
		Preferences: preferences.New(
			runtime.Storage,
			runtime.Logger,
			runtime.Pagination.MaxPageSize,
		),
		backend: backend,
	}, nil
}

// NewGenerationClient builds the fallback client over backend.
func NewGenerationClient(backend generation.Backend, cfg *generation.Config, infra *infrastructure.Infrastructure) *generation.Client {
	opts := []generation.ClientOption{
		generation.WithLogger(infra.Logger),
		generation.WithAttemptTimeout(cfg.AttemptTimeoutDuration()),
	}
	if infra.Metrics != nil {
		opts = append(opts, generation.WithMetrics(
			generation.NewMetrics(infra.Metrics, infrastructure.MetricsNamespace),
		))
	}

	return generation.NewClient(backend, cfg.Models, opts...)
}

// Start registers the stateful systems with the lifecycle coordinator
// and releases the generation backend on shutdown.
func (d *Domain) Start(runtime *Runtime) {
	d.Documents.Start(runtime.Lifecycle)
	d.Preferences.Start(runtime.Lifecycle)

	runtime.Lifecycle.OnShutdown(func() {
		<-runtime.Lifecycle.Context().Done()
		if err := d.Close(); err != nil {
			runtime.Logger.Error("generation backend close failed", "error", err)
		}
	})
}

// Close releases backend network clients, if any.
func (d *Domain) Close() error {
	if c, ok := d.backend.(generation.Closer); ok {
		return c.Close()
	}
	return nil
}
