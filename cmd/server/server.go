package main

import (
	"context"
	"net/http"
	"time"

	"github.com/JaimeStill/docudash/internal/config"
	"github.com/JaimeStill/docudash/internal/infrastructure"
)

// Server owns the infrastructure, the mounted modules, and the HTTP listener.
type Server struct {
	cfg     *config.Config
	infra   *infrastructure.Infrastructure
	modules *Modules
	handler http.Handler
	http    *httpServer
}

// NewServer wires infrastructure and modules behind a single router.
func NewServer(cfg *config.Config, opts infrastructure.Options) (*Server, error) {
	infra, err := infrastructure.New(cfg, opts)
	if err != nil {
		return nil, err
	}

	modules, err := NewModules(infra, cfg)
	if err != nil {
		return nil, err
	}

	router := buildRouter(infra)
	modules.Mount(router)

	infra.Logger.Info(
		"server initialized",
		"addr", cfg.Server.Addr(),
		"version", cfg.Version,
		"modules", router.Modules(),
		"generation", cfg.Generation.Provider,
		"storage", cfg.Storage.Provider,
	)

	return &Server{
		cfg:     cfg,
		infra:   infra,
		modules: modules,
		handler: router,
		http:    newHTTPServer(&cfg.Server, router, infra.Logger),
	}, nil
}

// Handler returns the root router.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run starts the service, blocks until ctx is done, then shuts down
// within the configured shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	if err := s.Start(); err != nil {
		return err
	}

	<-ctx.Done()
	return s.Shutdown(s.cfg.ShutdownTimeoutDuration())
}

func (s *Server) Start() error {
	s.infra.Logger.Info("starting service")
	started := time.Now()

	if err := s.infra.Start(); err != nil {
		return err
	}

	if err := s.http.Start(s.infra.Lifecycle); err != nil {
		return err
	}

	go func() {
		s.infra.Lifecycle.WaitForStartup()
		s.infra.Logger.Info("all subsystems ready", "elapsed", time.Since(started))
	}()

	return nil
}

func (s *Server) Shutdown(timeout time.Duration) error {
	s.infra.Logger.Info("initiating shutdown", "timeout", timeout)
	return s.infra.Lifecycle.Shutdown(timeout)
}
