package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/JaimeStill/docudash/internal/infrastructure"
)

func newServeCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd, opts)
		},
	}
}

func serve(cmd *cobra.Command, opts *rootOptions) error {
	cfg := opts.cfg

	srv, err := NewServer(cfg, infrastructure.Options{
		Verbose: opts.verbose,
		Output:  cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}

	srv.infra.Logger.Info(
		"docudash starting",
		"version", cfg.Version,
		"env", cfg.Env(),
	)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		return err
	}

	srv.infra.Logger.Info("docudash stopped")
	return nil
}
