package main

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/JaimeStill/docudash/internal/config"
)

type rootOptions struct {
	configPath string
	verbose    bool
	cfg        *config.Config
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "docudash",
		Short:         "AI-assisted document dashboard service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// .env is optional outside local development
			_ = godotenv.Load()

			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			opts.cfg = cfg
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd, opts)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to config.toml")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(
		newServeCommand(opts),
		newModelsCommand(opts),
		newGenerateCommand(opts),
		newOpenAPICommand(opts),
	)

	return cmd
}
