package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/riaaa16/advanced-calc/internal/app"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		slog.Error("run failed", "error", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var envFile string

	load := func() (*app.App, error) {
		cfg, err := app.LoadCfg(envFile)
		if err != nil {
			return nil, err
		}
		return app.New(cfg), nil
	}

	root := &cobra.Command{
		Use:           "calculator",
		Short:         "Interactive calculator with history",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := load()
			if err != nil {
				return err
			}
			return a.RunREPL(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file with CALCULATOR_* variables")

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run HTTP and gRPC APIs over a shared calculation history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := load()
			if err != nil {
				return err
			}
			return a.Serve(cmd.Context())
		},
	})
	return root
}
