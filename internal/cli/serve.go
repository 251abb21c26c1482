package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func serveCmd(opts *rootOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalog, dashboard views and telemetry collector",
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr != "" {
				opts.cfg.Server.Addr = addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := opts.application().Serve(ctx); err != nil && ctx.Err() == nil {
				return err
			}
			opts.logger.Info("server stopped")
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	return cmd
}

func buildCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Convert the exported sheets into catalog JSON documents",
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := opts.application().Build(contextOf(cmd))
			for _, r := range results {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d records -> %s\n", r.Source, r.Records, r.Output)
			}
			return err
		},
	}
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
