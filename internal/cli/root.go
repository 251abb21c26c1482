// Package cli holds the researchcatalog command tree.
package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"ResearchCatalog/internal/app"
	"ResearchCatalog/internal/config"
	"ResearchCatalog/internal/logging"
)

type rootOptions struct {
	configPath string
	logLevel   string
	logOutput  io.Writer

	cfg    config.Config
	logger *slog.Logger
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{logOutput: os.Stderr}

	rootCmd := &cobra.Command{
		Use:           "researchcatalog",
		Short:         "Congress and journal catalog for research dashboards",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.configPath != "" {
				opts.cfg = config.LoadFile(opts.configPath)
			} else {
				opts.cfg = config.Load()
			}
			if opts.logLevel != "" {
				opts.cfg.Logging.Level = opts.logLevel
			}
			if err := opts.cfg.Validate(); err != nil {
				return err
			}
			opts.logger = logging.New(opts.cfg.Logging.Level, opts.cfg.Logging.Format, opts.logOutput)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to YAML config (defaults to $RESEARCH_CATALOG_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "override log level (debug, info, warn, error)")

	rootCmd.AddCommand(serveCmd(opts))
	rootCmd.AddCommand(buildCmd(opts))
	rootCmd.AddCommand(congressesCmd(opts))
	rootCmd.AddCommand(journalsCmd(opts))
	rootCmd.AddCommand(careersCmd(opts))
	rootCmd.AddCommand(digestCmd(opts))

	return rootCmd
}

func (o *rootOptions) application() *app.Application {
	return app.New(o.cfg, o.logger)
}
