// Package cli wires the gridkit commands: one-shot list rendering,
// CSV export, fixture generation, and the interactive browser.
package cli

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ledgerdesk/gridkit/internal/config"
	"github.com/ledgerdesk/gridkit/internal/logging"
)

// ErrNoInput is returned when a command that needs a dataset got no
// --input files.
var ErrNoInput = errors.New("at least one --input file is required")

// configKey carries the loaded configuration through the command context.
type configKey struct{}

// NewRootCmd creates the root cobra command. Logging and configuration
// are set up once in the persistent pre-run and travel to subcommands
// through the command context.
func NewRootCmd(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "gridkit",
		Short:   "Tabular list views over invoice datasets",
		Long:    "gridkit filters, sorts, paginates, and selects over in-memory invoice datasets",
		Version: version,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			level := cfg.Logging.Level
			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				level = zerolog.LevelDebugValue
			}
			logger := logging.ComponentLogger(logging.NewLogger(logging.Config{
				Level:  level,
				Format: cfg.Logging.Format,
				Output: cmd.ErrOrStderr(),
			}), "cli")

			ctx := context.WithValue(cmd.Context(), configKey{}, cfg)
			ctx = logging.WithContext(ctx, logger)
			cmd.SetContext(ctx)

			logger.Debug().Str("command", cmd.Name()).Msg("command started")
			return nil
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "config file path (default ~/.gridkit/config.yaml)")
	cmd.AddCommand(newListCmd(), newExportCmd(), newGenCmd(), newBrowseCmd())

	return cmd
}

// configFromContext returns the configuration loaded by the root
// pre-run, or defaults when a command runs outside it (tests).
func configFromContext(ctx context.Context) *config.Config {
	if cfg, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return cfg
	}
	return config.Default()
}

const rootCmdExample = `  # Render page 2 of invoices matching "acme", newest first
  gridkit list --input invoices.json --query acme --sort issued:desc --page 2

  # Narrow a single column and change the page size
  gridkit list --input invoices.json --filter status=overdue --page-size 50

  # Export every row matching the current filters as CSV
  gridkit export --input invoices.json --filter status=paid --scope filtered --output paid.csv

  # Generate a reproducible demo dataset
  gridkit gen --count 500 --seed 42 --output invoices.json

  # Browse interactively
  gridkit browse --input invoices.json`
