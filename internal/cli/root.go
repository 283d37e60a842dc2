// Package cli implements the pagekit command line interface.
package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"pagekit/internal/config"
	"pagekit/internal/logging"
)

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

//nolint:gochecknoglobals // Shared command state, set in PersistentPreRunE.
var (
	cfg       *config.Config
	logger    zerolog.Logger
	logCloser func() error
)

const rootCmdExample = `  # Page through generated demo rows
  pagekit list --count 95 --page 3

  # Read rows from a CSV file and sort by amount descending
  pagekit list --input rows.csv --sort amount:desc

  # Emit a page as JSON for scripting
  pagekit list --count 250 --page 5 --output json

  # Browse interactively
  pagekit list --count 1500 --interactive`

// NewRootCmd creates the root pagekit command.
func NewRootCmd(version string) *cobra.Command {
	var (
		debug      bool
		configPath string
	)

	rootCmd := &cobra.Command{
		Use:   "pagekit",
		Short: "Page through tabular data",
		Long: `pagekit slices tabular data into pages and renders a page-selector
of page numbers and ellipses, as a plain table, JSON, YAML, or an
interactive terminal browser.`,
		Version:       version,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			cfg, err = config.Load(configPath)
			if err != nil {
				return err
			}

			if debug {
				cfg.Logging.Level = "debug"
				cfg.Logging.File = ""
			}

			root, closer, err := logging.New(cfg.Logging.ToLoggingConfig())
			if err != nil {
				return err
			}
			logCloser = closer
			logger = logging.ComponentLogger(root, "cli")
			cmd.SetContext(logging.WithContext(cmd.Context(), logger))
			logger.Debug().
				Str("config", configPath).
				Str("version", version).
				Msg("initialized")
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if logCloser != nil {
				return logCloser()
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging to stderr")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.pagekit/config.yaml)")

	rootCmd.AddCommand(newListCmd())

	return rootCmd
}
