// Package cli implements the outcomecheck command line.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"digital.vasic.outcomes/pkg/config"
	"digital.vasic.outcomes/pkg/logging"
)

// ErrUnexpectedVerdicts is returned by run when at least one
// matcher did not behave as its scenario expected.
var ErrUnexpectedVerdicts = errors.New("unexpected verdicts")

// ErrInvalidFiles is returned by validate when at least one file
// fails to load.
var ErrInvalidFiles = errors.New("invalid scenario files")

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "text" | "json" | "markdown"

	// Config carries the environment defaults.
	Config config.Config
}

// NewRootCommand creates the root command. Flag defaults come
// from cfg.
func NewRootCommand(cfg config.Config) *cobra.Command {
	opts := &RootOptions{Config: cfg}

	cmd := &cobra.Command{
		Use:   "outcomecheck",
		Short: "Check outcome matchers against declarative scenarios",
		Long: "outcomecheck loads YAML or JSON outcome scenarios, runs the " +
			"outcome matchers against them and reports every verdict that " +
			"differs from what the scenario expected.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v",
					opts.Format, config.Formats())
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", cfg.Verbose, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", cfg.Format, "output format (text|json|markdown)")

	cmd.AddCommand(NewRunCommand(opts))
	cmd.AddCommand(NewValidateCommand(opts))
	cmd.AddCommand(NewKeysCommand(opts))

	return cmd
}

func isValidFormat(format string) bool {
	for _, f := range config.Formats() {
		if f == format {
			return true
		}
	}
	return false
}

// newLogger returns the console logger on errOut, joined with a
// JSON logger under logsDir when one is set.
func newLogger(
	opts *RootOptions,
	logsDir string,
	errOut io.Writer,
) (logging.Logger, error) {
	console := logging.NewConsoleWriterLogger(
		errOut, opts.Verbose, opts.Config.Color,
	)
	if logsDir == "" {
		return console, nil
	}

	level := logging.ParseLevel(opts.Config.LogLevel)
	if opts.Verbose {
		level = logging.LevelDebug
	}
	file, err := logging.SetupLogging(logsDir, level)
	if err != nil {
		return nil, fmt.Errorf("setup logging: %w", err)
	}
	return logging.NewMultiLogger(console, file), nil
}
