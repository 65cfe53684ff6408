package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"digital.vasic.outcomes/pkg/logging"
	"digital.vasic.outcomes/pkg/metrics"
	"digital.vasic.outcomes/pkg/report"
	"digital.vasic.outcomes/pkg/scenario"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	FailFast    bool
	LogsDir     string
	SaveDir     string
	HistoryPath string
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{
		FailFast: rootOpts.Config.FailFast,
		LogsDir:  rootOpts.Config.LogsDir,
	}

	cmd := &cobra.Command{
		Use:   "run <path>...",
		Short: "Evaluate scenario files and report the verdicts",
		Long: `Evaluate every scenario in the given files and directories.

Directories contribute the .yaml, .yml and .json files directly inside
them. The command exits non-zero when any matcher verdict differs from
what its scenario expected.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(cmd, rootOpts, opts, args)
		},
	}

	cmd.Flags().BoolVar(&opts.FailFast, "fail-fast", opts.FailFast, "stop after the first failed scenario")
	cmd.Flags().StringVar(&opts.LogsDir, "logs-dir", opts.LogsDir, "write run.log and verdicts.log to this directory")
	cmd.Flags().StringVar(&opts.SaveDir, "save-dir", "", "save JSON and Markdown reports to this directory")
	cmd.Flags().StringVar(&opts.HistoryPath, "history", "", "append a summary line to this JSON-lines file")

	return cmd
}

func runRun(
	cmd *cobra.Command,
	rootOpts *RootOptions,
	opts *RunOptions,
	paths []string,
) error {
	files, err := scenario.LoadPaths(paths...)
	if err != nil {
		return err
	}

	logger, err := newLogger(rootOpts, opts.LogsDir, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer func() { _ = logger.Close() }()

	m := metrics.NewInMemoryMetrics()
	engine := scenario.NewEngine(
		scenario.WithLogger(logger),
		scenario.WithMetrics(m),
		scenario.WithFailFast(opts.FailFast),
	)
	rep := engine.Run(files)

	for _, reason := range m.Reasons() {
		logger.Debug("failure reason observed",
			logging.StringField("reason", reason),
			logging.IntField("count", m.ReasonCount(reason)),
		)
	}

	reporter, err := report.New(rootOpts.Format)
	if err != nil {
		return err
	}
	if err := reporter.Write(cmd.OutOrStdout(), rep); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if opts.SaveDir != "" {
		if err := report.Save(rep, opts.SaveDir); err != nil {
			return err
		}
	}
	if opts.HistoryPath != "" {
		if err := report.AppendToHistory(opts.HistoryPath, rep, time.Now()); err != nil {
			return err
		}
	}

	if !rep.OK() {
		return fmt.Errorf("%w: %d of %d",
			ErrUnexpectedVerdicts, rep.Failed, len(rep.Verdicts))
	}
	return nil
}
