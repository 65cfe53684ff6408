package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"digital.vasic.outcomes/pkg/config"
	"digital.vasic.outcomes/pkg/scenario"
)

// ValidationResult holds the validation outcome of one file.
type ValidationResult struct {
	Source    string `json:"source"`
	Valid     bool   `json:"valid"`
	Scenarios int    `json:"scenarios"`
	Error     string `json:"error,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <path>...",
		Short: "Validate scenario files without evaluating them",
		Long: `Check scenario files against the scenario schema.

Every file is checked, so one run lists all invalid files.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.OutOrStdout(), rootOpts, args)
		},
	}
	return cmd
}

func runValidate(w io.Writer, opts *RootOptions, paths []string) error {
	names, err := scenario.Discover(paths...)
	if err != nil {
		return err
	}

	results := make([]ValidationResult, 0, len(names))
	invalid := 0
	for _, name := range names {
		res := ValidationResult{Source: name, Valid: true}
		f, err := scenario.LoadFile(name)
		if err != nil {
			res.Valid = false
			res.Error = err.Error()
			invalid++
		} else {
			res.Scenarios = len(f.Scenarios)
		}
		results = append(results, res)
	}

	if opts.Format == config.FormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			return err
		}
	} else {
		for _, res := range results {
			if res.Valid {
				fmt.Fprintf(w, "ok   %s (%d scenarios)\n", res.Source, res.Scenarios)
			} else {
				fmt.Fprintf(w, "FAIL %s: %s\n", res.Source, res.Error)
			}
		}
	}

	if invalid > 0 {
		return fmt.Errorf("%w: %d of %d", ErrInvalidFiles, invalid, len(results))
	}
	return nil
}
