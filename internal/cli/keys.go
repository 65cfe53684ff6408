package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"digital.vasic.outcomes/pkg/config"
	"digital.vasic.outcomes/pkg/matcher"
	"digital.vasic.outcomes/pkg/outcome"
	"digital.vasic.outcomes/pkg/scenario"
)

// KeysListing is the vocabulary scenario files may use.
type KeysListing struct {
	ErrorKeys []string `json:"error_keys"`
	Matchers  []string `json:"matchers"`
	Reasons   []string `json:"reasons"`
}

// NewKeysCommand creates the keys command.
func NewKeysCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "keys",
		Short:         "List reserved error keys, matchers and failure reasons",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeKeys(cmd.OutOrStdout(), rootOpts.Format)
		},
	}
}

func buildKeysListing() KeysListing {
	listing := KeysListing{
		ErrorKeys: []string{
			outcome.BasicErrorKey,
			outcome.ResourceNotFoundErrorKey,
		},
		Matchers: scenario.NewEngine().Matchers(),
	}
	for _, r := range matcher.Reasons() {
		listing.Reasons = append(listing.Reasons, string(r))
	}
	return listing
}

func writeKeys(w io.Writer, format string) error {
	listing := buildKeysListing()

	if format == config.FormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(listing)
	}

	sections := []struct {
		title string
		items []string
	}{
		{"Error keys", listing.ErrorKeys},
		{"Matchers", listing.Matchers},
		{"Failure reasons", listing.Reasons},
	}
	for i, s := range sections {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if format == config.FormatMarkdown {
			fmt.Fprintf(w, "## %s\n\n", s.title)
			for _, item := range s.items {
				fmt.Fprintf(w, "- `%s`\n", item)
			}
			continue
		}
		fmt.Fprintf(w, "%s:\n", s.title)
		for _, item := range s.items {
			fmt.Fprintf(w, "  %s\n", item)
		}
	}
	return nil
}
