// Package report renders scenario run reports as text, JSON or
// Markdown and keeps a JSON-lines history of runs.
package report

import (
	"fmt"
	"io"

	"digital.vasic.outcomes/pkg/config"
	"digital.vasic.outcomes/pkg/scenario"
)

// Reporter renders a scenario run report.
type Reporter interface {
	// Generate renders the report.
	Generate(report *scenario.Report) ([]byte, error)

	// Write renders the report to w.
	Write(w io.Writer, report *scenario.Report) error
}

// New returns the Reporter for one of the config formats.
func New(format string) (Reporter, error) {
	switch format {
	case config.FormatText:
		return NewTextReporter(), nil
	case config.FormatJSON:
		return NewJSONReporter(true), nil
	case config.FormatMarkdown:
		return NewMarkdownReporter(), nil
	default:
		return nil, fmt.Errorf("unknown report format: %s", format)
	}
}

func write(
	w io.Writer,
	r Reporter,
	report *scenario.Report,
) error {
	data, err := r.Generate(report)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
