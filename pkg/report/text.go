package report

import (
	"fmt"
	"io"
	"strings"

	"digital.vasic.outcomes/pkg/scenario"
)

// TextReporter renders reports as plain text, one line per
// unexpected verdict followed by a totals line.
type TextReporter struct{}

// NewTextReporter creates a new text reporter.
func NewTextReporter() *TextReporter {
	return &TextReporter{}
}

// Generate renders the report.
func (r *TextReporter) Generate(
	report *scenario.Report,
) ([]byte, error) {
	var sb strings.Builder
	for _, v := range report.Failures() {
		sb.WriteString(fmt.Sprintf(
			"FAIL %s / %s: wanted %s, got %s",
			v.Scenario, v.Matcher, wanted(v), got(v),
		))
		if d := detail(v); d != "" {
			sb.WriteString(": " + d)
		}
		sb.WriteString("\n")
	}

	status := "ok"
	if !report.OK() {
		status = "FAIL"
	}
	sb.WriteString(fmt.Sprintf(
		"%s: %d scenarios, %d verdicts, %d as expected, %d unexpected\n",
		status, report.Scenarios, len(report.Verdicts),
		report.Passed, report.Failed,
	))
	return []byte(sb.String()), nil
}

// Write renders the report to w.
func (r *TextReporter) Write(
	w io.Writer,
	report *scenario.Report,
) error {
	return write(w, r, report)
}
