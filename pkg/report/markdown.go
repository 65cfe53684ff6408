package report

import (
	"fmt"
	"io"
	"strings"

	"digital.vasic.outcomes/pkg/scenario"
)

// MarkdownReporter renders reports as Markdown.
type MarkdownReporter struct{}

// NewMarkdownReporter creates a new Markdown reporter.
func NewMarkdownReporter() *MarkdownReporter {
	return &MarkdownReporter{}
}

// Generate renders the report.
func (r *MarkdownReporter) Generate(
	report *scenario.Report,
) ([]byte, error) {
	return []byte(generateMarkdown(report)), nil
}

// Write renders the report to w.
func (r *MarkdownReporter) Write(
	w io.Writer,
	report *scenario.Report,
) error {
	return write(w, r, report)
}

func generateMarkdown(report *scenario.Report) string {
	summary := BuildSummary(report)

	var sb strings.Builder

	sb.WriteString("# Outcome Scenarios Report\n\n")
	sb.WriteString(fmt.Sprintf("**Report ID:** %s\n\n", report.ID))

	sb.WriteString("## Overview\n\n")
	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("|--------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Files | %d |\n", summary.Sources))
	sb.WriteString(fmt.Sprintf("| Scenarios | %d |\n", summary.Scenarios))
	sb.WriteString(fmt.Sprintf("| Verdicts | %d |\n", summary.Verdicts))
	sb.WriteString(fmt.Sprintf("| As Expected | %d |\n", summary.Expected))
	sb.WriteString(fmt.Sprintf("| Unexpected | %d |\n", summary.Unexpected))
	sb.WriteString(
		fmt.Sprintf("| Pass Rate | %.0f%% |\n", summary.PassRate*100),
	)

	sb.WriteString("\n## Matchers\n\n")
	sb.WriteString("| Matcher | Passed | Failed | Unexpected |\n")
	sb.WriteString("|---------|--------|--------|------------|\n")
	for _, m := range summary.Matchers {
		sb.WriteString(fmt.Sprintf(
			"| %s | %d | %d | %d |\n",
			m.Matcher, m.Passed, m.Failed, m.Unexpected,
		))
	}

	sb.WriteString("\n## Unexpected Verdicts\n\n")
	failures := report.Failures()
	if len(failures) == 0 {
		sb.WriteString("None.\n")
	} else {
		sb.WriteString("| Scenario | Matcher | Wanted | Got | Detail |\n")
		sb.WriteString("|----------|---------|--------|-----|--------|\n")
		for _, v := range failures {
			sb.WriteString(fmt.Sprintf(
				"| %s | %s | %s | %s | %s |\n",
				escapeCell(v.Scenario), v.Matcher,
				wanted(v), got(v), escapeCell(detail(v)),
			))
		}
	}

	sb.WriteString("\n---\n\n")
	sb.WriteString("*Generated by outcomecheck*\n")

	return sb.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

func wanted(v scenario.Verdict) string {
	if v.Expected {
		return "pass"
	}
	if v.WantReason != "" {
		return "fail (" + v.WantReason + ")"
	}
	return "fail"
}

func got(v scenario.Verdict) string {
	switch {
	case v.Error != "":
		return "error"
	case v.Passed:
		return "pass"
	default:
		return "fail (" + v.Reason + ")"
	}
}

func detail(v scenario.Verdict) string {
	if v.Error != "" {
		return v.Error
	}
	return v.Message
}
