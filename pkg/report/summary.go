package report

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"digital.vasic.outcomes/pkg/scenario"
)

// Summary aggregates a report per matcher.
type Summary struct {
	ReportID   string           `json:"report_id"`
	Sources    int              `json:"sources"`
	Scenarios  int              `json:"scenarios"`
	Verdicts   int              `json:"verdicts"`
	Expected   int              `json:"expected"`
	Unexpected int              `json:"unexpected"`
	PassRate   float64          `json:"pass_rate"`
	Matchers   []MatcherSummary `json:"matchers"`
}

// MatcherSummary counts the verdicts of one matcher. Passed and
// Failed count the matcher's own result; Unexpected counts the
// verdicts that differed from the scenario's expectation.
type MatcherSummary struct {
	Matcher    string `json:"matcher"`
	Passed     int    `json:"passed"`
	Failed     int    `json:"failed"`
	Unexpected int    `json:"unexpected"`
}

// BuildSummary creates a summary from a scenario report.
func BuildSummary(report *scenario.Report) *Summary {
	summary := &Summary{
		ReportID:   report.ID,
		Sources:    len(report.Sources),
		Scenarios:  report.Scenarios,
		Verdicts:   len(report.Verdicts),
		Expected:   report.Passed,
		Unexpected: report.Failed,
	}

	byMatcher := make(map[string]*MatcherSummary)
	for _, v := range report.Verdicts {
		ms, ok := byMatcher[v.Matcher]
		if !ok {
			ms = &MatcherSummary{Matcher: v.Matcher}
			byMatcher[v.Matcher] = ms
		}
		if v.Passed {
			ms.Passed++
		} else {
			ms.Failed++
		}
		if !v.OK() {
			ms.Unexpected++
		}
	}

	summary.Matchers = make([]MatcherSummary, 0, len(byMatcher))
	for _, ms := range byMatcher {
		summary.Matchers = append(summary.Matchers, *ms)
	}
	sort.Slice(summary.Matchers, func(i, j int) bool {
		return summary.Matchers[i].Matcher < summary.Matchers[j].Matcher
	})

	if summary.Verdicts > 0 {
		summary.PassRate =
			float64(summary.Expected) / float64(summary.Verdicts)
	}
	return summary
}

// Save writes the report as JSON and Markdown into outputDir and
// points latest_report.json and latest_report.md at them.
func Save(report *scenario.Report, outputDir string) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf(
			"failed to create output directory: %w", err,
		)
	}

	jsonPath := filepath.Join(
		outputDir, fmt.Sprintf("report_%s.json", report.ID),
	)
	jsonData, err := NewJSONReporter(true).Generate(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	if err := os.WriteFile(jsonPath, jsonData, 0644); err != nil {
		return fmt.Errorf("failed to write JSON report: %w", err)
	}

	mdPath := filepath.Join(
		outputDir, fmt.Sprintf("report_%s.md", report.ID),
	)
	mdData, err := NewMarkdownReporter().Generate(report)
	if err != nil {
		return err
	}
	if err := os.WriteFile(mdPath, mdData, 0644); err != nil {
		return fmt.Errorf(
			"failed to write Markdown report: %w", err,
		)
	}

	latestJSON := filepath.Join(outputDir, "latest_report.json")
	latestMD := filepath.Join(outputDir, "latest_report.md")

	_ = os.Remove(latestJSON)
	_ = os.Remove(latestMD)
	_ = os.Symlink(filepath.Base(jsonPath), latestJSON)
	_ = os.Symlink(filepath.Base(mdPath), latestMD)

	return nil
}
