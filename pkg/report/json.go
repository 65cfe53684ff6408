package report

import (
	"encoding/json"
	"io"

	"digital.vasic.outcomes/pkg/scenario"
)

// JSONReporter renders reports as JSON.
type JSONReporter struct {
	pretty bool
}

// NewJSONReporter creates a new JSON reporter. When pretty is
// true, output is indented for readability.
func NewJSONReporter(pretty bool) *JSONReporter {
	return &JSONReporter{pretty: pretty}
}

// jsonReport is the JSON structure of a rendered report.
type jsonReport struct {
	*scenario.Report
	Summary *Summary `json:"summary"`
}

// Generate renders the report together with its summary.
func (r *JSONReporter) Generate(
	report *scenario.Report,
) ([]byte, error) {
	out := jsonReport{
		Report:  report,
		Summary: BuildSummary(report),
	}
	if r.pretty {
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	}
	return json.Marshal(out)
}

// Write renders the report to w.
func (r *JSONReporter) Write(
	w io.Writer,
	report *scenario.Report,
) error {
	return write(w, r, report)
}
