package report

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"digital.vasic.outcomes/pkg/scenario"
)

// HistoricalEntry represents a single scenario run in the
// historical log.
type HistoricalEntry struct {
	Timestamp  time.Time `json:"timestamp"`
	ReportID   string    `json:"report_id"`
	Sources    []string  `json:"sources"`
	Scenarios  int       `json:"scenarios"`
	Expected   int       `json:"expected"`
	Unexpected int       `json:"unexpected"`
}

// AppendToHistory adds an entry for report to the historical log
// stored at historyPath. Each entry is a single JSON line.
func AppendToHistory(
	historyPath string,
	report *scenario.Report,
	at time.Time,
) error {
	entry := HistoricalEntry{
		Timestamp:  at.UTC(),
		ReportID:   report.ID,
		Sources:    report.Sources,
		Scenarios:  report.Scenarios,
		Expected:   report.Passed,
		Unexpected: report.Failed,
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf(
			"failed to marshal history entry: %w", err,
		)
	}

	file, err := os.OpenFile(
		historyPath,
		os.O_CREATE|os.O_APPEND|os.O_WRONLY,
		0644,
	)
	if err != nil {
		return fmt.Errorf(
			"failed to open history file: %w", err,
		)
	}
	defer func() { _ = file.Close() }()

	_, err = fmt.Fprintln(file, string(data))
	return err
}

// ReadHistory returns every entry in the log at historyPath, in
// the order they were appended. A missing file has no entries.
func ReadHistory(historyPath string) ([]HistoricalEntry, error) {
	file, err := os.Open(historyPath)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf(
			"failed to open history file: %w", err,
		)
	}
	defer func() { _ = file.Close() }()

	var entries []HistoricalEntry
	scanner := bufio.NewScanner(file)
	for line := 1; scanner.Scan(); line++ {
		if len(scanner.Bytes()) == 0 {
			continue
		}
		var e HistoricalEntry
		if err := json.Unmarshal(scanner.Bytes(), &e); err != nil {
			return nil, fmt.Errorf(
				"history line %d: %w", line, err,
			)
		}
		entries = append(entries, e)
	}
	return entries, scanner.Err()
}
