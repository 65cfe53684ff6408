package metrics

import (
	"sort"
	"sync"
)

// InMemoryMetrics implements MatcherMetrics with counters held in
// memory. It is safe for concurrent use.
type InMemoryMetrics struct {
	mu        sync.Mutex
	verdicts  map[string]int
	reasons   map[string]int
	scenarios map[bool]int
}

// NewInMemoryMetrics creates an empty InMemoryMetrics.
func NewInMemoryMetrics() *InMemoryMetrics {
	return &InMemoryMetrics{
		verdicts:  make(map[string]int),
		reasons:   make(map[string]int),
		scenarios: make(map[bool]int),
	}
}

func verdictKey(matcher string, passed bool) string {
	if passed {
		return matcher + ":passed"
	}
	return matcher + ":failed"
}

// RecordVerdict counts the verdict per matcher and, when reason
// is set, per failure reason.
func (m *InMemoryMetrics) RecordVerdict(matcher, reason string, passed bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.verdicts[verdictKey(matcher, passed)]++
	if reason != "" {
		m.reasons[reason]++
	}
}

// RecordScenario counts the scenario as ok or not.
func (m *InMemoryMetrics) RecordScenario(_ string, ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scenarios[ok]++
}

// VerdictCount returns how often matcher passed or failed.
func (m *InMemoryMetrics) VerdictCount(matcher string, passed bool) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.verdicts[verdictKey(matcher, passed)]
}

// ReasonCount returns how often a failure reason was recorded.
func (m *InMemoryMetrics) ReasonCount(reason string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reasons[reason]
}

// Reasons returns every recorded failure reason, sorted.
func (m *InMemoryMetrics) Reasons() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]string, 0, len(m.reasons))
	for r := range m.reasons {
		out = append(out, r)
	}
	sort.Strings(out)
	return out
}

// ScenarioCount returns the number of scenarios that finished
// with the given ok state.
func (m *InMemoryMetrics) ScenarioCount(ok bool) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.scenarios[ok]
}
