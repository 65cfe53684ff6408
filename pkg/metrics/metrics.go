// Package metrics records counts of matcher verdicts.
package metrics

// MatcherMetrics defines the interface for recording matcher
// evaluations.
type MatcherMetrics interface {
	// RecordVerdict records one matcher evaluation. reason is
	// empty when the matcher passed.
	RecordVerdict(matcher, reason string, passed bool)
	// RecordScenario records a completed scenario.
	RecordScenario(name string, ok bool)
}

// NoopMetrics is a no-op implementation of MatcherMetrics.
type NoopMetrics struct{}

// RecordVerdict does nothing.
func (NoopMetrics) RecordVerdict(_, _ string, _ bool) {}

// RecordScenario does nothing.
func (NoopMetrics) RecordScenario(_ string, _ bool) {}
