package scenario

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"digital.vasic.outcomes/pkg/logging"
	"digital.vasic.outcomes/pkg/matcher"
	"digital.vasic.outcomes/pkg/metrics"
)

// Engine evaluates scenarios with a registry of named
// evaluators. It is safe for concurrent use.
type Engine struct {
	mu         sync.RWMutex
	evaluators map[string]Evaluator

	logger   logging.Logger
	metrics  metrics.MatcherMetrics
	failFast bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger verdicts are written to.
func WithLogger(l logging.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithMetrics sets the metrics sink verdicts are recorded into.
func WithMetrics(m metrics.MatcherMetrics) Option {
	return func(e *Engine) { e.metrics = m }
}

// WithFailFast stops Run after the first scenario with an
// unexpected verdict.
func WithFailFast(enabled bool) Option {
	return func(e *Engine) { e.failFast = enabled }
}

// NewEngine creates an Engine with every built-in matcher
// registered.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		evaluators: make(map[string]Evaluator),
		logger:     logging.NullLogger{},
		metrics:    metrics.NoopMetrics{},
	}
	for _, opt := range opts {
		opt(e)
	}
	e.registerDefaults()
	return e
}

func (e *Engine) registerDefaults() {
	e.evaluators[matcher.NameCreated] = evaluateCreated
	e.evaluators[matcher.NameCreatedBy] = evaluateCreatedBy
	e.evaluators[matcher.NameCreatedByEntity] = evaluateCreatedByEntity
	e.evaluators[matcher.NameResultObject] = evaluateResultObject
	e.evaluators[matcher.NameErrors] = evaluateErrors
	e.evaluators[matcher.NameErrorsFor] = evaluateErrorsFor
	e.evaluators[matcher.NameBasicError] = evaluateBasicError
	e.evaluators[matcher.NameResourceNotFoundError] = evaluateResourceNotFoundError
	e.evaluators[matcher.NameNoErrors] = evaluateNoErrors
}

// Register adds a custom evaluator under name. Returns an error
// if the name is already registered.
func (e *Engine) Register(name string, evaluator Evaluator) error {
	if name == "" || evaluator == nil {
		return fmt.Errorf("matcher name and evaluator are required")
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.evaluators[name]; exists {
		return fmt.Errorf("matcher already registered: %s", name)
	}
	e.evaluators[name] = evaluator
	return nil
}

// HasEvaluator returns true if name has a registered evaluator.
func (e *Engine) HasEvaluator(name string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	_, exists := e.evaluators[name]
	return exists
}

// Matchers returns the registered matcher names, sorted.
func (e *Engine) Matchers() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	names := make([]string, 0, len(e.evaluators))
	for name := range e.evaluators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Evaluate runs every expectation of s and returns one verdict
// per expectation, in order.
func (e *Engine) Evaluate(s Scenario) []Verdict {
	subject, subjectErr := NewSubject(s.Outcome)

	verdicts := make([]Verdict, 0, len(s.Expect))
	for _, exp := range s.Expect {
		v := Verdict{
			Scenario:   s.Name,
			Matcher:    exp.Matcher,
			Expected:   exp.ExpectPass(),
			WantReason: exp.Reason,
		}
		if subjectErr != nil {
			v.Error = subjectErr.Error()
		} else {
			e.evaluate(&v, subject, exp)
		}
		e.record(v)
		verdicts = append(verdicts, v)
	}
	return verdicts
}

func (e *Engine) evaluate(v *Verdict, subject Subject, exp Expectation) {
	e.mu.RLock()
	evaluator, exists := e.evaluators[exp.Matcher]
	e.mu.RUnlock()

	if !exists {
		v.Error = fmt.Sprintf("unknown matcher: %s", exp.Matcher)
		return
	}

	err := evaluator(subject, exp)
	if err == nil {
		v.Passed = true
		return
	}

	var failure *matcher.Failure
	if errors.As(err, &failure) {
		v.Reason = string(failure.Reason)
		v.Message = failure.Message
		return
	}
	v.Error = err.Error()
}

func (e *Engine) record(v Verdict) {
	e.metrics.RecordVerdict(v.Matcher, v.Reason, v.Passed)

	if v.Error != "" {
		e.logger.Error("matcher evaluation failed",
			logging.ScenarioField(v.Scenario),
			logging.MatcherField(v.Matcher),
			logging.StringField("error", v.Error),
		)
		return
	}
	e.logger.LogVerdict(logging.VerdictLog{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Scenario:  v.Scenario,
		Matcher:   v.Matcher,
		Passed:    v.Passed,
		Expected:  v.Expected,
		Reason:    v.Reason,
		Message:   v.Message,
	})
	if v.WantReason != "" && v.WantReason != v.Reason {
		e.logger.Warn("unexpected failure reason",
			logging.ScenarioField(v.Scenario),
			logging.MatcherField(v.Matcher),
			logging.StringField("want", v.WantReason),
			logging.StringField("got", v.Reason),
		)
	}
}

// Run evaluates every scenario of files and aggregates the
// verdicts into a Report.
func (e *Engine) Run(files []*File) *Report {
	report := &Report{ID: uuid.NewString()}

	for _, f := range files {
		report.Sources = append(report.Sources, f.Source)
		e.logger.Debug("running scenario file",
			logging.StringField("source", f.Source),
			logging.IntField("scenarios", len(f.Scenarios)),
		)

		for _, s := range f.Scenarios {
			report.Scenarios++
			ok := true
			for _, v := range e.Evaluate(s) {
				v.Source = f.Source
				ok = ok && v.OK()
				report.add(v)
			}
			e.metrics.RecordScenario(s.Name, ok)
			if !ok && e.failFast {
				e.logger.Warn("stopping after failed scenario",
					logging.ScenarioField(s.Name),
				)
				return report
			}
		}
	}

	e.logger.Info("scenario run complete",
		logging.IntField("scenarios", report.Scenarios),
		logging.IntField("passed", report.Passed),
		logging.IntField("failed", report.Failed),
	)
	return report
}
