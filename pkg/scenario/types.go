package scenario

import (
	"time"

	"gopkg.in/yaml.v3"

	"digital.vasic.outcomes/pkg/outcome"
)

// File is a decoded scenario file.
type File struct {
	Version   string     `yaml:"version" json:"version"`
	Scenarios []Scenario `yaml:"scenarios" json:"scenarios"`

	// Source is the path the file was loaded from.
	Source string `yaml:"-" json:"source"`
}

// Scenario pairs one outcome with the verdicts expected from
// matchers run against it.
type Scenario struct {
	Name        string        `yaml:"name" json:"name"`
	Description string        `yaml:"description,omitempty" json:"description,omitempty"`
	Outcome     *OutcomeSpec  `yaml:"outcome" json:"outcome"`
	Expect      []Expectation `yaml:"expect" json:"expect"`
}

// OutcomeSpec describes an outcome. Value is kept as a raw node
// so that null, bool and mapping values can be told apart.
type OutcomeSpec struct {
	Value  yaml.Node       `yaml:"value" json:"-"`
	Errors []outcome.Error `yaml:"errors" json:"errors"`
}

// Expectation names a matcher, its argument and the expected
// verdict.
type Expectation struct {
	Matcher  string `yaml:"matcher" json:"matcher"`
	Key      string `yaml:"key,omitempty" json:"key,omitempty"`
	ID       *int64 `yaml:"id,omitempty" json:"id,omitempty"`
	EntityID *int64 `yaml:"entity_id,omitempty" json:"entity_id,omitempty"`
	Pass     *bool  `yaml:"pass,omitempty" json:"pass,omitempty"`
	Reason   string `yaml:"reason,omitempty" json:"reason,omitempty"`
}

// ExpectPass reports whether the matcher is expected to pass.
// Pass defaults to true.
func (e Expectation) ExpectPass() bool {
	return e.Pass == nil || *e.Pass
}

// Record is the value type scenario outcomes carry. It is
// Creatable and HasID.
type Record struct {
	ID          int64      `json:"id"`
	CreatedOn   *time.Time `json:"created_on,omitempty"`
	CreatedByID *int64     `json:"created_by_id,omitempty"`
}

// GetID returns the record id.
func (r *Record) GetID() int64 {
	if r == nil {
		return 0
	}
	return r.ID
}

// GetCreatedOn returns the creation time.
func (r *Record) GetCreatedOn() *time.Time {
	if r == nil {
		return nil
	}
	return r.CreatedOn
}

// GetCreatedByID returns the creator id.
func (r *Record) GetCreatedByID() *int64 {
	if r == nil {
		return nil
	}
	return r.CreatedByID
}

// Verdict is the evaluation of one expectation.
type Verdict struct {
	Source   string `json:"source,omitempty"`
	Scenario string `json:"scenario"`
	Matcher  string `json:"matcher"`

	// Expected is whether the matcher was expected to pass.
	Expected bool `json:"expected"`
	// Passed is whether the matcher passed.
	Passed bool `json:"passed"`

	// WantReason is the failure reason the scenario expected.
	WantReason string `json:"want_reason,omitempty"`
	// Reason is the failure reason observed.
	Reason string `json:"reason,omitempty"`
	// Message is the matcher diagnostic.
	Message string `json:"message,omitempty"`

	// Error is set when the matcher could not be evaluated.
	Error string `json:"error,omitempty"`
}

// OK reports whether the matcher behaved as the scenario
// expected.
func (v Verdict) OK() bool {
	if v.Error != "" || v.Passed != v.Expected {
		return false
	}
	return v.WantReason == "" || v.WantReason == v.Reason
}

// Report aggregates the verdicts of a run.
type Report struct {
	ID        string    `json:"id"`
	Sources   []string  `json:"sources"`
	Scenarios int       `json:"scenarios"`
	Verdicts  []Verdict `json:"verdicts"`
	Passed    int       `json:"passed"`
	Failed    int       `json:"failed"`
}

// OK reports whether every verdict was as expected.
func (r *Report) OK() bool {
	return r.Failed == 0
}

// Failures returns the verdicts that were not as expected.
func (r *Report) Failures() []Verdict {
	var out []Verdict
	for _, v := range r.Verdicts {
		if !v.OK() {
			out = append(out, v)
		}
	}
	return out
}

func (r *Report) add(v Verdict) {
	r.Verdicts = append(r.Verdicts, v)
	if v.OK() {
		r.Passed++
	} else {
		r.Failed++
	}
}
