package scenario

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital.vasic.outcomes/pkg/logging"
	"digital.vasic.outcomes/pkg/matcher"
	"digital.vasic.outcomes/pkg/metrics"
)

func loadValid(t *testing.T) []*File {
	t.Helper()
	files, err := LoadDir(filepath.Join("testdata", "valid"))
	require.NoError(t, err)
	return files
}

func TestNewEngine_RegistersAllBuiltins(t *testing.T) {
	e := NewEngine()
	for _, name := range matcher.Names() {
		assert.True(t, e.HasEvaluator(name),
			"missing built-in matcher: %s", name)
	}
	assert.Len(t, e.Matchers(), len(matcher.Names()))
}

func TestEngine_Register(t *testing.T) {
	e := NewEngine()

	err := e.Register("always_passes", func(Subject, Expectation) error {
		return nil
	})
	require.NoError(t, err)
	assert.True(t, e.HasEvaluator("always_passes"))

	err = e.Register(matcher.NameErrors, func(Subject, Expectation) error {
		return nil
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")

	assert.Error(t, e.Register("", nil))
}

func TestEngine_Run_ValidFiles(t *testing.T) {
	m := metrics.NewInMemoryMetrics()
	e := NewEngine(WithMetrics(m))

	report := e.Run(loadValid(t))

	for _, v := range report.Failures() {
		t.Errorf("unexpected verdict: %+v", v)
	}
	assert.True(t, report.OK())
	assert.NotEmpty(t, report.ID)
	assert.Equal(t, 6, report.Scenarios)
	assert.Equal(t, 17, report.Passed)
	assert.Zero(t, report.Failed)
	assert.Len(t, report.Sources, 2)

	assert.Equal(t, 6, m.ScenarioCount(true))
	assert.Equal(t, 1, m.ReasonCount(string(matcher.ReasonErrorsListEmpty)))
	assert.Equal(t, 1, m.ReasonCount(string(matcher.ReasonConflictingSuccessFlag)))
}

func TestEngine_Evaluate_Verdicts(t *testing.T) {
	e := NewEngine()

	verdicts := e.Evaluate(Scenario{
		Name: "missing",
		Outcome: parseOutcome(t,
			"errors:\n"+
				"  - key: resource_not_found\n",
		),
		Expect: []Expectation{
			{Matcher: matcher.NameResourceNotFoundError},
			{Matcher: matcher.NameBasicError},
			{Matcher: matcher.NameBasicError, Pass: boolPtr(false), Reason: "errors_list_absent"},
		},
	})
	require.Len(t, verdicts, 3)

	assert.True(t, verdicts[0].Passed)
	assert.True(t, verdicts[0].OK())

	assert.False(t, verdicts[1].Passed)
	assert.Equal(t, string(matcher.ReasonKeyNotFound), verdicts[1].Reason)
	assert.Contains(t, verdicts[1].Message, `"basic_error"`)
	assert.False(t, verdicts[1].OK())

	// Failed as expected, but for another reason.
	assert.False(t, verdicts[2].OK())
}

func TestEngine_Evaluate_UsageErrors(t *testing.T) {
	e := NewEngine()

	tests := []struct {
		name string
		spec *OutcomeSpec
		exp  Expectation
	}{
		{
			name: "unknown matcher",
			exp:  Expectation{Matcher: "should_be_shiny"},
		},
		{
			name: "created by without id",
			exp:  Expectation{Matcher: matcher.NameCreatedBy},
		},
		{
			name: "errors for without key",
			exp:  Expectation{Matcher: matcher.NameErrorsFor},
		},
		{
			name: "creatable matcher on bool outcome",
			spec: parseOutcome(t, "value: true\n"),
			exp:  Expectation{Matcher: matcher.NameCreated},
		},
		{
			name: "undecodable outcome",
			spec: parseOutcome(t, "value: maybe\n"),
			exp:  Expectation{Matcher: matcher.NameErrors},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdicts := e.Evaluate(Scenario{
				Name:    tt.name,
				Outcome: tt.spec,
				Expect:  []Expectation{tt.exp},
			})
			require.Len(t, verdicts, 1)
			assert.NotEmpty(t, verdicts[0].Error)
			assert.False(t, verdicts[0].OK())
		})
	}
}

func TestEngine_Evaluate_EntityAbsent(t *testing.T) {
	e := NewEngine()

	verdicts := e.Evaluate(Scenario{
		Name:    "no entity",
		Outcome: parseOutcome(t, "value:\n  created_by_id: 3\n"),
		Expect: []Expectation{
			{Matcher: matcher.NameCreatedByEntity},
			{Matcher: matcher.NameCreatedByEntity, EntityID: int64Ptr(3)},
		},
	})

	assert.Equal(t, string(matcher.ReasonEntityAbsent), verdicts[0].Reason)
	assert.True(t, verdicts[1].Passed)
}

func TestEngine_CustomEvaluator(t *testing.T) {
	e := NewEngine()
	sentinel := errors.New("boom")
	require.NoError(t, e.Register("explodes", func(Subject, Expectation) error {
		return sentinel
	}))

	verdicts := e.Evaluate(Scenario{
		Name:   "custom",
		Expect: []Expectation{{Matcher: "explodes"}},
	})
	assert.Equal(t, "boom", verdicts[0].Error)
}

func TestEngine_Run_FailFast(t *testing.T) {
	bad := Scenario{
		Name:   "bad",
		Expect: []Expectation{{Matcher: matcher.NameErrors}},
	}
	good := Scenario{
		Name:   "good",
		Expect: []Expectation{{Matcher: matcher.NameNoErrors, Pass: boolPtr(false)}},
	}
	files := []*File{{Source: "inline", Scenarios: []Scenario{bad, good}}}

	report := NewEngine(WithFailFast(true)).Run(files)
	assert.Equal(t, 1, report.Scenarios)
	assert.Equal(t, 1, report.Failed)
	assert.False(t, report.OK())

	report = NewEngine().Run(files)
	assert.Equal(t, 2, report.Scenarios)
	assert.Equal(t, 1, report.Passed)
	assert.Equal(t, "inline", report.Verdicts[1].Source)
}

func TestEngine_LogsVerdicts(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewConsoleWriterLogger(&buf, true, false)
	e := NewEngine(WithLogger(logger))

	e.Evaluate(Scenario{
		Name: "logged",
		Expect: []Expectation{
			{Matcher: matcher.NameErrors, Pass: boolPtr(false)},
			{Matcher: "nope"},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "logged / should_have_errors")
	assert.Contains(t, out, "unknown matcher: nope")
}

func TestVerdict_OK(t *testing.T) {
	tests := []struct {
		name string
		v    Verdict
		want bool
	}{
		{name: "pass expected", v: Verdict{Expected: true, Passed: true}, want: true},
		{name: "fail expected", v: Verdict{Expected: false, Passed: false, Reason: "x"}, want: true},
		{name: "reason matches", v: Verdict{WantReason: "x", Reason: "x"}, want: true},
		{name: "reason differs", v: Verdict{WantReason: "x", Reason: "y"}, want: false},
		{name: "unexpected pass", v: Verdict{Expected: false, Passed: true}, want: false},
		{name: "evaluation error", v: Verdict{Expected: true, Passed: true, Error: "e"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.OK())
		})
	}
}

func boolPtr(b bool) *bool { return &b }

func int64Ptr(i int64) *int64 { return &i }
