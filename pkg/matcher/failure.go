package matcher

import (
	"errors"
	"fmt"
)

// ErrorsListIsNullMessage is included in every failure caused by
// an absent errors collection. Tooling may match on it.
const ErrorsListIsNullMessage = "errors list is null"

// Reason names the condition that made a matcher fail.
type Reason string

// Failure reasons, in the order matchers check them.
const (
	ReasonOutcomeAbsent          Reason = "outcome_absent"
	ReasonValueAbsent            Reason = "value_absent"
	ReasonCreatedOnAbsent        Reason = "created_on_absent"
	ReasonEntityAbsent           Reason = "entity_absent"
	ReasonCreatedByAbsent        Reason = "created_by_absent"
	ReasonCreatedByMismatch      Reason = "created_by_mismatch"
	ReasonErrorsListAbsent       Reason = "errors_list_absent"
	ReasonErrorsListEmpty        Reason = "errors_list_empty"
	ReasonKeyNotFound            Reason = "key_not_found"
	ReasonConflictingSuccessFlag Reason = "conflicting_success_flag"
	ReasonUnexpectedErrors       Reason = "unexpected_errors"
)

// Reasons lists every failure reason.
func Reasons() []Reason {
	return []Reason{
		ReasonOutcomeAbsent,
		ReasonValueAbsent,
		ReasonCreatedOnAbsent,
		ReasonEntityAbsent,
		ReasonCreatedByAbsent,
		ReasonCreatedByMismatch,
		ReasonErrorsListAbsent,
		ReasonErrorsListEmpty,
		ReasonKeyNotFound,
		ReasonConflictingSuccessFlag,
		ReasonUnexpectedErrors,
	}
}

// Failure is returned by the Check functions when an assertion
// does not hold.
type Failure struct {
	// Matcher is the name of the matcher that failed.
	Matcher string `json:"matcher"`

	// Reason is the violated condition.
	Reason Reason `json:"reason"`

	// Expected describes what the matcher wanted.
	Expected any `json:"expected,omitempty"`

	// Actual describes what was observed.
	Actual any `json:"actual,omitempty"`

	// Message is the diagnostic shown to the test author.
	Message string `json:"message"`
}

// Error implements the error interface.
func (f *Failure) Error() string {
	return fmt.Sprintf("%s: %s", f.Matcher, f.Message)
}

func fail(
	matcher string, reason Reason, format string, args ...any,
) *Failure {
	return &Failure{
		Matcher: matcher,
		Reason:  reason,
		Message: fmt.Sprintf(format, args...),
	}
}

func (f *Failure) with(expected, actual any) *Failure {
	f.Expected = expected
	f.Actual = actual
	return f
}

// ReasonOf returns the reason carried by err, or "" when err is
// not a *Failure.
func ReasonOf(err error) Reason {
	var f *Failure
	if errors.As(err, &f) {
		return f.Reason
	}
	return ""
}

// IsReason reports whether err is a *Failure with the given
// reason.
func IsReason(err error, reason Reason) bool {
	return err != nil && ReasonOf(err) == reason
}
