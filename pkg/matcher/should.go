package matcher

import (
	"github.com/stretchr/testify/require"

	"digital.vasic.outcomes/pkg/outcome"
)

// TestingT is the subset of *testing.T the Should functions use.
type TestingT = require.TestingT

type tHelper interface {
	Helper()
}

// report fails t with err's message. A nil err is a no-op.
func report(t TestingT, err error, msgAndArgs ...any) {
	if err == nil {
		return
	}
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	require.Fail(t, err.Error(), msgAndArgs...)
}

// ShouldBeCreated fails t unless the result object has a
// creation time.
func ShouldBeCreated[T outcome.Creatable](
	t TestingT, r *outcome.Result[T], msgAndArgs ...any,
) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	report(t, CheckCreated(r), msgAndArgs...)
}

// ShouldBeCreatedBy fails t unless the result object was created
// by id.
func ShouldBeCreatedBy[T outcome.Creatable](
	t TestingT, r *outcome.Result[T], id int64, msgAndArgs ...any,
) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	report(t, CheckCreatedBy(r, id), msgAndArgs...)
}

// ShouldBeCreatedByEntity fails t unless the result object was
// created by entity.
func ShouldBeCreatedByEntity[T outcome.Creatable, E outcome.HasID](
	t TestingT, r *outcome.Result[T], entity E, msgAndArgs ...any,
) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	report(t, CheckCreatedByEntity(r, entity), msgAndArgs...)
}

// ShouldHaveResultObject fails t unless r carries a value.
func ShouldHaveResultObject[T any](
	t TestingT, r *outcome.Result[T], msgAndArgs ...any,
) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	report(t, CheckResultObject(r), msgAndArgs...)
}

// ShouldHaveErrors fails t unless r carries at least one error.
// Bool-valued results must also hold false.
func ShouldHaveErrors[T any](
	t TestingT, r *outcome.Result[T], msgAndArgs ...any,
) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	report(t, CheckErrors(r), msgAndArgs...)
}

// ShouldHaveBoolErrors is ShouldHaveErrors for bool-valued
// results.
func ShouldHaveBoolErrors(
	t TestingT, r *outcome.Result[bool], msgAndArgs ...any,
) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	report(t, CheckBoolErrors(r), msgAndArgs...)
}

// ShouldHaveErrorsFor fails t unless an error in r has key.
func ShouldHaveErrorsFor[T any](
	t TestingT, r *outcome.Result[T], key string, msgAndArgs ...any,
) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	report(t, CheckErrorsFor(r, key), msgAndArgs...)
}

// ShouldHaveBasicError fails t unless r has an error keyed
// outcome.BasicErrorKey.
func ShouldHaveBasicError[T any](
	t TestingT, r *outcome.Result[T], msgAndArgs ...any,
) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	report(t, CheckBasicError(r), msgAndArgs...)
}

// ShouldHaveResourceNotFoundError fails t unless r has an error
// keyed outcome.ResourceNotFoundErrorKey.
func ShouldHaveResourceNotFoundError[T any](
	t TestingT, r *outcome.Result[T], msgAndArgs ...any,
) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	report(t, CheckResourceNotFoundError(r), msgAndArgs...)
}

// ShouldNotHaveErrors fails t if r is nil or records any error.
func ShouldNotHaveErrors[T any](
	t TestingT, r *outcome.Result[T], msgAndArgs ...any,
) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	report(t, CheckNoErrors(r), msgAndArgs...)
}
