package matcher

import "digital.vasic.outcomes/pkg/outcome"

// Expectation chains assertions on a single result.
type Expectation[T any] struct {
	t      TestingT
	result *outcome.Result[T]
}

// Expect starts a chain of assertions on r.
func Expect[T any](t TestingT, r *outcome.Result[T]) *Expectation[T] {
	return &Expectation[T]{t: t, result: r}
}

// Result returns the result under test.
func (e *Expectation[T]) Result() *outcome.Result[T] {
	return e.result
}

// ShouldHaveResultObject asserts a value is present.
func (e *Expectation[T]) ShouldHaveResultObject() *Expectation[T] {
	if h, ok := e.t.(tHelper); ok {
		h.Helper()
	}
	report(e.t, CheckResultObject(e.result))
	return e
}

// ShouldHaveErrors asserts at least one error is present.
func (e *Expectation[T]) ShouldHaveErrors() *Expectation[T] {
	if h, ok := e.t.(tHelper); ok {
		h.Helper()
	}
	report(e.t, CheckErrors(e.result))
	return e
}

// ShouldHaveErrorsFor asserts an error with key is present.
func (e *Expectation[T]) ShouldHaveErrorsFor(key string) *Expectation[T] {
	if h, ok := e.t.(tHelper); ok {
		h.Helper()
	}
	report(e.t, CheckErrorsFor(e.result, key))
	return e
}

// ShouldHaveBasicError asserts a basic error is present.
func (e *Expectation[T]) ShouldHaveBasicError() *Expectation[T] {
	if h, ok := e.t.(tHelper); ok {
		h.Helper()
	}
	report(e.t, CheckBasicError(e.result))
	return e
}

// ShouldHaveResourceNotFoundError asserts a resource not found
// error is present.
func (e *Expectation[T]) ShouldHaveResourceNotFoundError() *Expectation[T] {
	if h, ok := e.t.(tHelper); ok {
		h.Helper()
	}
	report(e.t, CheckResourceNotFoundError(e.result))
	return e
}

// ShouldNotHaveErrors asserts no error is recorded.
func (e *Expectation[T]) ShouldNotHaveErrors() *Expectation[T] {
	if h, ok := e.t.(tHelper); ok {
		h.Helper()
	}
	report(e.t, CheckNoErrors(e.result))
	return e
}

// CreatableExpectation adds the creation matchers to an
// Expectation over a Creatable value.
type CreatableExpectation[T outcome.Creatable] struct {
	*Expectation[T]
}

// ExpectCreatable starts a chain of assertions on a result whose
// value is Creatable.
func ExpectCreatable[T outcome.Creatable](
	t TestingT, r *outcome.Result[T],
) *CreatableExpectation[T] {
	return &CreatableExpectation[T]{Expectation: Expect(t, r)}
}

// ShouldBeCreated asserts the value has a creation time.
func (e *CreatableExpectation[T]) ShouldBeCreated() *CreatableExpectation[T] {
	if h, ok := e.t.(tHelper); ok {
		h.Helper()
	}
	report(e.t, CheckCreated(e.result))
	return e
}

// ShouldBeCreatedBy asserts the value was created by id.
func (e *CreatableExpectation[T]) ShouldBeCreatedBy(
	id int64,
) *CreatableExpectation[T] {
	if h, ok := e.t.(tHelper); ok {
		h.Helper()
	}
	report(e.t, CheckCreatedBy(e.result, id))
	return e
}

// ShouldBeCreatedByEntity asserts the value was created by
// entity.
func (e *CreatableExpectation[T]) ShouldBeCreatedByEntity(
	entity outcome.HasID,
) *CreatableExpectation[T] {
	if h, ok := e.t.(tHelper); ok {
		h.Helper()
	}
	report(e.t, CheckCreatedByEntity(e.result, entity))
	return e
}
