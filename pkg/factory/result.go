package factory

import "digital.vasic.outcomes/pkg/outcome"

// ResultOption customises a result built by BuildResult.
type ResultOption[T any] func(*outcome.Result[T])

// BuildResult returns a result holding value with an absent
// errors collection, then applies opts in order.
func BuildResult[T any](value T, opts ...ResultOption[T]) *outcome.Result[T] {
	r := &outcome.Result[T]{ResultObject: value}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// BuildUserResult returns a result holding BuildUser(opts...).
func BuildUserResult(opts ...UserOption) *outcome.Result[*UserStub] {
	return BuildResult(BuildUser(opts...))
}

// WithValue replaces the result object.
func WithValue[T any](v T) ResultOption[T] {
	return func(r *outcome.Result[T]) { r.ResultObject = v }
}

// WithoutValue clears the result object to its zero value.
func WithoutValue[T any]() ResultOption[T] {
	return func(r *outcome.Result[T]) {
		var zero T
		r.ResultObject = zero
	}
}

// WithErrors sets the errors collection. The collection is
// non-nil even when no errors are given.
func WithErrors[T any](errs ...outcome.Error) ResultOption[T] {
	return func(r *outcome.Result[T]) {
		r.Errors = append([]outcome.Error{}, errs...)
	}
}

// WithNullErrors makes the errors collection absent.
func WithNullErrors[T any]() ResultOption[T] {
	return func(r *outcome.Result[T]) { r.Errors = nil }
}
