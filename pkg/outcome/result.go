package outcome

import "reflect"

// ErrorsState distinguishes a missing errors collection from an
// empty one.
type ErrorsState int

const (
	// ErrorsAbsent means the errors slice is nil.
	ErrorsAbsent ErrorsState = iota
	// ErrorsEmpty means the slice exists but holds no errors.
	ErrorsEmpty
	// ErrorsPresent means at least one error is recorded.
	ErrorsPresent
)

// String returns the string representation of the state.
func (s ErrorsState) String() string {
	switch s {
	case ErrorsAbsent:
		return "absent"
	case ErrorsEmpty:
		return "empty"
	case ErrorsPresent:
		return "present"
	default:
		return "unknown"
	}
}

// Result is the outcome of a domain operation: an optional
// produced object and an optional ordered list of errors.
//
// A nil *Result is the absent outcome. ResultObject is absent
// when it holds a nil pointer, interface, map, slice, func or
// channel; value kinds such as bool are always present. A nil
// Errors slice is absent, a non-nil empty slice is empty.
type Result[T any] struct {
	// ResultObject is the value produced on success.
	ResultObject T `json:"result_object"`

	// Errors lists the failures in insertion order.
	Errors []Error `json:"errors"`
}

// Success returns a result holding v and no errors collection.
func Success[T any](v T) *Result[T] {
	return &Result[T]{ResultObject: v}
}

// Failure returns a result holding the given errors. The errors
// collection is non-nil even when errs is empty.
func Failure[T any](errs ...Error) *Result[T] {
	list := make([]Error, len(errs))
	copy(list, errs)
	return &Result[T]{Errors: list}
}

// FromGoError returns a failure result carrying FromError(err).
func FromGoError[T any](err error) *Result[T] {
	return Failure[T](FromError(err))
}

// AddError appends an error with the given key and message and
// returns the result for chaining.
func (r *Result[T]) AddError(key, message string) *Result[T] {
	r.Errors = append(r.Errors, NewError(key, message))
	return r
}

// HasResultObject reports whether a value is present.
func (r *Result[T]) HasResultObject() bool {
	if r == nil {
		return false
	}
	return !IsAbsent(r.ResultObject)
}

// ErrorsState reports whether the errors collection is absent,
// empty or populated. A nil result reports ErrorsAbsent.
func (r *Result[T]) ErrorsState() ErrorsState {
	switch {
	case r == nil || r.Errors == nil:
		return ErrorsAbsent
	case len(r.Errors) == 0:
		return ErrorsEmpty
	default:
		return ErrorsPresent
	}
}

// HasErrors reports whether at least one error is recorded.
func (r *Result[T]) HasErrors() bool {
	return r.ErrorCount() > 0
}

// ErrorCount returns the number of recorded errors.
func (r *Result[T]) ErrorCount() int {
	if r == nil {
		return 0
	}
	return len(r.Errors)
}

// HasErrorsFor reports whether any error carries exactly key.
func (r *Result[T]) HasErrorsFor(key string) bool {
	if r == nil {
		return false
	}
	for _, e := range r.Errors {
		if e.Key == key {
			return true
		}
	}
	return false
}

// ErrorsFor returns the errors whose key equals key, in order.
func (r *Result[T]) ErrorsFor(key string) []Error {
	if r == nil {
		return nil
	}
	var out []Error
	for _, e := range r.Errors {
		if e.Key == key {
			out = append(out, e)
		}
	}
	return out
}

// Keys returns the key of every recorded error in insertion
// order, duplicates included.
func (r *Result[T]) Keys() []string {
	if r == nil {
		return nil
	}
	keys := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		keys = append(keys, e.Key)
	}
	return keys
}

// IsAbsent reports whether v is nil or a nil pointer, interface,
// map, slice, func or channel.
func IsAbsent(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map,
		reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
