package matcher

import (
	"fmt"

	"digital.vasic.outcomes/pkg/outcome"
)

// Matcher names, used in failures and by the scenario engine.
const (
	NameCreated               = "should_be_created"
	NameCreatedBy             = "should_be_created_by"
	NameCreatedByEntity       = "should_be_created_by_entity"
	NameResultObject          = "should_have_result_object"
	NameErrors                = "should_have_errors"
	NameErrorsFor             = "should_have_errors_for"
	NameBasicError            = "should_have_basic_error"
	NameResourceNotFoundError = "should_have_resource_not_found_error"
	NameNoErrors              = "should_not_have_errors"
)

// Names lists every built-in matcher name.
func Names() []string {
	return []string{
		NameCreated,
		NameCreatedBy,
		NameCreatedByEntity,
		NameResultObject,
		NameErrors,
		NameErrorsFor,
		NameBasicError,
		NameResourceNotFoundError,
		NameNoErrors,
	}
}

// checkValue verifies the outcome and its result object exist.
func checkValue[T any](name string, r *outcome.Result[T]) *Failure {
	if r == nil {
		return fail(name, ReasonOutcomeAbsent,
			"expected an outcome, got nil")
	}
	if !r.HasResultObject() {
		return fail(name, ReasonValueAbsent,
			"expected a result object, got nil")
	}
	return nil
}

// CheckResultObject verifies that r exists and carries a value.
func CheckResultObject[T any](r *outcome.Result[T]) error {
	if f := checkValue(NameResultObject, r); f != nil {
		return f
	}
	return nil
}

// CheckCreated verifies that the result object has a creation
// time.
func CheckCreated[T outcome.Creatable](r *outcome.Result[T]) error {
	if f := checkValue(NameCreated, r); f != nil {
		return f
	}
	if r.ResultObject.GetCreatedOn() == nil {
		return fail(NameCreated, ReasonCreatedOnAbsent,
			"expected result object to have a creation time, "+
				"created on is nil")
	}
	return nil
}

// CheckCreatedBy verifies that the result object was created by
// the given id.
func CheckCreatedBy[T outcome.Creatable](
	r *outcome.Result[T],
	id int64,
) error {
	if f := checkValue(NameCreatedBy, r); f != nil {
		return f
	}
	if f := checkCreator(NameCreatedBy, r.ResultObject, id); f != nil {
		return f
	}
	return nil
}

// CheckCreatedByEntity verifies that the result object was
// created by the given entity. It is CheckCreatedBy with the
// entity's id.
func CheckCreatedByEntity[T outcome.Creatable, E outcome.HasID](
	r *outcome.Result[T],
	entity E,
) error {
	if f := checkValue(NameCreatedByEntity, r); f != nil {
		return f
	}
	if outcome.IsAbsent(entity) {
		return fail(NameCreatedByEntity, ReasonEntityAbsent,
			"expected a creator entity, got nil")
	}
	f := checkCreator(
		NameCreatedByEntity, r.ResultObject, entity.GetID(),
	)
	if f != nil {
		return f
	}
	return nil
}

func checkCreator(
	name string, v outcome.Creatable, id int64,
) *Failure {
	createdBy := v.GetCreatedByID()
	if createdBy == nil {
		return fail(name, ReasonCreatedByAbsent,
			"expected result object to be created by %d, "+
				"created by id is nil", id,
		).with(id, nil)
	}
	if *createdBy != id {
		return fail(name, ReasonCreatedByMismatch,
			"expected result object to be created by %d, "+
				"was created by %d", id, *createdBy,
		).with(id, *createdBy)
	}
	return nil
}

// checkErrorsList verifies r exists and its errors collection is
// populated. The absent case always carries
// ErrorsListIsNullMessage.
func checkErrorsList[T any](
	name string, r *outcome.Result[T], suffix string,
) *Failure {
	if r == nil {
		return fail(name, ReasonOutcomeAbsent,
			"expected an outcome, got nil")
	}
	switch r.ErrorsState() {
	case outcome.ErrorsAbsent:
		return fail(name, ReasonErrorsListAbsent,
			"%s%s", ErrorsListIsNullMessage, suffix)
	case outcome.ErrorsEmpty:
		return fail(name, ReasonErrorsListEmpty,
			"errors list is empty%s", suffix)
	}
	return nil
}

// CheckErrors verifies that r carries at least one error. When T
// is bool the result object is a success flag and must not be
// true alongside the errors.
func CheckErrors[T any](r *outcome.Result[T]) error {
	if f := checkErrorsList(NameErrors, r, ""); f != nil {
		return f
	}
	if isBool[T]() {
		if flag, _ := any(r.ResultObject).(bool); flag {
			return fail(NameErrors, ReasonConflictingSuccessFlag,
				"expected result object to be false when "+
					"errors are present, was true",
			).with(false, true)
		}
	}
	return nil
}

// CheckBoolErrors is CheckErrors for bool-valued outcomes.
func CheckBoolErrors(r *outcome.Result[bool]) error {
	return CheckErrors(r)
}

func isBool[T any]() bool {
	var zero T
	_, ok := any(zero).(bool)
	return ok
}

// CheckErrorsFor verifies that at least one error in r has
// exactly the given key.
func CheckErrorsFor[T any](r *outcome.Result[T], key string) error {
	return checkKey(NameErrorsFor, r, key)
}

// CheckBasicError is CheckErrorsFor(outcome.BasicErrorKey).
func CheckBasicError[T any](r *outcome.Result[T]) error {
	return checkKey(NameBasicError, r, outcome.BasicErrorKey)
}

// CheckResourceNotFoundError is
// CheckErrorsFor(outcome.ResourceNotFoundErrorKey).
func CheckResourceNotFoundError[T any](r *outcome.Result[T]) error {
	return checkKey(
		NameResourceNotFoundError, r, outcome.ResourceNotFoundErrorKey,
	)
}

func checkKey[T any](
	name string, r *outcome.Result[T], key string,
) error {
	suffix := fmt.Sprintf(", expected an error with key %q", key)
	if f := checkErrorsList(name, r, suffix); f != nil {
		return f.with(key, nil)
	}
	if !r.HasErrorsFor(key) {
		keys := r.Keys()
		return fail(name, ReasonKeyNotFound,
			"expected an error with key %q, found keys %q",
			key, keys,
		).with(key, keys)
	}
	return nil
}

// CheckNoErrors verifies that r exists and carries no errors. An
// absent or empty errors collection both pass.
func CheckNoErrors[T any](r *outcome.Result[T]) error {
	if r == nil {
		return fail(NameNoErrors, ReasonOutcomeAbsent,
			"expected an outcome, got nil")
	}
	if r.HasErrors() {
		keys := r.Keys()
		return fail(NameNoErrors, ReasonUnexpectedErrors,
			"expected no errors, found %d with keys %q",
			len(keys), keys,
		).with(nil, keys)
	}
	return nil
}
