package scenario

import (
	"digital.vasic.outcomes/pkg/matcher"
	"digital.vasic.outcomes/pkg/outcome"
)

func (s Subject) records(name string) (*outcome.Result[*Record], error) {
	if s.Kind != KindRecord {
		return nil, usageError(
			"%s needs a record outcome, got a %s outcome", name, s.Kind,
		)
	}
	return s.Records, nil
}

func evaluateCreated(s Subject, _ Expectation) error {
	r, err := s.records(matcher.NameCreated)
	if err != nil {
		return err
	}
	return matcher.CheckCreated(r)
}

func evaluateCreatedBy(s Subject, e Expectation) error {
	r, err := s.records(matcher.NameCreatedBy)
	if err != nil {
		return err
	}
	if e.ID == nil {
		return usageError("%s needs an id", matcher.NameCreatedBy)
	}
	return matcher.CheckCreatedBy(r, *e.ID)
}

func evaluateCreatedByEntity(s Subject, e Expectation) error {
	r, err := s.records(matcher.NameCreatedByEntity)
	if err != nil {
		return err
	}
	var entity *Record
	if e.EntityID != nil {
		entity = &Record{ID: *e.EntityID}
	}
	return matcher.CheckCreatedByEntity(r, entity)
}

func evaluateResultObject(s Subject, _ Expectation) error {
	if s.Kind == KindFlag {
		return matcher.CheckResultObject(s.Flags)
	}
	return matcher.CheckResultObject(s.Records)
}

func evaluateErrors(s Subject, _ Expectation) error {
	if s.Kind == KindFlag {
		return matcher.CheckBoolErrors(s.Flags)
	}
	return matcher.CheckErrors(s.Records)
}

func evaluateErrorsFor(s Subject, e Expectation) error {
	if e.Key == "" {
		return usageError("%s needs a key", matcher.NameErrorsFor)
	}
	if s.Kind == KindFlag {
		return matcher.CheckErrorsFor(s.Flags, e.Key)
	}
	return matcher.CheckErrorsFor(s.Records, e.Key)
}

func evaluateBasicError(s Subject, _ Expectation) error {
	if s.Kind == KindFlag {
		return matcher.CheckBasicError(s.Flags)
	}
	return matcher.CheckBasicError(s.Records)
}

func evaluateResourceNotFoundError(s Subject, _ Expectation) error {
	if s.Kind == KindFlag {
		return matcher.CheckResourceNotFoundError(s.Flags)
	}
	return matcher.CheckResourceNotFoundError(s.Records)
}

func evaluateNoErrors(s Subject, _ Expectation) error {
	if s.Kind == KindFlag {
		return matcher.CheckNoErrors(s.Flags)
	}
	return matcher.CheckNoErrors(s.Records)
}
