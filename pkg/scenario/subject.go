package scenario

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"digital.vasic.outcomes/pkg/outcome"
)

// ValueKind is the type of value a scenario outcome carries.
type ValueKind int

const (
	// KindRecord outcomes carry a *Record, possibly nil.
	KindRecord ValueKind = iota
	// KindFlag outcomes carry a bool success flag.
	KindFlag
)

// String returns the string representation of the kind.
func (k ValueKind) String() string {
	switch k {
	case KindRecord:
		return "record"
	case KindFlag:
		return "bool"
	default:
		return "unknown"
	}
}

// Subject is the typed outcome a scenario's matchers run
// against. Exactly one of Records and Flags is used, chosen by
// Kind. Both are nil for the absent outcome.
type Subject struct {
	Kind    ValueKind
	Records *outcome.Result[*Record]
	Flags   *outcome.Result[bool]
}

// NewSubject builds the typed outcome described by spec. A nil
// spec yields the absent outcome.
func NewSubject(spec *OutcomeSpec) (Subject, error) {
	if spec == nil {
		return Subject{Kind: KindRecord}, nil
	}

	errs := copyErrors(spec.Errors)
	n := &spec.Value

	switch {
	case isNullNode(n):
		return Subject{
			Kind:    KindRecord,
			Records: &outcome.Result[*Record]{Errors: errs},
		}, nil
	case n.Kind == yaml.ScalarNode && n.Tag == "!!bool":
		var flag bool
		if err := n.Decode(&flag); err != nil {
			return Subject{}, fmt.Errorf("decode value: %w", err)
		}
		return Subject{
			Kind: KindFlag,
			Flags: &outcome.Result[bool]{
				ResultObject: flag,
				Errors:       errs,
			},
		}, nil
	case n.Kind == yaml.MappingNode:
		rec, err := decodeRecord(n)
		if err != nil {
			return Subject{}, err
		}
		return Subject{
			Kind: KindRecord,
			Records: &outcome.Result[*Record]{
				ResultObject: rec,
				Errors:       errs,
			},
		}, nil
	default:
		return Subject{}, fmt.Errorf(
			"value at line %d must be null, a bool or a mapping",
			n.Line,
		)
	}
}

func isNullNode(n *yaml.Node) bool {
	if n.Kind == 0 {
		return true
	}
	return n.Kind == yaml.ScalarNode && n.Tag == "!!null"
}

// copyErrors keeps the distinction between a nil and an empty
// list.
func copyErrors(errs []outcome.Error) []outcome.Error {
	if errs == nil {
		return nil
	}
	out := make([]outcome.Error, len(errs))
	copy(out, errs)
	return out
}

// timestampLayouts are the YAML timestamp forms, tried for quoted
// (JSON) values that the YAML resolver leaves as strings.
var timestampLayouts = []string{
	"2006-1-2T15:4:5.999999999Z07:00",
	"2006-1-2t15:4:5.999999999Z07:00",
	"2006-1-2 15:4:5.999999999",
	"2006-1-2",
}

// decodeRecord reads a record mapping. Quoted (JSON) and plain
// (YAML) timestamps decode alike.
func decodeRecord(n *yaml.Node) (*Record, error) {
	rec := &Record{}
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i].Value, n.Content[i+1]
		if isNullNode(val) {
			continue
		}
		switch key {
		case "id":
			if err := val.Decode(&rec.ID); err != nil {
				return nil, fmt.Errorf("decode id: %w", err)
			}
		case "created_on":
			ts, err := decodeTime(val)
			if err != nil {
				return nil, fmt.Errorf("decode created_on: %w", err)
			}
			rec.CreatedOn = &ts
		case "created_by_id":
			var id int64
			if err := val.Decode(&id); err != nil {
				return nil, fmt.Errorf("decode created_by_id: %w", err)
			}
			rec.CreatedByID = &id
		default:
			return nil, fmt.Errorf("unknown record field %q", key)
		}
	}
	return rec, nil
}

func decodeTime(n *yaml.Node) (time.Time, error) {
	var ts time.Time
	if n.Tag != "!!str" {
		err := n.Decode(&ts)
		return ts, err
	}
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, n.Value); err == nil {
			return ts, nil
		}
	}
	return ts, fmt.Errorf("line %d: %q is not a timestamp", n.Line, n.Value)
}
