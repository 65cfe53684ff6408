package scenario

import (
	"errors"
	"fmt"
	"time"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// ErrInvalidScenario is wrapped by every schema violation.
var ErrInvalidScenario = errors.New("invalid scenario file")

// Schema is the CUE definition every scenario file must satisfy.
const Schema = `
#Error: {
	key:      string
	message?: string
}

#Record: {
	id?:            int
	created_on?:    null | string
	created_by_id?: null | int
}

#Outcome: {
	value?:  null | bool | #Record
	errors?: null | [...#Error]
}

#Expectation: {
	matcher:    string & =~"^[a-z][a-z0-9_]*$"
	key?:       string
	id?:        int
	entity_id?: int
	pass?:      bool
	reason?:    string
}

#Scenario: {
	name:         string & !=""
	description?: string
	outcome?:     null | #Outcome
	expect: [#Expectation, ...#Expectation]
}

#File: {
	version?: string
	scenarios!: [#Scenario, ...#Scenario]
}
`

// Validate checks a generically decoded scenario document
// against Schema.
func Validate(doc any) error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(Schema, cue.Filename("scenario.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile scenario schema: %w", err)
	}

	value := ctx.Encode(normalize(doc))
	if err := value.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}

	unified := schema.LookupPath(cue.ParsePath("#File")).Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}
	return nil
}

// normalize converts YAML decoder output into values CUE can
// encode: timestamps become RFC 3339 strings and mapping keys
// become strings.
func normalize(v any) any {
	switch t := v.(type) {
	case time.Time:
		return t.Format(time.RFC3339Nano)
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = normalize(val)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = normalize(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = normalize(val)
		}
		return out
	default:
		return v
	}
}
