package matcher

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/sebdah/goldie/v2"

	"digital.vasic.outcomes/pkg/factory"
	"digital.vasic.outcomes/pkg/outcome"
)

// TestFailureMessages_Golden pins the diagnostic text of every
// failure reason. Regenerate with: go test ./pkg/matcher -update
func TestFailureMessages_Golden(t *testing.T) {
	creatorless := &outcome.Result[*factory.UserStub]{
		ResultObject: &factory.UserStub{ID: 1},
	}
	created := &outcome.Result[*factory.UserStub]{
		ResultObject: &factory.UserStub{
			ID:          1,
			CreatedByID: factory.Ptr(int64(42)),
		},
	}
	flagged := &outcome.Result[bool]{
		ResultObject: true,
		Errors:       []outcome.Error{outcome.NewError("x", "")},
	}
	keyed := outcome.Failure[any](
		outcome.NewError("name", "required"),
		outcome.NewError("age", "too low"),
	)

	cases := []struct {
		name string
		err  error
	}{
		{"created/nil outcome", CheckCreated[*factory.UserStub](nil)},
		{"created/nil value", CheckCreated(&outcome.Result[*factory.UserStub]{})},
		{"created/nil created on", CheckCreated(creatorless)},
		{"created_by/nil creator", CheckCreatedBy(creatorless, 42)},
		{"created_by/mismatch", CheckCreatedBy(created, 43)},
		{"created_by_entity/nil entity", CheckCreatedByEntity(created, (*factory.UserStub)(nil))},
		{"errors/null", CheckErrors(&outcome.Result[any]{})},
		{"errors/empty", CheckErrors(&outcome.Result[any]{Errors: []outcome.Error{}})},
		{"errors/true flag", CheckErrors(flagged)},
		{"errors_for/null", CheckErrorsFor(&outcome.Result[any]{}, "email")},
		{"errors_for/missing", CheckErrorsFor(keyed, "email")},
		{"basic/missing", CheckBasicError(outcome.Failure[any](outcome.NewError(outcome.ResourceNotFoundErrorKey, "")))},
		{"not_found/empty", CheckResourceNotFoundError(&outcome.Result[any]{Errors: []outcome.Error{}})},
		{"no_errors/present", CheckNoErrors(outcome.Failure[any](outcome.NewError(outcome.BasicErrorKey, "")))},
	}

	var buf bytes.Buffer
	for _, c := range cases {
		fmt.Fprintf(&buf, "%s | %s | %v\n", c.name, ReasonOf(c.err), c.err)
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "failure_messages", buf.Bytes())
}
