package outcome

import (
	"errors"
	"fmt"
	"testing"

	perrors "github.com/jmgilman/go/errors"
	"github.com/stretchr/testify/assert"
)

func TestError_Error(t *testing.T) {
	assert.Equal(t, "name: is required",
		NewError("name", "is required").Error())
	assert.Equal(t, "name", NewError("name", "").Error())
}

func TestFromError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantKey string
		wantMsg string
	}{
		{
			name:    "nil error",
			err:     nil,
			wantKey: "",
		},
		{
			name:    "plain error",
			err:     errors.New("disk full"),
			wantKey: BasicErrorKey,
			wantMsg: "disk full",
		},
		{
			name:    "outcome error passes through",
			err:     NewError("email", "taken"),
			wantKey: "email",
			wantMsg: "taken",
		},
		{
			name: "wrapped outcome error",
			err: fmt.Errorf(
				"create user: %w", NewError("email", "taken"),
			),
			wantKey: "email",
			wantMsg: "taken",
		},
		{
			name:    "not found code",
			err:     perrors.New(perrors.CodeNotFound, "user 7 not found"),
			wantKey: ResourceNotFoundErrorKey,
			wantMsg: "user 7 not found",
		},
		{
			name:    "other code",
			err:     perrors.New(perrors.CodeConflict, "version mismatch"),
			wantKey: "conflict",
			wantMsg: "version mismatch",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromError(tt.err)
			assert.Equal(t, tt.wantKey, got.Key)
			assert.Equal(t, tt.wantMsg, got.Message)
		})
	}
}

func TestFromGoError(t *testing.T) {
	r := FromGoError[*record](
		perrors.New(perrors.CodeNotFound, "missing"),
	)

	assert.False(t, r.HasResultObject())
	assert.Equal(t, ErrorsPresent, r.ErrorsState())
	assert.True(t, r.HasErrorsFor(ResourceNotFoundErrorKey))
}
