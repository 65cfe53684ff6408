package factory

import (
	"fmt"
	"time"
)

// UserStub is a minimal entity that is both Creatable and HasID.
type UserStub struct {
	ID          int64      `json:"id" yaml:"id"`
	Email       string     `json:"email" yaml:"email"`
	CreatedOn   *time.Time `json:"created_on" yaml:"created_on"`
	CreatedByID *int64     `json:"created_by_id" yaml:"created_by_id"`
}

// GetID returns the stub id, or 0 for a nil stub.
func (u *UserStub) GetID() int64 {
	if u == nil {
		return 0
	}
	return u.ID
}

// GetCreatedOn returns the creation time.
func (u *UserStub) GetCreatedOn() *time.Time {
	if u == nil {
		return nil
	}
	return u.CreatedOn
}

// GetCreatedByID returns the creator id.
func (u *UserStub) GetCreatedByID() *int64 {
	if u == nil {
		return nil
	}
	return u.CreatedByID
}

// UserOption customises a UserStub built by BuildUser.
type UserOption func(*UserStub)

// BuildUser returns a stub with a random id and email, a recent
// creation time and a random creator. Options run in order.
func BuildUser(opts ...UserOption) *UserStub {
	id := RandomID()
	createdOn := RecentTime()
	createdBy := RandomID()

	u := &UserStub{
		ID:          id,
		Email:       fmt.Sprintf("user%d@example.com", id),
		CreatedOn:   &createdOn,
		CreatedByID: &createdBy,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// WithUserID sets the stub id.
func WithUserID(id int64) UserOption {
	return func(u *UserStub) { u.ID = id }
}

// WithCreatedOn sets the creation time. A nil time clears it.
func WithCreatedOn(at *time.Time) UserOption {
	return func(u *UserStub) { u.CreatedOn = at }
}

// WithCreatedByID sets the creator id. A nil id clears it.
func WithCreatedByID(id *int64) UserOption {
	return func(u *UserStub) { u.CreatedByID = id }
}

// WithCreatedBy sets the creator id to creator's id.
func WithCreatedBy(creator *UserStub) UserOption {
	return func(u *UserStub) {
		id := creator.GetID()
		u.CreatedByID = &id
	}
}
