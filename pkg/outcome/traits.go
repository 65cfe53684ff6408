package outcome

import "time"

// Creatable is satisfied by values that record when and by whom
// they were created. Both getters return nil when unset.
type Creatable interface {
	GetCreatedOn() *time.Time
	GetCreatedByID() *int64
}

// HasID is satisfied by entities identified by an integer id.
type HasID interface {
	GetID() int64
}
