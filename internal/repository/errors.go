package repository

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a lookup by id matches no row
	ErrNotFound = errors.New("not found")
)

// CreateError is returned when the store rejects a new row
type CreateError struct {
	Entity string
	Reason string
	Err    error
}

func (e *CreateError) Error() string {
	return fmt.Sprintf("CreateError: Failed to create %s due to: %s", e.Entity, e.Reason)
}

func (e *CreateError) Unwrap() error { return e.Err }

// UpdateError is returned when the store rejects a change to an existing row
type UpdateError struct {
	Entity string
	Reason string
	Err    error
}

func (e *UpdateError) Error() string {
	return fmt.Sprintf("UpdateError: Failed to update %s due to: %s", e.Entity, e.Reason)
}

func (e *UpdateError) Unwrap() error { return e.Err }

// DeleteError is returned when a row could not be removed or soft-deleted
type DeleteError struct {
	Entity string
	Reason string
	Err    error
}

func (e *DeleteError) Error() string {
	return fmt.Sprintf("DeleteError: Failed to delete %s due to: %s", e.Entity, e.Reason)
}

func (e *DeleteError) Unwrap() error { return e.Err }
