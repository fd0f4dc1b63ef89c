package errs

import (
	"errors"
	"fmt"
)

// ErrStaleState is returned when a conditional write finds the row changed since it was read.
var ErrStaleState = errors.New("stale state")

// StaleStateError identifies the row whose guarded update matched nothing.
type StaleStateError struct {
	Entity string
	ID     any
}

func NewStaleStateError(entity string, id any) *StaleStateError {
	return &StaleStateError{Entity: entity, ID: id}
}

func (e *StaleStateError) Error() string {
	return fmt.Sprintf("%s: %s %v was modified concurrently", ErrStaleState, e.Entity, e.ID)
}

func (e *StaleStateError) Unwrap() error {
	return ErrStaleState
}
