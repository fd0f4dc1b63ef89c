package errs

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned for a status change the state machine does not allow.
var ErrInvalidTransition = errors.New("invalid transition")

// InvalidTransitionError names the entity and the rejected From -> To pair.
type InvalidTransitionError struct {
	Entity string
	From   string
	To     string
	Cause  error
}

func NewInvalidTransitionError(entity, from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{Entity: entity, From: from, To: to}
}

func NewInvalidTransitionErrorWithCause(entity, from, to string, cause error) *InvalidTransitionError {
	return &InvalidTransitionError{Entity: entity, From: from, To: to, Cause: cause}
}

func (e *InvalidTransitionError) Error() string {
	return withCause(fmt.Sprintf("%s: %s cannot go from %s to %s", ErrInvalidTransition, e.Entity, e.From, e.To), e.Cause)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}
