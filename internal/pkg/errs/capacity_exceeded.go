package errs

import (
	"errors"
	"fmt"
)

// ErrCapacityExceeded is returned when a reservation needs more weight than a tour has left.
var ErrCapacityExceeded = errors.New("capacity exceeded")

// CapacityExceededError carries the requested and remaining weight in kilograms.
type CapacityExceededError struct {
	TourID    int64
	Requested int
	Remaining int
}

func NewCapacityExceededError(tourID int64, requested, remaining int) *CapacityExceededError {
	return &CapacityExceededError{TourID: tourID, Requested: requested, Remaining: remaining}
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("%s: tour %d has %d kg remaining, %d kg requested",
		ErrCapacityExceeded, e.TourID, e.Remaining, e.Requested)
}

func (e *CapacityExceededError) Unwrap() error {
	return ErrCapacityExceeded
}
