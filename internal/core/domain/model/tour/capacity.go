package tour

import (
	"fmt"

	"shipping/internal/pkg/errs"
)

// The capacity ledger. Every method either applies its whole effect or
// leaves the tour untouched; callers persist the result with a write guarded
// by PersistedRemaining.

// TotalCapacity is the tour's capacity in kilograms.
func (t *Tour) TotalCapacity() int {
	return t.totalCapacity
}

// RemainingCapacity is the weight still available for bookings.
func (t *Tour) RemainingCapacity() int {
	return t.remainingCapacity
}

// ReservedCapacity is the weight held by non-cancelled bookings.
func (t *Tour) ReservedCapacity() int {
	return t.totalCapacity - t.remainingCapacity
}

// Reserve takes weight out of the remaining capacity.
//
// Returns *errs.CapacityExceededError if weight > remaining.
func (t *Tour) Reserve(weight int) error {
	if err := validateWeight(weight); err != nil {
		return err
	}
	if weight > t.remainingCapacity {
		return errs.NewCapacityExceededError(t.id, weight, t.remainingCapacity)
	}
	t.remainingCapacity -= weight
	return nil
}

// Release gives weight back to the remaining capacity. Releasing more than
// is reserved would break the ledger and is rejected.
func (t *Tour) Release(weight int) error {
	if err := validateWeight(weight); err != nil {
		return err
	}
	if t.remainingCapacity+weight > t.totalCapacity {
		return errs.NewValueIsOutOfRangeError("released weight", weight, 1, t.ReservedCapacity())
	}
	t.remainingCapacity += weight
	return nil
}

// Resize swaps a reservation of oldWeight for one of newWeight, equivalent
// to Release(oldWeight) followed by Reserve(newWeight). If the new weight
// does not fit, nothing changes.
func (t *Tour) Resize(oldWeight, newWeight int) error {
	if err := validateWeight(oldWeight); err != nil {
		return err
	}
	if err := validateWeight(newWeight); err != nil {
		return err
	}

	freed := t.remainingCapacity + oldWeight
	if freed > t.totalCapacity {
		return errs.NewValueIsOutOfRangeError("released weight", oldWeight, 1, t.ReservedCapacity())
	}
	if newWeight > freed {
		return errs.NewCapacityExceededError(t.id, newWeight, freed)
	}
	t.remainingCapacity = freed - newWeight
	return nil
}

// SetTotalCapacity changes the capacity of a planned tour. The new total
// must still hold the weight already reserved.
func (t *Tour) SetTotalCapacity(total int) error {
	if t.status != Planned {
		return ErrTourIsNotEditable
	}
	reserved := t.ReservedCapacity()
	if total < reserved || total <= 0 {
		return errs.NewValueIsOutOfRangeError("total capacity", total, max(reserved, 1), "unbounded")
	}
	t.totalCapacity = total
	t.remainingCapacity = total - reserved
	return nil
}

// Reconcile resets the remaining capacity from the weight actually held by
// non-cancelled bookings and reports the drift that was corrected.
func (t *Tour) Reconcile(reservedWeight int) (int, error) {
	if reservedWeight < 0 || reservedWeight > t.totalCapacity {
		return 0, errs.NewValueIsOutOfRangeError("reserved weight", reservedWeight, 0, t.totalCapacity)
	}
	expected := t.totalCapacity - reservedWeight
	drift := t.remainingCapacity - expected
	t.remainingCapacity = expected
	return drift, nil
}

func validateWeight(weight int) error {
	if weight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight", fmt.Errorf("%d is not greater than 0", weight))
	}
	return nil
}
