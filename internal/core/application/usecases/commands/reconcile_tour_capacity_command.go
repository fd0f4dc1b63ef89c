package commands

import (
	"errors"

	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrReconcileTourCapacityCommandIsNotConstructed = errors.New(
	"ReconcileTourCapacityCommand must be created via NewReconcileTourCapacityCommand constructor",
)

// ReconcileTourCapacityCommand recomputes a tour's remaining capacity from
// its booking rows. Issued by the capacity audit job, not by users.
type ReconcileTourCapacityCommand struct {
	tourID int64

	guard guard.ConstructorGuard
}

func NewReconcileTourCapacityCommand(tourID int64) (ReconcileTourCapacityCommand, error) {
	if tourID <= 0 {
		return ReconcileTourCapacityCommand{}, errs.NewValueIsOutOfRangeError("tour id", tourID, 1, "max int64")
	}
	return ReconcileTourCapacityCommand{tourID: tourID, guard: guard.NewConstructorGuard()}, nil
}

func (c ReconcileTourCapacityCommand) Validate() error {
	return c.guard.Validate(ErrReconcileTourCapacityCommandIsNotConstructed)
}

func (c ReconcileTourCapacityCommand) TourID() int64 {
	return c.tourID
}
