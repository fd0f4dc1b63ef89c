package queries

import (
	"errors"

	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrGetCapacityDriftQueryIsNotConstructed = errors.New(
	"GetCapacityDriftQuery must be created via NewGetCapacityDriftQuery constructor",
)

// GetCapacityDriftQuery finds tours whose stored remaining capacity differs
// from total minus the weight of their non-cancelled bookings.
type GetCapacityDriftQuery struct {
	tourID int64

	guard guard.ConstructorGuard
}

// NewGetCapacityDriftQuery audits every tour.
func NewGetCapacityDriftQuery() GetCapacityDriftQuery {
	return GetCapacityDriftQuery{guard: guard.NewConstructorGuard()}
}

// NewGetCapacityDriftQueryForTour audits a single tour.
func NewGetCapacityDriftQueryForTour(tourID int64) (GetCapacityDriftQuery, error) {
	if tourID <= 0 {
		return GetCapacityDriftQuery{}, errs.NewValueIsOutOfRangeError("tour id", tourID, 1, "max int64")
	}
	return GetCapacityDriftQuery{tourID: tourID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCapacityDriftQuery) Validate() error {
	return q.guard.Validate(ErrGetCapacityDriftQueryIsNotConstructed)
}

// TourID is the audited tour, 0 for all tours.
func (q GetCapacityDriftQuery) TourID() int64 {
	return q.tourID
}

// CapacityDrift describes one inconsistent tour. Drift is stored minus
// computed remaining capacity.
type CapacityDrift struct {
	TourID            int64
	TotalCapacity     int
	RemainingCapacity int
	ReservedWeight    int
	Drift             int
}
