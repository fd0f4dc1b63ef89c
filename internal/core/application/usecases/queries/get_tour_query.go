package queries

import (
	"errors"
	"time"

	"shipping/internal/core/domain/model/booking"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/tour"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrGetTourQueryIsNotConstructed = errors.New(
	"GetTourQuery must be created via NewGetTourQuery constructor",
)

// GetTourQuery reads one tour with its booking counts per status.
type GetTourQuery struct {
	tourID int64

	guard guard.ConstructorGuard
}

func NewGetTourQuery(tourID int64) (GetTourQuery, error) {
	if tourID <= 0 {
		return GetTourQuery{}, errs.NewValueIsOutOfRangeError("tour id", tourID, 1, "max int64")
	}
	return GetTourQuery{tourID: tourID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetTourQuery) Validate() error {
	return q.guard.Validate(ErrGetTourQueryIsNotConstructed)
}

func (q GetTourQuery) TourID() int64 {
	return q.tourID
}

// RouteStop is a stop as listed to callers.
type RouteStop struct {
	Name           string `json:"name"`
	CollectionDate string `json:"collection_date"`
}

// GetTourQueryResponse is the tour view. BookingCounts has an entry for
// every booking status, zero included.
type GetTourQueryResponse struct {
	ID                 int64
	CarrierID          kernel.UUID
	Type               tour.Type
	Status             tour.Status
	StatusLabel        string
	StatusColor        string
	OriginCountry      string
	DestinationCountry string
	CollectionDate     time.Time
	DepartureDate      time.Time
	Route              []RouteStop
	TotalCapacity      int
	RemainingCapacity  int
	BookingCounts      map[booking.Status]int
}
