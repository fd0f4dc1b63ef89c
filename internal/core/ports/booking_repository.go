package ports

import (
	"context"

	"shipping/internal/core/domain/model/booking"
	"shipping/internal/core/domain/model/kernel"
)

// BookingRepository persists booking aggregates and the bulk cascade writes.
type BookingRepository interface {
	Add(ctx context.Context, aggregate *booking.Booking) error

	// Get loads a booking. Returns *errs.ObjectNotFoundError when missing.
	Get(ctx context.Context, id kernel.UUID) (*booking.Booking, error)

	// Update writes the booking guarded by the status it was loaded with.
	// Returns *errs.StaleStateError when that status changed meanwhile.
	Update(ctx context.Context, aggregate *booking.Booking) error

	// TransitionAll moves every booking of the tour in status from to status
	// to and returns how many rows were touched. from == to reasserts the
	// status and still counts the rows.
	TransitionAll(ctx context.Context, tourID int64, from, to booking.Status) (int64, error)

	// WeightInStatus sums the weight of the tour's bookings in status.
	WeightInStatus(ctx context.Context, tourID int64, status booking.Status) (int, error)

	// ReservedWeight sums the weight of the tour's non-cancelled bookings.
	ReservedWeight(ctx context.Context, tourID int64) (int, error)

	// ActivePickupCities lists the distinct pickup cities of non-cancelled bookings.
	ActivePickupCities(ctx context.Context, tourID int64) ([]string, error)
}
