// Package ports defines the persistence contracts of the tour, booking and
// approval aggregates. Adapters implement them; command handlers consume
// them through a unit of work.
package ports

import (
	"context"

	"shipping/internal/core/domain/model/tour"
)

// TourRepository persists tour aggregates.
type TourRepository interface {
	// Add inserts a new tour and assigns the store-generated id to it.
	Add(ctx context.Context, aggregate *tour.Tour) error

	// Get loads a tour. Returns *errs.ObjectNotFoundError when missing.
	Get(ctx context.Context, id int64) (*tour.Tour, error)

	// Update writes the tour guarded by the status and remaining capacity it
	// was loaded with:
	//
	//	UPDATE tours SET ... WHERE id = ? AND status = ? AND remaining_capacity = ?
	//
	// Zero affected rows means another transaction changed the tour first and
	// yields *errs.StaleStateError.
	Update(ctx context.Context, aggregate *tour.Tour) error
}
