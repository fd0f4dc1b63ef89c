// Package commands contains the operations that change tours, bookings and
// approval requests. Every handler validates its command, opens one unit of
// work, lets the domain services mutate the loaded aggregates and commits
// all writes together.
package commands

import (
	"context"

	"shipping/internal/core/ports"
)

// Unit of Work interfaces narrowed to the repositories each handler needs.
type (
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	TourRepoFactory interface {
		TourRepository() ports.TourRepository
	}

	BookingRepoFactory interface {
		BookingRepository() ports.BookingRepository
	}

	ApprovalRepoFactory interface {
		ApprovalRepository() ports.ApprovalRepository
	}

	// TourUoW is used by commands touching tours only.
	TourUoW interface {
		TxManager
		TourRepoFactory
	}

	TourUoWFactory interface {
		Create() TourUoW
	}

	// BookingUoW spans a tour and its bookings: cascades, booking actions,
	// tour edits and capacity reconciliation.
	BookingUoW interface {
		TxManager
		TourRepoFactory
		BookingRepoFactory
	}

	BookingUoWFactory interface {
		Create() BookingUoW
	}

	// ApprovalUoW spans a private tour and its approval requests.
	ApprovalUoW interface {
		TxManager
		TourRepoFactory
		ApprovalRepoFactory
	}

	ApprovalUoWFactory interface {
		Create() ApprovalUoW
	}

	// UoW spans all three aggregates. Booking creation needs it to check the
	// approval gate of private tours.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   tr, err := uow.TourRepository().Get(ctx, tourID)
	//   latest, err := uow.ApprovalRepository().Latest(ctx, tourID, clientID)
	//   // ... reserve capacity, add the booking, update the tour
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		TourRepoFactory
		BookingRepoFactory
		ApprovalRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)
