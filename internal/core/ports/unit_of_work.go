package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork for each command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the transaction boundary of a command. Every repository it
// returns after Begin shares the same transaction, so a tour write and the
// booking writes it implies commit or roll back together.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	// Rollback after Commit returns an error and changes nothing,
	// so handlers may defer it unconditionally.
	Rollback(ctx context.Context) error

	TourRepository() TourRepository
	BookingRepository() BookingRepository
	ApprovalRepository() ApprovalRepository
}
