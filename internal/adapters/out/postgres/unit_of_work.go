// Package postgres implements the Unit of Work over GORM transactions.
//
// A unit of work spans one command. Repositories handed out after Begin share
// the transaction, so the guarded tour write, the booking writes and the bulk
// cascade of a command commit or roll back together.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	tr, err := uow.TourRepository().Get(ctx, tourID)
//	if err != nil {
//	    return err
//	}
//	// ... change tr and its bookings
//	if err := uow.TourRepository().Update(ctx, tr); err != nil {
//	    return err // *errs.StaleStateError on a concurrent change
//	}
//
//	return uow.Commit(ctx)
//
// Concurrency:
//   - Each UnitOfWork instance owns its own transaction; goroutines must not share one
//   - Conflicting writers are detected by the guarded updates of the repositories,
//     not by locks held across the request
package postgres

import (
	"context"

	"shipping/internal/adapters/out/postgres/approvalrepo"
	"shipping/internal/adapters/out/postgres/bookingrepo"
	"shipping/internal/adapters/out/postgres/tourrepo"
	"shipping/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate is an aggregate written during the unit of work.
type trackedAggregate struct {
	ID        string
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances on one GORM connection pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	factory := NewGormUnitOfWorkFactory(db)
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a fresh unit of work with empty tracking state.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and records the
// aggregates written through its repositories.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin opens the transaction. Calling it twice keeps the first transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit makes every write of the transaction permanent and closes it.
// It returns gorm.ErrInvalidTransaction when no transaction is open.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the transaction. After Commit it returns
// gorm.ErrInvalidTransaction and does nothing, which is what lets handlers
// defer it unconditionally.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

func (uow *GormUnitOfWork) TourRepository() ports.TourRepository {
	return tourrepo.NewGormTourRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) BookingRepository() ports.BookingRepository {
	return bookingrepo.NewGormBookingRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) ApprovalRepository() ports.ApprovalRepository {
	return approvalrepo.NewGormApprovalRepository(uow.conn(), uow)
}

// TrackAggregate registers an aggregate written within this unit of work.
// Repositories call it after each successful write.
func (uow *GormUnitOfWork) TrackAggregate(id string, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// TrackedAggregates returns the aggregates written so far, oldest first.
func (uow *GormUnitOfWork) TrackedAggregates() []any {
	out := make([]any, 0, len(uow.trackedAggregates))
	for _, t := range uow.trackedAggregates {
		out = append(out, t.Aggregate)
	}
	return out
}

// conn returns the open transaction, or the pool outside of one.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// Migrate creates or updates the tables of every repository.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&tourrepo.TourDTO{},
		&bookingrepo.BookingDTO{},
		&approvalrepo.ApprovalRequestDTO{},
	)
}
