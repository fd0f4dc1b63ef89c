package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "shipping/internal/adapters/out/postgres"
	"shipping/internal/core/domain/model/booking"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/tour"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite runs the unit of work against a real
// PostgreSQL container.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(30*time.Second)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(db))
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE tours, bookings, approval_requests RESTART IDENTITY").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestFactoryCreatesSeparateInstances() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2)
	suite.NotNil(uow1.TourRepository())
	suite.NotNil(uow1.BookingRepository())
	suite.NotNil(uow2.ApprovalRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "second Begin keeps the open transaction")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction, "rollback after commit is a no-op")
	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommitWritesTourAndBookingTogether() {
	ctx := context.Background()
	tr := suite.newTour()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.TourRepository().Add(ctx, tr))

	b := suite.newBooking(tr, 20)
	suite.Require().NoError(tr.Reserve(b.Weight()))
	suite.Require().NoError(uow.TourRepository().Update(ctx, tr))
	suite.Require().NoError(uow.BookingRepository().Add(ctx, b))
	suite.Require().NoError(uow.Commit(ctx))

	reader := suite.factory.Create()
	stored, err := reader.TourRepository().Get(ctx, tr.ID())
	suite.Require().NoError(err)
	suite.Equal(980, stored.RemainingCapacity())

	reserved, err := reader.BookingRepository().ReservedWeight(ctx, tr.ID())
	suite.Require().NoError(err)
	suite.Equal(20, reserved)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollbackDiscardsEveryWrite() {
	ctx := context.Background()
	tr := suite.addTour()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	loaded, err := uow.TourRepository().Get(ctx, tr.ID())
	suite.Require().NoError(err)

	b := suite.newBooking(loaded, 25)
	suite.Require().NoError(loaded.Reserve(b.Weight()))
	suite.Require().NoError(uow.TourRepository().Update(ctx, loaded))
	suite.Require().NoError(uow.BookingRepository().Add(ctx, b))
	suite.Require().NoError(uow.Rollback(ctx))

	reader := suite.factory.Create()
	stored, err := reader.TourRepository().Get(ctx, tr.ID())
	suite.Require().NoError(err)
	suite.Equal(1000, stored.RemainingCapacity())

	_, err = reader.BookingRepository().Get(ctx, b.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestConcurrentTourWriteIsStale() {
	ctx := context.Background()
	tr := suite.addTour()

	first := suite.factory.Create()
	second := suite.factory.Create()
	suite.Require().NoError(first.Begin(ctx))
	suite.Require().NoError(second.Begin(ctx))

	a, err := first.TourRepository().Get(ctx, tr.ID())
	suite.Require().NoError(err)
	b, err := second.TourRepository().Get(ctx, tr.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(a.Reserve(30))
	suite.Require().NoError(first.TourRepository().Update(ctx, a))
	suite.Require().NoError(first.Commit(ctx))

	_, err = b.ChangeStatus(tour.Collecting)
	suite.Require().NoError(err)
	err = second.TourRepository().Update(ctx, b)
	suite.Require().ErrorIs(err, errs.ErrStaleState)
	suite.Require().NoError(second.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransitionAllCountsMovedRows() {
	ctx := context.Background()
	tr := suite.addTour()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	for range 3 {
		suite.Require().NoError(uow.BookingRepository().Add(ctx, suite.newBooking(tr, 10)))
	}
	moved, err := uow.BookingRepository().TransitionAll(ctx, tr.ID(), booking.Pending, booking.Pending)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.Commit(ctx))

	suite.Equal(int64(3), moved)
}

func (suite *UnitOfWorkIntegrationTestSuite) newTour() *tour.Tour {
	day := time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC)
	schedule, err := tour.NewSchedule("FR", "MA", day, day.AddDate(0, 0, 3))
	suite.Require().NoError(err)
	stop, err := tour.NewStop("Lyon", day)
	suite.Require().NoError(err)
	tr, err := tour.NewTour(kernel.NewUUID(), tour.Public, schedule, []tour.Stop{stop}, 1000)
	suite.Require().NoError(err)
	return tr
}

func (suite *UnitOfWorkIntegrationTestSuite) addTour() *tour.Tour {
	ctx := context.Background()
	tr := suite.newTour()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.TourRepository().Add(ctx, tr))
	suite.Require().NoError(uow.Commit(ctx))
	return tr
}

func (suite *UnitOfWorkIntegrationTestSuite) newBooking(tr *tour.Tour, weight int) *booking.Booking {
	details, err := booking.NewDetails("Casablanca", "12 boulevard Anfa", "Karim", "+212600000000", nil, nil)
	suite.Require().NoError(err)
	b, err := booking.NewBooking(tr, kernel.NewUUID(), "lyon", weight, details, time.Now())
	suite.Require().NoError(err)
	return b
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test needs docker")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
