package commands_test

import (
	"context"
	"testing"
	"time"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/approval"
	"shipping/internal/core/domain/model/booking"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/tour"
	"shipping/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockTourRepository struct{ mock.Mock }

func (m *MockTourRepository) Add(ctx context.Context, t *tour.Tour) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTourRepository) Get(ctx context.Context, id int64) (*tour.Tour, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tour.Tour), args.Error(1)
}

func (m *MockTourRepository) Update(ctx context.Context, t *tour.Tour) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

type MockBookingRepository struct{ mock.Mock }

func (m *MockBookingRepository) Add(ctx context.Context, b *booking.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingRepository) Get(ctx context.Context, id kernel.UUID) (*booking.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.Booking), args.Error(1)
}

func (m *MockBookingRepository) Update(ctx context.Context, b *booking.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingRepository) TransitionAll(ctx context.Context, tourID int64, from, to booking.Status) (int64, error) {
	args := m.Called(ctx, tourID, from, to)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingRepository) WeightInStatus(ctx context.Context, tourID int64, status booking.Status) (int, error) {
	args := m.Called(ctx, tourID, status)
	return args.Int(0), args.Error(1)
}

func (m *MockBookingRepository) ReservedWeight(ctx context.Context, tourID int64) (int, error) {
	args := m.Called(ctx, tourID)
	return args.Int(0), args.Error(1)
}

func (m *MockBookingRepository) ActivePickupCities(ctx context.Context, tourID int64) ([]string, error) {
	args := m.Called(ctx, tourID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type MockApprovalRepository struct{ mock.Mock }

func (m *MockApprovalRepository) Add(ctx context.Context, r *approval.Request) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockApprovalRepository) Update(ctx context.Context, r *approval.Request) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockApprovalRepository) Get(ctx context.Context, id kernel.UUID) (*approval.Request, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*approval.Request), args.Error(1)
}

func (m *MockApprovalRepository) Latest(ctx context.Context, tourID int64, clientID kernel.UUID) (*approval.Request, error) {
	args := m.Called(ctx, tourID, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*approval.Request), args.Error(1)
}

// MockUoW satisfies every unit of work interface of the package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) TourRepository() ports.TourRepository {
	args := m.Called()
	return args.Get(0).(ports.TourRepository)
}

func (m *MockUoW) BookingRepository() ports.BookingRepository {
	args := m.Called()
	return args.Get(0).(ports.BookingRepository)
}

func (m *MockUoW) ApprovalRepository() ports.ApprovalRepository {
	args := m.Called()
	return args.Get(0).(ports.ApprovalRepository)
}

type MockTourUoWFactory struct{ mock.Mock }

func (m *MockTourUoWFactory) Create() commands.TourUoW {
	args := m.Called()
	return args.Get(0).(commands.TourUoW)
}

type MockBookingUoWFactory struct{ mock.Mock }

func (m *MockBookingUoWFactory) Create() commands.BookingUoW {
	args := m.Called()
	return args.Get(0).(commands.BookingUoW)
}

type MockApprovalUoWFactory struct{ mock.Mock }

func (m *MockApprovalUoWFactory) Create() commands.ApprovalUoW {
	args := m.Called()
	return args.Get(0).(commands.ApprovalUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

// Fixtures.

func newActor(t *testing.T, id kernel.UUID, role kernel.Role) kernel.Actor {
	t.Helper()
	a, err := kernel.NewActor(id, role)
	require.NoError(t, err)
	return a
}

func newSchedule(t *testing.T) tour.Schedule {
	t.Helper()
	day := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	s, err := tour.NewSchedule("BE", "DZ", day, day.AddDate(0, 0, 4))
	require.NoError(t, err)
	return s
}

func newRoute(t *testing.T, names ...string) []tour.Stop {
	t.Helper()
	day := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	route := make([]tour.Stop, 0, len(names))
	for _, name := range names {
		s, err := tour.NewStop(name, day)
		require.NoError(t, err)
		route = append(route, s)
	}
	return route
}

func restoreTour(t *testing.T, id int64, carrier kernel.UUID, typ tour.Type, status tour.Status, total, remaining int) *tour.Tour {
	t.Helper()
	tr, err := tour.RestoreTour(id, carrier, typ, newSchedule(t), newRoute(t, "Brussels", "Liege"), total, remaining, status)
	require.NoError(t, err)
	return tr
}

func newDetails(t *testing.T) booking.Details {
	t.Helper()
	d, err := booking.NewDetails("Algiers", "1 rue Didouche Mourad", "Yacine", "+213550000000", nil, []string{"clothes"})
	require.NoError(t, err)
	return d
}

func restoreBooking(t *testing.T, tourID int64, client kernel.UUID, status booking.Status, weight int) *booking.Booking {
	t.Helper()
	now := time.Date(2026, 3, 20, 8, 0, 0, 0, time.UTC)
	b, err := booking.RestoreBooking(kernel.NewUUID(), tourID, client, status, weight, "Brussels",
		newDetails(t), booking.NewTrackingNumber(), now, now)
	require.NoError(t, err)
	return b
}
