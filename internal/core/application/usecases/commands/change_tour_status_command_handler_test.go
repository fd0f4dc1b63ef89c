package commands_test

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/booking"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/tour"
	"shipping/internal/core/domain/services"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newChangeTourStatusHandler(t *testing.T, factory *MockBookingUoWFactory, policy services.CancellationPolicy) commands.ChangeTourStatusCommandHandler {
	t.Helper()
	coordinator, err := services.NewCascadeCoordinator(policy)
	require.NoError(t, err)
	return commands.NewChangeTourStatusCommandHandler(factory, coordinator, discardLogger())
}

func TestChangeTourStatusCommandHandler_Handle_CascadesCollected(t *testing.T) {
	ctx := t.Context()
	carrierID := kernel.NewUUID()
	carrier := newActor(t, carrierID, kernel.RoleCarrier)
	tr := restoreTour(t, 7, carrierID, tour.Public, tour.Collecting, 1000, 950)

	cmd, err := commands.NewChangeTourStatusCommand(carrier, 7, tour.InTransit)
	require.NoError(t, err)

	tourRepo := new(MockTourRepository)
	bookingRepo := new(MockBookingRepository)
	uow := new(MockUoW)
	factory := new(MockBookingUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TourRepository").Return(tourRepo).Once(),
		uow.On("BookingRepository").Return(bookingRepo).Once(),
		tourRepo.On("Get", ctx, int64(7)).Return(tr, nil).Once(),
		tourRepo.On("Update", ctx, tr).Return(nil).Once(),
		bookingRepo.On("TransitionAll", ctx, int64(7), booking.Collected, booking.InTransit).Return(int64(1), nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := newChangeTourStatusHandler(t, factory, services.RetainBookings)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(1), result.CascadedBookings)
	assert.Equal(t, tour.InTransit, result.Tour.Status())
	tourRepo.AssertExpectations(t)
	bookingRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestChangeTourStatusCommandHandler_Handle_NoCascade(t *testing.T) {
	ctx := t.Context()
	carrierID := kernel.NewUUID()
	tr := restoreTour(t, 7, carrierID, tour.Public, tour.InTransit, 1000, 950)
	cmd, err := commands.NewChangeTourStatusCommand(newActor(t, carrierID, kernel.RoleCarrier), 7, tour.Completed)
	require.NoError(t, err)

	tourRepo := new(MockTourRepository)
	bookingRepo := new(MockBookingRepository)
	uow := new(MockUoW)
	factory := new(MockBookingUoWFactory)

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("TourRepository").Return(tourRepo).Once()
	uow.On("BookingRepository").Return(bookingRepo).Once()
	tourRepo.On("Get", ctx, int64(7)).Return(tr, nil).Once()
	tourRepo.On("Update", ctx, tr).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := newChangeTourStatusHandler(t, factory, services.RetainBookings)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Zero(t, result.CascadedBookings)
	bookingRepo.AssertNotCalled(t, "TransitionAll", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestChangeTourStatusCommandHandler_Handle_CancelledTourRejected(t *testing.T) {
	ctx := t.Context()
	carrierID := kernel.NewUUID()
	carrier := newActor(t, carrierID, kernel.RoleCarrier)

	for _, target := range tour.Statuses() {
		t.Run(target.String(), func(t *testing.T) {
			tr := restoreTour(t, 7, carrierID, tour.Public, tour.Cancelled, 1000, 1000)
			cmd, err := commands.NewChangeTourStatusCommand(carrier, 7, target)
			require.NoError(t, err)

			tourRepo := new(MockTourRepository)
			bookingRepo := new(MockBookingRepository)
			uow := new(MockUoW)
			factory := new(MockBookingUoWFactory)

			factory.On("Create").Return(uow).Once()
			uow.On("Begin", ctx).Return(nil).Once()
			uow.On("TourRepository").Return(tourRepo).Once()
			uow.On("BookingRepository").Return(bookingRepo).Once()
			tourRepo.On("Get", ctx, int64(7)).Return(tr, nil).Once()
			uow.On("Rollback", ctx).Return(nil).Once()

			handler := newChangeTourStatusHandler(t, factory, services.RetainBookings)
			_, err = handler.Handle(ctx, cmd)

			require.ErrorIs(t, err, errs.ErrInvalidTransition)
			tourRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
			uow.AssertNotCalled(t, "Commit", mock.Anything)
		})
	}
}

func TestChangeTourStatusCommandHandler_Handle_CascadeFailureRollsBack(t *testing.T) {
	ctx := t.Context()
	carrierID := kernel.NewUUID()
	tr := restoreTour(t, 7, carrierID, tour.Public, tour.InTransit, 1000, 950)
	cmd, err := commands.NewChangeTourStatusCommand(newActor(t, carrierID, kernel.RoleCarrier), 7, tour.Collecting)
	require.NoError(t, err)

	tourRepo := new(MockTourRepository)
	bookingRepo := new(MockBookingRepository)
	uow := new(MockUoW)
	factory := new(MockBookingUoWFactory)

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("TourRepository").Return(tourRepo).Once()
	uow.On("BookingRepository").Return(bookingRepo).Once()
	tourRepo.On("Get", ctx, int64(7)).Return(tr, nil).Once()
	tourRepo.On("Update", ctx, tr).Return(nil).Once()
	bookingRepo.On("TransitionAll", ctx, int64(7), booking.InTransit, booking.Collected).
		Return(int64(0), errors.New("connection reset")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := newChangeTourStatusHandler(t, factory, services.RetainBookings)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

func TestChangeTourStatusCommandHandler_Handle_StaleTour(t *testing.T) {
	ctx := t.Context()
	carrierID := kernel.NewUUID()
	tr := restoreTour(t, 7, carrierID, tour.Public, tour.Planned, 1000, 1000)
	cmd, err := commands.NewChangeTourStatusCommand(newActor(t, carrierID, kernel.RoleCarrier), 7, tour.Collecting)
	require.NoError(t, err)

	tourRepo := new(MockTourRepository)
	bookingRepo := new(MockBookingRepository)
	uow := new(MockUoW)
	factory := new(MockBookingUoWFactory)

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("TourRepository").Return(tourRepo).Once()
	uow.On("BookingRepository").Return(bookingRepo).Once()
	tourRepo.On("Get", ctx, int64(7)).Return(tr, nil).Once()
	tourRepo.On("Update", ctx, tr).Return(errs.NewStaleStateError("tour", int64(7))).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := newChangeTourStatusHandler(t, factory, services.RetainBookings)
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrStaleState)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestChangeTourStatusCommandHandler_Handle_CancelPendingReleasesWeight(t *testing.T) {
	ctx := t.Context()
	carrierID := kernel.NewUUID()
	tr := restoreTour(t, 7, carrierID, tour.Public, tour.Collecting, 1000, 700)
	cmd, err := commands.NewChangeTourStatusCommand(newActor(t, carrierID, kernel.RoleCarrier), 7, tour.Cancelled)
	require.NoError(t, err)

	tourRepo := new(MockTourRepository)
	bookingRepo := new(MockBookingRepository)
	uow := new(MockUoW)
	factory := new(MockBookingUoWFactory)

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("TourRepository").Return(tourRepo).Once()
	uow.On("BookingRepository").Return(bookingRepo).Once()
	tourRepo.On("Get", ctx, int64(7)).Return(tr, nil).Once()
	bookingRepo.On("WeightInStatus", ctx, int64(7), booking.Pending).Return(250, nil).Once()
	tourRepo.On("Update", ctx, tr).Return(nil).Once()
	bookingRepo.On("TransitionAll", ctx, int64(7), booking.Pending, booking.Cancelled).Return(int64(9), nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := newChangeTourStatusHandler(t, factory, services.CancelPendingBookings)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(9), result.CascadedBookings)
	assert.Equal(t, 950, tr.RemainingCapacity())
	assert.Equal(t, tour.Cancelled, tr.Status())
	bookingRepo.AssertExpectations(t)
}

func TestChangeTourStatusCommandHandler_Handle_Forbidden(t *testing.T) {
	ctx := t.Context()
	tr := restoreTour(t, 7, kernel.NewUUID(), tour.Public, tour.Planned, 1000, 1000)
	cmd, err := commands.NewChangeTourStatusCommand(newActor(t, kernel.NewUUID(), kernel.RoleCarrier), 7, tour.Collecting)
	require.NoError(t, err)

	tourRepo := new(MockTourRepository)
	bookingRepo := new(MockBookingRepository)
	uow := new(MockUoW)
	factory := new(MockBookingUoWFactory)

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("TourRepository").Return(tourRepo).Once()
	uow.On("BookingRepository").Return(bookingRepo).Once()
	tourRepo.On("Get", ctx, int64(7)).Return(tr, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := newChangeTourStatusHandler(t, factory, services.RetainBookings)
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrForbidden)
}

func TestChangeTourStatusCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockBookingUoWFactory)
	handler := newChangeTourStatusHandler(t, factory, services.RetainBookings)

	_, err := handler.Handle(t.Context(), commands.ChangeTourStatusCommand{})

	require.ErrorIs(t, err, commands.ErrChangeTourStatusCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestChangeTourStatusCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewChangeTourStatusCommand(newActor(t, kernel.NewUUID(), kernel.RoleCarrier), 7, tour.Collecting)
	require.NoError(t, err)

	uow := new(MockUoW)
	factory := new(MockBookingUoWFactory)
	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(errors.New("begin error")).Once()

	handler := newChangeTourStatusHandler(t, factory, services.RetainBookings)
	_, err = handler.Handle(ctx, cmd)

	require.EqualError(t, err, "begin error")
}
