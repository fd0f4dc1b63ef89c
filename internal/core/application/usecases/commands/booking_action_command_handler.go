package commands

import (
	"context"
	"errors"
	"time"

	"shipping/internal/core/domain/model/booking"
	"shipping/internal/core/domain/services"
	"shipping/internal/pkg/errs"
)

// BookingActionCommandHandler runs the direct booking status actions:
// cancel, reinstate and the generic status change.
//
// Every action writes the parent tour with its guarded update, even when the
// capacity does not change. That serializes booking actions with tour
// transitions on the tour row, so a booking can never be collected under a
// tour that concurrently left the collecting stage.
type BookingActionCommandHandler struct {
	uowFactory BookingUoWFactory
	lifecycle  services.BookingLifecycle
}

func NewBookingActionCommandHandler(uowFactory BookingUoWFactory, lifecycle services.BookingLifecycle) BookingActionCommandHandler {
	return BookingActionCommandHandler{
		uowFactory: uowFactory,
		lifecycle:  lifecycle,
	}
}

// Cancel moves a pending booking to cancelled and releases its weight.
func (h *BookingActionCommandHandler) Cancel(ctx context.Context, cmd CancelBookingCommand) (*booking.Booking, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	return h.transition(ctx, cmd.bookingAction, booking.Cancelled, nil)
}

// Reinstate moves a cancelled booking back to pending. It fails with
// *errs.CapacityExceededError when the weight no longer fits, and with
// *errs.InvalidTransitionError when the tour is past collection.
func (h *BookingActionCommandHandler) Reinstate(ctx context.Context, cmd ReinstateBookingCommand) (*booking.Booking, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	return h.transition(ctx, cmd.bookingAction, booking.Pending, func(b *booking.Booking) error {
		if b.Status() != booking.Cancelled {
			return errs.NewInvalidTransitionErrorWithCause("booking", b.Status().String(), booking.Pending.String(),
				errors.New("only cancelled bookings can be reinstated"))
		}
		return nil
	})
}

// ChangeStatus applies any transition of the booking table the actor may request.
func (h *BookingActionCommandHandler) ChangeStatus(ctx context.Context, cmd ChangeBookingStatusCommand) (*booking.Booking, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	return h.transition(ctx, cmd.bookingAction, cmd.Target(), nil)
}

func (h *BookingActionCommandHandler) transition(
	ctx context.Context,
	action bookingAction,
	target booking.Status,
	precondition func(*booking.Booking) error,
) (*booking.Booking, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	tourRepo := uow.TourRepository()
	bookingRepo := uow.BookingRepository()

	b, err := bookingRepo.Get(ctx, action.BookingID())
	if err != nil {
		return nil, err
	}

	if precondition != nil {
		if err = precondition(b); err != nil {
			return nil, err
		}
	}

	tr, err := tourRepo.Get(ctx, b.TourID())
	if err != nil {
		return nil, err
	}

	if _, err = h.lifecycle.Transition(action.Actor(), tr, b, target, time.Now()); err != nil {
		return nil, err
	}

	if err = tourRepo.Update(ctx, tr); err != nil {
		return nil, err
	}

	if err = bookingRepo.Update(ctx, b); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return b, nil
}
