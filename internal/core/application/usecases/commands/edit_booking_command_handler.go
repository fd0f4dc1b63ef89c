package commands

import (
	"context"
	"time"

	"shipping/internal/core/domain/model/booking"
	"shipping/internal/core/domain/services"
)

// EditBookingCommandHandler applies client or carrier edits to a pending
// booking. A weight change resizes the reservation in the same transaction;
// if it does not fit nothing is written.
type EditBookingCommandHandler struct {
	uowFactory BookingUoWFactory
	lifecycle  services.BookingLifecycle
}

func NewEditBookingCommandHandler(uowFactory BookingUoWFactory, lifecycle services.BookingLifecycle) EditBookingCommandHandler {
	return EditBookingCommandHandler{
		uowFactory: uowFactory,
		lifecycle:  lifecycle,
	}
}

func (h *EditBookingCommandHandler) Handle(ctx context.Context, cmd EditBookingCommand) (*booking.Booking, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	tourRepo := uow.TourRepository()
	bookingRepo := uow.BookingRepository()

	b, err := bookingRepo.Get(ctx, cmd.BookingID())
	if err != nil {
		return nil, err
	}

	tr, err := tourRepo.Get(ctx, b.TourID())
	if err != nil {
		return nil, err
	}

	weight := b.Weight()
	if w := cmd.Weight(); w != nil {
		weight = *w
	}

	if err = h.lifecycle.Edit(cmd.Actor(), tr, b, weight, cmd.Details(), time.Now()); err != nil {
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
