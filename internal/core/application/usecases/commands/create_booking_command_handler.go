package commands

import (
	"context"
	"time"

	"shipping/internal/core/domain/model/approval"
	"shipping/internal/core/domain/model/booking"
	"shipping/internal/core/domain/services"
)

// CreateBookingCommandHandler reserves capacity and inserts the booking in
// one transaction. The tour write is guarded by the remaining capacity read
// at the start, so two racing bookings cannot both pass the capacity check.
type CreateBookingCommandHandler struct {
	uowFactory UoWFactory
	lifecycle  services.BookingLifecycle
}

func NewCreateBookingCommandHandler(uowFactory UoWFactory, lifecycle services.BookingLifecycle) CreateBookingCommandHandler {
	return CreateBookingCommandHandler{
		uowFactory: uowFactory,
		lifecycle:  lifecycle,
	}
}

func (h *CreateBookingCommandHandler) Handle(ctx context.Context, cmd CreateBookingCommand) (*booking.Booking, error) {
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
	tr, err := tourRepo.Get(ctx, cmd.TourID())
	if err != nil {
		return nil, err
	}

	var latest *approval.Request
	if tr.IsPrivate() {
		latest, err = uow.ApprovalRepository().Latest(ctx, tr.ID(), cmd.Actor().ID())
		if err != nil {
			return nil, err
		}
	}

	b, err := h.lifecycle.Book(cmd.Actor(), tr, latest, cmd.PickupCity(), cmd.Weight(), cmd.Details(), time.Now())
	if err != nil {
		return nil, err
	}

	if err = tourRepo.Update(ctx, tr); err != nil {
		return nil, err
	}

	if err = uow.BookingRepository().Add(ctx, b); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return b, nil
}
