package commands

import (
	"context"

	"shipping/internal/core/domain/model/tour"
	"shipping/internal/pkg/errs"
)

// EditTourCommandHandler applies carrier edits to a planned tour. A new
// route must keep every stop that active bookings pick up from; a new total
// must hold the weight already reserved.
type EditTourCommandHandler struct {
	uowFactory BookingUoWFactory
}

func NewEditTourCommandHandler(uowFactory BookingUoWFactory) EditTourCommandHandler {
	return EditTourCommandHandler{uowFactory: uowFactory}
}

func (h *EditTourCommandHandler) Handle(ctx context.Context, cmd EditTourCommand) (*tour.Tour, error) {
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

	if !tr.OwnedBy(cmd.Actor()) {
		return nil, errs.NewForbiddenError("edit tour", "only the tour's carrier may edit it")
	}

	if route := cmd.Route(); route != nil {
		pickups, pickupErr := uow.BookingRepository().ActivePickupCities(ctx, tr.ID())
		if pickupErr != nil {
			return nil, pickupErr
		}
		if err = tr.EditRoute(route, pickups); err != nil {
			return nil, err
		}
	}

	if total := cmd.TotalCapacity(); total != nil {
		if err = tr.SetTotalCapacity(*total); err != nil {
			return nil, err
		}
	}

	if err = tourRepo.Update(ctx, tr); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return tr, nil
}
