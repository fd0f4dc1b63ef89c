package commands

import (
	"context"
)

// ReconcileTourCapacityCommandHandler resets remaining capacity to
// total - reserved weight and returns the drift that was corrected
// (stored minus computed). A zero drift writes nothing.
type ReconcileTourCapacityCommandHandler struct {
	uowFactory BookingUoWFactory
}

func NewReconcileTourCapacityCommandHandler(uowFactory BookingUoWFactory) ReconcileTourCapacityCommandHandler {
	return ReconcileTourCapacityCommandHandler{uowFactory: uowFactory}
}

func (h *ReconcileTourCapacityCommandHandler) Handle(ctx context.Context, cmd ReconcileTourCapacityCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	tourRepo := uow.TourRepository()
	tr, err := tourRepo.Get(ctx, cmd.TourID())
	if err != nil {
		return 0, err
	}

	reserved, err := uow.BookingRepository().ReservedWeight(ctx, tr.ID())
	if err != nil {
		return 0, err
	}

	drift, err := tr.Reconcile(reserved)
	if err != nil {
		return 0, err
	}
	if drift == 0 {
		return 0, nil
	}

	if err = tourRepo.Update(ctx, tr); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return drift, nil
}
