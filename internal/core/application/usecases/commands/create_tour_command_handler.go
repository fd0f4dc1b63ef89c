package commands

import (
	"context"

	"shipping/internal/core/domain/model/tour"
)

// CreateTourCommandHandler stores a new planned tour with all capacity free.
type CreateTourCommandHandler struct {
	uowFactory TourUoWFactory
}

func NewCreateTourCommandHandler(uowFactory TourUoWFactory) CreateTourCommandHandler {
	return CreateTourCommandHandler{uowFactory: uowFactory}
}

// Handle returns the id assigned by the store.
func (h *CreateTourCommandHandler) Handle(ctx context.Context, cmd CreateTourCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	tr, err := tour.NewTour(cmd.Actor().ID(), cmd.TourType(), cmd.Schedule(), cmd.Route(), cmd.TotalCapacity())
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.TourRepository().Add(ctx, tr); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return tr.ID(), nil
}
