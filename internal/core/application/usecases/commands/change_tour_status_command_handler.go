package commands

import (
	"context"
	"fmt"
	"log/slog"

	"shipping/internal/core/domain/model/tour"
	"shipping/internal/core/domain/services"
	"shipping/internal/core/ports"
)

// ChangeTourStatusResult is the tour after the transition and the number of
// bookings the cascade touched.
type ChangeTourStatusResult struct {
	Tour             *tour.Tour
	CascadedBookings int64
}

// ChangeTourStatusCommandHandler runs the cascade coordinator inside one
// transaction: the guarded tour write, the capacity release of cancelled
// bookings and the bulk booking update commit together or not at all.
type ChangeTourStatusCommandHandler struct {
	uowFactory  BookingUoWFactory
	coordinator services.CascadeCoordinator
	logger      *slog.Logger
}

func NewChangeTourStatusCommandHandler(
	uowFactory BookingUoWFactory,
	coordinator services.CascadeCoordinator,
	logger *slog.Logger,
) ChangeTourStatusCommandHandler {
	return ChangeTourStatusCommandHandler{
		uowFactory:  uowFactory,
		coordinator: coordinator,
		logger:      logger.With("component", "cascade-coordinator"),
	}
}

func (h *ChangeTourStatusCommandHandler) Handle(ctx context.Context, cmd ChangeTourStatusCommand) (ChangeTourStatusResult, error) {
	if err := cmd.Validate(); err != nil {
		return ChangeTourStatusResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ChangeTourStatusResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	tourRepo := uow.TourRepository()
	bookingRepo := uow.BookingRepository()

	tr, err := tourRepo.Get(ctx, cmd.TourID())
	if err != nil {
		return ChangeTourStatusResult{}, err
	}

	from := tr.Status()
	cascade, err := h.coordinator.Transition(cmd.Actor(), tr, cmd.Target())
	if err != nil {
		return ChangeTourStatusResult{}, err
	}

	result, err := h.persist(ctx, tourRepo, bookingRepo, tr, cascade)
	if err == nil {
		err = uow.Commit(ctx)
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "tour transition rolled back",
			"tour_id", tr.ID(),
			"from", from.String(),
			"to", cmd.Target().String(),
			"error", err,
		)
		return ChangeTourStatusResult{}, err
	}

	h.logger.InfoContext(ctx, "tour transitioned",
		"tour_id", tr.ID(),
		"from", from.String(),
		"to", tr.Status().String(),
		"cascaded_bookings", result.CascadedBookings,
	)
	return result, nil
}

func (h *ChangeTourStatusCommandHandler) persist(
	ctx context.Context,
	tourRepo ports.TourRepository,
	bookingRepo ports.BookingRepository,
	tr *tour.Tour,
	cascade services.Cascade,
) (ChangeTourStatusResult, error) {
	if cascade.ReleasesCapacity {
		weight, err := bookingRepo.WeightInStatus(ctx, tr.ID(), cascade.From)
		if err != nil {
			return ChangeTourStatusResult{}, err
		}
		if weight > 0 {
			if err = tr.Release(weight); err != nil {
				return ChangeTourStatusResult{}, fmt.Errorf("release cancelled weight: %w", err)
			}
		}
	}

	if err := tourRepo.Update(ctx, tr); err != nil {
		return ChangeTourStatusResult{}, err
	}

	var cascaded int64
	if !cascade.IsEmpty() {
		n, err := bookingRepo.TransitionAll(ctx, tr.ID(), cascade.From, cascade.To)
		if err != nil {
			return ChangeTourStatusResult{}, fmt.Errorf("cascade %s -> %s: %w", cascade.From, cascade.To, err)
		}
		cascaded = n
	}

	return ChangeTourStatusResult{Tour: tr, CascadedBookings: cascaded}, nil
}
