package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/tour"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrChangeTourStatusCommandIsNotConstructed = errors.New(
	"ChangeTourStatusCommand must be created via NewChangeTourStatusCommand constructor",
)

// ChangeTourStatusCommand moves a tour through its lifecycle and cascades
// the implied booking changes.
//
// Example:
//
//	cmd, _ := NewChangeTourStatusCommand(actor, 42, tour.InTransit)
//	result, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrInvalidTransition) {
//	    // the tour is cancelled or the step is not adjacent
//	}
//	fmt.Printf("%d bookings now in transit\n", result.CascadedBookings)
type ChangeTourStatusCommand struct { //nolint:recvcheck //using for validation
	actor  kernel.Actor
	tourID int64
	target tour.Status

	guard guard.ConstructorGuard
}

func NewChangeTourStatusCommand(actor kernel.Actor, tourID int64, target tour.Status) (ChangeTourStatusCommand, error) {
	cmd := ChangeTourStatusCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setTourID(tourID),
		cmd.setTarget(target),
	); err != nil {
		return ChangeTourStatusCommand{}, err
	}

	return cmd, nil
}

func (c ChangeTourStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeTourStatusCommandIsNotConstructed)
}

func (c ChangeTourStatusCommand) Actor() kernel.Actor {
	return c.actor
}

func (c ChangeTourStatusCommand) TourID() int64 {
	return c.tourID
}

func (c ChangeTourStatusCommand) Target() tour.Status {
	return c.target
}

func (c *ChangeTourStatusCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *ChangeTourStatusCommand) setTourID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsOutOfRangeError("tour id", id, 1, "max int64")
	}
	c.tourID = id
	return nil
}

func (c *ChangeTourStatusCommand) setTarget(target tour.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	c.target = target
	return nil
}
