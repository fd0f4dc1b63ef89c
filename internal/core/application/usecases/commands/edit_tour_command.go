package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/tour"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var (
	ErrEditTourCommandIsNotConstructed = errors.New(
		"EditTourCommand must be created via NewEditTourCommand constructor",
	)
	ErrNothingToEdit = errors.New("edit requires a route or a total capacity")
)

// EditTourCommand changes the route and/or total capacity of a planned tour.
// A nil route or capacity leaves that part unchanged.
type EditTourCommand struct { //nolint:recvcheck //using for validation
	actor         kernel.Actor
	tourID        int64
	route         []tour.Stop
	totalCapacity *int

	guard guard.ConstructorGuard
}

func NewEditTourCommand(actor kernel.Actor, tourID int64, route []tour.Stop, totalCapacity *int) (EditTourCommand, error) {
	cmd := EditTourCommand{
		route:         route,
		totalCapacity: totalCapacity,
		guard:         guard.NewConstructorGuard(),
	}

	var nothing error
	if route == nil && totalCapacity == nil {
		nothing = ErrNothingToEdit
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setTourID(tourID),
		nothing,
	); err != nil {
		return EditTourCommand{}, err
	}

	return cmd, nil
}

func (c EditTourCommand) Validate() error {
	return c.guard.Validate(ErrEditTourCommandIsNotConstructed)
}

func (c EditTourCommand) Actor() kernel.Actor {
	return c.actor
}

func (c EditTourCommand) TourID() int64 {
	return c.tourID
}

// Route returns the replacement route, nil when unchanged.
func (c EditTourCommand) Route() []tour.Stop {
	return c.route
}

// TotalCapacity returns the new total, nil when unchanged.
func (c EditTourCommand) TotalCapacity() *int {
	return c.totalCapacity
}

func (c *EditTourCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *EditTourCommand) setTourID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsOutOfRangeError("tour id", id, 1, "max int64")
	}
	c.tourID = id
	return nil
}
