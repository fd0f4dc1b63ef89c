package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/tour"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrCreateTourCommandIsNotConstructed = errors.New(
	"CreateTourCommand must be created via NewCreateTourCommand constructor",
)

// CreateTourCommand publishes a new planned tour for a carrier.
//
// Example:
//
//	schedule, _ := tour.NewSchedule("FR", "MA", collection, departure)
//	paris, _ := tour.NewStop("Paris", collection)
//	cmd, err := NewCreateTourCommand(actor, tour.Public, schedule, []tour.Stop{paris}, 1000)
//	if err != nil {
//	    return err
//	}
//	id, err := handler.Handle(ctx, cmd)
type CreateTourCommand struct { //nolint:recvcheck //using for validation
	actor         kernel.Actor
	tourType      tour.Type
	schedule      tour.Schedule
	route         []tour.Stop
	totalCapacity int

	guard guard.ConstructorGuard
}

func NewCreateTourCommand(
	actor kernel.Actor,
	tourType tour.Type,
	schedule tour.Schedule,
	route []tour.Stop,
	totalCapacity int,
) (CreateTourCommand, error) {
	cmd := CreateTourCommand{
		tourType:      tourType,
		route:         route,
		totalCapacity: totalCapacity,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setSchedule(schedule),
	); err != nil {
		return CreateTourCommand{}, err
	}

	return cmd, nil
}

func (c CreateTourCommand) Validate() error {
	return c.guard.Validate(ErrCreateTourCommandIsNotConstructed)
}

func (c CreateTourCommand) Actor() kernel.Actor {
	return c.actor
}

func (c CreateTourCommand) TourType() tour.Type {
	return c.tourType
}

func (c CreateTourCommand) Schedule() tour.Schedule {
	return c.schedule
}

func (c CreateTourCommand) Route() []tour.Stop {
	return c.route
}

func (c CreateTourCommand) TotalCapacity() int {
	return c.totalCapacity
}

func (c *CreateTourCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if actor.Role() != kernel.RoleCarrier {
		return errs.NewForbiddenError("create tour", "only carriers may publish tours")
	}
	c.actor = actor
	return nil
}

func (c *CreateTourCommand) setSchedule(schedule tour.Schedule) error {
	if err := schedule.Validate(); err != nil {
		return err
	}
	c.schedule = schedule
	return nil
}
