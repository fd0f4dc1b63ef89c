package commands

import (
	"errors"
	"strings"

	"shipping/internal/core/domain/model/booking"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrCreateBookingCommandIsNotConstructed = errors.New(
	"CreateBookingCommand must be created via NewCreateBookingCommand constructor",
)

// CreateBookingCommand books space on a tour for one parcel.
//
// Example:
//
//	details, _ := booking.NewDetails("Casablanca", "12 rue Atlas", "Sara", "+212600000000", nil, nil)
//	cmd, _ := NewCreateBookingCommand(client, 42, "Lyon", 20, details)
//	b, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrCapacityExceeded):
//	case errors.Is(err, booking.ErrInvalidPickupCity):
//	}
type CreateBookingCommand struct { //nolint:recvcheck //using for validation
	actor      kernel.Actor
	tourID     int64
	pickupCity string
	weight     int
	details    booking.Details

	guard guard.ConstructorGuard
}

func NewCreateBookingCommand(
	actor kernel.Actor,
	tourID int64,
	pickupCity string,
	weight int,
	details booking.Details,
) (CreateBookingCommand, error) {
	cmd := CreateBookingCommand{
		details: details,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setTourID(tourID),
		cmd.setPickupCity(pickupCity),
		cmd.setWeight(weight),
	); err != nil {
		return CreateBookingCommand{}, err
	}

	return cmd, nil
}

func (c CreateBookingCommand) Validate() error {
	return c.guard.Validate(ErrCreateBookingCommandIsNotConstructed)
}

func (c CreateBookingCommand) Actor() kernel.Actor {
	return c.actor
}

func (c CreateBookingCommand) TourID() int64 {
	return c.tourID
}

func (c CreateBookingCommand) PickupCity() string {
	return c.pickupCity
}

func (c CreateBookingCommand) Weight() int {
	return c.weight
}

func (c CreateBookingCommand) Details() booking.Details {
	return c.details
}

func (c *CreateBookingCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *CreateBookingCommand) setTourID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsOutOfRangeError("tour id", id, 1, "max int64")
	}
	c.tourID = id
	return nil
}

func (c *CreateBookingCommand) setPickupCity(city string) error {
	city = strings.TrimSpace(city)
	if city == "" {
		return errs.NewValueIsRequiredError("pickup city")
	}
	c.pickupCity = city
	return nil
}

func (c *CreateBookingCommand) setWeight(weight int) error {
	if err := booking.ValidateWeight(weight); err != nil {
		return err
	}
	c.weight = weight
	return nil
}
