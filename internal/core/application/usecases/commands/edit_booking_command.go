package commands

import (
	"errors"

	"shipping/internal/core/domain/model/booking"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var ErrEditBookingCommandIsNotConstructed = errors.New(
	"EditBookingCommand must be created via NewEditBookingCommand constructor",
)

// EditBookingCommand replaces the details of a pending booking and
// optionally its weight. A nil weight keeps the current one.
type EditBookingCommand struct { //nolint:recvcheck //using for validation
	actor     kernel.Actor
	bookingID kernel.UUID
	weight    *int
	details   booking.Details

	guard guard.ConstructorGuard
}

func NewEditBookingCommand(
	actor kernel.Actor,
	bookingID kernel.UUID,
	weight *int,
	details booking.Details,
) (EditBookingCommand, error) {
	var weightErr error
	if weight != nil {
		weightErr = booking.ValidateWeight(*weight)
	}

	if err := errors.Join(actor.Validate(), bookingID.Validate(), weightErr); err != nil {
		return EditBookingCommand{}, err
	}

	return EditBookingCommand{
		actor:     actor,
		bookingID: bookingID,
		weight:    weight,
		details:   details,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c EditBookingCommand) Validate() error {
	return c.guard.Validate(ErrEditBookingCommandIsNotConstructed)
}

func (c EditBookingCommand) Actor() kernel.Actor {
	return c.actor
}

func (c EditBookingCommand) BookingID() kernel.UUID {
	return c.bookingID
}

// Weight returns the requested weight, nil to keep the current one.
func (c EditBookingCommand) Weight() *int {
	return c.weight
}

func (c EditBookingCommand) Details() booking.Details {
	return c.details
}
