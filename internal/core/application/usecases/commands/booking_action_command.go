package commands

import (
	"errors"

	"shipping/internal/core/domain/model/booking"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var (
	ErrCancelBookingCommandIsNotConstructed = errors.New(
		"CancelBookingCommand must be created via NewCancelBookingCommand constructor",
	)
	ErrReinstateBookingCommandIsNotConstructed = errors.New(
		"ReinstateBookingCommand must be created via NewReinstateBookingCommand constructor",
	)
	ErrChangeBookingStatusCommandIsNotConstructed = errors.New(
		"ChangeBookingStatusCommand must be created via NewChangeBookingStatusCommand constructor",
	)
)

// bookingAction is the common payload of the booking status commands.
type bookingAction struct {
	actor     kernel.Actor
	bookingID kernel.UUID
}

func newBookingAction(actor kernel.Actor, bookingID kernel.UUID) (bookingAction, error) {
	if err := errors.Join(actor.Validate(), bookingID.Validate()); err != nil {
		return bookingAction{}, err
	}
	return bookingAction{actor: actor, bookingID: bookingID}, nil
}

func (a bookingAction) Actor() kernel.Actor {
	return a.actor
}

func (a bookingAction) BookingID() kernel.UUID {
	return a.bookingID
}

// CancelBookingCommand cancels a pending booking and releases its weight.
type CancelBookingCommand struct {
	bookingAction

	guard guard.ConstructorGuard
}

func NewCancelBookingCommand(actor kernel.Actor, bookingID kernel.UUID) (CancelBookingCommand, error) {
	action, err := newBookingAction(actor, bookingID)
	if err != nil {
		return CancelBookingCommand{}, err
	}
	return CancelBookingCommand{bookingAction: action, guard: guard.NewConstructorGuard()}, nil
}

func (c CancelBookingCommand) Validate() error {
	return c.guard.Validate(ErrCancelBookingCommandIsNotConstructed)
}

// ReinstateBookingCommand puts a cancelled booking back to pending and
// reserves its weight again.
type ReinstateBookingCommand struct {
	bookingAction

	guard guard.ConstructorGuard
}

func NewReinstateBookingCommand(actor kernel.Actor, bookingID kernel.UUID) (ReinstateBookingCommand, error) {
	action, err := newBookingAction(actor, bookingID)
	if err != nil {
		return ReinstateBookingCommand{}, err
	}
	return ReinstateBookingCommand{bookingAction: action, guard: guard.NewConstructorGuard()}, nil
}

func (c ReinstateBookingCommand) Validate() error {
	return c.guard.Validate(ErrReinstateBookingCommandIsNotConstructed)
}

// ChangeBookingStatusCommand requests any direct booking transition. Targets
// with a capacity effect behave exactly like CancelBookingCommand and
// ReinstateBookingCommand.
type ChangeBookingStatusCommand struct {
	bookingAction
	target booking.Status

	guard guard.ConstructorGuard
}

func NewChangeBookingStatusCommand(
	actor kernel.Actor,
	bookingID kernel.UUID,
	target booking.Status,
) (ChangeBookingStatusCommand, error) {
	action, err := newBookingAction(actor, bookingID)
	if err = errors.Join(err, target.Validate()); err != nil {
		return ChangeBookingStatusCommand{}, err
	}
	return ChangeBookingStatusCommand{
		bookingAction: action,
		target:        target,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeBookingStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeBookingStatusCommandIsNotConstructed)
}

func (c ChangeBookingStatusCommand) Target() booking.Status {
	return c.target
}
