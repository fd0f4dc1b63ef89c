package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrRequestApprovalCommandIsNotConstructed = errors.New(
	"RequestApprovalCommand must be created via NewRequestApprovalCommand constructor",
)

// RequestApprovalCommand asks a private tour's carrier for permission to book.
type RequestApprovalCommand struct { //nolint:recvcheck //using for validation
	actor   kernel.Actor
	tourID  int64
	message string

	guard guard.ConstructorGuard
}

func NewRequestApprovalCommand(actor kernel.Actor, tourID int64, message string) (RequestApprovalCommand, error) {
	var idErr error
	if tourID <= 0 {
		idErr = errs.NewValueIsOutOfRangeError("tour id", tourID, 1, "max int64")
	}
	if err := errors.Join(actor.Validate(), idErr); err != nil {
		return RequestApprovalCommand{}, err
	}
	return RequestApprovalCommand{
		actor:   actor,
		tourID:  tourID,
		message: message,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c RequestApprovalCommand) Validate() error {
	return c.guard.Validate(ErrRequestApprovalCommandIsNotConstructed)
}

func (c RequestApprovalCommand) Actor() kernel.Actor {
	return c.actor
}

func (c RequestApprovalCommand) TourID() int64 {
	return c.tourID
}

func (c RequestApprovalCommand) Message() string {
	return c.message
}
