package commands

import (
	"errors"

	"shipping/internal/core/domain/model/approval"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrDecideApprovalCommandIsNotConstructed = errors.New(
	"DecideApprovalCommand must be created via NewDecideApprovalCommand constructor",
)

// DecideApprovalCommand approves or rejects a pending approval request.
type DecideApprovalCommand struct { //nolint:recvcheck //using for validation
	actor     kernel.Actor
	requestID kernel.UUID
	decision  approval.Status

	guard guard.ConstructorGuard
}

func NewDecideApprovalCommand(actor kernel.Actor, requestID kernel.UUID, decision approval.Status) (DecideApprovalCommand, error) {
	var decisionErr error
	if decision != approval.Approved && decision != approval.Rejected {
		decisionErr = errs.NewValueIsInvalidError("decision")
	}
	if err := errors.Join(actor.Validate(), requestID.Validate(), decisionErr); err != nil {
		return DecideApprovalCommand{}, err
	}
	return DecideApprovalCommand{
		actor:     actor,
		requestID: requestID,
		decision:  decision,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c DecideApprovalCommand) Validate() error {
	return c.guard.Validate(ErrDecideApprovalCommandIsNotConstructed)
}

func (c DecideApprovalCommand) Actor() kernel.Actor {
	return c.actor
}

func (c DecideApprovalCommand) RequestID() kernel.UUID {
	return c.requestID
}

func (c DecideApprovalCommand) Decision() approval.Status {
	return c.decision
}
