package services

import (
	"time"

	"shipping/internal/core/domain/model/approval"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/tour"
	"shipping/internal/pkg/errs"
)

// ApprovalGate handles access requests for private tours.
type ApprovalGate struct{}

func NewApprovalGate() ApprovalGate {
	return ApprovalGate{}
}

// Request opens an approval request. latest is the client's most recent
// request for the tour; a client may have only one pending request at a
// time and needs no new one once approved.
func (ApprovalGate) Request(
	actor kernel.Actor,
	tr *tour.Tour,
	latest *approval.Request,
	message string,
	now time.Time,
) (*approval.Request, error) {
	if err := actor.Validate(); err != nil {
		return nil, err
	}
	if actor.Role() != kernel.RoleClient {
		return nil, errs.NewForbiddenError("request approval", "only clients may request approval")
	}
	if err := tr.EnsureAcceptsBookingChanges(); err != nil {
		return nil, err
	}
	if latest != nil && latest.Status() != approval.Rejected {
		return nil, errs.NewInvalidTransitionError("approval request", latest.Status().String(), approval.Pending.String())
	}
	return approval.NewRequest(tr, actor.ID(), message, now)
}

// Decide approves or rejects a pending request on behalf of the tour's carrier.
func (ApprovalGate) Decide(
	actor kernel.Actor,
	tr *tour.Tour,
	r *approval.Request,
	target approval.Status,
	now time.Time,
) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if err := r.Validate(); err != nil {
		return err
	}
	if r.TourID() != tr.ID() {
		return errs.NewValueIsInvalidError("approval request tour")
	}
	if !tr.OwnedBy(actor) {
		return errs.NewForbiddenError("decide approval", "only the tour's carrier may decide")
	}
	return r.Decide(target, now)
}
