package services

import (
	"fmt"
	"time"

	"shipping/internal/core/domain/model/approval"
	"shipping/internal/core/domain/model/booking"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/tour"
	"shipping/internal/pkg/errs"
)

// BookingLifecycle applies booking-level actions together with their effect
// on the parent tour's capacity ledger. Either both aggregates change or
// neither does.
type BookingLifecycle struct{}

func NewBookingLifecycle() BookingLifecycle {
	return BookingLifecycle{}
}

// Book creates a pending booking for a client and reserves its weight.
//
// Parameters:
//   - actor: must be a client
//   - tr: the tour, planned or collecting
//   - latest: the client's latest approval request for tr, nil if none;
//     required and approved when tr is private
//
// Returns:
//   - *booking.Booking: the new booking, not yet persisted
//   - error: *errs.ForbiddenError, booking.ErrInvalidPickupCity,
//     *errs.CapacityExceededError, tour.ErrTourIsClosedForBookings or a
//     validation error
func (BookingLifecycle) Book(
	actor kernel.Actor,
	tr *tour.Tour,
	latest *approval.Request,
	pickupCity string,
	weight int,
	details booking.Details,
	now time.Time,
) (*booking.Booking, error) {
	if err := actor.Validate(); err != nil {
		return nil, err
	}
	if actor.Role() != kernel.RoleClient {
		return nil, errs.NewForbiddenError("create booking", "only clients may book a tour")
	}
	if err := tr.Validate(); err != nil {
		return nil, err
	}
	if err := tr.EnsureAcceptsBookingChanges(); err != nil {
		return nil, err
	}
	if tr.IsPrivate() && !approvedFor(latest, tr, actor) {
		return nil, errs.NewForbiddenError("create booking", "private tour requires an approved request")
	}

	b, err := booking.NewBooking(tr, actor.ID(), pickupCity, weight, details, now)
	if err != nil {
		return nil, err
	}
	if err = tr.Reserve(weight); err != nil {
		return nil, err
	}
	return b, nil
}

// Transition applies a direct status action on b and its capacity effect on tr.
//
// The trigger is derived from the actor: the tour's carrier (or an admin)
// acts as carrier, the booking's client as client. Anyone else is refused.
// Cancelling releases the weight, reinstating reserves it again and fails
// with *errs.CapacityExceededError if it no longer fits.
func (BookingLifecycle) Transition(
	actor kernel.Actor,
	tr *tour.Tour,
	b *booking.Booking,
	target booking.Status,
	now time.Time,
) (booking.Rule, error) {
	if err := checkPair(actor, tr, b); err != nil {
		return booking.Rule{}, err
	}
	trigger, err := triggerFor(actor, tr, b)
	if err != nil {
		return booking.Rule{}, err
	}

	rule, err := b.Status().Transition(target, trigger)
	if err != nil {
		return booking.Rule{}, err
	}
	if !rule.AllowsTourStage(tr.Status()) {
		return booking.Rule{}, errs.NewInvalidTransitionErrorWithCause("booking",
			b.Status().String(), target.String(), fmt.Errorf("tour is %s", tr.Status()))
	}

	switch rule.Effect {
	case booking.ReleaseWeight:
		err = tr.Release(b.Weight())
	case booking.ReserveWeight:
		err = tr.Reserve(b.Weight())
	case booking.NoCapacityEffect:
	}
	if err != nil {
		return booking.Rule{}, err
	}

	return b.Transition(target, trigger, tr.Status(), now)
}

// Edit replaces the editable fields of a pending booking. A weight change
// resizes the reservation first; if it does not fit the booking keeps its
// original weight.
func (BookingLifecycle) Edit(
	actor kernel.Actor,
	tr *tour.Tour,
	b *booking.Booking,
	weight int,
	details booking.Details,
	now time.Time,
) error {
	if err := checkPair(actor, tr, b); err != nil {
		return err
	}
	if _, err := triggerFor(actor, tr, b); err != nil {
		return err
	}
	if err := tr.EnsureAcceptsBookingChanges(); err != nil {
		return err
	}
	if b.Status() != booking.Pending {
		return fmt.Errorf("%w (booking is %s)", booking.ErrBookingIsNotEditable, b.Status())
	}
	if err := booking.ValidateWeight(weight); err != nil {
		return err
	}

	if weight != b.Weight() {
		if err := tr.Resize(b.Weight(), weight); err != nil {
			return err
		}
	}
	return b.Edit(weight, details, now)
}

func checkPair(actor kernel.Actor, tr *tour.Tour, b *booking.Booking) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if err := tr.Validate(); err != nil {
		return err
	}
	if err := b.Validate(); err != nil {
		return err
	}
	if b.TourID() != tr.ID() {
		return errs.NewValueIsInvalidErrorWithCause("tour",
			fmt.Errorf("booking %s belongs to tour %d, not %d", b.ID(), b.TourID(), tr.ID()))
	}
	return nil
}

func triggerFor(actor kernel.Actor, tr *tour.Tour, b *booking.Booking) (booking.Trigger, error) {
	switch {
	case tr.OwnedBy(actor):
		return booking.TriggerCarrier, nil
	case b.OwnedBy(actor):
		return booking.TriggerClient, nil
	default:
		return 0, errs.NewForbiddenError("change booking", "actor neither carries the tour nor owns the booking")
	}
}

func approvedFor(r *approval.Request, tr *tour.Tour, actor kernel.Actor) bool {
	return r != nil && r.IsApproved() && r.TourID() == tr.ID() && actor.Is(r.ClientID())
}
