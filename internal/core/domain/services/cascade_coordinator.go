package services

import (
	"fmt"
	"strings"

	"shipping/internal/core/domain/model/booking"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/tour"
	"shipping/internal/pkg/errs"
)

// CancellationPolicy decides what a tour cancellation does to its bookings.
type CancellationPolicy string

const (
	// RetainBookings leaves every booking in its last status.
	RetainBookings CancellationPolicy = "retain"
	// CancelPendingBookings cancels pending bookings and releases their weight.
	CancelPendingBookings CancellationPolicy = "cancel-pending"
)

// ParseCancellationPolicy accepts "retain", "cancel-pending" or an empty
// string, which selects RetainBookings.
func ParseCancellationPolicy(s string) (CancellationPolicy, error) {
	switch p := CancellationPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return RetainBookings, nil
	case RetainBookings, CancelPendingBookings:
		return p, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("cancellation policy",
			fmt.Errorf("%q is not retain or cancel-pending", s))
	}
}

// Cascade is the bulk booking update implied by one tour transition:
// every booking of the tour in From moves to To.
type Cascade struct {
	From booking.Status
	To   booking.Status
	// ReleasesCapacity is set when the moved bookings stop holding weight.
	ReleasesCapacity bool
}

// IsEmpty reports whether the tour transition touches no bookings.
func (c Cascade) IsEmpty() bool {
	return c.From == booking.Unknown
}

type statusPair struct {
	from, to tour.Status
}

var cascades = map[statusPair]Cascade{
	{tour.Collecting, tour.Planned}:   {From: booking.Pending, To: booking.Pending},
	{tour.Collecting, tour.InTransit}: {From: booking.Collected, To: booking.InTransit},
	{tour.InTransit, tour.Collecting}: {From: booking.InTransit, To: booking.Collected},
}

// CascadeCoordinator validates tour transitions and works out the booking
// cascade each one implies.
//
// Business rules:
//   - only the owning carrier or an admin may transition a tour
//   - nothing leaves a cancelled or completed tour
//   - cascades only move bookings along cascade rows of the booking table
//   - cancellation follows the configured CancellationPolicy
//
// Example usage:
//
//	coordinator, _ := NewCascadeCoordinator(RetainBookings)
//	cascade, err := coordinator.Transition(actor, tr, tour.InTransit)
//	if err != nil {
//	    return err
//	}
//	// persist tr, then move cascade.From bookings to cascade.To
type CascadeCoordinator struct {
	policy CancellationPolicy
}

func NewCascadeCoordinator(policy CancellationPolicy) (CascadeCoordinator, error) {
	if _, err := ParseCancellationPolicy(string(policy)); err != nil {
		return CascadeCoordinator{}, err
	}
	return CascadeCoordinator{policy: policy}, nil
}

func (c CascadeCoordinator) Policy() CancellationPolicy {
	if c.policy == "" {
		return RetainBookings
	}
	return c.policy
}

// Transition moves tr to target on behalf of actor.
//
// Returns:
//   - Cascade: the bulk booking update to persist with the tour, possibly empty
//   - error: *errs.ForbiddenError if the actor does not own the tour,
//     *errs.InvalidTransitionError for pairs outside the tour state machine
func (c CascadeCoordinator) Transition(actor kernel.Actor, tr *tour.Tour, target tour.Status) (Cascade, error) {
	if err := actor.Validate(); err != nil {
		return Cascade{}, err
	}
	if err := tr.Validate(); err != nil {
		return Cascade{}, err
	}
	if !tr.OwnedBy(actor) {
		return Cascade{}, errs.NewForbiddenError("change tour status", "only the tour's carrier may change its status")
	}

	previous, err := tr.ChangeStatus(target)
	if err != nil {
		return Cascade{}, err
	}
	return c.CascadeFor(previous, target)
}

// CascadeFor looks up the booking cascade for an already validated tour
// transition. Each cascade must be a cascade row of the booking transition
// table.
func (c CascadeCoordinator) CascadeFor(from, to tour.Status) (Cascade, error) {
	cascade, ok := cascades[statusPair{from, to}]
	if to == tour.Cancelled && c.Policy() == CancelPendingBookings {
		cascade, ok = Cascade{From: booking.Pending, To: booking.Cancelled}, true
	}
	if !ok {
		return Cascade{}, nil
	}

	rule, err := cascade.From.Transition(cascade.To, booking.TriggerCascade)
	if err != nil {
		return Cascade{}, fmt.Errorf("cascade for tour %s -> %s: %w", from, to, err)
	}
	cascade.ReleasesCapacity = rule.Effect == booking.ReleaseWeight
	return cascade, nil
}
