package tour

import (
	"fmt"
	"strings"

	"shipping/internal/pkg/errs"
)

// Status is the lifecycle state of a tour.
//
// State transitions:
//
//	Planned ──> Collecting ──> InTransit ──> Completed
//	   ^            │  ^           │
//	   └────────────┘  └───────────┘
//	      (undo)           (undo)
//
//	Planned | Collecting | InTransit ──> Cancelled
//
// Completed and Cancelled are terminal. Persisted by name.
type Status int

const (
	// Unknown (0) catches uninitialized values.
	Unknown Status = iota
	Planned
	Collecting
	InTransit
	Completed
	Cancelled
)

// Presentation is the single label/color entry used by every status consumer.
type Presentation struct {
	Label string
	Color string
}

var statusNames = map[Status]string{
	Planned:    "planned",
	Collecting: "collecting",
	InTransit:  "in_transit",
	Completed:  "completed",
	Cancelled:  "cancelled",
}

var statusPresentation = map[Status]Presentation{
	Unknown:    {Label: "Unknown", Color: "gray"},
	Planned:    {Label: "Planned", Color: "blue"},
	Collecting: {Label: "Collecting", Color: "amber"},
	InTransit:  {Label: "In transit", Color: "indigo"},
	Completed:  {Label: "Completed", Color: "green"},
	Cancelled:  {Label: "Cancelled", Color: "red"},
}

// transitions lists the targets a carrier may request from each status:
// one step forward, one of the two undo steps, or cancellation.
var transitions = map[Status][]Status{
	Planned:    {Collecting, Cancelled},
	Collecting: {InTransit, Planned, Cancelled},
	InTransit:  {Completed, Collecting, Cancelled},
}

// Statuses returns every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{Planned, Collecting, InTransit, Completed, Cancelled}
}

// ParseStatus converts a persisted or transported name ("in_transit") into a Status.
func ParseStatus(s string) (Status, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for status, n := range statusNames {
		if n == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("tour status", fmt.Errorf("%q is not a valid status", s))
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("tour status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted name, "unknown" for invalid values.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

func (s Status) Presentation() Presentation {
	if p, ok := statusPresentation[s]; ok {
		return p
	}
	return statusPresentation[Unknown]
}

func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// AcceptsBookingChanges reports whether bookings may be created, edited or
// reinstated while the tour is in this status.
func (s Status) AcceptsBookingChanges() bool {
	return s == Planned || s == Collecting
}

// CanTransitionTo reports whether target is reachable from s in one step.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// Transition validates s -> target.
//
// Returns:
//   - (target, nil) when the pair is allowed
//   - (Unknown, *errs.InvalidTransitionError) otherwise, including every
//     request out of a terminal status
func (s Status) Transition(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, errs.NewInvalidTransitionErrorWithCause("tour", s.String(), target.String(), err)
	}
	if s.IsTerminal() {
		return Unknown, errs.NewInvalidTransitionErrorWithCause(
			"tour", s.String(), target.String(), fmt.Errorf("%s is terminal", s),
		)
	}
	if !s.CanTransitionTo(target) {
		return Unknown, errs.NewInvalidTransitionError("tour", s.String(), target.String())
	}
	return target, nil
}
