package booking

import (
	"fmt"
	"slices"
	"strings"

	"shipping/internal/core/domain/model/tour"
	"shipping/internal/pkg/errs"
)

// Status is the lifecycle state of a booking.
//
//	Pending ──> Collected ──> InTransit ──> Delivered
//	   │  ^         ^  │          │
//	   │  └─────────┘  └──────────┘   (undo / cascade reversal)
//	   v
//	Cancelled ──> Pending             (reinstate)
//
// Delivered is terminal. Cancelled is terminal unless reinstated.
type Status int

const (
	Unknown Status = iota
	Pending
	Collected
	InTransit
	Delivered
	Cancelled
)

// Presentation is the label and color shown for a status.
type Presentation struct {
	Label string
	Color string
}

var statusNames = map[Status]string{
	Pending:   "pending",
	Collected: "collected",
	InTransit: "in_transit",
	Delivered: "delivered",
	Cancelled: "cancelled",
}

var statusPresentation = map[Status]Presentation{
	Unknown:   {Label: "Unknown", Color: "gray"},
	Pending:   {Label: "Pending", Color: "amber"},
	Collected: {Label: "Collected", Color: "blue"},
	InTransit: {Label: "In transit", Color: "indigo"},
	Delivered: {Label: "Delivered", Color: "green"},
	Cancelled: {Label: "Cancelled", Color: "red"},
}

// Statuses returns every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{Pending, Collected, InTransit, Delivered, Cancelled}
}

func ParseStatus(s string) (Status, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for status, n := range statusNames {
		if n == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("booking status", fmt.Errorf("%q is not a valid status", s))
}

func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("booking status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

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

// IsActive reports whether a booking in this status holds tour capacity.
func (s Status) IsActive() bool {
	return s != Cancelled && s != Unknown
}

// Trigger identifies who asks for a booking transition.
type Trigger int

const (
	TriggerCarrier Trigger = iota + 1
	TriggerClient
	TriggerCascade
)

func (t Trigger) String() string {
	switch t {
	case TriggerCarrier:
		return "carrier"
	case TriggerClient:
		return "client"
	case TriggerCascade:
		return "cascade"
	default:
		return "unknown"
	}
}

// CapacityEffect is what a transition does to the tour's capacity ledger.
type CapacityEffect int

const (
	NoCapacityEffect CapacityEffect = iota
	ReleaseWeight
	ReserveWeight
)

// Rule is one row of the booking transition table.
type Rule struct {
	From       Status
	To         Status
	Triggers   []Trigger
	TourStages []tour.Status
	Effect     CapacityEffect
}

// AllowsTrigger reports whether the rule may be requested by trigger.
func (r Rule) AllowsTrigger(trigger Trigger) bool {
	return slices.Contains(r.Triggers, trigger)
}

// AllowsTourStage reports whether the parent tour status permits the rule.
// Cascade-only rules carry no stage list: the tour transition is the guard.
func (r Rule) AllowsTourStage(stage tour.Status) bool {
	return len(r.TourStages) == 0 || slices.Contains(r.TourStages, stage)
}

var rules = []Rule{
	{
		From: Pending, To: Collected,
		Triggers:   []Trigger{TriggerCarrier},
		TourStages: []tour.Status{tour.Collecting},
	},
	{
		From: Pending, To: Cancelled,
		Triggers:   []Trigger{TriggerCarrier, TriggerClient, TriggerCascade},
		TourStages: []tour.Status{tour.Planned, tour.Collecting, tour.InTransit, tour.Cancelled},
		Effect:     ReleaseWeight,
	},
	{
		From: Cancelled, To: Pending,
		Triggers:   []Trigger{TriggerCarrier},
		TourStages: []tour.Status{tour.Planned, tour.Collecting},
		Effect:     ReserveWeight,
	},
	{
		From: Collected, To: Pending,
		Triggers:   []Trigger{TriggerCarrier},
		TourStages: []tour.Status{tour.Collecting},
	},
	{
		From: Pending, To: Pending,
		Triggers: []Trigger{TriggerCascade},
	},
	{
		From: Collected, To: InTransit,
		Triggers: []Trigger{TriggerCascade},
	},
	{
		From: InTransit, To: Collected,
		Triggers: []Trigger{TriggerCascade},
	},
	{
		From: InTransit, To: Delivered,
		Triggers:   []Trigger{TriggerCarrier},
		TourStages: []tour.Status{tour.InTransit, tour.Completed},
	},
}

// Rules returns a copy of the transition table.
func Rules() []Rule {
	return slices.Clone(rules)
}

// RuleFor looks up the table row for from -> to.
func RuleFor(from, to Status) (Rule, bool) {
	for _, r := range rules {
		if r.From == from && r.To == to {
			return r, true
		}
	}
	return Rule{}, false
}

// Transition validates s -> target for the given trigger and returns the
// matching rule. Pairs outside the table, and pairs the trigger may not
// request, fail with *errs.InvalidTransitionError.
func (s Status) Transition(target Status, trigger Trigger) (Rule, error) {
	rule, ok := RuleFor(s, target)
	if !ok {
		return Rule{}, errs.NewInvalidTransitionError("booking", s.String(), target.String())
	}
	if !rule.AllowsTrigger(trigger) {
		return Rule{}, errs.NewInvalidTransitionErrorWithCause("booking", s.String(), target.String(),
			fmt.Errorf("not available to %s actions", trigger))
	}
	return rule, nil
}
