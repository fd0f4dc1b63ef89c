package booking

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/tour"
	"shipping/internal/pkg/errs"
)

const (
	MinWeight = 5
	MaxWeight = 30
)

var (
	ErrBookingIsNotConstructed = errors.New("Booking must be created via NewBooking or RestoreBooking constructor")

	// ErrInvalidPickupCity is returned when the pickup city is not a stop of the tour route.
	ErrInvalidPickupCity = fmt.Errorf("%w: pickup city is not on the tour route", errs.ErrValueIsInvalid)

	// ErrBookingIsNotEditable is returned when fields are edited outside the pending status.
	ErrBookingIsNotEditable = fmt.Errorf("%w: booking can only be edited while pending", errs.ErrInvalidTransition)
)

// Booking is a client's reservation of capacity on one tour for one parcel.
//
// The booking does not touch tour capacity itself: whoever changes its
// status or weight must apply the rule's CapacityEffect to the tour in the
// same unit of work. Booking remembers the status it was loaded with so the
// repository can reject a write racing another one.
type Booking struct {
	id             kernel.UUID
	tourID         int64
	clientID       kernel.UUID
	status         Status
	weight         int
	pickupCity     string
	details        Details
	trackingNumber TrackingNumber
	createdAt      time.Time
	updatedAt      time.Time

	persistedStatus Status
	isNew           bool
	isConstructed   bool
}

// NewBooking creates a pending booking on tr. The pickup city is matched
// against the route ignoring case and stored with the stop's spelling.
func NewBooking(tr *tour.Tour, clientID kernel.UUID, pickupCity string, weight int, details Details, now time.Time) (*Booking, error) {
	if err := tr.Validate(); err != nil {
		return nil, err
	}

	b := &Booking{
		id:             kernel.NewUUID(),
		tourID:         tr.ID(),
		status:         Pending,
		trackingNumber: NewTrackingNumber(),
		createdAt:      now.UTC(),
		updatedAt:      now.UTC(),
		isNew:          true,
		isConstructed:  true,
	}

	stop, found := tr.StopFor(pickupCity)
	var cityErr error
	if !found {
		cityErr = fmt.Errorf("%w (%q)", ErrInvalidPickupCity, strings.TrimSpace(pickupCity))
	}

	if err := errors.Join(
		b.setClient(clientID),
		ValidateWeight(weight),
		cityErr,
	); err != nil {
		return nil, err
	}

	b.pickupCity = stop.Name()
	b.weight = weight
	b.details = details
	return b, nil
}

// RestoreBooking rebuilds a persisted booking. Weight is only checked for
// positivity: the [MinWeight, MaxWeight] bounds apply at creation and edit.
func RestoreBooking(
	id kernel.UUID,
	tourID int64,
	clientID kernel.UUID,
	status Status,
	weight int,
	pickupCity string,
	details Details,
	trackingNumber TrackingNumber,
	createdAt, updatedAt time.Time,
) (*Booking, error) {
	var problems []error
	if err := id.Validate(); err != nil {
		problems = append(problems, err)
	}
	if tourID <= 0 {
		problems = append(problems, errs.NewValueIsOutOfRangeError("tour id", tourID, 1, "max int64"))
	}
	if err := clientID.Validate(); err != nil {
		problems = append(problems, err)
	}
	if err := status.Validate(); err != nil {
		problems = append(problems, err)
	}
	if weight <= 0 {
		problems = append(problems, errs.NewValueIsOutOfRangeError("weight", weight, 1, "unbounded"))
	}
	if strings.TrimSpace(pickupCity) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("pickup city"))
	}
	if err := errors.Join(problems...); err != nil {
		return nil, err
	}

	return &Booking{
		id:              id,
		tourID:          tourID,
		clientID:        clientID,
		status:          status,
		weight:          weight,
		pickupCity:      pickupCity,
		details:         details,
		trackingNumber:  trackingNumber,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
		persistedStatus: status,
		isConstructed:   true,
	}, nil
}

func (b *Booking) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBookingIsNotConstructed
	}
	return nil
}

func (b *Booking) ID() kernel.UUID {
	return b.id
}

func (b *Booking) TourID() int64 {
	return b.tourID
}

func (b *Booking) ClientID() kernel.UUID {
	return b.clientID
}

func (b *Booking) Status() Status {
	return b.status
}

func (b *Booking) Weight() int {
	return b.weight
}

func (b *Booking) PickupCity() string {
	return b.pickupCity
}

func (b *Booking) Details() Details {
	return b.details
}

func (b *Booking) TrackingNumber() TrackingNumber {
	return b.trackingNumber
}

func (b *Booking) CreatedAt() time.Time {
	return b.createdAt
}

func (b *Booking) UpdatedAt() time.Time {
	return b.updatedAt
}

// OwnedBy reports whether the actor is the booking's client.
func (b *Booking) OwnedBy(actor kernel.Actor) bool {
	return actor.Role() == kernel.RoleClient && actor.Is(b.clientID)
}

// PersistedStatus is the status the booking had when loaded or last saved.
func (b *Booking) PersistedStatus() Status {
	return b.persistedStatus
}

// IsNew reports whether the booking has never been saved.
func (b *Booking) IsNew() bool {
	return b.isNew
}

// MarkPersisted is called by the repository after a successful write.
func (b *Booking) MarkPersisted() {
	b.persistedStatus = b.status
	b.isNew = false
}

// Transition moves the booking to target on behalf of trigger, checking the
// transition table and the parent tour status. The returned rule tells the
// caller which capacity effect to apply.
func (b *Booking) Transition(target Status, trigger Trigger, tourStatus tour.Status, now time.Time) (Rule, error) {
	rule, err := b.status.Transition(target, trigger)
	if err != nil {
		return Rule{}, err
	}
	if !rule.AllowsTourStage(tourStatus) {
		return Rule{}, errs.NewInvalidTransitionErrorWithCause("booking", b.status.String(), target.String(),
			fmt.Errorf("tour is %s", tourStatus))
	}
	b.status = target
	b.updatedAt = now.UTC()
	return rule, nil
}

// Edit replaces the editable fields. Only pending bookings can be edited; a
// weight change must be mirrored by a tour Resize in the same unit of work.
func (b *Booking) Edit(weight int, details Details, now time.Time) error {
	if b.status != Pending {
		return fmt.Errorf("%w (booking is %s)", ErrBookingIsNotEditable, b.status)
	}
	if err := ValidateWeight(weight); err != nil {
		return err
	}
	b.weight = weight
	b.details = details
	b.updatedAt = now.UTC()
	return nil
}

func (b *Booking) setClient(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.clientID = id
	return nil
}

// ValidateWeight checks the [MinWeight, MaxWeight] bounds applied at creation and edit.
func ValidateWeight(weight int) error {
	if weight < MinWeight || weight > MaxWeight {
		return errs.NewValueIsOutOfRangeError("weight", weight, MinWeight, MaxWeight)
	}
	return nil
}
