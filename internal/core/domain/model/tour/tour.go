package tour

import (
	"errors"
	"fmt"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
)

var (
	// ErrTourIsNotConstructed is returned when a Tour was not created via NewTour or RestoreTour.
	ErrTourIsNotConstructed = errors.New("Tour must be created via NewTour or RestoreTour constructor")

	// ErrTourIsNotEditable is returned for route or capacity edits outside the planned status.
	ErrTourIsNotEditable = fmt.Errorf("%w: route and capacity can only change while the tour is planned",
		errs.ErrInvalidTransition)

	// ErrTourIsClosedForBookings is returned when a booking change is requested
	// while the tour is neither planned nor collecting.
	ErrTourIsClosedForBookings = fmt.Errorf("%w: tour no longer accepts booking changes", errs.ErrInvalidTransition)
)

// Tour is the aggregate root for a carrier's scheduled run. It owns the
// route, the schedule, the lifecycle status and the capacity ledger.
//
// Invariants:
//   - 0 <= remaining capacity <= total capacity
//   - remaining capacity = total - weight of every non-cancelled booking
//     (maintained by callers through Reserve, Release and Resize)
//   - every stop and the tour collection day are on or before departure
//   - route and total capacity only change while Planned
//
// Tour remembers the status and remaining capacity it was loaded with so the
// repository can guard its write against concurrent modifications.
type Tour struct {
	id        int64
	carrierID kernel.UUID
	tourType  Type
	schedule  Schedule
	route     []Stop

	totalCapacity     int
	remainingCapacity int
	status            Status

	persistedStatus    Status
	persistedRemaining int

	isConstructed bool
}

// NewTour creates a planned tour with all of its capacity available.
// The id is assigned by the repository on Add.
func NewTour(carrierID kernel.UUID, tourType Type, schedule Schedule, route []Stop, totalCapacity int) (*Tour, error) {
	t := &Tour{
		status:        Planned,
		isConstructed: true,
	}

	if err := errors.Join(
		t.setCarrier(carrierID),
		t.setType(tourType),
		t.setSchedule(schedule),
		t.setTotalCapacity(totalCapacity),
	); err != nil {
		return nil, err
	}
	if err := t.setRoute(route); err != nil {
		return nil, err
	}

	t.remainingCapacity = t.totalCapacity
	t.persistedStatus = t.status
	t.persistedRemaining = t.remainingCapacity
	return t, nil
}

// RestoreTour rebuilds a persisted tour. Stored values are validated with the
// same rules as NewTour, plus the capacity bounds and the status itself.
func RestoreTour(
	id int64,
	carrierID kernel.UUID,
	tourType Type,
	schedule Schedule,
	route []Stop,
	totalCapacity, remainingCapacity int,
	status Status,
) (*Tour, error) {
	t := &Tour{id: id, isConstructed: true}

	if err := errors.Join(
		t.setCarrier(carrierID),
		t.setType(tourType),
		t.setSchedule(schedule),
		t.setTotalCapacity(totalCapacity),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	if err := t.setRoute(route); err != nil {
		return nil, err
	}
	if remainingCapacity < 0 || remainingCapacity > totalCapacity {
		return nil, errs.NewValueIsOutOfRangeError("remaining capacity", remainingCapacity, 0, totalCapacity)
	}

	t.remainingCapacity = remainingCapacity
	t.status = status
	t.persistedStatus = status
	t.persistedRemaining = remainingCapacity
	return t, nil
}

func (t *Tour) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTourIsNotConstructed
	}
	return nil
}

func (t *Tour) ID() int64 {
	return t.id
}

// AssignID records the identifier generated by the store. It may be called once.
func (t *Tour) AssignID(id int64) error {
	if t.id != 0 {
		return errs.NewValueIsInvalidErrorWithCause("tour id", fmt.Errorf("tour already has id %d", t.id))
	}
	if id <= 0 {
		return errs.NewValueIsOutOfRangeError("tour id", id, 1, "max int64")
	}
	t.id = id
	return nil
}

func (t *Tour) CarrierID() kernel.UUID {
	return t.carrierID
}

func (t *Tour) Type() Type {
	return t.tourType
}

func (t *Tour) IsPrivate() bool {
	return t.tourType == Private
}

func (t *Tour) Schedule() Schedule {
	return t.schedule
}

// Route returns a copy of the ordered stops.
func (t *Tour) Route() []Stop {
	return append([]Stop(nil), t.route...)
}

func (t *Tour) Status() Status {
	return t.status
}

// OwnedBy reports whether the actor is the tour's carrier or an admin.
func (t *Tour) OwnedBy(actor kernel.Actor) bool {
	return actor.IsAdmin() || (actor.Role() == kernel.RoleCarrier && actor.Is(t.carrierID))
}

// StopFor returns the route stop matching city, compared case-insensitively.
func (t *Tour) StopFor(city string) (Stop, bool) {
	for _, stop := range t.route {
		if stop.Matches(city) {
			return stop, true
		}
	}
	return Stop{}, false
}

// ChangeStatus applies a lifecycle transition and returns the previous status.
func (t *Tour) ChangeStatus(target Status) (Status, error) {
	next, err := t.status.Transition(target)
	if err != nil {
		return Unknown, err
	}
	previous := t.status
	t.status = next
	return previous, nil
}

// EnsureAcceptsBookingChanges fails with ErrTourIsClosedForBookings unless
// the tour is planned or collecting.
func (t *Tour) EnsureAcceptsBookingChanges() error {
	if !t.status.AcceptsBookingChanges() {
		return fmt.Errorf("%w (tour %d is %s)", ErrTourIsClosedForBookings, t.id, t.status)
	}
	return nil
}

// EditRoute replaces the route while the tour is planned. activePickups are
// the pickup cities of non-cancelled bookings; each must keep a stop.
func (t *Tour) EditRoute(route []Stop, activePickups []string) error {
	if t.status != Planned {
		return ErrTourIsNotEditable
	}
	if err := validateRoute(route, t.schedule.departureDate); err != nil {
		return err
	}
	for _, city := range activePickups {
		if !routeHas(route, city) {
			return errs.NewValueIsInvalidErrorWithCause("route",
				fmt.Errorf("stop %q still has active bookings", city))
		}
	}
	t.route = append([]Stop(nil), route...)
	return nil
}

// PersistedStatus is the status the tour had when loaded or last saved.
func (t *Tour) PersistedStatus() Status {
	return t.persistedStatus
}

// PersistedRemaining is the remaining capacity the tour had when loaded or last saved.
func (t *Tour) PersistedRemaining() int {
	return t.persistedRemaining
}

// MarkPersisted is called by the repository after a successful guarded write.
func (t *Tour) MarkPersisted() {
	t.persistedStatus = t.status
	t.persistedRemaining = t.remainingCapacity
}

func (t *Tour) setCarrier(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.carrierID = id
	return nil
}

func (t *Tour) setType(tourType Type) error {
	if _, err := ParseType(string(tourType)); err != nil {
		return err
	}
	t.tourType = tourType
	return nil
}

func (t *Tour) setSchedule(schedule Schedule) error {
	if err := schedule.Validate(); err != nil {
		return err
	}
	t.schedule = schedule
	return nil
}

func (t *Tour) setRoute(route []Stop) error {
	if err := validateRoute(route, t.schedule.departureDate); err != nil {
		return err
	}
	t.route = append([]Stop(nil), route...)
	return nil
}

func (t *Tour) setTotalCapacity(total int) error {
	if total <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("total capacity", fmt.Errorf("%d is not greater than 0", total))
	}
	t.totalCapacity = total
	return nil
}

func routeHas(route []Stop, city string) bool {
	for _, stop := range route {
		if stop.Matches(city) {
			return true
		}
	}
	return false
}
