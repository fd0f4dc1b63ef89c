package booking_test

import (
	"testing"
	"time"

	"shipping/internal/core/domain/model/booking"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/tour"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 2, 20, 10, 0, 0, 0, time.UTC)

func newTour(t *testing.T) *tour.Tour {
	t.Helper()
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	schedule, err := tour.NewSchedule("FR", "MA", day, day.AddDate(0, 0, 3))
	require.NoError(t, err)
	paris, err := tour.NewStop("Paris", day)
	require.NoError(t, err)
	lyon, err := tour.NewStop("Lyon", day.AddDate(0, 0, 1))
	require.NoError(t, err)

	tr, err := tour.RestoreTour(11, kernel.NewUUID(), tour.Public, schedule, []tour.Stop{paris, lyon}, 1000, 1000, tour.Planned)
	require.NoError(t, err)
	return tr
}

func newDetails(t *testing.T) booking.Details {
	t.Helper()
	item, err := booking.NewSpecialItem("laptop", 1)
	require.NoError(t, err)
	d, err := booking.NewDetails("Casablanca", "12 rue Atlas", "Sara", "+212600000000",
		[]booking.SpecialItem{item}, []string{"Electronics", " electronics", "Clothes", ""})
	require.NoError(t, err)
	return d
}

func TestNewBooking(t *testing.T) {
	client := kernel.NewUUID()

	t.Run("should create pending booking", func(t *testing.T) {
		tr := newTour(t)

		b, err := booking.NewBooking(tr, client, " lyon ", 20, newDetails(t), now)

		require.NoError(t, err)
		require.NoError(t, b.Validate())
		assert.Equal(t, booking.Pending, b.Status())
		assert.Equal(t, int64(11), b.TourID())
		assert.True(t, b.ClientID().IsEqual(client))
		assert.Equal(t, "Lyon", b.PickupCity())
		assert.Equal(t, 20, b.Weight())
		assert.Regexp(t, `^PX-[0-9A-F]{10}$`, b.TrackingNumber().String())
		assert.Equal(t, []string{"Electronics", "Clothes"}, b.Details().ContentTypes())
		assert.True(t, b.IsNew())
		assert.Equal(t, now, b.CreatedAt())
	})

	t.Run("should reject city off the route", func(t *testing.T) {
		b, err := booking.NewBooking(newTour(t), client, "Marseille", 20, newDetails(t), now)

		require.ErrorIs(t, err, booking.ErrInvalidPickupCity)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Nil(t, b)
	})

	t.Run("should enforce weight bounds", func(t *testing.T) {
		for _, w := range []int{0, 4, 31} {
			_, err := booking.NewBooking(newTour(t), client, "Paris", w, newDetails(t), now)
			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange, "weight %d", w)
		}
		for _, w := range []int{booking.MinWeight, booking.MaxWeight} {
			_, err := booking.NewBooking(newTour(t), client, "Paris", w, newDetails(t), now)
			require.NoError(t, err, "weight %d", w)
		}
	})

	t.Run("should reject unconstructed tour", func(t *testing.T) {
		_, err := booking.NewBooking(&tour.Tour{}, client, "Paris", 10, newDetails(t), now)

		require.ErrorIs(t, err, tour.ErrTourIsNotConstructed)
	})

	t.Run("should generate distinct tracking numbers", func(t *testing.T) {
		seen := map[booking.TrackingNumber]bool{}
		for range 50 {
			n := booking.NewTrackingNumber()
			assert.False(t, seen[n])
			seen[n] = true
		}
	})
}

func TestNewDetails(t *testing.T) {
	_, err := booking.NewDetails("", "", "", "", nil, nil)

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "delivery city")
	assert.Contains(t, err.Error(), "recipient phone")

	_, err = booking.NewSpecialItem("bike", 0)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestParseTrackingNumber(t *testing.T) {
	n, err := booking.ParseTrackingNumber(" px-00ab12cd34 ")
	require.NoError(t, err)
	assert.Equal(t, "PX-00AB12CD34", n.String())

	_, err = booking.ParseTrackingNumber("PX-123")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestBooking_Transition(t *testing.T) {
	t.Run("should apply allowed transition", func(t *testing.T) {
		b, err := booking.NewBooking(newTour(t), kernel.NewUUID(), "Paris", 10, newDetails(t), now)
		require.NoError(t, err)
		later := now.Add(time.Hour)

		rule, err := b.Transition(booking.Collected, booking.TriggerCarrier, tour.Collecting, later)

		require.NoError(t, err)
		assert.Equal(t, booking.NoCapacityEffect, rule.Effect)
		assert.Equal(t, booking.Collected, b.Status())
		assert.Equal(t, later, b.UpdatedAt())
		assert.Equal(t, booking.Unknown, b.PersistedStatus())
	})

	t.Run("should check the tour stage", func(t *testing.T) {
		b, err := booking.NewBooking(newTour(t), kernel.NewUUID(), "Paris", 10, newDetails(t), now)
		require.NoError(t, err)

		_, err = b.Transition(booking.Collected, booking.TriggerCarrier, tour.Planned, now)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Contains(t, err.Error(), "tour is planned")
		assert.Equal(t, booking.Pending, b.Status())
	})
}

func TestBooking_Edit(t *testing.T) {
	t.Run("should edit pending booking", func(t *testing.T) {
		b, err := booking.NewBooking(newTour(t), kernel.NewUUID(), "Paris", 10, newDetails(t), now)
		require.NoError(t, err)
		details, err := booking.NewDetails("Rabat", "", "Omar", "+212611111111", nil, nil)
		require.NoError(t, err)

		require.NoError(t, b.Edit(25, details, now))

		assert.Equal(t, 25, b.Weight())
		assert.Equal(t, "Rabat", b.Details().DeliveryCity())
	})

	t.Run("should refuse non-pending booking", func(t *testing.T) {
		b, err := booking.RestoreBooking(kernel.NewUUID(), 11, kernel.NewUUID(), booking.Collected, 10, "Paris",
			newDetails(t), booking.NewTrackingNumber(), now, now)
		require.NoError(t, err)

		err = b.Edit(12, newDetails(t), now)

		require.ErrorIs(t, err, booking.ErrBookingIsNotEditable)
		assert.Equal(t, 10, b.Weight())
	})

	t.Run("should enforce weight bounds on edit", func(t *testing.T) {
		b, err := booking.NewBooking(newTour(t), kernel.NewUUID(), "Paris", 10, newDetails(t), now)
		require.NoError(t, err)

		require.ErrorIs(t, b.Edit(31, newDetails(t), now), errs.ErrValueIsOutOfRange)
		assert.Equal(t, 10, b.Weight())
	})
}

func TestRestoreBooking(t *testing.T) {
	t.Run("should track persisted status", func(t *testing.T) {
		b, err := booking.RestoreBooking(kernel.NewUUID(), 11, kernel.NewUUID(), booking.Cancelled, 40, "Paris",
			newDetails(t), booking.NewTrackingNumber(), now, now)

		require.NoError(t, err)
		assert.Equal(t, booking.Cancelled, b.PersistedStatus())
		assert.False(t, b.IsNew())
	})

	t.Run("should collect invalid fields", func(t *testing.T) {
		_, err := booking.RestoreBooking(kernel.UUID{}, 0, kernel.NewUUID(), booking.Unknown, 0, "",
			booking.Details{}, "", now, now)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestBooking_OwnedBy(t *testing.T) {
	client := kernel.NewUUID()
	b, err := booking.NewBooking(newTour(t), client, "Paris", 10, newDetails(t), now)
	require.NoError(t, err)

	owner, _ := kernel.NewActor(client, kernel.RoleClient)
	stranger, _ := kernel.NewActor(kernel.NewUUID(), kernel.RoleClient)

	assert.True(t, b.OwnedBy(owner))
	assert.False(t, b.OwnedBy(stranger))
}
