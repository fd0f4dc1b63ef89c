package services_test

import (
	"testing"
	"time"

	"shipping/internal/core/domain/model/booking"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/tour"

	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 2, 20, 9, 30, 0, 0, time.UTC)

func restoreTour(t *testing.T, carrier kernel.UUID, typ tour.Type, status tour.Status, total, remaining int) *tour.Tour {
	t.Helper()
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	schedule, err := tour.NewSchedule("DE", "TN", day, day.AddDate(0, 0, 2))
	require.NoError(t, err)
	berlin, err := tour.NewStop("Berlin", day)
	require.NoError(t, err)
	munich, err := tour.NewStop("Munich", day.AddDate(0, 0, 1))
	require.NoError(t, err)

	tr, err := tour.RestoreTour(1, carrier, typ, schedule, []tour.Stop{berlin, munich}, total, remaining, status)
	require.NoError(t, err)
	return tr
}

func restoreBooking(t *testing.T, client kernel.UUID, status booking.Status, weight int) *booking.Booking {
	t.Helper()
	b, err := booking.RestoreBooking(kernel.NewUUID(), 1, client, status, weight, "Berlin",
		details(t), booking.NewTrackingNumber(), now, now)
	require.NoError(t, err)
	return b
}

func details(t *testing.T) booking.Details {
	t.Helper()
	d, err := booking.NewDetails("Tunis", "5 avenue Habib Bourguiba", "Amine", "+21620000000", nil, []string{"documents"})
	require.NoError(t, err)
	return d
}

func actor(t *testing.T, id kernel.UUID, role kernel.Role) kernel.Actor {
	t.Helper()
	a, err := kernel.NewActor(id, role)
	require.NoError(t, err)
	return a
}
