package services_test

import (
	"testing"

	"shipping/internal/core/domain/model/booking"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/tour"
	"shipping/internal/core/domain/services"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCancellationPolicy(t *testing.T) {
	p, err := services.ParseCancellationPolicy("")
	require.NoError(t, err)
	assert.Equal(t, services.RetainBookings, p)

	p, err = services.ParseCancellationPolicy(" Cancel-Pending ")
	require.NoError(t, err)
	assert.Equal(t, services.CancelPendingBookings, p)

	_, err = services.ParseCancellationPolicy("cancel-all")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = services.NewCascadeCoordinator("cancel-all")
	require.Error(t, err)
}

func TestCascadeCoordinator_Transition(t *testing.T) {
	carrier := kernel.NewUUID()
	owner := actor(t, carrier, kernel.RoleCarrier)
	coordinator, err := services.NewCascadeCoordinator(services.RetainBookings)
	require.NoError(t, err)

	tests := []struct {
		name string
		from tour.Status
		to   tour.Status
		want services.Cascade
	}{
		{"start collecting", tour.Planned, tour.Collecting, services.Cascade{}},
		{"back to planned reasserts pending", tour.Collecting, tour.Planned,
			services.Cascade{From: booking.Pending, To: booking.Pending}},
		{"depart ships collected", tour.Collecting, tour.InTransit,
			services.Cascade{From: booking.Collected, To: booking.InTransit}},
		{"reversal brings parcels back", tour.InTransit, tour.Collecting,
			services.Cascade{From: booking.InTransit, To: booking.Collected}},
		{"complete", tour.InTransit, tour.Completed, services.Cascade{}},
		{"cancel retains bookings", tour.Collecting, tour.Cancelled, services.Cascade{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := restoreTour(t, carrier, tour.Public, tt.from, 100, 100)

			cascade, err := coordinator.Transition(owner, tr, tt.to)

			require.NoError(t, err)
			assert.Equal(t, tt.want, cascade)
			assert.Equal(t, tt.want.From == booking.Unknown, cascade.IsEmpty())
			assert.Equal(t, tt.to, tr.Status())
			assert.Equal(t, tt.from, tr.PersistedStatus())
		})
	}

	t.Run("should reject every target out of cancelled", func(t *testing.T) {
		for _, target := range tour.Statuses() {
			tr := restoreTour(t, carrier, tour.Public, tour.Cancelled, 100, 100)

			_, err := coordinator.Transition(owner, tr, target)

			require.ErrorIs(t, err, errs.ErrInvalidTransition, target.String())
			assert.Equal(t, tour.Cancelled, tr.Status())
		}
	})

	t.Run("should reject skipping a stage", func(t *testing.T) {
		tr := restoreTour(t, carrier, tour.Public, tour.Planned, 100, 100)

		_, err := coordinator.Transition(owner, tr, tour.InTransit)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("should forbid other carriers", func(t *testing.T) {
		tr := restoreTour(t, carrier, tour.Public, tour.Planned, 100, 100)

		_, err := coordinator.Transition(actor(t, kernel.NewUUID(), kernel.RoleCarrier), tr, tour.Collecting)

		require.ErrorIs(t, err, errs.ErrForbidden)
		assert.Equal(t, tour.Planned, tr.Status())
	})

	t.Run("should let admins act as carrier", func(t *testing.T) {
		tr := restoreTour(t, carrier, tour.Public, tour.Planned, 100, 100)

		_, err := coordinator.Transition(actor(t, kernel.NewUUID(), kernel.RoleAdmin), tr, tour.Collecting)

		require.NoError(t, err)
	})
}

func TestCascadeCoordinator_CancelPendingPolicy(t *testing.T) {
	carrier := kernel.NewUUID()
	coordinator, err := services.NewCascadeCoordinator(services.CancelPendingBookings)
	require.NoError(t, err)

	for _, from := range []tour.Status{tour.Planned, tour.Collecting, tour.InTransit} {
		t.Run(from.String(), func(t *testing.T) {
			tr := restoreTour(t, carrier, tour.Public, from, 100, 60)

			cascade, err := coordinator.Transition(actor(t, carrier, kernel.RoleCarrier), tr, tour.Cancelled)

			require.NoError(t, err)
			assert.Equal(t, booking.Pending, cascade.From)
			assert.Equal(t, booking.Cancelled, cascade.To)
			assert.True(t, cascade.ReleasesCapacity)
		})
	}
}

func TestCascadeCoordinator_CascadesAreCascadeRules(t *testing.T) {
	for _, policy := range []services.CancellationPolicy{services.RetainBookings, services.CancelPendingBookings} {
		coordinator, err := services.NewCascadeCoordinator(policy)
		require.NoError(t, err)

		for _, from := range tour.Statuses() {
			for _, to := range tour.Statuses() {
				if !from.CanTransitionTo(to) {
					continue
				}
				cascade, err := coordinator.CascadeFor(from, to)
				require.NoError(t, err)
				if cascade.IsEmpty() {
					continue
				}
				rule, ok := booking.RuleFor(cascade.From, cascade.To)
				require.True(t, ok)
				assert.True(t, rule.AllowsTrigger(booking.TriggerCascade))
			}
		}
	}
}
