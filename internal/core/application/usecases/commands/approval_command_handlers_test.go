package commands_test

import (
	"testing"
	"time"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/approval"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/tour"
	"shipping/internal/core/domain/services"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type approvalUoWFixture struct {
	tourRepo     *MockTourRepository
	approvalRepo *MockApprovalRepository
	uow          *MockUoW
	factory      *MockApprovalUoWFactory
}

func newApprovalUoWFixture() *approvalUoWFixture {
	f := &approvalUoWFixture{
		tourRepo:     new(MockTourRepository),
		approvalRepo: new(MockApprovalRepository),
		uow:          new(MockUoW),
		factory:      new(MockApprovalUoWFactory),
	}
	f.factory.On("Create").Return(f.uow)
	f.uow.On("Begin", mock.Anything).Return(nil)
	f.uow.On("Rollback", mock.Anything).Return(nil)
	f.uow.On("TourRepository").Return(f.tourRepo)
	f.uow.On("ApprovalRepository").Return(f.approvalRepo)
	return f
}

func restoreRequest(t *testing.T, tourID int64, clientID kernel.UUID, status approval.Status) *approval.Request {
	t.Helper()
	r, err := approval.RestoreRequest(kernel.NewUUID(), tourID, clientID, status, "please",
		time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC), nil)
	require.NoError(t, err)
	return r
}

func TestRequestApprovalCommandHandler(t *testing.T) {
	ctx := t.Context()
	clientID := kernel.NewUUID()
	client := newActor(t, clientID, kernel.RoleClient)

	t.Run("should open a pending request", func(t *testing.T) {
		tr := restoreTour(t, 2, kernel.NewUUID(), tour.Private, tour.Planned, 500, 500)
		f := newApprovalUoWFixture()
		f.tourRepo.On("Get", ctx, int64(2)).Return(tr, nil).Once()
		f.approvalRepo.On("Latest", ctx, int64(2), clientID).Return(nil, nil).Once()
		f.approvalRepo.On("Add", ctx, mock.AnythingOfType("*approval.Request")).Return(nil).Once()
		f.uow.On("Commit", ctx).Return(nil).Once()

		cmd, err := commands.NewRequestApprovalCommand(client, 2, "  two boxes of books ")
		require.NoError(t, err)
		handler := commands.NewRequestApprovalCommandHandler(f.factory, services.NewApprovalGate())

		got, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.True(t, got.IsPending())
		assert.Equal(t, "two boxes of books", got.Message())
		f.approvalRepo.AssertExpectations(t)
	})

	t.Run("should allow a new request after rejection", func(t *testing.T) {
		tr := restoreTour(t, 2, kernel.NewUUID(), tour.Private, tour.Collecting, 500, 500)
		f := newApprovalUoWFixture()
		f.tourRepo.On("Get", ctx, int64(2)).Return(tr, nil).Once()
		f.approvalRepo.On("Latest", ctx, int64(2), clientID).
			Return(restoreRequest(t, 2, clientID, approval.Rejected), nil).Once()
		f.approvalRepo.On("Add", ctx, mock.Anything).Return(nil).Once()
		f.uow.On("Commit", ctx).Return(nil).Once()

		cmd, err := commands.NewRequestApprovalCommand(client, 2, "")
		require.NoError(t, err)
		handler := commands.NewRequestApprovalCommandHandler(f.factory, services.NewApprovalGate())

		_, err = handler.Handle(ctx, cmd)

		require.NoError(t, err)
	})

	t.Run("should refuse a second open request", func(t *testing.T) {
		tr := restoreTour(t, 2, kernel.NewUUID(), tour.Private, tour.Planned, 500, 500)
		f := newApprovalUoWFixture()
		f.tourRepo.On("Get", ctx, int64(2)).Return(tr, nil).Once()
		f.approvalRepo.On("Latest", ctx, int64(2), clientID).
			Return(restoreRequest(t, 2, clientID, approval.Pending), nil).Once()

		cmd, err := commands.NewRequestApprovalCommand(client, 2, "")
		require.NoError(t, err)
		handler := commands.NewRequestApprovalCommandHandler(f.factory, services.NewApprovalGate())

		_, err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		f.approvalRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	})

	t.Run("should refuse public tours", func(t *testing.T) {
		tr := restoreTour(t, 2, kernel.NewUUID(), tour.Public, tour.Planned, 500, 500)
		f := newApprovalUoWFixture()
		f.tourRepo.On("Get", ctx, int64(2)).Return(tr, nil).Once()
		f.approvalRepo.On("Latest", ctx, int64(2), clientID).Return(nil, nil).Once()

		cmd, err := commands.NewRequestApprovalCommand(client, 2, "")
		require.NoError(t, err)
		handler := commands.NewRequestApprovalCommandHandler(f.factory, services.NewApprovalGate())

		_, err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, approval.ErrTourIsPublic)
	})
}

func TestDecideApprovalCommandHandler(t *testing.T) {
	ctx := t.Context()
	carrierID := kernel.NewUUID()
	carrier := newActor(t, carrierID, kernel.RoleCarrier)

	t.Run("should approve a pending request", func(t *testing.T) {
		tr := restoreTour(t, 2, carrierID, tour.Private, tour.Planned, 500, 500)
		r := restoreRequest(t, 2, kernel.NewUUID(), approval.Pending)
		f := newApprovalUoWFixture()
		f.approvalRepo.On("Get", ctx, r.ID()).Return(r, nil).Once()
		f.tourRepo.On("Get", ctx, int64(2)).Return(tr, nil).Once()
		f.approvalRepo.On("Update", ctx, r).Return(nil).Once()
		f.uow.On("Commit", ctx).Return(nil).Once()

		cmd, err := commands.NewDecideApprovalCommand(carrier, r.ID(), approval.Approved)
		require.NoError(t, err)
		handler := commands.NewDecideApprovalCommandHandler(f.factory, services.NewApprovalGate())

		got, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.True(t, got.IsApproved())
		assert.NotNil(t, got.DecidedAt())
	})

	t.Run("should refuse other carriers", func(t *testing.T) {
		tr := restoreTour(t, 2, kernel.NewUUID(), tour.Private, tour.Planned, 500, 500)
		r := restoreRequest(t, 2, kernel.NewUUID(), approval.Pending)
		f := newApprovalUoWFixture()
		f.approvalRepo.On("Get", ctx, r.ID()).Return(r, nil).Once()
		f.tourRepo.On("Get", ctx, int64(2)).Return(tr, nil).Once()

		cmd, err := commands.NewDecideApprovalCommand(carrier, r.ID(), approval.Rejected)
		require.NoError(t, err)
		handler := commands.NewDecideApprovalCommandHandler(f.factory, services.NewApprovalGate())

		_, err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrForbidden)
		assert.True(t, r.IsPending())
	})

	t.Run("should only accept final decisions", func(t *testing.T) {
		_, err := commands.NewDecideApprovalCommand(carrier, kernel.NewUUID(), approval.Pending)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
