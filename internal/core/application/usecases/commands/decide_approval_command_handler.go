package commands

import (
	"context"
	"time"

	"shipping/internal/core/domain/model/approval"
	"shipping/internal/core/domain/services"
)

type DecideApprovalCommandHandler struct {
	uowFactory ApprovalUoWFactory
	gate       services.ApprovalGate
}

func NewDecideApprovalCommandHandler(uowFactory ApprovalUoWFactory, gate services.ApprovalGate) DecideApprovalCommandHandler {
	return DecideApprovalCommandHandler{uowFactory: uowFactory, gate: gate}
}

func (h *DecideApprovalCommandHandler) Handle(ctx context.Context, cmd DecideApprovalCommand) (*approval.Request, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	approvalRepo := uow.ApprovalRepository()
	request, err := approvalRepo.Get(ctx, cmd.RequestID())
	if err != nil {
		return nil, err
	}

	tr, err := uow.TourRepository().Get(ctx, request.TourID())
	if err != nil {
		return nil, err
	}

	if err = h.gate.Decide(cmd.Actor(), tr, request, cmd.Decision(), time.Now()); err != nil {
		return nil, err
	}

	if err = approvalRepo.Update(ctx, request); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return request, nil
}
