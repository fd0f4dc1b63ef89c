package commands

import (
	"context"
	"time"

	"shipping/internal/core/domain/model/approval"
	"shipping/internal/core/domain/services"
)

type RequestApprovalCommandHandler struct {
	uowFactory ApprovalUoWFactory
	gate       services.ApprovalGate
}

func NewRequestApprovalCommandHandler(uowFactory ApprovalUoWFactory, gate services.ApprovalGate) RequestApprovalCommandHandler {
	return RequestApprovalCommandHandler{uowFactory: uowFactory, gate: gate}
}

func (h *RequestApprovalCommandHandler) Handle(ctx context.Context, cmd RequestApprovalCommand) (*approval.Request, error) {
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

	tr, err := uow.TourRepository().Get(ctx, cmd.TourID())
	if err != nil {
		return nil, err
	}

	approvalRepo := uow.ApprovalRepository()
	latest, err := approvalRepo.Latest(ctx, tr.ID(), cmd.Actor().ID())
	if err != nil {
		return nil, err
	}

	request, err := h.gate.Request(cmd.Actor(), tr, latest, cmd.Message(), time.Now())
	if err != nil {
		return nil, err
	}

	if err = approvalRepo.Add(ctx, request); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return request, nil
}
