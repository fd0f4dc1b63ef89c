package http

import (
	"net/http"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/approval"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// RequestApproval handles POST /api/v1/tours/{id}/approval-requests.
func (s *Server) RequestApproval(ctx echo.Context, id int64) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.NewApprovalRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRequestApprovalCommand(actor, id, deref(body.Message))
	if err != nil {
		return s.fail(ctx, err)
	}

	req, err := s.h.RequestApproval.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toApprovalView(req))
}

// DecideApproval handles PUT /api/v1/approval-requests/{id}.
func (s *Server) DecideApproval(ctx echo.Context, id openapi_types.UUID) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	requestID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.ApprovalDecision
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	decision, err := approval.ParseStatus(body.Decision)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewDecideApprovalCommand(actor, requestID, decision)
	if err != nil {
		return s.fail(ctx, err)
	}

	req, err := s.h.DecideApproval.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toApprovalView(req))
}
