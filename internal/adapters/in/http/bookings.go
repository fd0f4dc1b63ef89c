package http

import (
	"net/http"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/booking"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/generated/servers"
	"shipping/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ListTourBookings handles GET /api/v1/tours/{id}/bookings.
func (s *Server) ListTourBookings(ctx echo.Context, id int64, params servers.ListTourBookingsParams) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.authorizeCarrier(ctx, actor, id, "list tour bookings"); err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewListTourBookingsQuery(id,
		deref(params.City), deref(params.Status), deref(params.Sort), deref(params.Order))
	if err != nil {
		return s.fail(ctx, err)
	}

	rows, err := s.h.ListTourBookings.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.BookingRow, len(rows))
	for i, row := range rows {
		response[i] = toBookingRowView(row)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateBooking handles POST /api/v1/tours/{id}/bookings.
func (s *Server) CreateBooking(ctx echo.Context, id int64) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.NewBooking
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	details, err := toDetails(body.DeliveryCity, body.DeliveryAddress, body.RecipientName, body.RecipientPhone,
		body.SpecialItems, body.ContentTypes)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCreateBookingCommand(actor, id, body.PickupCity, body.Weight, details)
	if err != nil {
		return s.fail(ctx, err)
	}

	b, err := s.h.CreateBooking.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toBookingView(b))
}

// EditBooking handles PATCH /api/v1/bookings/{id}.
func (s *Server) EditBooking(ctx echo.Context, id openapi_types.UUID) error {
	actor, bookingID, err := s.bookingCaller(ctx, id)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.BookingPatch
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	details, err := toDetails(body.DeliveryCity, body.DeliveryAddress, body.RecipientName, body.RecipientPhone,
		body.SpecialItems, body.ContentTypes)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewEditBookingCommand(actor, bookingID, body.Weight, details)
	if err != nil {
		return s.fail(ctx, err)
	}

	b, err := s.h.EditBooking.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toBookingView(b))
}

// ChangeBookingStatus handles PUT /api/v1/bookings/{id}/status.
func (s *Server) ChangeBookingStatus(ctx echo.Context, id openapi_types.UUID) error {
	actor, bookingID, err := s.bookingCaller(ctx, id)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.BookingStatusChange
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := booking.ParseStatus(body.Status)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewChangeBookingStatusCommand(actor, bookingID, target)
	if err != nil {
		return s.fail(ctx, err)
	}

	b, err := s.h.BookingActions.ChangeStatus(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toBookingView(b))
}

// CancelBooking handles POST /api/v1/bookings/{id}/cancel.
func (s *Server) CancelBooking(ctx echo.Context, id openapi_types.UUID) error {
	actor, bookingID, err := s.bookingCaller(ctx, id)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCancelBookingCommand(actor, bookingID)
	if err != nil {
		return s.fail(ctx, err)
	}

	b, err := s.h.BookingActions.Cancel(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toBookingView(b))
}

// ReinstateBooking handles POST /api/v1/bookings/{id}/reinstate.
func (s *Server) ReinstateBooking(ctx echo.Context, id openapi_types.UUID) error {
	actor, bookingID, err := s.bookingCaller(ctx, id)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewReinstateBookingCommand(actor, bookingID)
	if err != nil {
		return s.fail(ctx, err)
	}

	b, err := s.h.BookingActions.Reinstate(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toBookingView(b))
}

func (s *Server) bookingCaller(ctx echo.Context, id openapi_types.UUID) (kernel.Actor, kernel.UUID, error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return kernel.Actor{}, kernel.UUID{}, err
	}
	bookingID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.Actor{}, kernel.UUID{}, err
	}
	return actor, bookingID, nil
}

// authorizeCarrier lets admins and the carrier of the tour through. An
// unknown tour is reported as not found.
func (s *Server) authorizeCarrier(ctx echo.Context, actor kernel.Actor, tourID int64, action string) error {
	if actor.IsAdmin() {
		return nil
	}

	query, err := queries.NewGetTourQuery(tourID)
	if err != nil {
		return err
	}
	tourView, err := s.h.GetTour.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	if !actor.Is(tourView.CarrierID) {
		return errs.NewForbiddenError(action, "only the carrier of the tour may do this")
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
