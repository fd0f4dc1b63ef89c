package http

import (
	"net/http"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/tour"
	"shipping/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// CreateTour handles POST /api/v1/tours.
func (s *Server) CreateTour(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.NewTour
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	tourType, err := tour.ParseType(body.Type)
	if err != nil {
		return s.fail(ctx, err)
	}
	schedule, err := tour.NewSchedule(body.OriginCountry, body.DestinationCountry,
		body.CollectionDate.Time, body.DepartureDate.Time)
	if err != nil {
		return s.fail(ctx, err)
	}
	route, err := toRoute(body.Route)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCreateTourCommand(actor, tourType, schedule, route, body.TotalCapacity)
	if err != nil {
		return s.fail(ctx, err)
	}

	id, err := s.h.CreateTour.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return s.respondTour(ctx, http.StatusCreated, id)
}

// GetTour handles GET /api/v1/tours/{id}.
func (s *Server) GetTour(ctx echo.Context, id int64) error {
	return s.respondTour(ctx, http.StatusOK, id)
}

// EditTour handles PATCH /api/v1/tours/{id}.
func (s *Server) EditTour(ctx echo.Context, id int64) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.TourPatch
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var route []tour.Stop
	if body.Route != nil {
		if route, err = toRoute(*body.Route); err != nil {
			return s.fail(ctx, err)
		}
	}

	cmd, err := commands.NewEditTourCommand(actor, id, route, body.TotalCapacity)
	if err != nil {
		return s.fail(ctx, err)
	}

	if _, err = s.h.EditTour.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondTour(ctx, http.StatusOK, id)
}

// ChangeTourStatus handles PUT /api/v1/tours/{id}/status.
func (s *Server) ChangeTourStatus(ctx echo.Context, id int64) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.TourStatusChange
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := tour.ParseStatus(body.Status)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewChangeTourStatusCommand(actor, id, target)
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.h.ChangeTourStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	view, err := s.loadTour(ctx, id)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.TourStatusChangeResult{
		CascadedBookings: result.CascadedBookings,
		Tour:             view,
	})
}

func (s *Server) loadTour(ctx echo.Context, id int64) (servers.Tour, error) {
	query, err := queries.NewGetTourQuery(id)
	if err != nil {
		return servers.Tour{}, err
	}

	resp, err := s.h.GetTour.Handle(ctx.Request().Context(), query)
	if err != nil {
		return servers.Tour{}, err
	}

	return toTourView(resp), nil
}

func (s *Server) respondTour(ctx echo.Context, status int, id int64) error {
	view, err := s.loadTour(ctx, id)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(status, view)
}
