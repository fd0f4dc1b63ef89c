package http

import (
	"log/slog"
	"net/http"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	CreateTour       commands.CreateTourCommandHandler
	EditTour         commands.EditTourCommandHandler
	ChangeTourStatus commands.ChangeTourStatusCommandHandler
	CreateBooking    commands.CreateBookingCommandHandler
	EditBooking      commands.EditBookingCommandHandler
	BookingActions   commands.BookingActionCommandHandler
	RequestApproval  commands.RequestApprovalCommandHandler
	DecideApproval   commands.DecideApprovalCommandHandler

	GetTour          queries.GetTourQueryHandler
	ListTourBookings queries.ListTourBookingsQueryHandler
}

// Server implements servers.ServerInterface. It turns requests into commands
// and queries and maps domain errors onto status codes.
type Server struct {
	h      Handlers
	logger *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		h:      handlers,
		logger: logger.With("component", "http"),
	}
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// OpenAPI handles GET /openapi.yaml.
func (s *Server) OpenAPI(ctx echo.Context) error {
	return ctx.Blob(http.StatusOK, "application/yaml", servers.Spec())
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
