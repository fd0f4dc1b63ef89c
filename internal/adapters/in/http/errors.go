package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/booking"
	"shipping/internal/generated/servers"
	"shipping/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// errorStatus maps domain errors onto HTTP status codes. Order matters:
// InvalidPickupCity also matches ErrValueIsInvalid.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, booking.ErrInvalidPickupCity):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrCapacityExceeded),
		errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrStaleState):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, commands.ErrNothingToEdit):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err as a servers.Error. Internal errors are logged and their
// text is not sent to the caller.
func (s *Server) fail(ctx echo.Context, err error) error {
	status := errorStatus(err)
	message := err.Error()

	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			slog.String("method", ctx.Request().Method),
			slog.String("path", ctx.Path()),
			slog.Any("error", err))
		message = http.StatusText(status)
	}

	return ctx.JSON(status, servers.Error{Code: status, Message: message})
}

// errorHandler renders errors that escape the handlers, such as unknown
// routes and parameter binding failures, in the same body shape.
func errorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		message := http.StatusText(status)

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			status = httpErr.Code
			if m, ok := httpErr.Message.(string); ok {
				message = m
			} else {
				message = http.StatusText(status)
			}
		} else if !errors.Is(err, context.Canceled) {
			logger.Error("unhandled error", slog.Any("error", err))
		}

		if ctx.Request().Method == http.MethodHead {
			err = ctx.NoContent(status)
		} else {
			err = ctx.JSON(status, servers.Error{Code: status, Message: message})
		}
		if err != nil {
			logger.Error("write error response", slog.Any("error", err))
		}
	}
}
