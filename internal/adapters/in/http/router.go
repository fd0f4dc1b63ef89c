package http

import (
	"log/slog"

	"shipping/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// NewRouter builds the echo instance: health and documentation routes are
// public, /api/v1 requires a bearer token and a request valid against the
// OpenAPI document.
func NewRouter(server *Server, auth Authenticator, logger *slog.Logger) (*echo.Echo, error) {
	swagger, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}

	validator, err := NewRequestValidator(swagger)
	if err != nil {
		return nil, err
	}

	if err = servers.RegisterSwaggerDoc(); err != nil {
		return nil, err
	}

	logger = logger.With("component", "http")

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = errorHandler(logger)
	e.Use(middleware.Recover())
	e.Use(requestLogger(logger))

	e.GET("/health", server.Health)
	e.GET("/openapi.yaml", server.OpenAPI)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1", auth.Middleware(), validator)
	servers.RegisterHandlers(api, server)

	return e, nil
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(ctx echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
				logger.LogAttrs(ctx.Request().Context(), slog.LevelError, "request", attrs...)
				return nil
			}
			logger.LogAttrs(ctx.Request().Context(), slog.LevelInfo, "request", attrs...)
			return nil
		},
	})
}
