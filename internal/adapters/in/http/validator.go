package http

import (
	"fmt"
	"net/http"
	"strings"

	"shipping/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	legacyrouter "github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
)

// NewRequestValidator checks every request against the OpenAPI document
// before it reaches a handler. Requests for paths the document does not
// describe pass through to echo's routing.
func NewRequestValidator(swagger *openapi3.T) (echo.MiddlewareFunc, error) {
	router, err := legacyrouter.NewRouter(swagger)
	if err != nil {
		return nil, fmt.Errorf("build openapi router: %w", err)
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()

			route, pathParams, findErr := router.FindRoute(req)
			if findErr != nil {
				return next(ctx)
			}

			if err := openapi3filter.ValidateRequest(req.Context(), &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}); err != nil {
				// first line only, the rest is the schema dump
				message, _, _ := strings.Cut(err.Error(), "\n")
				return ctx.JSON(http.StatusBadRequest, servers.Error{
					Code:    http.StatusBadRequest,
					Message: message,
				})
			}

			return next(ctx)
		}
	}, nil
}
