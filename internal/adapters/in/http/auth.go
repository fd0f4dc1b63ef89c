package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/generated/servers"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const actorContextKey = "actor"

var errUnauthenticated = errors.New("unauthenticated")

// actorClaims are the claims of tokens issued by the marketplace auth
// service: sub is the user id, role its marketplace role.
type actorClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Authenticator turns HS256 bearer tokens into a kernel.Actor.
type Authenticator struct {
	secret []byte
}

func NewAuthenticator(secret string) (Authenticator, error) {
	if strings.TrimSpace(secret) == "" {
		return Authenticator{}, errors.New("jwt secret is empty")
	}
	return Authenticator{secret: []byte(secret)}, nil
}

// Authenticate parses the value of an Authorization header.
func (a Authenticator) Authenticate(header string) (kernel.Actor, error) {
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || strings.TrimSpace(raw) == "" {
		return kernel.Actor{}, fmt.Errorf("%w: missing bearer token", errUnauthenticated)
	}

	claims := &actorClaims{}
	_, err := jwt.ParseWithClaims(strings.TrimSpace(raw), claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return kernel.Actor{}, fmt.Errorf("%w: %w", errUnauthenticated, err)
	}

	id, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return kernel.Actor{}, fmt.Errorf("%w: subject: %w", errUnauthenticated, err)
	}
	role, err := kernel.ParseRole(claims.Role)
	if err != nil {
		return kernel.Actor{}, fmt.Errorf("%w: %w", errUnauthenticated, err)
	}

	return kernel.NewActor(id, role)
}

// Issue signs a token for actor. Production tokens come from the auth
// service; this is used by local tooling and tests.
func (a Authenticator) Issue(actor kernel.Actor, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, actorClaims{
		Role: string(actor.Role()),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   actor.ID().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})
	return token.SignedString(a.secret)
}

// Middleware rejects requests without a valid token and stores the actor
// in the echo context.
func (a Authenticator) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			actor, err := a.Authenticate(ctx.Request().Header.Get(echo.HeaderAuthorization))
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, servers.Error{
					Code:    http.StatusUnauthorized,
					Message: err.Error(),
				})
			}
			ctx.Set(actorContextKey, actor)
			return next(ctx)
		}
	}
}

func actorFrom(ctx echo.Context) (kernel.Actor, error) {
	actor, ok := ctx.Get(actorContextKey).(kernel.Actor)
	if !ok {
		return kernel.Actor{}, errUnauthenticated
	}
	return actor, nil
}
