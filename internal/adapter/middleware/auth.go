package middleware

import (
	"net/http"
	"strings"

	"loan-origination-backend/internal/domain/user"

	"github.com/labstack/echo/v4"
)

const actorKey = "actor"

// TokenValidator is satisfied by token.Service.
type TokenValidator interface {
	Validate(raw string) (user.Actor, error)
}

// Authenticate requires "Authorization: Bearer <token>" and stores the actor on the context.
func Authenticate(tokens TokenValidator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Request().Header.Get(echo.HeaderAuthorization)
			raw, ok := strings.CutPrefix(h, "Bearer ")
			if !ok || strings.TrimSpace(raw) == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing bearer token"})
			}
			actor, err := tokens.Validate(strings.TrimSpace(raw))
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid or expired token"})
			}
			SetActor(c, actor)
			return next(c)
		}
	}
}

// RequireRoles must run after Authenticate.
func RequireRoles(roles ...user.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, ok := ActorFrom(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthenticated"})
			}
			for _, r := range roles {
				if actor.Role == r {
					return next(c)
				}
			}
			return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden for role " + string(actor.Role)})
		}
	}
}

func SetActor(c echo.Context, a user.Actor) { c.Set(actorKey, a) }

func ActorFrom(c echo.Context) (user.Actor, bool) {
	a, ok := c.Get(actorKey).(user.Actor)
	return a, ok
}
