package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/heroboxai/herobox-api/internal/core/ports"
)

// UserIDKey is the echo context key under which Auth stores the
// authenticated user's id (a uuid.UUID).
const UserIDKey = "user_id"

// Auth validates the bearer token and injects the caller's user id into the
// request context. Token verification is delegated to the parser so the
// middleware never sees the signing secret.
func Auth(parser ports.TokenParser) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			userID, ok := parser.Parse(parts[1])
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(UserIDKey, userID)
			return next(c)
		}
	}
}
