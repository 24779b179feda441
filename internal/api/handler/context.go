package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/heroboxai/herobox-api/internal/api/middleware"
)

// ctxUserID extracts the authenticated user's id injected by the Auth
// middleware. Its presence proves the middleware ran; a missing or mistyped
// value means the route was wired without auth and must not proceed.
func ctxUserID(c echo.Context) (uuid.UUID, error) {
	userID, ok := c.Get(middleware.UserIDKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, nil
}

// pathID parses the :id route parameter as a UUID.
func pathID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
