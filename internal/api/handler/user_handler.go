package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/heroboxai/herobox-api/internal/core/ports"
)

// UserHandler exposes the current-user profile endpoints.
type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type updateProfileRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Me returns the authenticated user's profile.
//
// @Summary      Get the current user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.UserProjection
// @Failure      401  {object}  map[string]string
// @Router       /api/users/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	user, err := h.userService.GetCurrentUser(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateMe changes the authenticated user's username and email.
//
// @Summary      Update the current user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "New profile values"
// @Success      200   {object}  ports.UserProjection
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/users/me [put]
func (h *UserHandler) UpdateMe(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.userService.UpdateCurrentUser(c.Request().Context(), ports.UpdateProfileInput{
		UserID:   userID,
		Username: req.Username,
		Email:    req.Email,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}
