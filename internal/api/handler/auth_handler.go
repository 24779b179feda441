package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/heroboxai/herobox-api/internal/api/metrics"
	"github.com/heroboxai/herobox-api/internal/core/ports"
)

// AuthHandler exposes the sign-up and sign-in endpoints.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// SignUp registers a new account and returns a token with the user view.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signUpRequest  true  "Registration details"
// @Success      201   {object}  ports.AuthResult
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/auth/signup [post]
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req signUpRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	// Field validation stays in the service so the error messages and their
	// order match across transports.
	result, err := h.authService.SignUp(c.Request().Context(), ports.SignUpInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		metrics.SignupsTotal.WithLabelValues("failure").Inc()
		return err
	}

	metrics.SignupsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusCreated, result)
}

// SignIn authenticates by email or username and returns a fresh token.
//
// @Summary      Sign in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signInRequest  true  "Credentials: password plus exactly one of email or username"
// @Success      200   {object}  ports.AuthResult
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/auth/signin [post]
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req signInRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	result, err := h.authService.SignIn(c.Request().Context(), ports.SignInInput{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		metrics.SigninsTotal.WithLabelValues("failure").Inc()
		return err
	}

	metrics.SigninsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, result)
}
