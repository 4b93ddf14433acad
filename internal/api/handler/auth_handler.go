package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aitax/tax-system/internal/api/metrics"
	"github.com/aitax/tax-system/internal/core/domain"
	"github.com/aitax/tax-system/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type demoLoginRequest struct {
	Tier string `json:"tier" validate:"required,oneof=free lite enterprise"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// Login authenticates a demo account and starts its session.
//
// @Summary      Login with email and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	metrics.LoginsTotal.WithLabelValues(string(user.Tier), "credentials").Inc()
	return c.JSON(http.StatusOK, authResponse{Token: token, User: user})
}

// DemoLogin signs in as the demo account of a tier without credentials.
//
// @Summary      Login as the demo account for a tier
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      demoLoginRequest  true  "Tier to demo"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /auth/demo-login [post]
func (h *AuthHandler) DemoLogin(c echo.Context) error {
	var req demoLoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	token, user, err := h.authService.DemoLogin(c.Request().Context(), req.Tier)
	if err != nil {
		return err
	}

	metrics.LoginsTotal.WithLabelValues(string(user.Tier), "demo").Inc()
	return c.JSON(http.StatusOK, authResponse{Token: token, User: user})
}

// Logout ends the current session.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      204  "session cleared"
// @Router       /v1/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.authService.Logout(c.Request().Context()); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
