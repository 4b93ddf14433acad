package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aitax/tax-system/internal/core/domain"
	"github.com/aitax/tax-system/internal/core/ports"
)

// SessionHandler serves the current-user session and its entitlements.
type SessionHandler struct {
	sessions ports.SessionService
}

func NewSessionHandler(sessions ports.SessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

type sessionResponse struct {
	User     *domain.User `json:"user"`
	Features []string     `json:"features"`
}

type featureCheckResponse struct {
	Feature string `json:"feature"`
	Allowed bool   `json:"allowed"`
}

// Current returns the active user together with every feature its tier
// unlocks.
//
// @Summary      Get the current session
// @Tags         session
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  sessionResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/session [get]
func (h *SessionHandler) Current(c echo.Context) error {
	user, err := h.sessions.Current(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, sessionResponse{
		User:     user,
		Features: user.Tier.Features(),
	})
}

// CheckFeature reports whether the caller's tier unlocks a feature. The
// answer comes from the token claims, the same claims the route gating
// reads, so the probe and the gate can never disagree. Unknown feature
// keys and unknown tiers read as not allowed rather than erroring, so
// the client can probe freely.
//
// @Summary      Check one feature entitlement
// @Tags         session
// @Produce      json
// @Security     BearerAuth
// @Param        feature  path      string  true  "Feature key (e.g. payroll)"
// @Success      200      {object}  featureCheckResponse
// @Failure      401      {object}  errorResponse
// @Router       /v1/session/features/{feature} [get]
func (h *SessionHandler) CheckFeature(c echo.Context) error {
	_, tierClaim, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	feature := c.Param("feature")
	allowed := false
	if tier, err := domain.ParseTier(tierClaim); err == nil {
		allowed = tier.HasAccess(feature)
	}

	return c.JSON(http.StatusOK, featureCheckResponse{
		Feature: feature,
		Allowed: allowed,
	})
}
