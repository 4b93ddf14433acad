package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aitax/tax-system/internal/api/metrics"
	"github.com/aitax/tax-system/internal/core/domain"
)

// RequireFeature gates a route group on the subscription tier carried in
// the JWT. Access fails closed: a missing or unknown tier is denied, never
// escalated.
func RequireFeature(feature string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, _ := c.Get("tier").(string)
			tier, err := domain.ParseTier(raw)
			if err != nil || !tier.HasAccess(feature) {
				metrics.EntitlementDenialsTotal.WithLabelValues(feature, raw).Inc()
				return c.JSON(http.StatusForbidden, map[string]string{
					"error":   "upgrade required",
					"feature": feature,
				})
			}
			return next(c)
		}
	}
}
