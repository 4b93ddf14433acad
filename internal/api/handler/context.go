package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxIdentity extracts the identity claims injected by the Auth middleware
// and fast-fails before any service call: a missing user_id means the
// middleware never ran or the token carried no identity.
func ctxIdentity(c echo.Context) (userID, tier string, err error) {
	userID, _ = c.Get("user_id").(string)
	if userID == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	tier, _ = c.Get("tier").(string)
	return userID, tier, nil
}
