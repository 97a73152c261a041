package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxIdentity extracts the auth claims injected by the Auth middleware and
// performs a fast-fail check before any service call: user_id must be a
// non-empty string (presence proves the middleware ran and the token carried
// a subject).
func ctxIdentity(c echo.Context) (userID string, isAdmin bool, err error) {
	userID, _ = c.Get("user_id").(string)
	if userID == "" {
		return "", false, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	isAdmin, _ = c.Get("is_admin").(bool)
	return userID, isAdmin, nil
}

// ctxOptionalIdentity is the OptionalAuth counterpart: it returns ok=false
// for anonymous requests instead of failing.
func ctxOptionalIdentity(c echo.Context) (userID string, isAdmin bool, ok bool) {
	userID, _ = c.Get("user_id").(string)
	if userID == "" {
		return "", false, false
	}

	isAdmin, _ = c.Get("is_admin").(bool)
	return userID, isAdmin, true
}
