package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/connecta/agency-system/internal/core/ports"
)

// CookieName is the cookie the session token travels in.
const CookieName = "access_token"

// Context keys set by the session middleware.
const (
	ContextKeyUser = "user"
	ContextKeyRole = "role"
)

// FailureMode selects how a route class reports an authentication failure.
type FailureMode int

const (
	// FailWithStatus returns a JSON 401 (API route class).
	FailWithStatus FailureMode = iota
	// FailWithRedirect sends the browser back to the login route (page
	// route class).
	FailWithRedirect
)

// Session resolves the access_token cookie to a full user record and
// stores it in the request context. A missing cookie, an invalid or
// expired or revoked token, and a token whose user no longer exists all
// produce the same outward failure; nothing distinguishes the cases.
func Session(auth ports.AuthService, mode FailureMode) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(CookieName)
			if err != nil || cookie.Value == "" {
				return fail(c, mode)
			}

			user, err := auth.Authenticate(c.Request().Context(), cookie.Value)
			if err != nil {
				return fail(c, mode)
			}

			c.Set(ContextKeyUser, user)
			c.Set(ContextKeyRole, user.Role)
			return next(c)
		}
	}
}

func fail(c echo.Context, mode FailureMode) error {
	if mode == FailWithRedirect {
		return c.Redirect(http.StatusFound, "/")
	}
	return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
}
