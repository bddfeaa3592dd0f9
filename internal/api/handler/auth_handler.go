package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/connecta/agency-system/internal/api/metrics"
	"github.com/connecta/agency-system/internal/api/middleware"
	"github.com/connecta/agency-system/internal/core/ports"
)

// cookieMaxAge is the browser-side session length without "remember me".
// The token itself stays verifiable for its full TTL; the browser just
// drops the cookie after ten minutes.
const cookieMaxAge = 600

// AuthHandler serves the login form endpoints and the logout route.
type AuthHandler struct {
	auth         ports.AuthService
	cookieSecure bool
}

func NewAuthHandler(auth ports.AuthService, cookieSecure bool) *AuthHandler {
	return &AuthHandler{auth: auth, cookieSecure: cookieSecure}
}

// LoginPage handles GET / — the login route. A browser that already holds
// a valid session is sent straight to the dashboard.
func (h *AuthHandler) LoginPage(c echo.Context) error {
	if cookie, err := c.Cookie(middleware.CookieName); err == nil && cookie.Value != "" {
		if _, err := h.auth.Authenticate(c.Request().Context(), cookie.Value); err == nil {
			return c.Redirect(http.StatusFound, "/dashboard")
		}
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "sign in"})
}

// Login handles POST / — the login form submission. On success it sets
// the session cookie and redirects to the dashboard; on failure it
// returns one generic message whatever the cause.
func (h *AuthHandler) Login(c echo.Context) error {
	username := c.FormValue("username")
	password := c.FormValue("password")
	remember := rememberRequested(c.FormValue("remember"))

	user, err := h.auth.Login(c.Request().Context(), username, password)
	if err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("failure").Inc()
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid username or password"})
	}

	token, lifetime, err := h.auth.IssueToken(user.ID, remember)
	if err != nil {
		return err
	}

	c.SetCookie(h.sessionCookie(token, remember, lifetime))
	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	return c.Redirect(http.StatusFound, "/dashboard")
}

// Logout handles GET /logout — revokes the live token, expires the
// cookie, and sends the browser back to the login route.
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(middleware.CookieName); err == nil && cookie.Value != "" {
		if err := h.auth.Revoke(c.Request().Context(), cookie.Value); err == nil {
			metrics.SessionsRevokedTotal.Inc()
		}
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   h.cookieSecure,
	})
	return c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) sessionCookie(token string, remember bool, lifetime time.Duration) *http.Cookie {
	maxAge := cookieMaxAge
	if remember {
		maxAge = int(lifetime / time.Second)
	}
	return &http.Cookie{
		Name:     middleware.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   h.cookieSecure,
	}
}

// rememberRequested unifies the keep-me-signed-in parse: HTML checkboxes
// submit "on", scripted clients send "true".
func rememberRequested(v string) bool {
	return strings.EqualFold(v, "true") || strings.EqualFold(v, "on")
}
