package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/connecta/agency-system/internal/api/middleware"
	"github.com/connecta/agency-system/internal/core/domain"
)

// currentUser extracts the user resolved by the session middleware and
// performs a fast-fail check before any service call: a present, fully
// resolved user proves the middleware ran on this route.
func currentUser(c echo.Context) (*domain.User, error) {
	user, _ := c.Get(middleware.ContextKeyUser).(*domain.User)
	if user == nil || user.ID == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing session context")
	}
	return user, nil
}
