package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/connecta/agency-system/internal/core/domain"
)

// DashboardHandler composes the per-role dashboard context. Rendering is
// left to the front end; the endpoint returns the data the template
// layer would consume.
type DashboardHandler struct{}

func NewDashboardHandler() *DashboardHandler {
	return &DashboardHandler{}
}

type dashboardProfile struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Title string `json:"title,omitempty"`
}

type dashboardResponse struct {
	User    dashboardProfile `json:"user"`
	Menu    map[string]bool  `json:"menu"`
	Actions map[string]bool  `json:"actions"`
}

// Show handles GET /dashboard.
func (h *DashboardHandler) Show(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dashboardResponse{
		User: dashboardProfile{
			Name:  user.Name,
			Role:  user.Role,
			Title: user.Title,
		},
		Menu:    domain.MenuFor(user.Role),
		Actions: domain.ActionsFor(user.Role),
	})
}
