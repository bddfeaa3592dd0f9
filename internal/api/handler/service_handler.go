package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/connecta/agency-system/internal/core/domain"
	"github.com/connecta/agency-system/internal/core/ports"
)

// ServiceHandler handles the service catalog: browser-facing pages and
// the admin API routes.
type ServiceHandler struct {
	catalog ports.CatalogService
}

func NewServiceHandler(catalog ports.CatalogService) *ServiceHandler {
	return &ServiceHandler{catalog: catalog}
}

type mediaRequest struct {
	FileID  string `json:"file_id" validate:"required"`
	Caption string `json:"caption"`
}

type createServiceRequest struct {
	ClientID     string         `json:"client_id"     validate:"required"`
	ClientName   string         `json:"client_name"   validate:"required"`
	ClientEmail  string         `json:"client_email"  validate:"required,email"`
	Name         string         `json:"name"          validate:"required"`
	Type         string         `json:"type"          validate:"required"`
	Description  string         `json:"description"`
	DeliveryDate time.Time      `json:"delivery_date" validate:"required"`
	Media        []mediaRequest `json:"media"         validate:"dive"`
}

type updateServiceRequest struct {
	Status string `json:"status" validate:"required,oneof=active accepted in_progress done cancelled"`
}

type serviceListResponse struct {
	Services []*domain.Service `json:"services"`
	Actions  map[string]bool   `json:"actions"`
	Menu     map[string]bool   `json:"menu"`
}

// List handles GET /services (page route). The action flags the template
// layer needs are derived from the viewer's role.
func (h *ServiceHandler) List(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	services, err := h.catalog.List(c.Request().Context())
	if err != nil {
		return err
	}
	if services == nil {
		services = []*domain.Service{}
	}

	return c.JSON(http.StatusOK, serviceListResponse{
		Services: services,
		Actions:  domain.ActionsFor(user.Role),
		Menu:     domain.MenuFor(user.Role),
	})
}

// View handles GET /services/:id (page route).
func (h *ServiceHandler) View(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	svc, err := h.catalog.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"service": svc,
		"menu":    domain.MenuFor(user.Role),
	})
}

// Accept handles GET /services/:id/accept (page route). Only roles whose
// policy grants the accept action may take a service.
func (h *ServiceHandler) Accept(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	if !domain.ActionsFor(user.Role)[domain.ActionAccept] {
		return domain.ErrForbidden
	}

	if err := h.catalog.Accept(c.Request().Context(), c.Param("id"), user.ID); err != nil {
		return err
	}
	return c.Redirect(http.StatusFound, "/services")
}

// Create handles POST /api/services.
func (h *ServiceHandler) Create(c echo.Context) error {
	var req createServiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	media := make([]ports.MediaInput, 0, len(req.Media))
	for _, m := range req.Media {
		media = append(media, ports.MediaInput{FileID: m.FileID, Caption: m.Caption})
	}

	svc, err := h.catalog.Create(c.Request().Context(), ports.CreateServiceInput{
		ClientID:     req.ClientID,
		ClientName:   req.ClientName,
		ClientEmail:  req.ClientEmail,
		Name:         req.Name,
		Type:         req.Type,
		Description:  req.Description,
		DeliveryDate: req.DeliveryDate,
		Media:        media,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, svc)
}

// UpdateStatus handles PATCH /api/services/:id.
func (h *ServiceHandler) UpdateStatus(c echo.Context) error {
	var req updateServiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	if err := h.catalog.UpdateStatus(c.Request().Context(), c.Param("id"), domain.ServiceStatus(req.Status)); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete handles DELETE /api/services/:id.
func (h *ServiceHandler) Delete(c echo.Context) error {
	if err := h.catalog.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
