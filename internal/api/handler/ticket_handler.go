package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/connecta/agency-system/internal/core/domain"
	"github.com/connecta/agency-system/internal/core/ports"
)

// TicketHandler handles support ticket API routes.
type TicketHandler struct {
	tickets ports.TicketService
}

func NewTicketHandler(tickets ports.TicketService) *TicketHandler {
	return &TicketHandler{tickets: tickets}
}

type createTicketRequest struct {
	Title   string `json:"title"   validate:"required"`
	Message string `json:"message" validate:"required"`
}

type updateTicketRequest struct {
	Status string `json:"status" validate:"required,oneof=pending resolved"`
}

// Create handles POST /api/tickets. The requester is always the session
// user; clients cannot open tickets on behalf of others.
func (h *TicketHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createTicketRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	ticket, err := h.tickets.Create(c.Request().Context(), ports.CreateTicketInput{
		RequesterID:    user.ID,
		RequesterName:  user.Name,
		RequesterEmail: user.Email,
		Title:          req.Title,
		Message:        req.Message,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, ticket)
}

// Get handles GET /api/tickets/:id. Clients only see their own tickets.
func (h *TicketHandler) Get(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	ticket, err := h.tickets.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	if user.Role == domain.RoleClient && ticket.Requester.ID != user.ID {
		return domain.ErrForbidden
	}

	return c.JSON(http.StatusOK, ticket)
}

// List handles GET /api/tickets — the session user's own tickets.
func (h *TicketHandler) List(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	tickets, err := h.tickets.ListByRequester(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	if tickets == nil {
		tickets = []*domain.Ticket{}
	}
	return c.JSON(http.StatusOK, tickets)
}

// UpdateStatus handles PATCH /api/tickets/:id.
func (h *TicketHandler) UpdateStatus(c echo.Context) error {
	var req updateTicketRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	if err := h.tickets.UpdateStatus(c.Request().Context(), c.Param("id"), domain.TicketStatus(req.Status)); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete handles DELETE /api/tickets/:id.
func (h *TicketHandler) Delete(c echo.Context) error {
	if err := h.tickets.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
