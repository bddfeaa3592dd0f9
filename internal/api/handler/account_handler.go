package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/connecta/agency-system/internal/core/domain"
	"github.com/connecta/agency-system/internal/core/ports"
)

// AccountHandler handles user account management (API route class).
type AccountHandler struct {
	accounts ports.AccountService
}

func NewAccountHandler(accounts ports.AccountService) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email"    validate:"required,email"`
	CPF      string `json:"cpf"      validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role"     validate:"required,oneof=admin employee client"`
	Title    string `json:"title"`
}

// Register handles POST /api/users.
func (h *AccountHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	user, err := h.accounts.Register(c.Request().Context(), ports.RegisterInput{
		Name:     req.Name,
		Username: req.Username,
		Email:    req.Email,
		CPF:      req.CPF,
		Password: req.Password,
		Role:     req.Role,
		Title:    req.Title,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, user)
}

// Get handles GET /api/users/:id.
func (h *AccountHandler) Get(c echo.Context) error {
	user, err := h.accounts.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// ListClients handles GET /api/clients.
func (h *AccountHandler) ListClients(c echo.Context) error {
	clients, err := h.accounts.ListClients(c.Request().Context())
	if err != nil {
		return err
	}
	if clients == nil {
		clients = []*domain.User{}
	}
	return c.JSON(http.StatusOK, clients)
}

// Delete handles DELETE /api/users/:id.
func (h *AccountHandler) Delete(c echo.Context) error {
	if err := h.accounts.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
