package handler

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/connecta/agency-system/internal/core/ports"
)

// maxContractSize bounds the multipart contract upload (16 MiB).
const maxContractSize = 16 << 20

// ContractHandler handles contract API routes.
type ContractHandler struct {
	contracts ports.ContractService
}

func NewContractHandler(contracts ports.ContractService) *ContractHandler {
	return &ContractHandler{contracts: contracts}
}

// Add handles POST /api/contracts/:user — multipart form with the
// contract terms plus the signed document.
func (h *ContractHandler) Add(c echo.Context) error {
	name := c.FormValue("name")
	if name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}

	var value float64
	if _, err := fmt.Sscanf(c.FormValue("value"), "%f", &value); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "value must be a number")
	}

	dueDate, err := time.Parse(time.RFC3339, c.FormValue("due_date"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "due_date must be RFC 3339")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "contract file is required")
	}
	if fileHeader.Size > maxContractSize {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "contract file too large")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable contract file")
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable contract file")
	}

	entry, err := h.contracts.Add(c.Request().Context(), c.Param("user"), ports.AddContractInput{
		Name:     name,
		Value:    value,
		DueDate:  dueDate,
		Filename: fileHeader.Filename,
		Data:     data,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, entry)
}

// DownloadFile handles GET /api/contracts/:user/:id/file — streams the
// stored document back after the integrity check.
func (h *ContractHandler) DownloadFile(c echo.Context) error {
	file, err := h.contracts.DownloadFile(c.Request().Context(), c.Param("user"), c.Param("id"))
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=%q`, file.Name))
	return c.Blob(http.StatusOK, echo.MIMEOctetStream, file.Data)
}
