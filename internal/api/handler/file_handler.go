package handler

import (
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/connecta/agency-system/internal/core/ports"
)

// maxUploadSize bounds the general-purpose upload endpoint (32 MiB).
const maxUploadSize = 32 << 20

// FileHandler handles blob upload and download.
type FileHandler struct {
	files ports.FileService
}

func NewFileHandler(files ports.FileService) *FileHandler {
	return &FileHandler{files: files}
}

type uploadResponse struct {
	FileID   string `json:"file_id"`
	Filename string `json:"filename"`
}

// Upload handles POST /upload — stores the multipart payload and returns
// its generated identifier.
func (h *FileHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file is required")
	}
	if fileHeader.Size > maxUploadSize {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "file too large")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable file")
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable file")
	}

	id, err := h.files.Upload(c.Request().Context(), fileHeader.Filename, data)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, uploadResponse{FileID: id, Filename: fileHeader.Filename})
}

// Download handles GET /download/:id — streams the stored bytes back with
// the original filename in an attachment disposition.
func (h *FileHandler) Download(c echo.Context) error {
	file, err := h.files.Download(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=%q`, file.Name))
	return c.Blob(http.StatusOK, echo.MIMEOctetStream, file.Data)
}

// Image handles GET /image/:id — serves a stored image inline.
func (h *FileHandler) Image(c echo.Context) error {
	file, err := h.files.Download(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "image/jpeg", file.Data)
}
