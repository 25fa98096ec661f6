package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"taskconnect/internal/upload"
)

// UploadHandler handles image uploads for service listings.
type UploadHandler struct {
	store *upload.Store
}

// NewUploadHandler creates a new upload handler.
func NewUploadHandler(store *upload.Store) *UploadHandler {
	return &UploadHandler{store: store}
}

// UploadResponse carries the public URL of a stored file.
type UploadResponse struct {
	URL string `json:"url"`
}

// Upload godoc
// @Summary Upload an image
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Image file"
// @Success 201 {object} UploadResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /uploads [post]
func (h *UploadHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "missing file")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable file")
	}
	defer src.Close()

	url, err := h.store.Save(fileHeader.Filename, fileHeader.Size, src)
	if err != nil {
		if errors.Is(err, upload.ErrInvalidExtension) || errors.Is(err, upload.ErrTooLarge) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return respondError(err)
	}

	return c.JSON(http.StatusCreated, UploadResponse{URL: url})
}
