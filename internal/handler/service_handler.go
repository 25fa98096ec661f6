package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"taskconnect/internal/auth"
	"taskconnect/internal/model"
	"taskconnect/internal/service"
)

// ServiceHandler handles marketplace service listing endpoints.
type ServiceHandler struct {
	catalog service.CatalogService
}

// NewServiceHandler creates a new service handler.
func NewServiceHandler(catalog service.CatalogService) *ServiceHandler {
	return &ServiceHandler{catalog: catalog}
}

// ServiceRequest represents a create/update service payload.
type ServiceRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Price       int    `json:"price" validate:"required,min=0"`
	Category    string `json:"category" validate:"required"`
	ImageURL    string `json:"image_url"`
}

// Create godoc
// @Summary Create a service listing
// @Tags services
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ServiceRequest true "Service data"
// @Success 201 {object} model.Service
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /services [post]
func (h *ServiceHandler) Create(c echo.Context) error {
	var req ServiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	svc := &model.Service{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
	}
	if err := h.catalog.Create(c.Request().Context(), auth.CurrentUser(c), svc); err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusCreated, svc)
}

// List godoc
// @Summary List service listings
// @Tags services
// @Produce json
// @Param skip query int false "Offset"
// @Param limit query int false "Page size"
// @Success 200 {array} model.Service
// @Router /services [get]
func (h *ServiceHandler) List(c echo.Context) error {
	offset, limit := pageParams(c)
	services, err := h.catalog.List(c.Request().Context(), offset, limit)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, services)
}

// Get godoc
// @Summary Get one service listing
// @Tags services
// @Produce json
// @Param id path int true "Service ID"
// @Success 200 {object} model.Service
// @Failure 404 {object} errors.ErrorResponse
// @Router /services/{id} [get]
func (h *ServiceHandler) Get(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	svc, err := h.catalog.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, svc)
}

// Update godoc
// @Summary Update a service listing (owner only)
// @Tags services
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Service ID"
// @Param request body ServiceRequest true "Service data"
// @Success 200 {object} model.Service
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /services/{id} [put]
func (h *ServiceHandler) Update(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	var req ServiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	svc, err := h.catalog.Update(c.Request().Context(), auth.CurrentUser(c), id, service.ServiceUpdate{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusOK, svc)
}

// Delete godoc
// @Summary Delete a service listing (owner only)
// @Tags services
// @Produce json
// @Security BearerAuth
// @Param id path int true "Service ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /services/{id} [delete]
func (h *ServiceHandler) Delete(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.catalog.Delete(c.Request().Context(), auth.CurrentUser(c), id); err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "service deleted successfully"})
}
