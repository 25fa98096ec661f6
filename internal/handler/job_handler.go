package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"taskconnect/internal/auth"
	"taskconnect/internal/model"
	"taskconnect/internal/service"
)

// JobHandler handles job endpoints.
type JobHandler struct {
	jobs service.JobService
}

// NewJobHandler creates a new job handler.
func NewJobHandler(jobs service.JobService) *JobHandler {
	return &JobHandler{jobs: jobs}
}

// JobRequest represents a create job payload.
type JobRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	ServiceID   uint   `json:"service_id" validate:"required"`
}

// JobStatusRequest represents a status update payload.
type JobStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// Create godoc
// @Summary Create a job against a service
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body JobRequest true "Job data"
// @Success 201 {object} model.Job
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /jobs [post]
func (h *JobHandler) Create(c echo.Context) error {
	var req JobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	job := &model.Job{
		Title:       req.Title,
		Description: req.Description,
		ServiceID:   req.ServiceID,
	}
	if err := h.jobs.Create(c.Request().Context(), auth.CurrentUser(c), job); err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusCreated, job)
}

// List godoc
// @Summary List the caller's jobs
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param skip query int false "Offset"
// @Param limit query int false "Page size"
// @Success 200 {array} model.Job
// @Failure 401 {object} errors.ErrorResponse
// @Router /jobs [get]
func (h *JobHandler) List(c echo.Context) error {
	offset, limit := pageParams(c)
	jobs, err := h.jobs.List(c.Request().Context(), auth.CurrentUser(c), offset, limit)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, jobs)
}

// Get godoc
// @Summary Get one job (client only)
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job ID"
// @Success 200 {object} model.Job
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /jobs/{id} [get]
func (h *JobHandler) Get(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	job, err := h.jobs.Get(c.Request().Context(), auth.CurrentUser(c), id)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, job)
}

// UpdateStatus godoc
// @Summary Update a job's status (client only)
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job ID"
// @Param request body JobStatusRequest true "New status"
// @Success 200 {object} model.Job
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /jobs/{id}/status [put]
func (h *JobHandler) UpdateStatus(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	var req JobStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	job, err := h.jobs.UpdateStatus(c.Request().Context(), auth.CurrentUser(c), id, model.JobStatus(req.Status))
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, job)
}

// Delete godoc
// @Summary Delete a job and its messages (client only)
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /jobs/{id} [delete]
func (h *JobHandler) Delete(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.jobs.Delete(c.Request().Context(), auth.CurrentUser(c), id); err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "job deleted successfully"})
}
