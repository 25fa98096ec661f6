package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"taskconnect/internal/auth"
	"taskconnect/internal/model"
	"taskconnect/internal/service"
)

// MessageHandler handles message endpoints.
type MessageHandler struct {
	messages service.MessageService
}

// NewMessageHandler creates a new message handler.
func NewMessageHandler(messages service.MessageService) *MessageHandler {
	return &MessageHandler{messages: messages}
}

// MessageRequest represents a create message payload.
type MessageRequest struct {
	Content string `json:"content" validate:"required"`
	JobID   uint   `json:"job_id" validate:"required"`
}

// Create godoc
// @Summary Post a message on a job
// @Tags messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body MessageRequest true "Message data"
// @Success 201 {object} model.Message
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /messages [post]
func (h *MessageHandler) Create(c echo.Context) error {
	var req MessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	msg := &model.Message{
		Content: req.Content,
		JobID:   req.JobID,
	}
	if err := h.messages.Create(c.Request().Context(), auth.CurrentUser(c), msg); err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusCreated, msg)
}

// ListByJob godoc
// @Summary List messages on a job
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param job_id path int true "Job ID"
// @Param skip query int false "Offset"
// @Param limit query int false "Page size"
// @Success 200 {array} model.Message
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /messages/job/{job_id} [get]
func (h *MessageHandler) ListByJob(c echo.Context) error {
	jobID, err := idParam(c, "job_id")
	if err != nil {
		return err
	}
	offset, limit := pageParams(c)
	messages, err := h.messages.ListByJob(c.Request().Context(), jobID, offset, limit)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, messages)
}

// Get godoc
// @Summary Get one message (sender only)
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param id path int true "Message ID"
// @Success 200 {object} model.Message
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /messages/{id} [get]
func (h *MessageHandler) Get(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	msg, err := h.messages.Get(c.Request().Context(), auth.CurrentUser(c), id)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, msg)
}

// Delete godoc
// @Summary Delete a message (sender only)
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param id path int true "Message ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /messages/{id} [delete]
func (h *MessageHandler) Delete(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.messages.Delete(c.Request().Context(), auth.CurrentUser(c), id); err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "message deleted successfully"})
}
