package handler

import (
	"log/slog"
	"net/http"

	"joinme/internal/delivery/api/response"
	"joinme/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// EventHandlerParams holds dependencies for EventHandler, injected by Fx.
type EventHandlerParams struct {
	fx.In

	EventUC      usecase.EventUsecase
	AttendanceUC usecase.AttendanceUsecase
	Logger       *slog.Logger
}

// EventHandler serves event lifecycle and attendance routes
type EventHandler struct {
	eventUC      usecase.EventUsecase
	attendanceUC usecase.AttendanceUsecase
	logger       *slog.Logger
}

// NewEventHandler is the constructor for EventHandler
func NewEventHandler(params EventHandlerParams) *EventHandler {
	return &EventHandler{
		eventUC:      params.EventUC,
		attendanceUC: params.AttendanceUC,
		logger:       params.Logger,
	}
}

// CreateEventRequest is the body of POST /events. Times are RFC 3339.
type CreateEventRequest struct {
	Lat         *float64 `json:"lat" validate:"required"`
	Lng         *float64 `json:"lng" validate:"required"`
	StartTime   string   `json:"start_time" validate:"required"`
	EndTime     string   `json:"end_time" validate:"required"`
	Name        string   `json:"name" validate:"required,min=1,max=60"`
	Description string   `json:"description" validate:"required,min=1,max=300"`
	Address     string   `json:"address"`
	Category    string   `json:"category" validate:"required"`
}

// UpdateEventRequest is the body of PATCH /events/:id. Absent fields are kept.
type UpdateEventRequest struct {
	Lat         *float64 `json:"lat"`
	Lng         *float64 `json:"lng"`
	StartTime   *string  `json:"start_time"`
	EndTime     *string  `json:"end_time"`
	Name        *string  `json:"name" validate:"omitnil,min=1,max=60"`
	Description *string  `json:"description" validate:"omitnil,min=1,max=300"`
	Address     *string  `json:"address"`
	Category    *string  `json:"category" validate:"omitnil,min=1"`
}

// ListCategories returns the category enumeration
func (h *EventHandler) ListCategories(c echo.Context) error {
	return response.OK(c, h.eventUC.ListCategories())
}

// FindAll lists every event
func (h *EventHandler) FindAll(c echo.Context) error {
	events, err := h.eventUC.FindAll(c.Request().Context())
	if err != nil {
		return err
	}

	return response.OK(c, events)
}

// FindByCategory lists events of one category
func (h *EventHandler) FindByCategory(c echo.Context) error {
	events, err := h.eventUC.FindByCategory(c.Request().Context(), c.Param("category"))
	if err != nil {
		return err
	}

	return response.OK(c, events)
}

// FindByName lists events with exactly this name
func (h *EventHandler) FindByName(c echo.Context) error {
	events, err := h.eventUC.FindByName(c.Request().Context(), c.Param("name"))
	if err != nil {
		return err
	}

	return response.OK(c, events)
}

// FindByID returns one event
func (h *EventHandler) FindByID(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	event, err := h.eventUC.FindByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.OK(c, event)
}

// Create publishes a new event owned by the caller
func (h *EventHandler) Create(c echo.Context) error {
	caller, err := principal(c)
	if err != nil {
		return err
	}

	var req CreateEventRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	event, err := h.eventUC.Create(c.Request().Context(), &usecase.CreateEventInput{
		Lat:         *req.Lat,
		Lng:         *req.Lng,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
		Category:    req.Category,
	}, caller)
	if err != nil {
		return err
	}

	return response.Created(c, event)
}

// Update applies a partial update to an event owned by the caller
func (h *EventHandler) Update(c echo.Context) error {
	caller, err := principal(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateEventRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	event, err := h.eventUC.Update(c.Request().Context(), &usecase.UpdateEventInput{
		Lat:         req.Lat,
		Lng:         req.Lng,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
		Category:    req.Category,
	}, id, caller)
	if err != nil {
		return err
	}

	return response.OK(c, event)
}

// Delete removes an event owned by the caller
func (h *EventHandler) Delete(c echo.Context) error {
	caller, err := principal(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.eventUC.Delete(c.Request().Context(), id, caller); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// Attend adds the caller to the attendee set
func (h *EventHandler) Attend(c echo.Context) error {
	caller, err := principal(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	event, err := h.attendanceUC.Attend(c.Request().Context(), id, caller)
	if err != nil {
		return err
	}

	return response.OK(c, event)
}

// Unattend removes the caller from the attendee set
func (h *EventHandler) Unattend(c echo.Context) error {
	caller, err := principal(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	event, err := h.attendanceUC.Unattend(c.Request().Context(), id, caller)
	if err != nil {
		return err
	}

	return response.OK(c, event)
}
