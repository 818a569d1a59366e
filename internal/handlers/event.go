package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sid-c23/cs6440-project/internal/apierror"
	"github.com/sid-c23/cs6440-project/internal/metrics"
	"github.com/sid-c23/cs6440-project/internal/models"
	"github.com/sid-c23/cs6440-project/internal/service"
)

type EventHandler struct {
	eventService service.EventService
	metrics      *metrics.Manager
}

// NewEventHandler creates a new event handler.
func NewEventHandler(eventService service.EventService, m *metrics.Manager) *EventHandler {
	return &EventHandler{eventService: eventService, metrics: m}
}

// CreateEvent handles POST /api/v1/users/:id/events
func (h *EventHandler) CreateEvent(c *gin.Context) {
	requestID := apierror.GetRequestID(c)

	userID, ok := userIDParam(c)
	if !ok {
		return
	}

	// Bind to RawCreateEventRequest for manual parsing and aggregated validation.
	var raw models.RawCreateEventRequest
	if err := c.ShouldBindJSON(&raw); err != nil {
		apierror.WriteProblem(c, apierror.NewBadRequestError(requestID, err.Error(), "Invalid JSON format"))
		return
	}

	req, fieldErrors := parseCreateEventRequest(&raw)
	if len(fieldErrors) > 0 {
		apierror.WriteProblem(c, apierror.NewValidationError(requestID, fieldErrors))
		return
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), userID, req)
	if err != nil {
		writeUserError(c, err, userID)
		return
	}

	h.metrics.RecordEvent(string(event.EventType))
	c.JSON(http.StatusCreated, event)
}

// parseCreateEventRequest validates the raw request, reporting every problem
// at once rather than stopping at the first.
func parseCreateEventRequest(raw *models.RawCreateEventRequest) (*models.CreateEventRequest, []apierror.FieldError) {
	var fieldErrors []apierror.FieldError
	var req models.CreateEventRequest

	if raw.EventType == "" {
		fieldErrors = append(fieldErrors, apierror.FieldError{
			Field: "event_type", Message: "is required", Code: "required",
		})
	} else if et := models.EventType(raw.EventType); !et.Valid() {
		fieldErrors = append(fieldErrors, apierror.FieldError{
			Field: "event_type", Message: "must be a known event type", Code: "invalid_event_type",
		})
	} else {
		req.EventType = et
	}

	if raw.EventTimestamp != nil && *raw.EventTimestamp != "" {
		ts, err := time.Parse(time.RFC3339, *raw.EventTimestamp)
		if err != nil {
			fieldErrors = append(fieldErrors, apierror.FieldError{
				Field: "event_timestamp", Message: "must be a valid RFC3339 timestamp", Code: "invalid_format",
			})
		} else {
			req.EventTimestamp = &ts
		}
	}

	// Severity arrives as a 1-5 number or a textual label.
	if raw.Severity != nil {
		n, err := models.SeverityOrdinal(raw.Severity)
		if err != nil {
			fieldErrors = append(fieldErrors, apierror.FieldError{
				Field: "severity", Message: err.Error(), Code: "invalid_severity",
			})
		} else {
			req.Severity = &n
		}
	}

	// A numerical value and its unit travel together.
	switch {
	case raw.NumericalValue != nil && raw.NumericalUnit == nil:
		fieldErrors = append(fieldErrors, apierror.FieldError{
			Field: "numerical_unit", Message: "is required when numerical_value is set", Code: "required",
		})
	case raw.NumericalValue == nil && raw.NumericalUnit != nil:
		fieldErrors = append(fieldErrors, apierror.FieldError{
			Field: "numerical_value", Message: "is required when numerical_unit is set", Code: "required",
		})
	case raw.NumericalValue != nil:
		unit := models.Unit(*raw.NumericalUnit)
		if !unit.Valid() {
			fieldErrors = append(fieldErrors, apierror.FieldError{
				Field: "numerical_unit", Message: "must be one of hours, minutes, count", Code: "invalid_unit",
			})
		} else {
			req.NumericalValue = raw.NumericalValue
			req.NumericalUnit = &unit
		}
	}

	if raw.Description != nil {
		if len(*raw.Description) > models.MaxDescriptionLen {
			fieldErrors = append(fieldErrors, apierror.FieldError{
				Field: "description", Message: "must be at most 200 characters", Code: "too_long",
			})
		} else {
			req.Description = raw.Description
		}
	}

	req.System = raw.System
	req.Code = raw.Code

	return &req, fieldErrors
}

// ListEvents handles GET /api/v1/users/:id/events
func (h *EventHandler) ListEvents(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}

	var eventType *models.EventType
	if raw := c.Query("event_type"); raw != "" {
		et := models.EventType(raw)
		if !et.Valid() {
			apierror.WriteProblem(c, apierror.NewValidationError(apierror.GetRequestID(c), []apierror.FieldError{
				{Field: "event_type", Message: "must be a known event type", Code: "invalid_event_type"},
			}))
			return
		}
		eventType = &et
	}

	limit, offset := paginationParams(c)
	events, err := h.eventService.GetUserEvents(c.Request.Context(), userID, eventType, limit, offset)
	if err != nil {
		writeUserError(c, err, userID)
		return
	}
	c.JSON(http.StatusOK, events)
}

// ListMigraines handles GET /api/v1/users/:id/migraines
func (h *EventHandler) ListMigraines(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}

	limit, offset := paginationParams(c)
	events, err := h.eventService.GetMigraines(c.Request.Context(), userID, limit, offset)
	if err != nil {
		writeUserError(c, err, userID)
		return
	}
	c.JSON(http.StatusOK, events)
}

// ListTriggers handles GET /api/v1/users/:id/triggers
func (h *EventHandler) ListTriggers(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}

	limit, offset := paginationParams(c)
	events, err := h.eventService.GetTriggers(c.Request.Context(), userID, limit, offset)
	if err != nil {
		writeUserError(c, err, userID)
		return
	}
	c.JSON(http.StatusOK, events)
}

func paginationParams(c *gin.Context) (limit, offset int) {
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	return limit, offset
}
