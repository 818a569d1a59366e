package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sid-c23/cs6440-project/internal/apierror"
	"github.com/sid-c23/cs6440-project/internal/metrics"
	"github.com/sid-c23/cs6440-project/internal/service"
	"github.com/sid-c23/cs6440-project/internal/trends"
)

type TrendsHandler struct {
	trendsService service.TrendsService
	metrics       *metrics.Manager
}

// NewTrendsHandler creates a new trends handler.
func NewTrendsHandler(trendsService service.TrendsService, m *metrics.Manager) *TrendsHandler {
	return &TrendsHandler{trendsService: trendsService, metrics: m}
}

// paramParser accumulates query-parameter field errors so a response can
// report all of them at once.
type paramParser struct {
	c      *gin.Context
	errors []apierror.FieldError
}

func (p *paramParser) intParam(name string, def int) int {
	raw := p.c.Query(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		p.errors = append(p.errors, apierror.FieldError{
			Field: name, Message: "must be an integer", Code: "invalid_type",
		})
		return def
	}
	return n
}

func (p *paramParser) floatParam(name string, def float64) float64 {
	raw := p.c.Query(name)
	if raw == "" {
		return def
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		p.errors = append(p.errors, apierror.FieldError{
			Field: name, Message: "must be a number", Code: "invalid_type",
		})
		return def
	}
	return f
}

func (p *paramParser) boolParam(name string) bool {
	raw := p.c.Query(name)
	if raw == "" {
		return false
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		p.errors = append(p.errors, apierror.FieldError{
			Field: name, Message: "must be a boolean", Code: "invalid_type",
		})
		return false
	}
	return b
}

// Weekly handles GET /api/v1/users/:id/trends/weekly
func (h *TrendsHandler) Weekly(c *gin.Context) {
	requestID := apierror.GetRequestID(c)

	userID, ok := userIDParam(c)
	if !ok {
		return
	}

	parser := &paramParser{c: c}
	params := trends.SeriesParams{
		WindowSize:   parser.intParam("window_size", trends.DefaultSeriesWindow),
		UseLocaltime: parser.boolParam("use_localtime"),
		StartDate:    c.Query("start_date"),
		EndDate:      c.Query("end_date"),
	}
	if len(parser.errors) > 0 {
		apierror.WriteProblem(c, apierror.NewValidationError(requestID, parser.errors))
		return
	}
	if err := params.Validate(); err != nil {
		apierror.WriteProblem(c, apierror.NewValidationError(requestID, []apierror.FieldError{
			{Field: "query", Message: err.Error(), Code: "out_of_range"},
		}))
		return
	}

	series, err := h.trendsService.WeeklySeries(c.Request.Context(), userID, params)
	if err != nil {
		writeUserError(c, err, userID)
		return
	}

	h.metrics.RecordTrendQuery("weekly")
	c.JSON(http.StatusOK, series)
}

// Actions handles GET /api/v1/users/:id/trends/actions
func (h *TrendsHandler) Actions(c *gin.Context) {
	requestID := apierror.GetRequestID(c)

	userID, ok := userIDParam(c)
	if !ok {
		return
	}

	parser := &paramParser{c: c}
	params := trends.ActionParams{
		WindowSize:              parser.intParam("window_size", trends.DefaultActionWindow),
		UseLocaltime:            parser.boolParam("use_localtime"),
		MinSleepHours:           parser.floatParam("min_sleep_hours", trends.DefaultMinSleepHours),
		MinMealsPerDay:          parser.floatParam("min_meals_per_day", trends.DefaultMinMealsPerDay),
		StressSeverityThreshold: parser.floatParam("stress_severity_threshold", trends.DefaultStressSeverityThreshold),
		MinExerciseDays:         parser.intParam("min_exercise_days", trends.DefaultMinExerciseDays),
	}
	if len(parser.errors) > 0 {
		apierror.WriteProblem(c, apierror.NewValidationError(requestID, parser.errors))
		return
	}
	if err := params.Validate(); err != nil {
		apierror.WriteProblem(c, apierror.NewValidationError(requestID, []apierror.FieldError{
			{Field: "query", Message: err.Error(), Code: "out_of_range"},
		}))
		return
	}

	resp, err := h.trendsService.ActionItems(c.Request.Context(), userID, params)
	if err != nil {
		writeUserError(c, err, userID)
		return
	}

	h.metrics.RecordTrendQuery("actions")
	c.JSON(http.StatusOK, resp)
}

// Migraines handles GET /api/v1/users/:id/trends/migraines
func (h *TrendsHandler) Migraines(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}

	parser := &paramParser{c: c}
	useLocaltime := parser.boolParam("use_localtime")
	if len(parser.errors) > 0 {
		apierror.WriteProblem(c, apierror.NewValidationError(apierror.GetRequestID(c), parser.errors))
		return
	}

	weeks, err := h.trendsService.MigraineWeeks(c.Request.Context(), userID, useLocaltime)
	if err != nil {
		writeUserError(c, err, userID)
		return
	}

	h.metrics.RecordTrendQuery("migraines")
	c.JSON(http.StatusOK, weeks)
}
