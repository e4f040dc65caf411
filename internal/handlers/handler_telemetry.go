package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/cefinvest/invest_backend/internal/core/ports/services"
	"github.com/cefinvest/invest_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// telemetryHandler serves the aggregated per-endpoint duration report.
type telemetryHandler struct {
	telemetryService portssvc.TelemetrySvc
}

func newTelemetryHandler(ts portssvc.TelemetrySvc) *telemetryHandler {
	return &telemetryHandler{telemetryService: ts}
}

// registerTelemetryRoutes registers routes related to telemetry.
func registerTelemetryRoutes(rg *gin.RouterGroup, telemetryService portssvc.TelemetrySvc) {
	h := newTelemetryHandler(telemetryService)

	rg.GET("/telemetry", h.getTelemetry)
}

// getTelemetry godoc
// @Summary Aggregate request telemetry
// @Description Returns per-endpoint call counts and mean durations over the window; defaults to the last 30 days
// @Tags telemetry
// @Produce  json
// @Param   from query string false "Window start (YYYY-MM-DD)"
// @Param   to query string false "Window end (YYYY-MM-DD)"
// @Success 200 {object} dto.TelemetryResponse
// @Failure 400 {object} map[string]string "Invalid date format"
// @Failure 500 {object} map[string]string "Failed to aggregate telemetry"
// @Security BearerAuth
// @Router /telemetry [get]
func (h *telemetryHandler) getTelemetry(c *gin.Context) {
	from, ok := parseDateQuery(c, "from")
	if !ok {
		return
	}
	to, ok := parseDateQuery(c, "to")
	if !ok {
		return
	}
	if to != nil {
		// Make the end bound cover the whole day.
		end := to.AddDate(0, 0, 1).Add(-time.Nanosecond)
		to = &end
	}

	response, err := h.telemetryService.GetTelemetry(c.Request.Context(), from, to)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to aggregate telemetry", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func parseDateQuery(c *gin.Context, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name + " date, expected YYYY-MM-DD"})
		return nil, false
	}
	return &parsed, true
}
