package middleware

import (
	"time"

	portssvc "github.com/cefinvest/invest_backend/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// TelemetryMiddleware persists one duration event per handled request, named
// "METHOD path" after the matched route.
func TelemetryMiddleware(telemetrySvc portssvc.TelemetrySvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			// Unmatched routes (404s) carry no route template worth tracking.
			return
		}
		telemetrySvc.Record(c.Request.Context(), c.Request.Method+" "+path, time.Since(start))
	}
}
