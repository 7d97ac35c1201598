package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pluscontrol/plus-control-api/internal/infrastructure/observability"
)

// MetricsMiddleware records request counts, latency and in-flight requests
func MetricsMiddleware(m *observability.HTTPMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		m.InFlight.Inc()
		start := time.Now()

		c.Next()

		m.InFlight.Dec()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ReqTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.ReqDur.WithLabelValues(c.Request.Method, route).Observe(observability.DurationMillis(time.Since(start)))
	}
}
