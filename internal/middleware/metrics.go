package middleware

import (
	"strconv"
	"time"

	"github.com/SscSPs/storefront_totals/internal/platform/metrics"
	"github.com/gin-gonic/gin"
)

// Metrics records request count, latency and in-flight requests per route.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		m.InFlight.Inc()
		defer m.InFlight.Dec()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		m.ReqTotal.WithLabelValues(c.Request.Method, route, status).Inc()
		m.ReqDur.WithLabelValues(c.Request.Method, route).Observe(float64(time.Since(start)) / float64(time.Millisecond))
	}
}
