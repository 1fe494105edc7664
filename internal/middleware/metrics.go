// Package middleware provides HTTP middleware for the Gin framework.
package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nikol804/dotapost/internal/metrics"
)

// Metrics records request count, latency and in-flight requests per route
// template. Scrapes of /metrics are not counted.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.FullPath() == "/metrics" {
			c.Next()
			return
		}

		timer := metrics.NewTimer()
		metrics.HTTPRequestsInFlight.Inc()
		defer metrics.HTTPRequestsInFlight.Dec()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, route, status).Inc()
		timer.ObserveDuration(metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, route))
	}
}
