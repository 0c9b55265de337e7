package middleware

import (
	"time"

	"github.com/SscSPs/bank_portal/internal/platform/metrics"
	"github.com/gin-gonic/gin"
)

// Metrics records request counts and latencies per route template.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/metrics" {
			c.Next()
			return
		}
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		start := time.Now()
		done := metrics.RequestStarted(c.Request.Method, route)
		c.Next()
		done(c.Writer.Status(), time.Since(start).Seconds())
	}
}
