package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"pulse-srv/pkg/metrics"
)

// Metrics counts requests by matched route and status.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequests.WithLabelValues(route, strconv.Itoa(c.Writer.Status())).Inc()
		if d := time.Since(start); d > slowRequest {
			metrics.SlowRequests.WithLabelValues(route).Inc()
		}
	}
}

const slowRequest = 2 * time.Second
