package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/enterprise-data-api/internal/service"
)

// Metrics records request duration per route template. Unmatched paths are
// grouped under a single label to keep cardinality bounded, and scrapes of
// /metrics are not counted.
func Metrics(metricsSvc *service.MetricsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if metricsSvc == nil {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()

		path := c.FullPath()
		switch path {
		case "/metrics":
			return
		case "":
			path = "unmatched"
		}
		metricsSvc.ObserveHTTPRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
