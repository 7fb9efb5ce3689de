package middleware

import (
	"net/http"
	"time"

	"snaccscore/internal/metrics"

	"github.com/gin-gonic/gin"
)

// Monitor records request counts and latencies. Routes are labelled by their
// template so path parameters don't explode the label set.
func Monitor(collector *metrics.Collector) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		collector.ObserveRequest(path, c.Request.Method, http.StatusText(c.Writer.Status()), time.Since(start).Seconds())
	}
}
