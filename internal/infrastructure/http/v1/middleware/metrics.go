package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// HTTPRecorder receives request metrics.
type HTTPRecorder interface {
	IncrementInFlight()
	DecrementInFlight()
	RecordHTTPMetrics(method, path string, status int, duration time.Duration)
}

// Metrics records duration, count and in-flight requests.
// The path label is the route template so parameters do not explode cardinality.
func Metrics(rec HTTPRecorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		rec.IncrementInFlight()
		defer rec.DecrementInFlight()

		start := time.Now()
		c.Next()

		rec.RecordHTTPMetrics(c.Request.Method, routeLabel(c), c.Writer.Status(), time.Since(start))
	}
}

func routeLabel(c *gin.Context) string {
	if path := c.FullPath(); path != "" {
		return path
	}
	return "unmatched"
}
