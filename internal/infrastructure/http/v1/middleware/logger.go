package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"catalogodeleite/internal/domain/search"
	"catalogodeleite/pkg/logger"
)

const searchLogKey = "search_log"

// searchLog is what a search handler leaves behind for the access log.
type searchLog struct {
	query  string
	window search.Window
	total  int64
}

// AnnotateSearch attaches the executed search to the request so the access
// log line can report the query, whether it was paged and the match count.
func AnnotateSearch(c *gin.Context, query string, window search.Window, total int64) {
	c.Set(searchLogKey, searchLog{query: query, window: window, total: total})
}

// Logger writes one access log line per request. Server errors are logged at
// error level, client errors at warn level.
func Logger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		fields := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"route", routeLabel(c),
			"status", status,
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		}
		if v, ok := c.Get(searchLogKey); ok {
			s := v.(searchLog)
			fields = append(fields,
				"search_query", s.query,
				"search_windowed", s.window.Applies(),
				"search_total", s.total,
			)
			if s.window.Applies() {
				offset, limit := s.window.Bounds()
				fields = append(fields, "search_offset", offset, "search_limit", limit)
			}
		}
		if errs := c.Errors.ByType(gin.ErrorTypePrivate); len(errs) > 0 {
			fields = append(fields, "error", errs.String())
		}

		l := log.WithContext(c.Request.Context())
		switch {
		case status >= http.StatusInternalServerError:
			l.Errorw("http request", fields...)
		case status >= http.StatusBadRequest:
			l.Warnw("http request", fields...)
		default:
			l.Infow("http request", fields...)
		}
	}
}
