package observability

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// AdminLogger logs admin HTTP requests. Successful scrapes are frequent and
// logged at debug; client errors at warn, server errors at error.
func AdminLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}

		status := c.Writer.Status()
		var event *zerolog.Event
		switch {
		case status >= 500:
			event = logger.Error()
		case status >= 400:
			event = logger.Warn()
		default:
			event = logger.Debug()
		}
		event.
			Str("route", route).
			Int("status", status).
			Dur("took", time.Since(start)).
			Str("peer", c.ClientIP()).
			Msg("admin request")
	}
}
