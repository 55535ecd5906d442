// Structured request logging plus correlation-id propagation.

package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Thammasok/user-api/events"
)

const CorrelationIDHeader = "X-Correlation-ID"
const ctxCorrelationIDKey = "correlation_id"

// CorrelationID propagates the caller's correlation id, or mints one, so
// the two request log lines (and anything downstream) can be tied
// together.
func CorrelationID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(CorrelationIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(ctxCorrelationIDKey, id)
		c.Header(CorrelationIDHeader, id)
		// Also thread it through the request context so the service
		// layer can tag published events with it.
		c.Request = c.Request.WithContext(events.WithCorrelationID(c.Request.Context(), id))
		c.Next()
	}
}

// GetCorrelationID reads the id stored by CorrelationID; empty when the
// middleware did not run.
func GetCorrelationID(c *gin.Context) string {
	if v, ok := c.Get(ctxCorrelationIDKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// RequestLogger writes one line when a request starts and one when it
// finishes, with method, path, status and duration.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path // keep; handlers may rewrite the URL

		log.Info().
			Str("method", c.Request.Method).
			Str("path", path).
			Str("correlation_id", GetCorrelationID(c)).
			Msg("request started")

		c.Next()

		log.Info().
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Str("correlation_id", GetCorrelationID(c)).
			Msg("request completed")
	}
}
