package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	TraceHeader = "X-Trace-ID"
	traceKey    = "trace_id"
)

// Trace gives every request a trace id. A well-formed incoming X-Trace-ID is kept so a
// caller can follow one id through several services.
func Trace() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader(TraceHeader)
		if _, err := uuid.Parse(traceID); err != nil {
			traceID = uuid.New().String()
		}
		c.Set(traceKey, traceID)
		c.Writer.Header().Set(TraceHeader, traceID)
		c.Next()
	}
}

// TraceID is the id Trace assigned, empty outside of it.
func TraceID(c *gin.Context) string {
	return c.GetString(traceKey)
}
