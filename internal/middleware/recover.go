package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"pay-dashboard-api/internal/constant"
	"pay-dashboard-api/internal/utils"
)

// Recover turns a panic in a handler into a 500 answer and an error log line.
func Recover(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.WithFields(logrus.Fields{
					"trace_id": TraceID(c),
					"path":     c.Request.URL.Path,
					"panic":    r,
				}).Error(string(debug.Stack()))
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					utils.Error(constant.CodeInternalError).WithTrace(TraceID(c)))
			}
		}()
		c.Next()
	}
}
