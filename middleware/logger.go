package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ncobase/blogpost/logging/logger"
)

// Logger logs one line per request.
func Logger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		duration := time.Since(start)
		status := c.Writer.Status()

		kv := []any{
			"method", method,
			"path", path,
			"status", status,
			"duration", duration.String(),
			"ip", c.ClientIP(),
		}
		if status >= 500 {
			log.Warn(c.Request.Context(), "HTTP request", kv...)
			return
		}
		log.Info(c.Request.Context(), "HTTP request", kv...)
	}
}
