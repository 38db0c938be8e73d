package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/ncobase/blogpost/logging/logger"
	"github.com/ncobase/blogpost/net/resp"
)

// Recovery turns a panic into a generic 500 response.
func Recovery(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error(c.Request.Context(), "panic recovered", "error", err, "path", c.Request.URL.Path)
				if !c.Writer.Written() {
					resp.Fail(c.Writer, resp.InternalServer(""))
				}
				c.Abort()
			}
		}()

		c.Next()
	}
}
