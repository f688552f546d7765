package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yukikurage/kanban-api/internal/logger"
)

// RequestLogger logs one line per request: method, path, status, duration.
// Request bodies are never logged; they can carry credentials.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		logger.Log.Infow("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
			"client_ip", c.ClientIP(),
		)
	}
}
