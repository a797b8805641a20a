package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	appctx "warebill/internal/core/context"
	"warebill/pkg/logger"
)

// Logger middleware logs HTTP requests with timing and status.
// Health probes are skipped to keep the log readable.
func Logger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		if strings.HasPrefix(path, "/health") {
			return
		}

		latency := time.Since(start)
		status := c.Writer.Status()

		fields := []any{
			"method", c.Request.Method,
			"path", path,
			"query", query,
			"status", status,
			"latency_ms", latency.Milliseconds(),
			"client_ip", c.ClientIP(),
			"user_agent", c.Request.UserAgent(),
			"error", c.Errors.ByType(gin.ErrorTypePrivate).String(),
		}
		if user := appctx.GetUser(c.Request.Context()); user != nil {
			fields = append(fields, "user_id", user.UserID)
		}

		log.WithContext(c.Request.Context()).Infow("http request", fields...)
	}
}
