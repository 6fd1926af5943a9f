package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"cityinfo/pkg/utils"
)

// RequestLogger writes one structured line per request and makes logger
// available to handlers through utils.LoggerFrom.
func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		utils.SetLogger(c, logger)
		c.Next()

		level := slog.LevelInfo
		if c.Writer.Status() >= 500 {
			level = slog.LevelError
		}
		logger.LogAttrs(c.Request.Context(), level, "HTTP request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("latency", time.Since(start)),
			slog.String("trace_id", c.GetString("trace_id")),
		)
	}
}
