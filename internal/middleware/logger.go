package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"calzone/internal/utils"
)

// RequestLogger writes one structured line per handled request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		event := utils.Logger.Info()
		if c.Writer.Status() >= 400 {
			event = utils.Logger.Error()
		}
		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	}
}
