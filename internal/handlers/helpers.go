package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// callerRole reads the role id the auth middleware stored in the context.
// Tolerant to claim value types (int / int64 / float64 / string); unknown
// or missing values come back as 0, which no role check accepts.
func callerRole(c *gin.Context) int {
	v, ok := c.Get("role_id")
	if !ok {
		return 0
	}
	switch t := v.(type) {
	case int:
		return t
	case int64:
		return int(t)
	case float64:
		return int(t)
	case string:
		if n, err := strconv.Atoi(t); err == nil {
			return n
		}
	}
	return 0
}
