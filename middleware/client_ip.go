package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// clientIP keys the per-client rate limiters. The first X-Forwarded-For hop
// wins, then X-Real-IP, then gin's view of the peer address.
func clientIP(c *gin.Context) string {
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		if first, _, _ := strings.Cut(xff, ","); strings.TrimSpace(first) != "" {
			return strings.TrimSpace(first)
		}
	}
	if xri := strings.TrimSpace(c.GetHeader("X-Real-IP")); xri != "" {
		return xri
	}
	return c.RemoteIP()
}
