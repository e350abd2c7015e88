package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequirePermission rejects admins lacking the named permission. It must run
// after JWTAuthAdminMiddleware.
func RequirePermission(permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		admin, ok := CurrentAdmin(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized admin access"})
			return
		}
		if !admin.Has(permission) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "You do not have permission to perform this action",
			})
			return
		}
		c.Next()
	}
}
