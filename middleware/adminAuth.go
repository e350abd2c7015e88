package middleware

import (
	"context"
	"net/http"
	"strings"

	"agencysite/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Context keys set by JWTAuthAdminMiddleware.
const (
	ContextAdminKey = "admin"
	ContextTokenKey = "adminToken"
)

// AdminAuthenticator resolves a bearer token to an admin.
type AdminAuthenticator interface {
	Authenticate(ctx context.Context, token string) (*models.Admin, error)
}

func JWTAuthAdminMiddleware(auth AdminAuthenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		admin, err := auth.Authenticate(c.Request.Context(), tokenString)
		if err != nil || admin == nil {
			zap.L().Debug("admin authentication failed", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(ContextAdminKey, admin)
		c.Set(ContextTokenKey, tokenString)
		c.Next()
	}
}

// CurrentAdmin returns the admin attached by JWTAuthAdminMiddleware.
func CurrentAdmin(c *gin.Context) (*models.Admin, bool) {
	v, ok := c.Get(ContextAdminKey)
	if !ok {
		return nil, false
	}
	admin, ok := v.(*models.Admin)
	return admin, ok
}
