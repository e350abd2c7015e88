package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"agencysite/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubAuth struct {
	admin *models.Admin
}

func (s stubAuth) Authenticate(ctx context.Context, token string) (*models.Admin, error) {
	if token != "good" {
		return nil, errors.New("bad token")
	}
	return s.admin, nil
}

func newRouter(admin *models.Admin, permission string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/secure", JWTAuthAdminMiddleware(stubAuth{admin: admin}), RequirePermission(permission), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func TestAdminAuthAndPermissions(t *testing.T) {
	editor := &models.Admin{ID: "a1", Role: models.RoleAdmin, Permissions: models.DefaultAdminPermissions()}

	cases := []struct {
		name       string
		header     string
		admin      *models.Admin
		permission string
		want       int
	}{
		{"missing header", "", editor, models.PermManageBookings, http.StatusUnauthorized},
		{"bad token", "Bearer nope", editor, models.PermManageBookings, http.StatusUnauthorized},
		{"allowed", "Bearer good", editor, models.PermManageBookings, http.StatusNoContent},
		{"forbidden", "Bearer good", editor, models.PermManageAdmins, http.StatusForbidden},
		{"super admin holds everything", "Bearer good", &models.Admin{ID: "s1", Role: models.RoleSuperAdmin}, models.PermManageAdmins, http.StatusNoContent},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newRouter(tc.admin, tc.permission)
			req := httptest.NewRequest(http.MethodGet, "/secure", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tc.want, w.Code)
		})
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/book", RateLimitMiddleware(2), func(c *gin.Context) { c.Status(http.StatusCreated) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/book", nil)
		req.Header.Set("X-Forwarded-For", "203.0.113.7")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusCreated, http.StatusCreated, http.StatusTooManyRequests}, codes)

	// A different client has its own budget.
	req := httptest.NewRequest(http.MethodPost, "/book", nil)
	req.Header.Set("X-Forwarded-For", "198.51.100.1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)
}
