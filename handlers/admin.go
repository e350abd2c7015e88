// File: handlers/admin.go
package handlers

import (
	"net/http"

	"agencysite/middleware"
	"agencysite/models"
	"agencysite/services/admin"
	"agencysite/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler covers admin login and account management.
type AdminHandler struct {
	Service admin.AdminService
}

func NewAdminHandler(svc admin.AdminService) *AdminHandler {
	return &AdminHandler{Service: svc}
}

func (ah *AdminHandler) LoginHandler(c *gin.Context) {
	var input models.AdminLoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})
		return
	}
	resp, err := ah.Service.Login(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// MeHandler returns the authenticated admin.
func (ah *AdminHandler) MeHandler(c *gin.Context) {
	a, ok := middleware.CurrentAdmin(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	c.JSON(http.StatusOK, a)
}

func (ah *AdminHandler) LogoutHandler(c *gin.Context) {
	token := c.GetString(middleware.ContextTokenKey)
	if err := ah.Service.Logout(c.Request.Context(), token); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

func (ah *AdminHandler) ListAdminsHandler(c *gin.Context) {
	list, err := ah.Service.ListAdmins(c.Request.Context())
	if err != nil {
		zap.L().Error("Failed to fetch admins", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch admins"})
		return
	}
	c.JSON(http.StatusOK, list)
}

func (ah *AdminHandler) CreateAdminHandler(c *gin.Context) {
	var input models.AdminCreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	creator, _ := middleware.CurrentAdmin(c)
	createdBy := ""
	if creator != nil {
		createdBy = creator.ID
	}
	created, err := ah.Service.CreateAdmin(c.Request.Context(), input, createdBy)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}
