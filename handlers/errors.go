package handlers

import (
	"errors"
	"net/http"

	"agencysite/services/admin"
	"agencysite/services/booking"
	"agencysite/services/pricing"
	"agencysite/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps service errors onto HTTP responses.
func respondError(c *gin.Context, err error) {
	var (
		bookingErr *booking.ValidationError
		catalogErr *pricing.CatalogValidationError
		inputErr   *admin.InputError
	)
	switch {
	case errors.As(err, &bookingErr):
		utils.JSONFieldErrors(c, "Validation failed", bookingErr.Fields)
	case errors.As(err, &catalogErr):
		utils.JSONFieldErrors(c, "Invalid pricing catalog", catalogErr.Fields)
	case errors.As(err, &inputErr):
		utils.JSONFieldErrors(c, "Validation failed", map[string]string{inputErr.Field: inputErr.Reason})
	case errors.Is(err, booking.ErrSlotUnavailable):
		c.JSON(http.StatusConflict, gin.H{"error": "This time slot is no longer available. Please pick another one.", "code": "slot_unavailable"})
	case errors.Is(err, booking.ErrBookingSystemInactive):
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking system is not active"})
	case errors.Is(err, booking.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
	case errors.Is(err, booking.ErrSettingsNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking settings not found"})
	case errors.Is(err, admin.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
	case errors.Is(err, admin.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	case errors.Is(err, admin.ErrUsernameTaken):
		c.JSON(http.StatusConflict, gin.H{"error": "Username already exists"})
	case errors.Is(err, booking.ErrCollaboratorUnavailable):
		getLogger(c).Error("backing store unavailable", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Service temporarily unavailable, please try again"})
	default:
		getLogger(c).Error("request failed", zap.Error(err), zap.String("path", c.FullPath()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
