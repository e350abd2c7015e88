package handlers

import (
	"net/http"

	"agencysite/models"
	"agencysite/services/booking"
	"agencysite/utils"

	"github.com/gin-gonic/gin"
)

// BookingSettingsHandler manages the consultation calendar.
type BookingSettingsHandler struct {
	Service booking.SettingsService
}

func NewBookingSettingsHandler(svc booking.SettingsService) *BookingSettingsHandler {
	return &BookingSettingsHandler{Service: svc}
}

// GetPublicSettingsHandler returns the active calendar for the booking page.
func (h *BookingSettingsHandler) GetPublicSettingsHandler(c *gin.Context) {
	s, err := h.Service.GetPublic(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *BookingSettingsHandler) GetAdminSettingsHandler(c *gin.Context) {
	s, err := h.Service.GetAdmin(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// SaveSettingsHandler creates the calendar or replaces the existing one.
func (h *BookingSettingsHandler) SaveSettingsHandler(c *gin.Context) {
	var input models.BookingSettingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	s, err := h.Service.Save(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *BookingSettingsHandler) UpdateSettingsHandler(c *gin.Context) {
	var patch models.BookingSettingUpdate
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	s, err := h.Service.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *BookingSettingsHandler) DeleteSettingsHandler(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking settings deleted"})
}
