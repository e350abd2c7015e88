package handlers

import (
	"net/http"
	"strconv"

	"agencysite/models"
	"agencysite/services/booking"
	"agencysite/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves public booking intake and the admin booking views.
type BookingHandler struct {
	Service booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// CreateBookingHandler accepts the public consultation form.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	created, err := h.Service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	getLogger(c).Info("consultation booked", zap.String("bookingID", created.ID))
	c.JSON(http.StatusCreated, created)
}

// AvailableSlotsHandler lists slot occupancy for upcoming bookable days.
func (h *BookingHandler) AvailableSlotsHandler(c *gin.Context) {
	days := booking.DefaultSlotDays
	if raw := c.Query("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "days must be a positive integer"})
			return
		}
		days = n
	}
	slots, err := h.Service.AvailableSlots(c.Request.Context(), c.Query("start_date"), days)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

// CheckAvailabilityHandler answers whether one slot can still be booked.
func (h *BookingHandler) CheckAvailabilityHandler(c *gin.Context) {
	check, err := h.Service.CheckAvailability(c.Request.Context(), c.Query("date"), c.Query("time_slot"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, check)
}

// ListBookingsHandler lists bookings, optionally by status and date.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	filter := models.BookingFilter{Status: c.Query("status"), Date: c.Query("date")}
	list, err := h.Service.ListBookings(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *BookingHandler) UpcomingBookingsHandler(c *gin.Context) {
	list, err := h.Service.UpcomingBookings(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *BookingHandler) BookingStatsHandler(c *gin.Context) {
	stats, err := h.Service.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	b, err := h.Service.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) UpdateBookingHandler(c *gin.Context) {
	var update models.BookingUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	b, err := h.Service.UpdateBooking(c.Request.Context(), c.Param("id"), update)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) DeleteBookingHandler(c *gin.Context) {
	if err := h.Service.DeleteBooking(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted"})
}
