package booking

import (
	"context"
	"errors"
	"fmt"

	settingsRepo "agencysite/database/repository/settings"
	"agencysite/models"
	"agencysite/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateBooking validates a public booking request and stores it as pending.
//
// Field problems are returned together as a *ValidationError. The final
// capacity check runs inside the store's insert transaction; losing the race
// for the last spot yields ErrSlotUnavailable.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, req models.BookingRequest) (*models.Booking, error) {
	logger := utils.GetLogger()
	req = normalizeRequest(req)

	verr := newValidationError()
	s.validateFields(req, verr)

	settings, err := s.Settings.GetActive(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			return nil, ErrBookingSystemInactive
		}
		return nil, unavailable(err)
	}

	var def models.TimeSlotDefinition
	if _, bad := verr.Fields["preferred_date"]; !bad {
		d, _ := s.Calendar.ParseDate(req.PreferredDate)
		if !settings.IsDayAvailable(d.Weekday()) {
			verr.add("preferred_date", fmt.Sprintf("bookings are not taken on %s", d.Weekday()))
		}
	}
	if req.PreferredTimeSlot != "" {
		var ok bool
		if def, ok = settings.FindSlot(req.PreferredTimeSlot); !ok {
			verr.add("preferred_time_slot", "unknown time slot")
		}
	}
	if err := verr.orNil(); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	booking := &models.Booking{
		ID:                uuid.New().String(),
		Name:              req.Name,
		Email:             req.Email,
		Phone:             req.Phone,
		PreferredDate:     req.PreferredDate,
		PreferredTimeSlot: req.PreferredTimeSlot,
		Message:           req.Message,
		Status:            models.BookingStatusPending,
		MeetingType:       settings.MeetingType,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	guard := func(sameDay []models.Booking) error {
		if !resolveOne(booking.PreferredDate, def, sameDay).IsAvailable {
			return ErrSlotUnavailable
		}
		return nil
	}
	if err := s.Bookings.InsertGuarded(ctx, booking, guard); err != nil {
		if errors.Is(err, ErrSlotUnavailable) {
			logger.Info("booking rejected, slot full",
				zap.String("date", booking.PreferredDate),
				zap.String("slot", booking.PreferredTimeSlot))
			return nil, ErrSlotUnavailable
		}
		logger.Error("failed to store booking", zap.Error(err))
		return nil, unavailable(err)
	}

	logger.Info("booking created",
		zap.String("bookingID", booking.ID),
		zap.String("date", booking.PreferredDate),
		zap.String("slot", booking.PreferredTimeSlot))

	s.notify(ctx, booking)
	return booking, nil
}

// notify queues the admin e-mail. Failures are logged only.
func (s *DefaultBookingService) notify(ctx context.Context, b *models.Booking) {
	if s.Notifier == nil {
		return
	}
	payload := models.BookingNotificationPayload{
		BookingID:         b.ID,
		Name:              b.Name,
		Email:             b.Email,
		Phone:             b.Phone,
		PreferredDate:     b.PreferredDate,
		PreferredTimeSlot: b.PreferredTimeSlot,
		MeetingType:       b.MeetingType,
		Message:           b.Message,
	}
	if err := s.Notifier.EnqueueBookingNotification(ctx, payload); err != nil {
		utils.GetLogger().Warn("failed to enqueue booking notification",
			zap.String("bookingID", b.ID), zap.Error(err))
	}
}
