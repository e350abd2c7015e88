package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	settingsRepo "agencysite/database/repository/settings"
	"agencysite/models"
)

// DefaultSlotDays is how many days the slot listing covers when unspecified.
const DefaultSlotDays = 14

func (s *DefaultBookingService) activeSettings(ctx context.Context) (*models.BookingSetting, error) {
	settings, err := s.Settings.GetActive(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			return nil, ErrBookingSystemInactive
		}
		return nil, unavailable(err)
	}
	return settings, nil
}

// AvailableSlots lists slot occupancy for each bookable day in
// [startDate, startDate+days). Days outside the horizon or on closed weekdays
// are skipped. An empty startDate means tomorrow.
func (s *DefaultBookingService) AvailableSlots(ctx context.Context, startDate string, days int) ([]models.SlotAvailability, error) {
	settings, err := s.activeSettings(ctx)
	if err != nil {
		return nil, err
	}

	start := s.Calendar.FirstBookable()
	if startDate != "" {
		if start, err = s.Calendar.ParseDate(startDate); err != nil {
			return nil, &ValidationError{Fields: map[string]string{"start_date": "start_date must be YYYY-MM-DD"}}
		}
	}
	if days <= 0 {
		days = DefaultSlotDays
	}
	if limit := s.Calendar.HorizonDays + 1; days > limit {
		days = limit
	}

	var dates []time.Time
	for i := 0; i < days; i++ {
		d := start.AddDate(0, 0, i)
		if !s.Calendar.InHorizon(d) || !settings.IsDayAvailable(d.Weekday()) {
			continue
		}
		dates = append(dates, d)
	}
	if len(dates) == 0 {
		return []models.SlotAvailability{}, nil
	}

	from := dates[0].Format(models.DateLayout)
	to := dates[len(dates)-1].Format(models.DateLayout)
	bookings, err := s.Bookings.ListByDateRange(ctx, from, to)
	if err != nil {
		return nil, unavailable(err)
	}

	defs := settings.SlotDefinitions()
	out := make([]models.SlotAvailability, 0, len(dates)*len(defs))
	for _, d := range dates {
		out = append(out, ResolveSlots(d.Format(models.DateLayout), defs, bookings)...)
	}
	return out, nil
}

// CheckAvailability answers whether one slot on one date can still be booked.
func (s *DefaultBookingService) CheckAvailability(ctx context.Context, date, timeSlot string) (*models.AvailabilityCheck, error) {
	verr := newValidationError()
	if date == "" {
		verr.add("date", "date is required")
	}
	if timeSlot == "" {
		verr.add("time_slot", "time_slot is required")
	}
	var d time.Time
	if date != "" {
		var err error
		if d, err = s.Calendar.ParseDate(date); err != nil {
			verr.add("date", "date must be YYYY-MM-DD")
		}
	}
	if err := verr.orNil(); err != nil {
		return nil, err
	}

	settings, err := s.activeSettings(ctx)
	if err != nil {
		return nil, err
	}

	if !s.Calendar.InHorizon(d) {
		return &models.AvailabilityCheck{Reason: "date is outside the booking window"}, nil
	}
	if !settings.IsDayAvailable(d.Weekday()) {
		return &models.AvailabilityCheck{Reason: fmt.Sprintf("bookings are not taken on %s", d.Weekday())}, nil
	}
	def, ok := settings.FindSlot(timeSlot)
	if !ok {
		return &models.AvailabilityCheck{Reason: "unknown time slot"}, nil
	}

	bookings, err := s.Bookings.ListByDate(ctx, date)
	if err != nil {
		return nil, unavailable(err)
	}
	slot := resolveOne(date, def, bookings)
	check := &models.AvailabilityCheck{
		Available:      slot.IsAvailable,
		AvailableSpots: slot.AvailableSpots,
		MaxBookings:    slot.Capacity,
		MeetingType:    settings.MeetingType,
	}
	if !slot.IsAvailable {
		check.Reason = "slot is fully booked"
	}
	return check, nil
}
