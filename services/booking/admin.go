package booking

import (
	"context"
	"errors"

	bookingRepo "agencysite/database/repository/booking"
	"agencysite/models"
	"agencysite/utils"

	"go.uber.org/zap"
)

var validStatuses = map[string]bool{
	models.BookingStatusPending:   true,
	models.BookingStatusConfirmed: true,
	models.BookingStatusCancelled: true,
}

func (s *DefaultBookingService) ListBookings(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error) {
	if filter.Status != "" && !validStatuses[filter.Status] {
		return nil, &ValidationError{Fields: map[string]string{"status": "unknown status"}}
	}
	if filter.Date != "" {
		if _, err := s.Calendar.ParseDate(filter.Date); err != nil {
			return nil, &ValidationError{Fields: map[string]string{"date": "date must be YYYY-MM-DD"}}
		}
	}
	list, err := s.Bookings.List(ctx, filter)
	if err != nil {
		return nil, unavailable(err)
	}
	return list, nil
}

// UpcomingBookings returns confirmed bookings from today on.
func (s *DefaultBookingService) UpcomingBookings(ctx context.Context) ([]models.Booking, error) {
	list, err := s.Bookings.ListUpcoming(ctx, s.Calendar.TodayString())
	if err != nil {
		return nil, unavailable(err)
	}
	return list, nil
}

func (s *DefaultBookingService) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	b, err := s.Bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, unavailable(err)
	}
	return b, nil
}

// UpdateBooking applies an admin patch. The first move to confirmed or
// cancelled stamps confirmed_at or cancelled_at.
func (s *DefaultBookingService) UpdateBooking(ctx context.Context, id string, update models.BookingUpdate) (*models.Booking, error) {
	if update.Status != nil && !validStatuses[*update.Status] {
		return nil, &ValidationError{Fields: map[string]string{"status": "status must be pending, confirmed or cancelled"}}
	}

	b, err := s.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	if update.Status != nil && *update.Status != b.Status {
		switch *update.Status {
		case models.BookingStatusConfirmed:
			if b.ConfirmedAt == nil {
				b.ConfirmedAt = &now
			}
		case models.BookingStatusCancelled:
			if b.CancelledAt == nil {
				b.CancelledAt = &now
			}
		}
		b.Status = *update.Status
	}
	if update.MeetingLink != nil {
		b.MeetingLink = *update.MeetingLink
	}
	if update.AdminNotes != nil {
		b.AdminNotes = *update.AdminNotes
	}
	b.UpdatedAt = now

	if err := s.Bookings.Replace(ctx, *b); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, unavailable(err)
	}
	utils.GetLogger().Info("booking updated", zap.String("bookingID", id), zap.String("status", b.Status))
	return b, nil
}

func (s *DefaultBookingService) DeleteBooking(ctx context.Context, id string) error {
	if err := s.Bookings.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		return unavailable(err)
	}
	utils.GetLogger().Info("booking deleted", zap.String("bookingID", id))
	return nil
}

func (s *DefaultBookingService) Stats(ctx context.Context) (*models.BookingStats, error) {
	stats, err := s.Bookings.Stats(ctx, s.Calendar.TodayString())
	if err != nil {
		return nil, unavailable(err)
	}
	return &stats, nil
}
