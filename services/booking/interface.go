package booking

import (
	"context"
	"time"

	bookingRepo "agencysite/database/repository/booking"
	settingsRepo "agencysite/database/repository/settings"
	"agencysite/models"
)

// NotificationQueue hands new bookings to the admin notification worker.
type NotificationQueue interface {
	EnqueueBookingNotification(ctx context.Context, payload models.BookingNotificationPayload) error
}

// BookingService covers public intake and availability plus admin management.
type BookingService interface {
	CreateBooking(ctx context.Context, req models.BookingRequest) (*models.Booking, error)
	AvailableSlots(ctx context.Context, startDate string, days int) ([]models.SlotAvailability, error)
	CheckAvailability(ctx context.Context, date, timeSlot string) (*models.AvailabilityCheck, error)

	ListBookings(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error)
	UpcomingBookings(ctx context.Context) ([]models.Booking, error)
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	UpdateBooking(ctx context.Context, id string, update models.BookingUpdate) (*models.Booking, error)
	DeleteBooking(ctx context.Context, id string) error
	Stats(ctx context.Context) (*models.BookingStats, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Bookings bookingRepo.BookingRepository
	Settings settingsRepo.SettingsRepository
	Notifier NotificationQueue // optional
	Calendar Calendar
}

// NewBookingService wires the service; notifier may be nil.
func NewBookingService(
	bookings bookingRepo.BookingRepository,
	settings settingsRepo.SettingsRepository,
	notifier NotificationQueue,
	loc *time.Location,
	horizonDays int,
) *DefaultBookingService {
	return &DefaultBookingService{
		Bookings: bookings,
		Settings: settings,
		Notifier: notifier,
		Calendar: Calendar{Location: loc, HorizonDays: horizonDays, Now: time.Now},
	}
}

func (s *DefaultBookingService) now() time.Time {
	if s.Calendar.Now != nil {
		return s.Calendar.Now()
	}
	return time.Now()
}
