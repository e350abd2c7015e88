package mocks

import (
	"context"

	bookingRepo "agencysite/database/repository/booking"
	"agencysite/models"

	"github.com/stretchr/testify/mock"
)

// BookingRepository is a testify mock of bookingRepo.BookingRepository.
//
// InsertGuarded runs the guard against the bookings configured with
// SameDay before consulting the expectation, so capacity logic in the
// caller is exercised.
type BookingRepository struct {
	mock.Mock
	SameDay []models.Booking
}

func (m *BookingRepository) InsertGuarded(ctx context.Context, booking *models.Booking, guard bookingRepo.CapacityGuard) error {
	if guard != nil {
		if err := guard(m.SameDay); err != nil {
			return err
		}
	}
	return m.Called(ctx, booking).Error(0)
}

func (m *BookingRepository) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	args := m.Called(ctx, id)
	if b, ok := args.Get(0).(*models.Booking); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *BookingRepository) ListByDate(ctx context.Context, date string) ([]models.Booking, error) {
	args := m.Called(ctx, date)
	return bookings(args.Get(0)), args.Error(1)
}

func (m *BookingRepository) ListByDateRange(ctx context.Context, from, to string) ([]models.Booking, error) {
	args := m.Called(ctx, from, to)
	return bookings(args.Get(0)), args.Error(1)
}

func (m *BookingRepository) List(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error) {
	args := m.Called(ctx, filter)
	return bookings(args.Get(0)), args.Error(1)
}

func (m *BookingRepository) ListUpcoming(ctx context.Context, today string) ([]models.Booking, error) {
	args := m.Called(ctx, today)
	return bookings(args.Get(0)), args.Error(1)
}

func (m *BookingRepository) Replace(ctx context.Context, booking models.Booking) error {
	return m.Called(ctx, booking).Error(0)
}

func (m *BookingRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *BookingRepository) Stats(ctx context.Context, today string) (models.BookingStats, error) {
	args := m.Called(ctx, today)
	stats, _ := args.Get(0).(models.BookingStats)
	return stats, args.Error(1)
}

func (m *BookingRepository) EnsureIndexes(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func bookings(v interface{}) []models.Booking {
	if b, ok := v.([]models.Booking); ok {
		return b
	}
	return nil
}
