package booking_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	bookingRepo "agencysite/database/repository/booking"
	settingsRepo "agencysite/database/repository/settings"
	"agencysite/mocks"
	"agencysite/models"
	"agencysite/services/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Wednesday 2026-10-14; tomorrow is Thursday the 15th.
var fixedNow = time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)

type recordingQueue struct {
	payloads []models.BookingNotificationPayload
	err      error
}

func (q *recordingQueue) EnqueueBookingNotification(ctx context.Context, p models.BookingNotificationPayload) error {
	q.payloads = append(q.payloads, p)
	return q.err
}

func weekdaySettings(capacity int) *models.BookingSetting {
	return &models.BookingSetting{
		ID:            "settings-1",
		AvailableDays: []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"},
		TimeSlots: []models.SettingTimeSlot{
			{StartTime: "10:00", EndTime: "11:00", MaxBookings: capacity},
			{StartTime: "14:00", EndTime: "15:00", MaxBookings: capacity},
		},
		MeetingType: "Google Meet",
		IsActive:    true,
	}
}

func newService(bookings *mocks.BookingRepository, settings *mocks.SettingsRepository, q booking.NotificationQueue) *booking.DefaultBookingService {
	svc := booking.NewBookingService(bookings, settings, q, time.UTC, 30)
	svc.Calendar.Now = func() time.Time { return fixedNow }
	return svc
}

func validRequest() models.BookingRequest {
	return models.BookingRequest{
		Name:              "  Priya Sharma ",
		Email:             "priya@example.com",
		Phone:             "+91 98765 43210",
		PreferredDate:     "2026-10-15",
		PreferredTimeSlot: "10:00-11:00",
		Message:           "Need an online store",
	}
}

func TestCreateBooking(t *testing.T) {
	t.Run("stores a pending booking and queues a notification", func(t *testing.T) {
		settings := new(mocks.SettingsRepository)
		settings.On("GetActive", mock.Anything).Return(weekdaySettings(1), nil)
		bookings := new(mocks.BookingRepository)
		bookings.On("InsertGuarded", mock.Anything, mock.AnythingOfType("*models.Booking")).Return(nil)
		q := &recordingQueue{}

		got, err := newService(bookings, settings, q).CreateBooking(context.Background(), validRequest())
		require.NoError(t, err)
		assert.Equal(t, models.BookingStatusPending, got.Status)
		assert.Equal(t, "Priya Sharma", got.Name)
		assert.Equal(t, "Google Meet", got.MeetingType)
		assert.NotEmpty(t, got.ID)
		require.Len(t, q.payloads, 1)
		assert.Equal(t, got.ID, q.payloads[0].BookingID)
	})

	t.Run("reports every invalid field", func(t *testing.T) {
		settings := new(mocks.SettingsRepository)
		settings.On("GetActive", mock.Anything).Return(weekdaySettings(1), nil)
		bookings := new(mocks.BookingRepository)

		req := validRequest()
		req.Name = "A"
		req.Email = "not-an-email"
		_, err := newService(bookings, settings, nil).CreateBooking(context.Background(), req)

		var verr *booking.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "name")
		assert.Contains(t, verr.Fields, "email")
		bookings.AssertNotCalled(t, "InsertGuarded", mock.Anything, mock.Anything)
	})

	t.Run("rejects out of range fields", func(t *testing.T) {
		settings := new(mocks.SettingsRepository)
		settings.On("GetActive", mock.Anything).Return(weekdaySettings(1), nil)

		req := models.BookingRequest{
			Name:              strings.Repeat("x", 101),
			Email:             "a@b.co",
			Phone:             "12345",
			PreferredDate:     "2026-10-14",
			PreferredTimeSlot: "09:00-10:00",
			Message:           strings.Repeat("m", 501),
		}
		_, err := newService(new(mocks.BookingRepository), settings, nil).CreateBooking(context.Background(), req)

		var verr *booking.ValidationError
		require.ErrorAs(t, err, &verr)
		for _, f := range []string{"name", "phone", "message", "preferred_date", "preferred_time_slot"} {
			assert.Contains(t, verr.Fields, f)
		}
		assert.NotContains(t, verr.Fields, "email")
	})

	t.Run("rejects closed weekdays", func(t *testing.T) {
		settings := new(mocks.SettingsRepository)
		settings.On("GetActive", mock.Anything).Return(weekdaySettings(1), nil)

		req := validRequest()
		req.PreferredDate = "2026-10-17" // Saturday
		_, err := newService(new(mocks.BookingRepository), settings, nil).CreateBooking(context.Background(), req)

		var verr *booking.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields["preferred_date"], "Saturday")
	})

	t.Run("full slot is a capacity conflict", func(t *testing.T) {
		settings := new(mocks.SettingsRepository)
		settings.On("GetActive", mock.Anything).Return(weekdaySettings(2), nil)
		bookings := &mocks.BookingRepository{SameDay: []models.Booking{
			{PreferredDate: "2026-10-15", PreferredTimeSlot: "10:00-11:00", Status: models.BookingStatusPending},
			{PreferredDate: "2026-10-15", PreferredTimeSlot: "10:00-11:00", Status: models.BookingStatusConfirmed},
			{PreferredDate: "2026-10-15", PreferredTimeSlot: "10:00-11:00", Status: models.BookingStatusCancelled},
		}}
		q := &recordingQueue{}

		_, err := newService(bookings, settings, q).CreateBooking(context.Background(), validRequest())
		assert.ErrorIs(t, err, booking.ErrSlotUnavailable)
		var verr *booking.ValidationError
		assert.False(t, errors.As(err, &verr))
		assert.Empty(t, q.payloads)
	})

	t.Run("cancelled bookings leave room", func(t *testing.T) {
		settings := new(mocks.SettingsRepository)
		settings.On("GetActive", mock.Anything).Return(weekdaySettings(1), nil)
		bookings := &mocks.BookingRepository{SameDay: []models.Booking{
			{PreferredDate: "2026-10-15", PreferredTimeSlot: "10:00-11:00", Status: models.BookingStatusCancelled},
		}}
		bookings.On("InsertGuarded", mock.Anything, mock.Anything).Return(nil)

		_, err := newService(bookings, settings, nil).CreateBooking(context.Background(), validRequest())
		assert.NoError(t, err)
	})

	t.Run("notification failure does not fail the booking", func(t *testing.T) {
		settings := new(mocks.SettingsRepository)
		settings.On("GetActive", mock.Anything).Return(weekdaySettings(1), nil)
		bookings := new(mocks.BookingRepository)
		bookings.On("InsertGuarded", mock.Anything, mock.Anything).Return(nil)
		q := &recordingQueue{err: errors.New("queue down")}

		got, err := newService(bookings, settings, q).CreateBooking(context.Background(), validRequest())
		require.NoError(t, err)
		assert.NotNil(t, got)
	})

	t.Run("store failure is surfaced as unavailable", func(t *testing.T) {
		settings := new(mocks.SettingsRepository)
		settings.On("GetActive", mock.Anything).Return(weekdaySettings(1), nil)
		bookings := new(mocks.BookingRepository)
		bookings.On("InsertGuarded", mock.Anything, mock.Anything).Return(errors.New("no primary"))

		_, err := newService(bookings, settings, nil).CreateBooking(context.Background(), validRequest())
		assert.ErrorIs(t, err, booking.ErrCollaboratorUnavailable)
	})

	t.Run("no active settings", func(t *testing.T) {
		settings := new(mocks.SettingsRepository)
		settings.On("GetActive", mock.Anything).Return(nil, settingsRepo.ErrSettingsNotFound)

		_, err := newService(new(mocks.BookingRepository), settings, nil).CreateBooking(context.Background(), validRequest())
		assert.ErrorIs(t, err, booking.ErrBookingSystemInactive)
	})
}

func TestAvailableSlots(t *testing.T) {
	settings := new(mocks.SettingsRepository)
	settings.On("GetActive", mock.Anything).Return(weekdaySettings(1), nil)
	bookings := new(mocks.BookingRepository)
	bookings.On("ListByDateRange", mock.Anything, "2026-10-15", "2026-10-19").Return([]models.Booking{
		{PreferredDate: "2026-10-16", PreferredTimeSlot: "14:00-15:00", Status: models.BookingStatusPending},
	}, nil)

	// 14th (today) .. 19th: today is outside the horizon, 17th/18th are a weekend.
	got, err := newService(bookings, settings, nil).AvailableSlots(context.Background(), "2026-10-14", 6)
	require.NoError(t, err)
	require.Len(t, got, 6)

	dates := map[string]int{}
	for _, s := range got {
		dates[s.Date]++
		if s.Date == "2026-10-16" && s.TimeSlot == "14:00-15:00" {
			assert.False(t, s.IsAvailable)
		} else {
			assert.True(t, s.IsAvailable, s.Date+" "+s.TimeSlot)
		}
	}
	assert.Equal(t, map[string]int{"2026-10-15": 2, "2026-10-16": 2, "2026-10-19": 2}, dates)
	bookings.AssertExpectations(t)
}

func TestCheckAvailability(t *testing.T) {
	settings := new(mocks.SettingsRepository)
	settings.On("GetActive", mock.Anything).Return(weekdaySettings(1), nil)
	bookings := new(mocks.BookingRepository)
	bookings.On("ListByDate", mock.Anything, "2026-10-15").Return([]models.Booking{
		{PreferredDate: "2026-10-15", PreferredTimeSlot: "10:00-11:00", Status: models.BookingStatusPending},
	}, nil)
	svc := newService(bookings, settings, nil)

	full, err := svc.CheckAvailability(context.Background(), "2026-10-15", "10:00-11:00")
	require.NoError(t, err)
	assert.False(t, full.Available)
	assert.Equal(t, 1, full.MaxBookings)

	open, err := svc.CheckAvailability(context.Background(), "2026-10-15", "14:00-15:00")
	require.NoError(t, err)
	assert.True(t, open.Available)
	assert.Equal(t, 1, open.AvailableSpots)
	assert.Equal(t, "Google Meet", open.MeetingType)

	weekend, err := svc.CheckAvailability(context.Background(), "2026-10-18", "14:00-15:00")
	require.NoError(t, err)
	assert.False(t, weekend.Available)
	assert.NotEmpty(t, weekend.Reason)

	_, err = svc.CheckAvailability(context.Background(), "15/10/2026", "")
	var verr *booking.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 2)
}

func TestUpdateBooking(t *testing.T) {
	stored := func() *models.Booking {
		return &models.Booking{ID: "b1", Status: models.BookingStatusPending, PreferredDate: "2026-10-15"}
	}

	t.Run("confirming stamps confirmed_at once", func(t *testing.T) {
		bookings := new(mocks.BookingRepository)
		bookings.On("GetByID", mock.Anything, "b1").Return(stored(), nil)
		bookings.On("Replace", mock.Anything, mock.Anything).Return(nil)
		svc := newService(bookings, new(mocks.SettingsRepository), nil)

		confirmed := models.BookingStatusConfirmed
		link := "https://meet.example.com/abc"
		got, err := svc.UpdateBooking(context.Background(), "b1", models.BookingUpdate{Status: &confirmed, MeetingLink: &link})
		require.NoError(t, err)
		assert.Equal(t, confirmed, got.Status)
		require.NotNil(t, got.ConfirmedAt)
		assert.True(t, got.ConfirmedAt.Equal(fixedNow))
		assert.Nil(t, got.CancelledAt)
		assert.Equal(t, link, got.MeetingLink)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		bookings := new(mocks.BookingRepository)
		svc := newService(bookings, new(mocks.SettingsRepository), nil)

		bogus := "done"
		_, err := svc.UpdateBooking(context.Background(), "b1", models.BookingUpdate{Status: &bogus})
		var verr *booking.ValidationError
		require.ErrorAs(t, err, &verr)
		bookings.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})
}

func TestStatsUsesToday(t *testing.T) {
	bookings := new(mocks.BookingRepository)
	bookings.On("Stats", mock.Anything, "2026-10-14").Return(models.BookingStats{Total: 3, Pending: 2, Upcoming: 1}, nil)

	got, err := newService(bookings, new(mocks.SettingsRepository), nil).Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.Total)
	assert.Equal(t, int64(1), got.Upcoming)
}

func TestBookingAdministration(t *testing.T) {
	t.Run("list rejects unknown status", func(t *testing.T) {
		bookings := new(mocks.BookingRepository)
		_, err := newService(bookings, new(mocks.SettingsRepository), nil).
			ListBookings(context.Background(), models.BookingFilter{Status: "archived"})
		var verr *booking.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "status")
		bookings.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
	})

	t.Run("upcoming starts today", func(t *testing.T) {
		bookings := new(mocks.BookingRepository)
		bookings.On("ListUpcoming", mock.Anything, "2026-10-14").
			Return([]models.Booking{{ID: "b1", Status: models.BookingStatusConfirmed}}, nil)
		got, err := newService(bookings, new(mocks.SettingsRepository), nil).UpcomingBookings(context.Background())
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("missing booking maps to not found", func(t *testing.T) {
		bookings := new(mocks.BookingRepository)
		bookings.On("GetByID", mock.Anything, "nope").Return(nil, bookingRepo.ErrBookingNotFound)
		bookings.On("Delete", mock.Anything, "nope").Return(bookingRepo.ErrBookingNotFound)
		svc := newService(bookings, new(mocks.SettingsRepository), nil)

		_, err := svc.GetBooking(context.Background(), "nope")
		assert.ErrorIs(t, err, booking.ErrBookingNotFound)
		assert.ErrorIs(t, svc.DeleteBooking(context.Background(), "nope"), booking.ErrBookingNotFound)
	})

	t.Run("store failures are collaborator errors", func(t *testing.T) {
		bookings := new(mocks.BookingRepository)
		bookings.On("List", mock.Anything, models.BookingFilter{}).Return(nil, errors.New("connection reset"))
		_, err := newService(bookings, new(mocks.SettingsRepository), nil).
			ListBookings(context.Background(), models.BookingFilter{})
		assert.ErrorIs(t, err, booking.ErrCollaboratorUnavailable)
	})
}
