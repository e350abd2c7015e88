package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	settingsRepo "agencysite/database/repository/settings"
	"agencysite/models"
	"agencysite/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SettingsService manages the single booking calendar configuration.
type SettingsService interface {
	GetPublic(ctx context.Context) (*models.BookingSetting, error)
	GetAdmin(ctx context.Context) (*models.BookingSetting, error)
	Save(ctx context.Context, input models.BookingSettingInput) (*models.BookingSetting, error)
	Update(ctx context.Context, id string, patch models.BookingSettingUpdate) (*models.BookingSetting, error)
	Delete(ctx context.Context, id string) error
	InitDefaults(ctx context.Context) (*models.BookingSetting, bool, error)
}

// DefaultSettingsService is the production implementation.
type DefaultSettingsService struct {
	Repo     settingsRepo.SettingsRepository
	Timezone string
	Now      func() time.Time
}

func NewSettingsService(repo settingsRepo.SettingsRepository, timezone string) *DefaultSettingsService {
	return &DefaultSettingsService{Repo: repo, Timezone: timezone, Now: time.Now}
}

// DefaultSettings is the weekday calendar created by InitDefaults.
func DefaultSettings() models.BookingSettingInput {
	active := true
	return models.BookingSettingInput{
		AvailableDays: []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"},
		TimeSlots: []models.SettingTimeSlot{
			{StartTime: "10:00", EndTime: "11:00", MaxBookings: 1},
			{StartTime: "11:00", EndTime: "12:00", MaxBookings: 1},
			{StartTime: "14:00", EndTime: "15:00", MaxBookings: 1},
			{StartTime: "15:00", EndTime: "16:00", MaxBookings: 1},
			{StartTime: "16:00", EndTime: "17:00", MaxBookings: 1},
		},
		MeetingType: "Google Meet",
		IsActive:    &active,
	}
}

// GetPublic returns the active calendar; none active means the booking
// system is switched off.
func (s *DefaultSettingsService) GetPublic(ctx context.Context) (*models.BookingSetting, error) {
	setting, err := s.Repo.GetActive(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			return nil, ErrBookingSystemInactive
		}
		return nil, unavailable(err)
	}
	return setting, nil
}

// GetAdmin returns the stored calendar whether or not it is active.
func (s *DefaultSettingsService) GetAdmin(ctx context.Context) (*models.BookingSetting, error) {
	setting, err := s.Repo.GetAny(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			return nil, ErrSettingsNotFound
		}
		return nil, unavailable(err)
	}
	return setting, nil
}

// Save creates the calendar, or replaces the existing one in place.
func (s *DefaultSettingsService) Save(ctx context.Context, input models.BookingSettingInput) (*models.BookingSetting, error) {
	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}
	setting := models.BookingSetting{
		AvailableDays: input.AvailableDays,
		TimeSlots:     input.TimeSlots,
		MeetingType:   strings.TrimSpace(input.MeetingType),
		Timezone:      s.Timezone,
		IsActive:      active,
	}
	if err := ValidateSettings(setting); err != nil {
		return nil, err
	}

	now := s.Now().UTC()
	existing, err := s.Repo.GetAny(ctx)
	switch {
	case err == nil:
		setting.ID = existing.ID
		setting.CreatedAt = existing.CreatedAt
		setting.UpdatedAt = now
		if err := s.Repo.Replace(ctx, setting); err != nil {
			return nil, unavailable(err)
		}
	case errors.Is(err, settingsRepo.ErrSettingsNotFound):
		setting.ID = uuid.New().String()
		setting.CreatedAt = now
		setting.UpdatedAt = now
		if err := s.Repo.Create(ctx, setting); err != nil {
			return nil, unavailable(err)
		}
	default:
		return nil, unavailable(err)
	}

	utils.GetLogger().Info("booking settings saved",
		zap.String("settingsID", setting.ID), zap.Bool("active", setting.IsActive))
	return &setting, nil
}

func (s *DefaultSettingsService) Update(ctx context.Context, id string, patch models.BookingSettingUpdate) (*models.BookingSetting, error) {
	setting, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			return nil, ErrSettingsNotFound
		}
		return nil, unavailable(err)
	}

	if patch.AvailableDays != nil {
		setting.AvailableDays = *patch.AvailableDays
	}
	if patch.TimeSlots != nil {
		setting.TimeSlots = *patch.TimeSlots
	}
	if patch.MeetingType != nil {
		setting.MeetingType = strings.TrimSpace(*patch.MeetingType)
	}
	if patch.IsActive != nil {
		setting.IsActive = *patch.IsActive
	}
	if err := ValidateSettings(*setting); err != nil {
		return nil, err
	}
	setting.UpdatedAt = s.Now().UTC()

	if err := s.Repo.Replace(ctx, *setting); err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			return nil, ErrSettingsNotFound
		}
		return nil, unavailable(err)
	}
	return setting, nil
}

func (s *DefaultSettingsService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			return ErrSettingsNotFound
		}
		return unavailable(err)
	}
	return nil
}

// InitDefaults stores DefaultSettings unless a calendar already exists.
// The bool reports whether anything was created.
func (s *DefaultSettingsService) InitDefaults(ctx context.Context) (*models.BookingSetting, bool, error) {
	existing, err := s.Repo.GetAny(ctx)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
		return nil, false, unavailable(err)
	}
	created, err := s.Save(ctx, DefaultSettings())
	if err != nil {
		return nil, false, err
	}
	return created, true, nil
}

var weekdays = map[string]bool{
	"Monday": true, "Tuesday": true, "Wednesday": true, "Thursday": true,
	"Friday": true, "Saturday": true, "Sunday": true,
}

// ValidateSettings checks weekday names, HH:MM windows with start before end,
// capacities of at least one and unique slot labels.
func ValidateSettings(s models.BookingSetting) error {
	verr := newValidationError()

	if len(s.AvailableDays) == 0 {
		verr.add("available_days", "at least one day is required")
	}
	for i, d := range s.AvailableDays {
		if !weekdays[d] {
			verr.add(fmt.Sprintf("available_days[%d]", i), fmt.Sprintf("%q is not a weekday name", d))
		}
	}

	if len(s.TimeSlots) == 0 {
		verr.add("time_slots", "at least one time slot is required")
	}
	labels := map[string]bool{}
	for i, ts := range s.TimeSlots {
		key := fmt.Sprintf("time_slots[%d]", i)
		start, errStart := time.Parse("15:04", ts.StartTime)
		end, errEnd := time.Parse("15:04", ts.EndTime)
		switch {
		case errStart != nil:
			verr.add(key+".start_time", "start_time must be HH:MM")
		case errEnd != nil:
			verr.add(key+".end_time", "end_time must be HH:MM")
		case !start.Before(end):
			verr.add(key, "start_time must be before end_time")
		}
		if ts.MaxBookings < 1 {
			verr.add(key+".max_bookings", "max_bookings must be at least 1")
		}
		if labels[ts.Label()] {
			verr.add(key, fmt.Sprintf("duplicate slot %s", ts.Label()))
		}
		labels[ts.Label()] = true
	}

	if s.MeetingType == "" {
		verr.add("meeting_type", "meeting_type is required")
	}
	return verr.orNil()
}
