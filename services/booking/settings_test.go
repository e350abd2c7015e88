package booking

import (
	"testing"

	"agencysite/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSettings(t *testing.T) {
	t.Parallel()

	t.Run("defaults are valid", func(t *testing.T) {
		in := DefaultSettings()
		s := models.BookingSetting{AvailableDays: in.AvailableDays, TimeSlots: in.TimeSlots, MeetingType: in.MeetingType}
		assert.NoError(t, ValidateSettings(s))
	})

	t.Run("collects every problem", func(t *testing.T) {
		s := models.BookingSetting{
			AvailableDays: []string{"Monday", "Funday"},
			TimeSlots: []models.SettingTimeSlot{
				{StartTime: "11:00", EndTime: "10:00", MaxBookings: 1},
				{StartTime: "9am", EndTime: "10:00", MaxBookings: 0},
				{StartTime: "12:00", EndTime: "13:00", MaxBookings: 1},
				{StartTime: "12:00", EndTime: "13:00", MaxBookings: 1},
			},
		}
		err := ValidateSettings(s)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "available_days[1]")
		assert.Contains(t, verr.Fields, "time_slots[0]")
		assert.Contains(t, verr.Fields, "time_slots[1].start_time")
		assert.Contains(t, verr.Fields, "time_slots[1].max_bookings")
		assert.Contains(t, verr.Fields, "time_slots[3]")
		assert.Contains(t, verr.Fields, "meeting_type")
	})
}
