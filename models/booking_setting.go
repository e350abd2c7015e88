package models

import "time"

// SettingTimeSlot is an admin-configured daily window.
type SettingTimeSlot struct {
	StartTime   string `bson:"start_time" json:"start_time"`     // "HH:MM", 24h
	EndTime     string `bson:"end_time" json:"end_time"`         // "HH:MM", 24h
	MaxBookings int    `bson:"max_bookings" json:"max_bookings"` // capacity, >= 1
}

// Label is the slot identifier bookings refer to, e.g. "10:00-11:00".
func (s SettingTimeSlot) Label() string {
	return s.StartTime + "-" + s.EndTime
}

// BookingSetting is the consultation calendar configuration.
type BookingSetting struct {
	ID            string            `bson:"id" json:"id"`
	AvailableDays []string          `bson:"available_days" json:"available_days"` // "Monday", "Tuesday", ...
	TimeSlots     []SettingTimeSlot `bson:"time_slots" json:"time_slots"`
	MeetingType   string            `bson:"meeting_type" json:"meeting_type"`
	Timezone      string            `bson:"timezone" json:"timezone"`
	IsActive      bool              `bson:"is_active" json:"is_active"`
	CreatedAt     time.Time         `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time         `bson:"updated_at" json:"updated_at"`
}

// SlotDefinitions converts the configured windows into resolver input.
func (s BookingSetting) SlotDefinitions() []TimeSlotDefinition {
	defs := make([]TimeSlotDefinition, 0, len(s.TimeSlots))
	for _, ts := range s.TimeSlots {
		defs = append(defs, TimeSlotDefinition{TimeSlot: ts.Label(), Capacity: ts.MaxBookings})
	}
	return defs
}

// FindSlot returns the definition with the given label.
func (s BookingSetting) FindSlot(label string) (TimeSlotDefinition, bool) {
	for _, ts := range s.TimeSlots {
		if ts.Label() == label {
			return TimeSlotDefinition{TimeSlot: label, Capacity: ts.MaxBookings}, true
		}
	}
	return TimeSlotDefinition{}, false
}

// IsDayAvailable reports whether bookings are taken on the given weekday.
func (s BookingSetting) IsDayAvailable(day time.Weekday) bool {
	for _, d := range s.AvailableDays {
		if d == day.String() {
			return true
		}
	}
	return false
}

// BookingSettingInput creates or replaces the calendar configuration.
type BookingSettingInput struct {
	AvailableDays []string          `json:"available_days" binding:"required"`
	TimeSlots     []SettingTimeSlot `json:"time_slots" binding:"required"`
	MeetingType   string            `json:"meeting_type" binding:"required"`
	IsActive      *bool             `json:"is_active,omitempty"`
}

// BookingSettingUpdate patches individual fields.
type BookingSettingUpdate struct {
	AvailableDays *[]string          `json:"available_days,omitempty"`
	TimeSlots     *[]SettingTimeSlot `json:"time_slots,omitempty"`
	MeetingType   *string            `json:"meeting_type,omitempty"`
	IsActive      *bool              `json:"is_active,omitempty"`
}
