package models

import "time"

// Booking statuses.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// DateLayout is the wire and storage format of booking dates.
const DateLayout = "2006-01-02"

// Booking is a consultation request for a (date, time slot) pair.
type Booking struct {
	ID                string     `bson:"id" json:"id"`                                         // UUID
	Name              string     `bson:"name" json:"name"`
	Email             string     `bson:"email" json:"email"`
	Phone             string     `bson:"phone" json:"phone"`
	PreferredDate     string     `bson:"preferred_date" json:"preferred_date"`                 // "YYYY-MM-DD"
	PreferredTimeSlot string     `bson:"preferred_time_slot" json:"preferred_time_slot"`       // "HH:MM-HH:MM"
	Message           string     `bson:"message,omitempty" json:"message,omitempty"`
	Status            string     `bson:"status" json:"status"`                                 // pending, confirmed, cancelled
	MeetingType       string     `bson:"meeting_type" json:"meeting_type"`                     // e.g. "Google Meet"
	MeetingLink       string     `bson:"meeting_link,omitempty" json:"meeting_link,omitempty"`
	AdminNotes        string     `bson:"admin_notes,omitempty" json:"admin_notes,omitempty"`
	CreatedAt         time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt         time.Time  `bson:"updated_at" json:"updated_at"`
	ConfirmedAt       *time.Time `bson:"confirmed_at,omitempty" json:"confirmed_at,omitempty"`
	CancelledAt       *time.Time `bson:"cancelled_at,omitempty" json:"cancelled_at,omitempty"`
}

// BookingRequest is the public booking form payload.
type BookingRequest struct {
	Name              string `json:"name"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	PreferredDate     string `json:"preferred_date"`
	PreferredTimeSlot string `json:"preferred_time_slot"`
	Message           string `json:"message,omitempty"`
}

// BookingUpdate is the admin patch for an existing booking.
type BookingUpdate struct {
	Status      *string `json:"status,omitempty"`
	MeetingLink *string `json:"meeting_link,omitempty"`
	AdminNotes  *string `json:"admin_notes,omitempty"`
}

// BookingFilter narrows admin booking listings; empty fields match everything.
type BookingFilter struct {
	Status string
	Date   string
}

// BookingStats summarises bookings for the admin dashboard.
type BookingStats struct {
	Total     int64 `json:"total"`
	Pending   int64 `json:"pending"`
	Confirmed int64 `json:"confirmed"`
	Cancelled int64 `json:"cancelled"`
	Upcoming  int64 `json:"upcoming"`
}

// TimeSlotDefinition is a bookable daily slot and how many bookings it takes.
type TimeSlotDefinition struct {
	TimeSlot string `json:"time_slot"`
	Capacity int    `json:"capacity"`
}

// SlotAvailability is the derived occupancy of one slot on one date.
type SlotAvailability struct {
	Date           string `json:"date"`
	TimeSlot       string `json:"time_slot"`
	Capacity       int    `json:"capacity"`
	BookedCount    int    `json:"booked_count"`
	IsAvailable    bool   `json:"is_available"`
	AvailableSpots int    `json:"available_spots"`
}

// AvailabilityCheck answers "can I still book this slot?".
type AvailabilityCheck struct {
	Available      bool   `json:"available"`
	AvailableSpots int    `json:"available_spots"`
	MaxBookings    int    `json:"max_bookings,omitempty"`
	MeetingType    string `json:"meeting_type,omitempty"`
	Reason         string `json:"reason,omitempty"`
}

// BookingNotificationPayload is queued for the admin e-mail worker.
type BookingNotificationPayload struct {
	BookingID         string `json:"bookingId"`
	Name              string `json:"name"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	PreferredDate     string `json:"preferredDate"`
	PreferredTimeSlot string `json:"preferredTimeSlot"`
	MeetingType       string `json:"meetingType"`
	Message           string `json:"message,omitempty"`
}
