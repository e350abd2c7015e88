package booking

import (
	"time"

	"agencysite/models"
)

// Calendar knows "today" in the booking timezone and the bookable window.
type Calendar struct {
	Location    *time.Location
	HorizonDays int
	Now         func() time.Time
}

// Today is the current date in the booking timezone.
func (c Calendar) Today() time.Time {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	loc := c.Location
	if loc == nil {
		loc = time.UTC
	}
	t := now().In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// FirstBookable is tomorrow; same-day bookings are not taken.
func (c Calendar) FirstBookable() time.Time {
	return c.Today().AddDate(0, 0, 1)
}

// LastBookable is tomorrow plus the horizon, inclusive.
func (c Calendar) LastBookable() time.Time {
	return c.FirstBookable().AddDate(0, 0, c.HorizonDays)
}

// InHorizon reports whether the date may be booked.
func (c Calendar) InHorizon(d time.Time) bool {
	return !d.Before(c.FirstBookable()) && !d.After(c.LastBookable())
}

// ParseDate parses a "YYYY-MM-DD" date in the booking timezone.
func (c Calendar) ParseDate(s string) (time.Time, error) {
	loc := c.Location
	if loc == nil {
		loc = time.UTC
	}
	return time.ParseInLocation(models.DateLayout, s, loc)
}

// TodayString is Today formatted as a booking date.
func (c Calendar) TodayString() string {
	return c.Today().Format(models.DateLayout)
}
