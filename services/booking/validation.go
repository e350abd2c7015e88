package booking

import (
	"strings"
	"unicode/utf8"

	"agencysite/models"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

const (
	minNameLen    = 2
	maxNameLen    = 100
	minPhoneLen   = 10
	maxPhoneLen   = 20
	maxMessageLen = 500
)

// normalizeRequest trims the free-text fields.
func normalizeRequest(req models.BookingRequest) models.BookingRequest {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	req.PreferredDate = strings.TrimSpace(req.PreferredDate)
	req.PreferredTimeSlot = strings.TrimSpace(req.PreferredTimeSlot)
	req.Message = strings.TrimSpace(req.Message)
	return req
}

// validateFields checks everything that does not need the settings or the
// store. Every failing field is reported.
func (s *DefaultBookingService) validateFields(req models.BookingRequest, verr *ValidationError) {
	switch n := utf8.RuneCountInString(req.Name); {
	case n == 0:
		verr.add("name", "name is required")
	case n < minNameLen:
		verr.add("name", "name must be at least 2 characters")
	case n > maxNameLen:
		verr.add("name", "name must be at most 100 characters")
	}

	if req.Email == "" {
		verr.add("email", "email is required")
	} else if err := validate.Var(req.Email, "email"); err != nil {
		verr.add("email", "email must be a valid address")
	}

	switch n := utf8.RuneCountInString(req.Phone); {
	case n == 0:
		verr.add("phone", "phone is required")
	case n < minPhoneLen:
		verr.add("phone", "phone must be at least 10 characters")
	case n > maxPhoneLen:
		verr.add("phone", "phone must be at most 20 characters")
	}

	if utf8.RuneCountInString(req.Message) > maxMessageLen {
		verr.add("message", "message must be at most 500 characters")
	}

	if req.PreferredDate == "" {
		verr.add("preferred_date", "preferred date is required")
	} else if d, err := s.Calendar.ParseDate(req.PreferredDate); err != nil {
		verr.add("preferred_date", "preferred date must be YYYY-MM-DD")
	} else if !s.Calendar.InHorizon(d) {
		verr.add("preferred_date", "preferred date must be between tomorrow and the booking horizon")
	}

	if req.PreferredTimeSlot == "" {
		verr.add("preferred_time_slot", "preferred time slot is required")
	}
}
