package notification

import (
	"context"
	"fmt"
	"strings"

	"agencysite/models"
	"agencysite/utils"

	"go.uber.org/zap"
)

// NotificationService tells the agency about new consultation requests.
type NotificationService interface {
	NotifyNewBooking(ctx context.Context, p models.BookingNotificationPayload) error
}

// Mailer sends a plain-text e-mail.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// DefaultNotificationService e-mails the admin inbox.
type DefaultNotificationService struct {
	mailer  Mailer
	adminTo string
}

// NewDefaultNotificationService returns a service that silently skips
// sending when either the mailer or the recipient is missing.
func NewDefaultNotificationService(mailer Mailer, adminTo string) *DefaultNotificationService {
	return &DefaultNotificationService{mailer: mailer, adminTo: adminTo}
}

func (s *DefaultNotificationService) NotifyNewBooking(ctx context.Context, p models.BookingNotificationPayload) error {
	if s.mailer == nil || s.adminTo == "" {
		utils.GetLogger().Debug("booking notification skipped, mail not configured",
			zap.String("bookingID", p.BookingID))
		return nil
	}
	subject, body := BookingEmail(p)
	if err := s.mailer.Send(ctx, s.adminTo, subject, body); err != nil {
		return fmt.Errorf("NotifyNewBooking: failed to send e-mail for %s: %w", p.BookingID, err)
	}
	utils.GetLogger().Info("booking notification sent", zap.String("bookingID", p.BookingID))
	return nil
}

// BookingEmail renders the admin e-mail for a new booking.
func BookingEmail(p models.BookingNotificationPayload) (subject, body string) {
	subject = fmt.Sprintf("New consultation booking: %s on %s", p.Name, p.PreferredDate)

	var b strings.Builder
	b.WriteString("A new consultation has been requested.\n\n")
	fmt.Fprintf(&b, "Name:         %s\n", p.Name)
	fmt.Fprintf(&b, "Email:        %s\n", p.Email)
	fmt.Fprintf(&b, "Phone:        %s\n", p.Phone)
	fmt.Fprintf(&b, "Date:         %s\n", p.PreferredDate)
	fmt.Fprintf(&b, "Time slot:    %s\n", p.PreferredTimeSlot)
	fmt.Fprintf(&b, "Meeting type: %s\n", p.MeetingType)
	if p.Message != "" {
		fmt.Fprintf(&b, "\nMessage:\n%s\n", p.Message)
	}
	fmt.Fprintf(&b, "\nBooking ID: %s\n", p.BookingID)
	return subject, b.String()
}
