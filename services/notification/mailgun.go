package notification

import (
	"context"
	"time"

	"github.com/mailgun/mailgun-go/v4"
)

type mailgunMailer struct {
	mg   *mailgun.MailgunImpl
	from string
}

// NewMailgunMailer returns nil when the domain or key is unset, which
// disables notifications.
func NewMailgunMailer(domain, apiKey, from string) Mailer {
	if domain == "" || apiKey == "" {
		return nil
	}
	if from == "" {
		from = "Agency Bookings <bookings@" + domain + ">"
	}
	return &mailgunMailer{mg: mailgun.NewMailgun(domain, apiKey), from: from}
}

func (m *mailgunMailer) Send(ctx context.Context, to, subject, body string) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	msg := m.mg.NewMessage(m.from, subject, body, to)
	_, _, err := m.mg.Send(ctx, msg)
	return err
}
