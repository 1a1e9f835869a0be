package mailer

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"github.com/dmarquina/eventbooking/internal/domain/model"
)

// Sender delivers outbox messages. Implementations must be safe for
// concurrent use by the dispatcher workers.
type Sender interface {
	Send(msg model.EmailMessage) error
}

// SMTPSender sends outbox messages through an SMTP relay via gomail.
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPSender constructs SMTPSender.
func NewSMTPSender(host string, port int, username, password, from string) *SMTPSender {
	return &SMTPSender{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

func (s *SMTPSender) Send(msg model.EmailMessage) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", msg.ToEmail)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send mail to %s: %w", msg.ToEmail, err)
	}
	return nil
}
