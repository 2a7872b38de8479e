package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/abdullah-masud/Doctors-Portal-Server/internal/config"
)

// Sender delivers transactional mail. Callers treat delivery as best-effort;
// errors are logged by the caller and never propagated to the request.
type Sender interface {
	SendBookingConfirmation(to, patientName, treatment, date, slot string) error
}

type smtpSender struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPSender(cfg config.SMTPConfig) Sender {
	return &smtpSender{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

func (s *smtpSender) SendBookingConfirmation(to, patientName, treatment, date, slot string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Your appointment for %s on %s is confirmed", treatment, date))
	m.SetBody("text/html", fmt.Sprintf(
		`<p>Hello %s,</p>
<p>Your appointment for <b>%s</b> is confirmed for <b>%s</b> at <b>%s</b>.</p>
<p>Doctors Portal</p>`,
		patientName, treatment, date, slot,
	))

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send booking confirmation: %w", err)
	}

	return nil
}
