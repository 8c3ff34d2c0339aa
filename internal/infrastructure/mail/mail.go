package mail

import (
	"fmt"
	"time"

	"gopkg.in/gomail.v2"
)

// Sender delivers verification emails
type Sender interface {
	SendRegistrationCode(email, name, code string, ttl time.Duration) error
	SendClaimCode(email, claimantName, facilityName, code string, ttl time.Duration) error
}

type smtpSender struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPSender creates a Sender backed by an SMTP server
func NewSMTPSender(host string, port int, username, password, from string) Sender {
	return &smtpSender{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

// indirection for tests
var dialAndSend = func(d *gomail.Dialer, m *gomail.Message) error {
	return d.DialAndSend(m)
}

// formatTTL renders a code lifetime in Dutch for the mail body
func formatTTL(ttl time.Duration) string {
	if ttl >= time.Hour && ttl%time.Hour == 0 {
		return fmt.Sprintf("%d uur", int(ttl.Hours()))
	}
	return fmt.Sprintf("%d minuten", int(ttl.Minutes()))
}

func (s *smtpSender) SendRegistrationCode(email, name, code string, ttl time.Duration) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Bevestig je e-mailadres")

	body := fmt.Sprintf(`
		<h2>Welkom %s,</h2>
		<p>Gebruik onderstaande code om je e-mailadres te bevestigen:</p>
		<p><strong style="font-size:24px;letter-spacing:4px;">%s</strong></p>
		<p>De code is %s geldig. Heb je geen account aangevraagd, dan kun je deze e-mail negeren.</p>
	`, name, code, formatTTL(ttl))
	m.SetBody("text/html", body)

	if err := dialAndSend(s.dialer, m); err != nil {
		return fmt.Errorf("failed to send registration email: %w", err)
	}
	return nil
}

func (s *smtpSender) SendClaimCode(email, claimantName, facilityName, code string, ttl time.Duration) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", fmt.Sprintf("Verificatiecode voor %s", facilityName))

	body := fmt.Sprintf(`
		<h3>Beste %s,</h3>
		<p>Er is een claim ingediend voor <strong>%s</strong>.</p>
		<p>Gebruik onderstaande code om aan te tonen dat je toegang hebt tot dit e-mailadres:</p>
		<p><strong style="font-size:24px;letter-spacing:4px;">%s</strong></p>
		<p>De code is %s geldig. Heb je deze claim niet ingediend, neem dan contact met ons op.</p>
	`, claimantName, facilityName, code, formatTTL(ttl))
	m.SetBody("text/html", body)

	if err := dialAndSend(s.dialer, m); err != nil {
		return fmt.Errorf("failed to send claim verification email: %w", err)
	}
	return nil
}
