// Package mail sends transactional email over SMTP.
package mail

import (
	"fmt"
	"log/slog"
	"net/smtp"

	"github.com/jordan-wright/email"

	"blog_backend/internal/config"
)

// Sender handles sending emails via SMTP.
type Sender struct {
	host     string
	port     string
	username string
	password string
	from     string
}

// NewSender creates a new email sender from the application configuration.
func NewSender(cfg *config.Config) *Sender {
	return &Sender{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		username: cfg.SMTPUsername,
		password: cfg.SMTPPassword,
		from:     cfg.SenderEmail,
	}
}

// Send delivers a single HTML email. A delivery failure is returned to the
// caller; the service treats it as a request error rather than retrying.
func (s *Sender) Send(to, subject, htmlBody string) error {
	e := email.NewEmail()
	e.From = s.from
	e.To = []string{to}
	e.Subject = subject
	e.HTML = []byte(htmlBody)

	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	if err := e.Send(addr, auth); err != nil {
		slog.Error("failed to send email", "to", to, "subject", subject, "error", err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	slog.Info("email sent", "to", to, "subject", subject)
	return nil
}
