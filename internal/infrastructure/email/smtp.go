package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"devicedesk/internal/shared/config"
)

// SMTPEmailService delivers notification emails over SMTP.
type SMTPEmailService struct {
	cfg    config.EmailConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(cfg config.EmailConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)

	return &SMTPEmailService{
		cfg:    cfg,
		dialer: dialer,
	}
}

// Send dials the SMTP server and delivers one HTML message. The dial and
// send run off the calling goroutine so context cancellation is honored;
// an abandoned send finishes or fails on its own.
func (s *SMTPEmailService) Send(ctx context.Context, to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	from := s.cfg.FromAddress
	if s.cfg.FromName != "" {
		from = m.FormatAddress(s.cfg.FromAddress, s.cfg.FromName)
	}
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	done := make(chan error, 1)
	go func() {
		done <- s.dialer.DialAndSend(m)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("failed to send email: %w", err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("email send aborted: %w", ctx.Err())
	}
}
