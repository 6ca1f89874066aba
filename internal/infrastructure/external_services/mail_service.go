package external_services

import (
	"context"
	"crypto/tls"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/mikiasgoitom/newsdesk/internal/domain/contract"
)

// smtp attribute
type EmailService struct {
	Host        string
	Port        int
	Username    string
	AppPassword string
	From        string
	dialer      sender
}

// sender is satisfied by *gomail.Dialer.
type sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// EmailService factory
func NewEmailService(host string, port int, username, appPassword, from string) *EmailService {
	d := gomail.NewDialer(host, port, username, appPassword)
	d.TLSConfig = &tls.Config{ServerName: host}
	return &EmailService{
		Host:        host,
		Port:        port,
		Username:    username,
		AppPassword: appPassword,
		From:        from,
		dialer:      d,
	}
}

// make sure EmailService implements contract.IEmailService.go
var _ contract.IEmailService = (*EmailService)(nil)

// SendEmail delivers an html message. gomail has no context support, so ctx is only
// checked before dialing.
func (es *EmailService) SendEmail(ctx context.Context, to, subject, htmlBody string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if es.Host == "" {
		return fmt.Errorf("smtp host is not configured")
	}
	m := gomail.NewMessage()
	m.SetHeader("From", es.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	if err := es.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email via SMTP: %w", err)
	}
	return nil
}
