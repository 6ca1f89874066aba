package external_services

import (
	"fmt"

	"github.com/matcornic/hermes/v2"

	"github.com/mikiasgoitom/newsdesk/internal/domain/contract"
)

// MailTemplates renders transactional emails with hermes.
type MailTemplates struct {
	h hermes.Hermes
}

func NewMailTemplates(appName, appBaseURL string) *MailTemplates {
	return &MailTemplates{
		h: hermes.Hermes{
			Product: hermes.Product{
				Name:      appName,
				Link:      appBaseURL,
				Copyright: fmt.Sprintf("%s moderation console", appName),
			},
		},
	}
}

var _ contract.IMailTemplates = (*MailTemplates)(nil)

func (t *MailTemplates) PasswordResetOTP(fullName, otp string, expiryMinutes int) (string, error) {
	email := hermes.Email{
		Body: hermes.Body{
			Name: fullName,
			Intros: []string{
				"You have received this email because a password reset request for your " + t.h.Product.Name + " account was received.",
			},
			Dictionary: []hermes.Entry{
				{Key: "One-time code", Value: otp},
			},
			Outros: []string{
				fmt.Sprintf("This code expires in %d minutes.", expiryMinutes),
				"If you did not request a password reset, no further action is required on your part.",
			},
			Signature: "Thanks",
		},
	}
	body, err := t.h.GenerateHTML(email)
	if err != nil {
		return "", fmt.Errorf("failed to render password reset email: %w", err)
	}
	return body, nil
}
