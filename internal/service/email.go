package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"volunteer-portal-backend/internal/domain"
	"volunteer-portal-backend/internal/logger"
	"volunteer-portal-backend/internal/onboarding"
)

const emailServiceName = "sendgrid"

type mailSender interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

type emailService struct {
	sender    mailSender
	fromEmail string
	fromName  string
	portalURL string
}

func NewEmailService(apiKey, fromEmail, fromName, portalURL string) EmailService {
	return newEmailService(sendgrid.NewSendClient(apiKey), fromEmail, fromName, portalURL)
}

func newEmailService(sender mailSender, fromEmail, fromName, portalURL string) *emailService {
	return &emailService{
		sender:    sender,
		fromEmail: fromEmail,
		fromName:  fromName,
		portalURL: portalURL,
	}
}

func (s *emailService) SendOnboardingReminder(ctx context.Context, email, name string, pending []domain.Step) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\n\nThanks for volunteering! A few onboarding steps are still waiting on you:\n\n", name)
	for _, step := range pending {
		fmt.Fprintf(&b, "  - %s", step.Title)
		if step.Link != "" {
			fmt.Fprintf(&b, ": %s", step.Link)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "\nYou can see your full progress at %s\n\nThe Volunteer Team", s.portalURL)

	return s.send(ctx, "SendOnboardingReminder", email, name, "Your volunteer onboarding", b.String())
}

func (s *emailService) SendExpirationNotice(ctx context.Context, email, name string, expiring []onboarding.ExpiringCertification) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\n\nThe following certifications are about to expire:\n\n", name)
	for _, c := range expiring {
		fmt.Fprintf(&b, "  - %s (expires %s)\n", c.Title, c.ExpiresOn.Format("January 2, 2006"))
	}
	fmt.Fprintf(&b, "\nPlease renew them to keep serving. Details are at %s\n\nThe Volunteer Team", s.portalURL)

	return s.send(ctx, "SendExpirationNotice", email, name, "Volunteer certifications expiring soon", b.String())
}

func (s *emailService) send(ctx context.Context, operation, to, toName, subject, plainText string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmailPlainText(from, subject, recipient, plainText)

	logger.ExternalServiceCall(emailServiceName, operation, "to", to)
	response, err := s.sender.SendWithContext(ctx, message)
	if err == nil && response.StatusCode >= 400 {
		err = fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	logger.ExternalServiceResult(emailServiceName, operation, err, "to", to)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
