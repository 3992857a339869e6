package services

import (
	"context"
	"fmt"
	"html"
	"log"

	"github.com/resend/resend-go/v2"
)

type Mailer interface {
	SendWelcome(ctx context.Context, to, username string) error
}

type ResendMailer struct {
	client *resend.Client
	from   string
}

// NewResendMailer returns a mailer that only logs when apiKey is empty.
func NewResendMailer(apiKey, from string) *ResendMailer {
	m := &ResendMailer{from: from}
	if apiKey != "" {
		m.client = resend.NewClient(apiKey)
	}
	return m
}

func (m *ResendMailer) SendWelcome(ctx context.Context, to, username string) error {
	if m.client == nil {
		log.Printf("RESEND_API_KEY not set, skipping welcome email to %s", to)
		return nil
	}

	params := &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{to},
		Subject: "Welcome to CU-FIT",
		Html: fmt.Sprintf(`
			<div style="font-family: sans-serif; max-width: 480px; margin: 0 auto; padding: 24px;">
				<h2 style="color: #16a34a;">Welcome to CU-FIT, %s!</h2>
				<p>Your account is ready. Log in to pick your goals and get a meal plan and workout built around you.</p>
			</div>
		`, html.EscapeString(username)),
	}

	sent, err := m.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("failed to send welcome email: %w", err)
	}
	log.Printf("Welcome email sent (ID: %s)", sent.Id)
	return nil
}
