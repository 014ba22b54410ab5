package mail

import (
	"context"
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendGridMailer は repository.Mailer のSendGrid実装。
type SendGridMailer struct {
	apiKey string
}

func NewSendGridMailer(apiKey string) *SendGridMailer {
	return &SendGridMailer{apiKey: apiKey}
}

func (m *SendGridMailer) Send(ctx context.Context, from, to, subject, body string) error {
	if m.apiKey == "" {
		return fmt.Errorf("sendgrid api key is empty")
	}
	if from == "" {
		return fmt.Errorf("from address is empty")
	}
	if to == "" {
		return fmt.Errorf("to address is empty")
	}

	fromEmail := sgmail.NewEmail("Storefront", from)
	toEmail := sgmail.NewEmail("", to)

	// HTMLは最低限の整形だけ
	message := sgmail.NewSingleEmail(fromEmail, subject, toEmail, body, fmt.Sprintf("<pre>%s</pre>", body))

	client := sendgrid.NewSendClient(m.apiKey)
	resp, err := client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sendgrid send error: %w", err)
	}
	if resp.StatusCode >= 400 {
		log.Printf("[sendgrid] error status=%d body=%s", resp.StatusCode, resp.Body)
		return fmt.Errorf("sendgrid send failed: status=%d", resp.StatusCode)
	}

	log.Printf("[sendgrid] mail sent: status=%d to=%s subject=%s", resp.StatusCode, to, subject)
	return nil
}
