package mailer

import (
	"context"
	"fmt"
	"net/http"

	sendgrid "github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type sendGridDispatcher struct {
	client    *sendgrid.Client
	fromName  string
	fromEmail string
}

func NewSendGridDispatcher(apiKey string, fromName string, fromEmail string) Dispatcher {
	return &sendGridDispatcher{
		client:    sendgrid.NewSendClient(apiKey),
		fromName:  fromName,
		fromEmail: fromEmail,
	}
}

func (d *sendGridDispatcher) Send(ctx context.Context, to []string, subject string, body string) error {
	m := mail.NewV3Mail()
	m.SetFrom(mail.NewEmail(d.fromName, d.fromEmail))
	m.Subject = subject
	m.AddContent(mail.NewContent("text/plain", body))

	personalization := mail.NewPersonalization()
	for _, rcpt := range to {
		personalization.AddTos(mail.NewEmail("", rcpt))
	}
	m.AddPersonalizations(personalization)

	response, err := d.client.SendWithContext(ctx, m)
	if err != nil {
		return err
	}

	if response.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("mail send rejected with status %d - %s", response.StatusCode, response.Body)
	}
	return nil
}
