package email

import (
	"context"
	"fmt"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

const sendGridHost = "https://api.sendgrid.com"

// SendGrid dispatches mail through the SendGrid v3 API.
type SendGrid struct {
	apiKey string
	from   string
	host   string
}

func NewSendGrid(apiKey, from string) *SendGrid {
	return &SendGrid{apiKey: apiKey, from: from, host: sendGridHost}
}

func (s *SendGrid) Name() string { return "sendgrid" }

// SetHost overrides the API host. Used in tests.
func (s *SendGrid) SetHost(host string) {
	s.host = host
}

func (s *SendGrid) Send(ctx context.Context, recipient, subject, body string) Result {
	if s.apiKey == "" {
		return errorResult("SENDGRID_API_KEY not found in environment variables")
	}
	if s.from == "" {
		return errorResult("FROM_EMAIL not found in environment variables")
	}

	message := mail.NewSingleEmail(
		mail.NewEmail("", s.from),
		subject,
		mail.NewEmail("", recipient),
		body,
		body,
	)

	req := sendgrid.GetRequest(s.apiKey, "/v3/mail/send", s.host)
	req.Method = rest.Post
	req.Body = mail.GetRequestBody(message)

	resp, err := rest.SendWithContext(ctx, req)
	if err != nil {
		return errorResult(fmt.Sprintf("Failed to send email: %v", err))
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Result{
			Status:     StatusError,
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("Failed to send email: sendgrid returned %d: %s", resp.StatusCode, resp.Body),
		}
	}
	return Result{
		Status:     StatusSuccess,
		StatusCode: resp.StatusCode,
		Message:    "Email sent successfully",
	}
}
