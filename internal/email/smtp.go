package email

import (
	"context"
	"fmt"

	gomail "github.com/wneessen/go-mail"
)

// SMTP dispatches mail through an authenticated SMTP submission session
// (STARTTLS required). Used when SendGrid is not configured.
type SMTP struct {
	host     string
	port     int
	username string
	password string
}

func NewSMTP(host string, port int, username, password string) *SMTP {
	return &SMTP{host: host, port: port, username: username, password: password}
}

func (s *SMTP) Name() string { return "smtp" }

func (s *SMTP) Send(ctx context.Context, recipient, subject, body string) Result {
	if s.username == "" || s.password == "" {
		return errorResult("EMAIL_USER and EMAIL_PASSWORD must be set for SMTP")
	}

	msg := gomail.NewMsg()
	if err := msg.From(s.username); err != nil {
		return errorResult(fmt.Sprintf("Failed to send email: invalid sender address: %v", err))
	}
	if err := msg.To(recipient); err != nil {
		return errorResult(fmt.Sprintf("Failed to send email: invalid recipient address: %v", err))
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextHTML, body)

	client, err := gomail.NewClient(s.host,
		gomail.WithPort(s.port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(s.username),
		gomail.WithPassword(s.password),
		gomail.WithTLSPolicy(gomail.TLSMandatory),
	)
	if err != nil {
		return errorResult(fmt.Sprintf("Failed to send email: %v", err))
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return errorResult(fmt.Sprintf("Failed to send email: %v", err))
	}
	return Result{Status: StatusSuccess, Message: "Email sent successfully via SMTP"}
}
