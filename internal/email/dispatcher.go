// Package email sends outbound mail through SendGrid or SMTP. Failures are
// reported as Result values, never as panics or errors crossing the HTTP
// boundary.
package email

import "context"

// Result is the outcome of a single dispatch attempt. StatusCode is the
// provider's HTTP status when one was received.
type Result struct {
	Status     string `json:"status"`
	StatusCode int    `json:"status_code,omitempty"`
	Message    string `json:"message"`
}

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Dispatcher sends a single email synchronously. One attempt, no retries,
// no queuing.
type Dispatcher interface {
	Name() string
	Send(ctx context.Context, recipient, subject, body string) Result
}

func errorResult(message string) Result {
	return Result{Status: StatusError, Message: message}
}

// Unconfigured is the dispatcher used when no email credentials are set.
// Every send fails with a credential error.
type Unconfigured struct{}

func (Unconfigured) Name() string { return "none" }

func (Unconfigured) Send(context.Context, string, string, string) Result {
	return errorResult("email sender not configured: set SENDGRID_API_KEY and FROM_EMAIL, or EMAIL_USER and EMAIL_PASSWORD")
}
