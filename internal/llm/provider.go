// Package llm provides AI text generation behind a single Provider
// interface, with Gemini, OpenAI, and an offline fallback implementation.
package llm

import "context"

// EmailDirective is a structured instruction, inferred from the provider's
// function-call output, to send an email. The provider only surfaces it;
// execution is the orchestrator's job.
type EmailDirective struct {
	Recipient string `json:"recipient"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
}

// Reply is a single generated response. Email is non-nil when the provider
// signalled a send_email function call.
type Reply struct {
	Text  string
	Email *EmailDirective
}

// Provider generates a reply for a user message given a system prompt.
// Implementations are selected once at configuration time.
type Provider interface {
	// Name identifies the provider in logs and diagnostics.
	Name() string
	// Configured reports whether the provider can actually reach an AI
	// service (the fallback provider reports false).
	Configured() bool
	GenerateReply(ctx context.Context, message, systemPrompt string) (*Reply, error)
}

// Generation policy shared by the real providers.
const (
	generationTemperature = 0.7
	generationMaxTokens   = 1000
)

// sendEmailFunctionName is the function-calling tool name both real
// providers expose to the model.
const sendEmailFunctionName = "send_email"
