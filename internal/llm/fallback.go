package llm

import (
	"context"
	"strings"
)

// configGuidance is returned when no keyword matches and no AI provider is
// configured.
const configGuidance = `AI Provider Configuration Needed

To get AI-powered responses, please:
1. For Gemini (free): get a key from https://makersuite.google.com/app/apikey
2. For OpenAI: add billing at https://platform.openai.com/account/billing
3. Add your API key to the .env file (GEMINI_API_KEY or OPENAI_API_KEY)

Currently showing basic resume information only.`

// Fallback is the offline demo provider used when no AI provider is
// configured. Replies are deterministic: keyword-triggered canned answers,
// or configuration guidance.
type Fallback struct{}

func NewFallback() *Fallback { return &Fallback{} }

func (f *Fallback) Name() string     { return "fallback" }
func (f *Fallback) Configured() bool { return false }

func (f *Fallback) GenerateReply(_ context.Context, message, _ string) (*Reply, error) {
	lower := strings.ToLower(message)
	switch {
	case containsAnyWord(lower, "experience", "work", "job"):
		return &Reply{Text: "I can see your work experience in the uploaded resume. For detailed AI analysis, please configure an AI provider (Gemini or OpenAI) in your environment variables."}, nil
	case containsAnyWord(lower, "skills", "technical"):
		return &Reply{Text: "Your technical skills are listed in your resume. For AI-powered insights, please set up an AI provider."}, nil
	case containsAnyWord(lower, "education", "degree"):
		return &Reply{Text: "Your education information is available in your resume. AI analysis requires an API key."}, nil
	default:
		return &Reply{Text: configGuidance}, nil
	}
}

func containsAnyWord(s string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
