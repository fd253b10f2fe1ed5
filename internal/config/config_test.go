package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "DEBUG", "AI_PROVIDER", "GEMINI_API_KEY", "GEMINI_MODEL",
		"OPENAI_API_KEY", "OPENAI_MODEL", "SENDGRID_API_KEY", "FROM_EMAIL",
		"SMTP_HOST", "SMTP_PORT", "EMAIL_USER", "EMAIL_PASSWORD", "UPLOADS_DIR",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "gemini", cfg.AIProvider)
	assert.Equal(t, "gemini-1.5-flash", cfg.GeminiModel)
	assert.Equal(t, "gpt-3.5-turbo", cfg.OpenAIModel)
	assert.Equal(t, "smtp.gmail.com", cfg.SMTPHost)
	assert.Equal(t, 587, cfg.SMTPPort)
	assert.Equal(t, "./uploads", cfg.UploadsDir)
	assert.False(t, cfg.Debug)
}

func TestLoad_overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("AI_PROVIDER", "openai")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("DEBUG", "true")

	cfg := Load()
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "openai", cfg.AIProvider)
	assert.Equal(t, "sk-test", cfg.OpenAIAPIKey)
	assert.Equal(t, 2525, cfg.SMTPPort)
	assert.True(t, cfg.Debug)
}

func TestLoad_invalidSMTPPort(t *testing.T) {
	t.Setenv("SMTP_PORT", "not-a-number")
	cfg := Load()
	assert.Equal(t, 587, cfg.SMTPPort)
}
