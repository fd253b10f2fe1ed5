package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port  string
	Debug bool

	// AI provider configuration
	AIProvider   string // "gemini" or "openai"
	GeminiAPIKey string
	GeminiModel  string
	OpenAIAPIKey string
	OpenAIModel  string

	// Email configuration
	SendGridAPIKey string
	FromEmail      string
	SMTPHost       string
	SMTPPort       int
	EmailUser      string
	EmailPassword  string

	UploadsDir string
}

func Load() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: could not load .env file, using environment variables")
	}

	return &Config{
		Port:  getenv("PORT", "8080"),
		Debug: os.Getenv("DEBUG") == "true",

		AIProvider:   getenv("AI_PROVIDER", "gemini"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  getenv("GEMINI_MODEL", "gemini-1.5-flash"),
		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:  getenv("OPENAI_MODEL", "gpt-3.5-turbo"),

		SendGridAPIKey: os.Getenv("SENDGRID_API_KEY"),
		FromEmail:      os.Getenv("FROM_EMAIL"),
		SMTPHost:       getenv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:       getenvInt("SMTP_PORT", 587),
		EmailUser:      os.Getenv("EMAIL_USER"),
		EmailPassword:  os.Getenv("EMAIL_PASSWORD"),

		UploadsDir: getenv("UPLOADS_DIR", "./uploads"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Warning: invalid %s value %q, using %d", key, v, fallback)
		return fallback
	}
	return n
}
