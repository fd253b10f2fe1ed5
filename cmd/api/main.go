package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "resume-chat/docs" // Swagger docs
	"resume-chat/internal/api"
	"resume-chat/internal/config"
	"resume-chat/internal/email"
	"resume-chat/internal/llm"
	"resume-chat/internal/resume"
)

// @title Resume Chat & Email API
// @version 1.0
// @description AI-powered chat about an uploaded resume with email notification capabilities
// @BasePath /

func main() {
	cfg := config.Load()

	logger, err := newLogger(cfg.Debug)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx := context.Background()

	provider := selectProvider(ctx, cfg, logger)
	if closer, ok := provider.(interface{ Close() error }); ok {
		defer closer.Close()
	}
	generator := llm.NewGenerator(provider, logger)
	dispatcher := selectDispatcher(cfg, logger)
	parser := resume.NewParser(cfg.UploadsDir)

	apiSrv := api.NewAPI(cfg, parser, generator, dispatcher, logger)
	router := api.NewRouter(apiSrv)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  30 * time.Second,  // file uploads
		WriteTimeout: 150 * time.Second, // AI provider call + buffer
		IdleTimeout:  120 * time.Second,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("server shutdown", zap.Error(err))
		}
		close(idleConnsClosed)
	}()

	logger.Info("API server listening",
		zap.String("port", cfg.Port),
		zap.String("ai_provider", provider.Name()),
		zap.String("email_dispatcher", dispatcher.Name()))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server failed", zap.Error(err))
	}

	<-idleConnsClosed
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// selectProvider picks the AI provider from configuration. A missing or
// unusable credential degrades to the offline fallback instead of failing
// startup.
func selectProvider(ctx context.Context, cfg *config.Config, logger *zap.Logger) llm.Provider {
	switch cfg.AIProvider {
	case "gemini":
		if cfg.GeminiAPIKey == "" {
			logger.Warn("GEMINI_API_KEY not set, using fallback provider")
			return llm.NewFallback()
		}
		gemini, err := llm.NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logger.Warn("gemini client init failed, using fallback provider", zap.Error(err))
			return llm.NewFallback()
		}
		return gemini
	case "openai":
		if cfg.OpenAIAPIKey == "" {
			logger.Warn("OPENAI_API_KEY not set, using fallback provider")
			return llm.NewFallback()
		}
		return llm.NewOpenAI(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	default:
		logger.Warn("unknown AI_PROVIDER, using fallback provider", zap.String("provider", cfg.AIProvider))
		return llm.NewFallback()
	}
}

// selectDispatcher prefers the SendGrid API and falls back to SMTP when only
// SMTP credentials are present.
func selectDispatcher(cfg *config.Config, logger *zap.Logger) email.Dispatcher {
	if cfg.SendGridAPIKey != "" {
		return email.NewSendGrid(cfg.SendGridAPIKey, cfg.FromEmail)
	}
	if cfg.EmailUser != "" && cfg.EmailPassword != "" {
		return email.NewSMTP(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailUser, cfg.EmailPassword)
	}
	logger.Warn("no email credentials configured, email dispatch disabled")
	return email.Unconfigured{}
}
