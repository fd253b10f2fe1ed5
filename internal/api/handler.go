package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"resume-chat/internal/config"
	"resume-chat/internal/email"
	"resume-chat/internal/llm"
	"resume-chat/internal/resume"
)

// API holds the handler dependencies: the résumé pipeline, the AI generator,
// the email dispatcher, and the shared context store.
type API struct {
	cfg        *config.Config
	store      *ContextStore
	parser     *resume.Parser
	generator  *llm.Generator
	dispatcher email.Dispatcher
	validate   *validator.Validate
	logger     *zap.Logger
}

func NewAPI(cfg *config.Config, parser *resume.Parser, generator *llm.Generator, dispatcher email.Dispatcher, logger *zap.Logger) *API {
	return &API{
		cfg:        cfg,
		store:      NewContextStore(),
		parser:     parser,
		generator:  generator,
		dispatcher: dispatcher,
		validate:   validator.New(),
		logger:     logger,
	}
}

// RootHandler returns the service banner
// @Summary Service banner
// @Description Service name plus configured-provider flags
// @Tags status
// @Produce json
// @Success 200 {object} api.RootResponse
// @Router / [get]
func (a *API) RootHandler(w http.ResponseWriter, r *http.Request) {
	a.respondJSON(w, http.StatusOK, RootResponse{
		Message:         "Resume Chat & Email API",
		Status:          "running",
		AIProvider:      a.cfg.AIProvider,
		GeminiAvailable: a.cfg.GeminiAPIKey != "",
		OpenAIAvailable: a.cfg.OpenAIAPIKey != "",
	})
}

// HealthHandler reports service health
// @Summary Health check
// @Tags status
// @Produce json
// @Success 200 {object} api.HealthResponse
// @Router /health [get]
func (a *API) HealthHandler(w http.ResponseWriter, r *http.Request) {
	a.respondJSON(w, http.StatusOK, HealthResponse{
		Status:       "healthy",
		ResumeLoaded: a.store.Loaded(),
		AIProvider:   a.cfg.AIProvider,
		AIConfigured: a.generator.Configured(),
	})
}

func (a *API) respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		a.logger.Error("encode response failed", zap.Error(err))
	}
}

func (a *API) respondError(w http.ResponseWriter, status int, detail string) {
	a.respondJSON(w, status, ErrorResponse{Detail: detail})
}
