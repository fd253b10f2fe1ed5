package api

import (
	"resume-chat/internal/email"
	"resume-chat/internal/llm"
	"resume-chat/internal/resume"
)

// Request bodies are validated once at the boundary; no downstream call is
// made for an invalid request.

type ChatRequest struct {
	Message        string `json:"message" validate:"required"`
	ConversationID string `json:"conversation_id,omitempty"`
}

type EmailRequest struct {
	Recipient string `json:"recipient" validate:"required"`
	Subject   string `json:"subject" validate:"required"`
	Body      string `json:"body" validate:"required"`
}

type ChatResponse struct {
	Response       string              `json:"response"`
	ConversationID string              `json:"conversation_id"`
	FunctionCall   *FunctionCallResult `json:"function_call"`
}

// FunctionCallResult reports an email send triggered from within a chat.
type FunctionCallResult struct {
	Function string              `json:"function"`
	Result   email.Result        `json:"result"`
	Args     *llm.EmailDirective `json:"args"`
}

type UploadResponse struct {
	Message    string         `json:"message"`
	Filename   string         `json:"filename"`
	ParsedData *resume.Parsed `json:"parsed_data"`
}

type EmailResponse struct {
	Message string       `json:"message"`
	Result  email.Result `json:"result"`
}

type RootResponse struct {
	Message         string `json:"message"`
	Status          string `json:"status"`
	AIProvider      string `json:"ai_provider"`
	GeminiAvailable bool   `json:"gemini_available"`
	OpenAIAvailable bool   `json:"openai_available"`
}

type HealthResponse struct {
	Status       string `json:"status"`
	ResumeLoaded bool   `json:"resume_loaded"`
	AIProvider   string `json:"ai_provider"`
	AIConfigured bool   `json:"ai_configured"`
}

type ErrorResponse struct {
	Detail string `json:"detail"`
}
