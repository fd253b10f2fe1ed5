package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"resume-chat/internal/resume"
)

const defaultConversationID = "default"

// ChatHandler chats with the AI about the uploaded résumé
// @Summary Chat about the resume
// @Description Send a message to the AI assistant; an email directive in the reply is dispatched and its result embedded
// @Tags chat
// @Accept json
// @Produce json
// @Param request body api.ChatRequest true "Chat message"
// @Success 200 {object} api.ChatResponse
// @Failure 400 {object} api.ErrorResponse
// @Router /chat [post]
func (a *API) ChatHandler(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		a.respondError(w, http.StatusBadRequest, "message is required")
		return
	}

	context, loaded := a.store.Get()
	if !loaded {
		context = resume.FormatContext(resume.SampleRecord())
	}

	reply := a.generator.Generate(r.Context(), req.Message, buildSystemPrompt(context))

	var functionCall *FunctionCallResult
	if reply.Email != nil {
		result := a.dispatcher.Send(r.Context(), reply.Email.Recipient, reply.Email.Subject, reply.Email.Body)
		a.logger.Info("email directive dispatched",
			zap.String("dispatcher", a.dispatcher.Name()),
			zap.String("status", result.Status))
		functionCall = &FunctionCallResult{
			Function: "send_email",
			Result:   result,
			Args:     reply.Email,
		}
	}

	conversationID := req.ConversationID
	if conversationID == "" {
		conversationID = defaultConversationID
	}

	a.respondJSON(w, http.StatusOK, ChatResponse{
		Response:       reply.Text,
		ConversationID: conversationID,
		FunctionCall:   functionCall,
	})
}

func buildSystemPrompt(resumeContext string) string {
	return fmt.Sprintf(`You are an AI assistant that helps people discuss their CV/resume.
You have access to the following resume information:

%s

You can also send emails when requested. Use the send_email function when the user asks you to send an email.
Be helpful, professional, and knowledgeable about career-related topics.`, resumeContext)
}
