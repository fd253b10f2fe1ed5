package api

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// SendEmailHandler sends an email directly
// @Summary Send an email
// @Description Send an email through the configured dispatcher; dispatch failures are reported inside result
// @Tags email
// @Accept json
// @Produce json
// @Param request body api.EmailRequest true "Email to send"
// @Success 200 {object} api.EmailResponse
// @Failure 400 {object} api.ErrorResponse
// @Router /send-email [post]
func (a *API) SendEmailHandler(w http.ResponseWriter, r *http.Request) {
	var req EmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		a.respondError(w, http.StatusBadRequest, "recipient, subject and body are required")
		return
	}

	result := a.dispatcher.Send(r.Context(), req.Recipient, req.Subject, req.Body)
	a.logger.Info("email dispatched",
		zap.String("dispatcher", a.dispatcher.Name()),
		zap.String("status", result.Status))

	a.respondJSON(w, http.StatusOK, EmailResponse{
		Message: "Email sent successfully",
		Result:  result,
	})
}
