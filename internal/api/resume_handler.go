package api

import (
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"resume-chat/internal/resume"
)

// maxUploadBytes bounds multipart parsing memory (10MB).
const maxUploadBytes = 10 << 20

// UploadResumeHandler handles résumé uploads
// @Summary Upload and parse resume
// @Description Upload a resume file (PDF/DOCX), extract fields, and replace the chat context
// @Tags resume
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Resume file (PDF or DOCX)"
// @Success 200 {object} api.UploadResponse
// @Failure 400 {object} api.ErrorResponse
// @Failure 500 {object} api.ErrorResponse
// @Router /upload-resume [post]
func (a *API) UploadResumeHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		a.respondError(w, http.StatusBadRequest, "file too large or invalid (max 10MB)")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		a.respondError(w, http.StatusBadRequest, "no file uploaded")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		a.respondError(w, http.StatusBadRequest, "failed to read uploaded file")
		return
	}

	parsed, err := a.parser.Parse(header.Filename, data)
	if err != nil {
		a.logger.Error("resume parsing failed",
			zap.String("filename", header.Filename),
			zap.Error(err))
		a.respondError(w, http.StatusInternalServerError, fmt.Sprintf("Error processing resume: %v", err))
		return
	}

	a.store.Set(resume.FormatContext(parsed.Extracted))
	a.logger.Info("resume uploaded",
		zap.String("filename", header.Filename),
		zap.Int("lines", parsed.FileInfo.TotalLines),
		zap.Int("skills", len(parsed.Extracted.Skills)))

	a.respondJSON(w, http.StatusOK, UploadResponse{
		Message:    "Resume uploaded and parsed successfully",
		Filename:   header.Filename,
		ParsedData: parsed,
	})
}
