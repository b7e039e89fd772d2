package server

import (
	"io"
	"net/http"

	"github.com/jonathan/career-compass/internal/resume"
)

// maxUploadBytes bounds resume uploads.
const maxUploadBytes = 10 << 20

// handleAnalyzeResume extracts text from an uploaded resume and runs
// profile synthesis on it directly, without job discovery.
func (s *Server) handleAnalyzeResume(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "form file 'resume' is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to read upload")
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		// Multipart writers default file parts to octet-stream; sniffing
		// recovers text/plain vs PDF from the bytes themselves.
		contentType = http.DetectContentType(data)
	}

	text, err := resume.ExtractFromBytes(contentType, data)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "could not extract text from document")
		return
	}

	profile, err := s.analyzer.AnalyzeResumeText(r.Context(), text)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.successResponse(w, http.StatusOK, map[string]any{"data": profile})
}
