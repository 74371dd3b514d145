package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/hexaview/resume-screener/internal/db"
	"github.com/hexaview/resume-screener/internal/extract"
)

// defaultMaxUploadMB matches the seeded max_file_size_mb setting so fresh and
// unseeded installs accept the same uploads.
const defaultMaxUploadMB = 10

// handleExtractResumeText accepts a multipart upload and returns the plain
// text pulled out of it.
func (s *Server) handleExtractResumeText(w http.ResponseWriter, r *http.Request) {
	maxMB, err := s.db.GetIntSetting(r.Context(), db.SettingMaxFileSizeMB, defaultMaxUploadMB)
	if err != nil || maxMB <= 0 {
		maxMB = defaultMaxUploadMB
	}
	maxBytes := int64(maxMB) << 20

	r.Body = http.MaxBytesReader(w, r.Body, maxBytes+1024)
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("File too large (max %dMB) or invalid form data", maxMB))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "No file provided")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to read file")
		return
	}

	text, err := extract.ResumeText(header.Filename, header.Header.Get("Content-Type"), data)
	if err != nil {
		switch {
		case errors.Is(err, extract.ErrUnsupportedType):
			s.errorResponse(w, http.StatusBadRequest, "Unsupported file type. Please upload a PDF, DOCX, or TXT file.")
		case errors.Is(err, extract.ErrInsufficientText):
			s.errorResponse(w, http.StatusBadRequest, "Could not extract sufficient text from the file. Please ensure the file contains readable text.")
		default:
			s.errorResponse(w, http.StatusInternalServerError, "Failed to extract text from file")
		}
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"success": true,
		"text":    text,
		"length":  len(text),
	})
}
