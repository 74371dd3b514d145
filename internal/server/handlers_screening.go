package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/hexaview/resume-screener/internal/db"
	"github.com/hexaview/resume-screener/internal/screening"
)

// handleScreeningQuestions returns the question bank without answer keys,
// along with the test duration from settings.
func (s *Server) handleScreeningQuestions(w http.ResponseWriter, r *http.Request) {
	duration := screening.TestDurationSeconds
	if minutes, err := s.db.GetIntSetting(r.Context(), db.SettingTestDuration, 0); err == nil && minutes > 0 {
		duration = minutes * 60
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"success":         true,
		"questions":       screening.Questions(),
		"durationSeconds": duration,
	})
}

type screeningSubmission struct {
	Answers map[string]int `json:"answers" validate:"required"`
}

// handleSubmitScreening grades a candidate's answers and records the final
// verdict on the application.
func (s *Server) handleSubmitScreening(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid application ID")
		return
	}

	var req screeningSubmission
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	app, err := s.db.GetApplication(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load application")
		return
	}
	if app == nil {
		s.errorResponse(w, http.StatusNotFound, "Application not found")
		return
	}
	if app.Status == db.StatusCompleted || app.Status == db.StatusQualified {
		s.errorResponse(w, http.StatusConflict, "Screening already submitted")
		return
	}

	// JSON object keys are strings even when they carry question IDs.
	answers := make(map[int]int, len(req.Answers))
	for key, selected := range req.Answers {
		questionID, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		answers[questionID] = selected
	}

	screeningScore := screening.Grade(answers)
	finalScore := app.ResumeScore + screeningScore

	finalThreshold, err := s.db.GetIntSetting(r.Context(), db.SettingFinalThreshold, 140)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load settings")
		return
	}

	status := db.StatusRejected
	if finalScore >= finalThreshold {
		status = db.StatusQualified
	}

	updated, err := s.db.RecordScreeningResult(r.Context(), id, screeningScore, status)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to record screening result")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"success":        true,
		"screeningScore": screeningScore,
		"resumeScore":    app.ResumeScore,
		"finalScore":     finalScore,
		"threshold":      finalThreshold,
		"qualified":      status == db.StatusQualified,
		"application":    updated,
	})
}
