package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/hexaview/resume-screener/internal/analyzer"
	"github.com/hexaview/resume-screener/internal/db"
)

type candidateData struct {
	Name  string  `json:"name" validate:"required"`
	Email string  `json:"email" validate:"required,email"`
	Phone *string `json:"phone"`
}

type analyzeResumeRequest struct {
	ResumeText    string        `json:"resumeText" validate:"required"`
	JobPositionID int           `json:"jobPositionId" validate:"required,gt=0"`
	CandidateData candidateData `json:"candidateData" validate:"required"`
}

// handleAnalyzeResume scores a resume against a job position, persists the
// application, and reports whether the candidate advances to screening.
func (s *Server) handleAnalyzeResume(w http.ResponseWriter, r *http.Request) {
	var req analyzeResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	position, err := s.db.GetJobPosition(r.Context(), req.JobPositionID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load job position")
		return
	}
	if position == nil {
		s.errorResponse(w, http.StatusNotFound, "Job position not found")
		return
	}

	job := analyzer.Job{
		Title:          position.Title,
		Description:    position.Description,
		SkillsRequired: position.SkillsRequired,
	}
	if position.Requirements != nil {
		job.Requirements = *position.Requirements
	}
	if position.ExperienceRequired != nil {
		job.ExperienceRequired = *position.ExperienceRequired
	}

	aiEnabled, err := s.db.GetBoolSetting(r.Context(), db.SettingAIEnabled, true)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load settings")
		return
	}

	var analysis analyzer.ResumeAnalysis
	if aiEnabled {
		analysis = s.analyzer.AnalyzeResume(r.Context(), req.ResumeText, job)
	} else {
		analysis = analyzer.PerformBasicAnalysis(req.ResumeText, job)
	}
	log.Printf("[ANALYZE] position=%d candidate=%s score=%d", position.ID, req.CandidateData.Email, analysis.Score)

	threshold, err := s.db.GetIntSetting(r.Context(), db.SettingResumeThreshold, 70)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load settings")
		return
	}

	status := db.StatusPending
	if analysis.Score < threshold {
		status = db.StatusRejected
	}

	app := &db.Application{
		CandidateName:  req.CandidateData.Name,
		CandidateEmail: req.CandidateData.Email,
		CandidatePhone: req.CandidateData.Phone,
		JobPositionID:  &position.ID,
		ResumeText:     &req.ResumeText,
		ResumeScore:    analysis.Score,
		Status:         status,
	}

	created, err := s.db.CreateApplication(r.Context(), app, analysis)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save application")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"success": true,
		"application": map[string]any{
			"id":            created.ID,
			"name":          created.CandidateName,
			"email":         created.CandidateEmail,
			"jobPositionId": created.JobPositionID,
			"jobTitle":      position.Title,
			"resumeScore":   created.ResumeScore,
			"analysis":      analysis,
			"threshold":     threshold,
			"qualified":     analysis.Score >= threshold,
			"submittedAt":   created.SubmittedAt,
		},
	})
}

// handleListApplications returns all applications for the admin dashboard.
func (s *Server) handleListApplications(w http.ResponseWriter, r *http.Request) {
	apps, err := s.db.ListApplications(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load applications")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"success": true, "applications": apps})
}

// handleGetApplication returns one application by ID.
func (s *Server) handleGetApplication(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid application ID")
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

	s.jsonResponse(w, http.StatusOK, map[string]any{"success": true, "application": app})
}
