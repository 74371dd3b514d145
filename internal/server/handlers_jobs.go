package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/hexaview/resume-screener/internal/db"
)

const jobsCacheKey = "catalog:jobs"

// handleListJobs returns active job positions, optionally filtered by
// ?role_id=. Only the unfiltered listing goes through the catalog cache.
func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	var roleID *int
	if raw := r.URL.Query().Get("role_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid role_id")
			return
		}
		roleID = &id
	}

	if roleID == nil {
		var cached []db.JobPosition
		if s.cache.GetJSON(r.Context(), jobsCacheKey, &cached) {
			s.jsonResponse(w, http.StatusOK, map[string]any{"success": true, "jobs": cached})
			return
		}
	}

	jobs, err := s.db.ListJobPositions(r.Context(), roleID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load job positions")
		return
	}

	if roleID == nil {
		s.cache.SetJSON(r.Context(), jobsCacheKey, jobs)
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"success": true, "jobs": jobs})
}

// handleGetJob returns one job position by ID.
func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job position ID")
		return
	}

	job, err := s.db.GetJobPosition(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load job position")
		return
	}
	if job == nil {
		s.errorResponse(w, http.StatusNotFound, "Job position not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"success": true, "job": job})
}

// handleListRoles returns the role catalog.
func (s *Server) handleListRoles(w http.ResponseWriter, r *http.Request) {
	roles, err := s.db.ListJobRoles(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load job roles")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"success": true, "roles": roles})
}

type jobRoleRequest struct {
	RoleName        string   `json:"roleName" validate:"required"`
	Category        string   `json:"category" validate:"required"`
	RequiredSkills  []string `json:"requiredSkills"`
	ExperienceLevel *string  `json:"experienceLevel"`
	Keywords        []string `json:"keywords"`
	ResumeThreshold int      `json:"resumeThreshold" validate:"gte=0,lte=100"`
}

func (req *jobRoleRequest) toRole() *db.JobRole {
	skills := req.RequiredSkills
	if skills == nil {
		skills = []string{}
	}
	keywords := req.Keywords
	if keywords == nil {
		keywords = []string{}
	}
	experienceLevel := req.ExperienceLevel
	if experienceLevel == nil {
		defaultLevel := "Mid-level"
		experienceLevel = &defaultLevel
	}
	threshold := req.ResumeThreshold
	if threshold == 0 {
		threshold = 70
	}
	return &db.JobRole{
		RoleName:        strings.TrimSpace(req.RoleName),
		Category:        strings.TrimSpace(req.Category),
		RequiredSkills:  skills,
		ExperienceLevel: experienceLevel,
		Keywords:        keywords,
		ResumeThreshold: threshold,
	}
}

// handleCreateRole adds a role to the catalog. Role names are unique within a
// category, compared case-insensitively.
func (s *Server) handleCreateRole(w http.ResponseWriter, r *http.Request) {
	var req jobRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	role := req.toRole()
	existing, err := s.db.FindJobRoleByName(r.Context(), role.RoleName, role.Category)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to check existing roles")
		return
	}
	if existing != nil {
		s.errorResponse(w, http.StatusBadRequest, "A job role with this name already exists in this category")
		return
	}

	created, err := s.db.CreateJobRole(r.Context(), role)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to create job role")
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]any{"success": true, "role": created})
}

type jobPositionRequest struct {
	CompanyID          *int     `json:"companyId"`
	JobRoleID          *int     `json:"jobRoleId"`
	Title              string   `json:"title" validate:"required"`
	Description        string   `json:"description" validate:"required"`
	Requirements       *string  `json:"requirements"`
	Responsibilities   *string  `json:"responsibilities"`
	Location           *string  `json:"location"`
	EmploymentType     string   `json:"employmentType"`
	SalaryRange        *string  `json:"salaryRange"`
	ExperienceRequired *string  `json:"experienceRequired"`
	SkillsRequired     []string `json:"skillsRequired"`
	Qualifications     []string `json:"qualifications"`
	Benefits           []string `json:"benefits"`
}

func (req *jobPositionRequest) toPosition() *db.JobPosition {
	skills := req.SkillsRequired
	if skills == nil {
		skills = []string{}
	}
	return &db.JobPosition{
		CompanyID:          req.CompanyID,
		JobRoleID:          req.JobRoleID,
		Title:              req.Title,
		Description:        req.Description,
		Requirements:       req.Requirements,
		Responsibilities:   req.Responsibilities,
		Location:           req.Location,
		EmploymentType:     req.EmploymentType,
		SalaryRange:        req.SalaryRange,
		ExperienceRequired: req.ExperienceRequired,
		SkillsRequired:     skills,
		Qualifications:     req.Qualifications,
		Benefits:           req.Benefits,
	}
}

// handleCreateJob creates a job position and invalidates the catalog cache.
func (s *Server) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	var req jobPositionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	position := req.toPosition()

	// A position linked to a catalog role inherits the role's skill list when
	// none is given explicitly.
	if position.JobRoleID != nil && len(position.SkillsRequired) == 0 {
		role, err := s.db.GetJobRole(r.Context(), *position.JobRoleID)
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "Failed to load job role")
			return
		}
		if role == nil {
			s.errorResponse(w, http.StatusBadRequest, "Job role not found")
			return
		}
		position.SkillsRequired = role.RequiredSkills
	}

	created, err := s.db.CreateJobPosition(r.Context(), position)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to create job position")
		return
	}

	s.cache.Invalidate(r.Context(), jobsCacheKey)
	s.jsonResponse(w, http.StatusCreated, map[string]any{"success": true, "job": created})
}

// handleUpdateJob updates a job position and invalidates the catalog cache.
func (s *Server) handleUpdateJob(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job position ID")
		return
	}

	var req jobPositionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	position := req.toPosition()
	position.ID = id
	updated, err := s.db.UpdateJobPosition(r.Context(), position)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to update job position")
		return
	}
	if updated == nil {
		s.errorResponse(w, http.StatusNotFound, "Job position not found")
		return
	}

	s.cache.Invalidate(r.Context(), jobsCacheKey)
	s.jsonResponse(w, http.StatusOK, map[string]any{"success": true, "job": updated})
}

// handleDeleteJob soft-deletes a job position and invalidates the catalog
// cache.
func (s *Server) handleDeleteJob(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job position ID")
		return
	}

	if err := s.db.DeactivateJobPosition(r.Context(), id); err != nil {
		s.errorResponse(w, http.StatusNotFound, "Job position not found")
		return
	}

	s.cache.Invalidate(r.Context(), jobsCacheKey)
	s.jsonResponse(w, http.StatusOK, map[string]any{"success": true})
}
