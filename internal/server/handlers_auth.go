package server

import (
	"encoding/json"
	"log"
	"net/http"
)

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// handleAdminLogin authenticates an admin and issues a session token.
func (s *Server) handleAdminLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	admin, err := s.db.GetAdminByUsername(r.Context(), req.Username)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Login failed")
		return
	}
	if admin == nil || !s.password.VerifyPassword(req.Password, admin.PasswordHash) {
		s.errorResponse(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := s.jwtService.GenerateToken(admin.ID, admin.Username, admin.Role)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Login failed")
		return
	}

	log.Printf("[AUTH] admin %s logged in", admin.Username)
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"success": true,
		"token":   token,
		"user": map[string]any{
			"id":       admin.ID,
			"username": admin.Username,
			"email":    admin.Email,
			"role":     admin.Role,
		},
	})
}

type setupAdminRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=8"`
	Email    string `json:"email" validate:"required,email"`
}

// handleSetupAdmin bootstraps the first admin account. Once any admin exists
// the endpoint is closed.
func (s *Server) handleSetupAdmin(w http.ResponseWriter, r *http.Request) {
	count, err := s.db.CountAdmins(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Setup failed")
		return
	}
	if count > 0 {
		s.errorResponse(w, http.StatusForbidden, "Admin account already exists")
		return
	}

	var req setupAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	hash, err := s.password.HashPassword(req.Password)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Setup failed")
		return
	}

	if err := s.db.SeedAdmin(r.Context(), req.Username, hash, req.Email); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Setup failed")
		return
	}

	log.Printf("[AUTH] initial admin account %s created", req.Username)
	s.jsonResponse(w, http.StatusCreated, map[string]any{"success": true})
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
}

// handleChangePassword rotates the authenticated admin's password.
func (s *Server) handleChangePassword(w http.ResponseWriter, r *http.Request) {
	var req changePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	claims := adminClaims(r)
	if claims == nil {
		s.errorResponse(w, http.StatusUnauthorized, "Missing or invalid authorization header")
		return
	}

	admin, err := s.db.GetAdminByUsername(r.Context(), claims.Username)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to change password")
		return
	}
	if admin == nil || !s.password.VerifyPassword(req.CurrentPassword, admin.PasswordHash) {
		s.errorResponse(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	hash, err := s.password.HashPassword(req.NewPassword)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to change password")
		return
	}
	if err := s.db.UpdateAdminPassword(r.Context(), admin.Username, hash); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to change password")
		return
	}

	log.Printf("[AUTH] admin %s changed password", admin.Username)
	s.jsonResponse(w, http.StatusOK, map[string]any{"success": true})
}

// handleListSettings returns every system setting.
func (s *Server) handleListSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := s.db.ListSettings(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load settings")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"success": true, "settings": settings})
}

type updateSettingRequest struct {
	Value string `json:"value" validate:"required"`
}

// handleUpdateSetting writes one setting value.
func (s *Server) handleUpdateSetting(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")

	var req updateSettingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.db.UpsertSetting(r.Context(), key, req.Value); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to update setting")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"success": true})
}
