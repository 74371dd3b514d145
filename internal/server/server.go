// Package server provides the HTTP REST API for the resume screening system.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/hexaview/resume-screener/internal/analyzer"
	"github.com/hexaview/resume-screener/internal/cache"
	"github.com/hexaview/resume-screener/internal/config"
	"github.com/hexaview/resume-screener/internal/db"
)

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	db         *db.DB
	cache      *cache.Cache
	analyzer   *analyzer.Analyzer
	password   *config.PasswordConfig
	jwtService *JWTService
	validator  *validator.Validate
	corsOrigin string
}

// New creates a new server instance. The analyzer and cache are constructed
// by the caller so the server never reads ambient state itself.
func New(cfg *config.Config, database *db.DB, catalogCache *cache.Cache, resumeAnalyzer *analyzer.Analyzer) (*Server, error) {
	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}

	s := &Server{
		db:         database,
		cache:      catalogCache,
		analyzer:   resumeAnalyzer,
		password:   passwordConfig,
		jwtService: NewJWTService(jwtConfig),
		validator:  validator.New(),
		corsOrigin: cfg.CORSOrigin,
	}

	mux := http.NewServeMux()

	// Candidate-facing endpoints
	mux.HandleFunc("GET /api/job-roles", s.handleListRoles)
	mux.HandleFunc("GET /api/job-positions", s.handleListJobs)
	mux.HandleFunc("GET /api/job-positions/{id}", s.handleGetJob)
	mux.HandleFunc("POST /api/extract-resume-text", s.handleExtractResumeText)
	mux.HandleFunc("POST /api/analyze-resume", s.handleAnalyzeResume)
	mux.HandleFunc("GET /api/screening/questions", s.handleScreeningQuestions)
	mux.HandleFunc("POST /api/applications/{id}/screening", s.handleSubmitScreening)

	// Admin endpoints
	mux.HandleFunc("POST /api/admin/login", s.handleAdminLogin)
	mux.HandleFunc("POST /api/setup-admin", s.handleSetupAdmin)
	mux.HandleFunc("PUT /api/admin/password", s.requireAdmin(s.handleChangePassword))
	mux.HandleFunc("GET /api/applications", s.requireAdmin(s.handleListApplications))
	mux.HandleFunc("GET /api/applications/{id}", s.requireAdmin(s.handleGetApplication))
	mux.HandleFunc("POST /api/job-roles", s.requireAdmin(s.handleCreateRole))
	mux.HandleFunc("POST /api/job-positions", s.requireAdmin(s.handleCreateJob))
	mux.HandleFunc("PUT /api/job-positions/{id}", s.requireAdmin(s.handleUpdateJob))
	mux.HandleFunc("DELETE /api/job-positions/{id}", s.requireAdmin(s.handleDeleteJob))
	mux.HandleFunc("GET /api/admin/settings", s.requireAdmin(s.handleListSettings))
	mux.HandleFunc("PUT /api/admin/settings/{key}", s.requireAdmin(s.handleUpdateSetting))

	mux.HandleFunc("GET /api/health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // AI analysis can be slow
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Start begins listening for requests and blocks until shutdown
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.cache != nil {
		_ = s.cache.Close()
	}
	s.db.Close()
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", s.corsOrigin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging. Each request carries an ID so log lines
// from slow analyses can be correlated.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", requestID)

		start := time.Now()
		log.Printf("[%s] %s %s id=%s", r.Method, r.URL.Path, r.RemoteAddr, requestID)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v id=%s", r.Method, r.URL.Path, time.Since(start), requestID)
	})
}

// handleHealth returns server health status, including database reachability
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := map[string]string{"status": "ok", "database": "ok"}
	code := http.StatusOK
	if err := s.db.Ping(r.Context()); err != nil {
		status["status"] = "degraded"
		status["database"] = "unreachable"
		code = http.StatusServiceUnavailable
	}
	s.jsonResponse(w, code, status)
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]any{"error": message, "success": false})
}
