// Package server provides the HTTP REST API for the career assistant.
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

	"github.com/jonathan/career-compass/internal/analysis"
	"github.com/jonathan/career-compass/internal/books"
	"github.com/jonathan/career-compass/internal/config"
	"github.com/jonathan/career-compass/internal/db"
	"github.com/jonathan/career-compass/internal/jobsearch"
	"github.com/jonathan/career-compass/internal/leetcode"
)

// Analyzer runs the career-analysis pipeline.
type Analyzer interface {
	RunFullAnalysis(ctx context.Context, handle, resumeURL string) (*analysis.FullAnalysisResult, error)
	RunTargetCompanyAnalysis(ctx context.Context, handle, resumeURL, companyName string) (*analysis.CompanyFit, error)
	AnalyzeResumeText(ctx context.Context, resumeText string) (*analysis.CandidateProfile, error)
}

// StatsFetcher returns normalized coding stats for a handle.
type StatsFetcher interface {
	Fetch(ctx context.Context, handle string) *leetcode.Stats
}

// BookSearcher queries the book catalog.
type BookSearcher interface {
	Search(ctx context.Context, query string) ([]books.Book, error)
}

// JobSearcher runs standalone posting searches outside the pipeline.
type JobSearcher interface {
	SearchQuery(ctx context.Context, q jobsearch.Query) ([]jobsearch.Job, error)
}

// Store is the persistence surface the handlers need.
type Store interface {
	CreateStudent(ctx context.Context, fullName, email, passwordHash string) (*db.Student, error)
	GetStudentByID(ctx context.Context, id uuid.UUID) (*db.Student, error)
	GetStudentByEmail(ctx context.Context, email string) (*db.Student, error)
	UpdatePlacement(ctx context.Context, id uuid.UUID, update db.PlacementUpdate) (*db.Student, error)

	ListProjects(ctx context.Context, studentID uuid.UUID) ([]db.Project, error)
	CreateProject(ctx context.Context, studentID uuid.UUID, title, link string, tags []string, description string) (*db.Project, error)
	UpdateProject(ctx context.Context, projectID uuid.UUID, title, link string, tags []string, description string) (*db.Project, error)
	DeleteProject(ctx context.Context, projectID uuid.UUID) (bool, error)

	SaveAppliedJob(ctx context.Context, job db.AppliedJob) (*db.AppliedJob, error)
	ListAppliedJobs(ctx context.Context, studentID uuid.UUID) ([]db.AppliedJob, error)
	DeleteAppliedJob(ctx context.Context, jobID uuid.UUID) (bool, error)
}

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	store      Store
	analyzer   Analyzer
	stats      StatsFetcher
	books      BookSearcher
	jobs       JobSearcher
	passwords  *config.PasswordConfig
	jwtService *JWTService
	validator  *validator.Validate
	closeStore func()
}

// Config holds server configuration
type Config struct {
	Port      string
	Store     Store
	Analyzer  Analyzer
	Stats     StatsFetcher
	Books     BookSearcher
	Jobs      JobSearcher
	Passwords *config.PasswordConfig
	JWT       *JWTService
}

// New creates a new server instance
func New(cfg Config) *Server {
	s := &Server{
		store:      cfg.Store,
		analyzer:   cfg.Analyzer,
		stats:      cfg.Stats,
		books:      cfg.Books,
		jobs:       cfg.Jobs,
		passwords:  cfg.Passwords,
		jwtService: cfg.JWT,
		validator:  validator.New(),
	}

	s.httpServer = &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      s.withLogging(s.withCORS(s.routes())),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // Long timeout for full-analysis runs
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// SetStoreCloser registers a cleanup function invoked on shutdown.
func (s *Server) SetStoreCloser(close func()) {
	s.closeStore = close
}

// routes builds the request mux.
func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)

	// Account endpoints
	mux.HandleFunc("POST /api/signup", s.handleSignup)
	mux.HandleFunc("POST /api/login", s.handleLogin)

	// Placement profile endpoints
	mux.HandleFunc("GET /api/placement/{id}", s.handleGetPlacement)
	mux.Handle("PUT /api/placement/{id}", s.withAuth(s.handleUpdatePlacement))

	// Project endpoints
	mux.HandleFunc("GET /api/projects/{studentId}", s.handleListProjects)
	mux.Handle("POST /api/projects", s.withAuth(s.handleCreateProject))
	mux.Handle("PUT /api/projects/{id}", s.withAuth(s.handleUpdateProject))
	mux.Handle("DELETE /api/projects/{id}", s.withAuth(s.handleDeleteProject))

	// Applied-job endpoints
	mux.HandleFunc("GET /api/applied-jobs/{studentId}", s.handleListAppliedJobs)
	mux.Handle("POST /api/applied-jobs", s.withAuth(s.handleSaveAppliedJob))
	mux.Handle("DELETE /api/applied-jobs/{id}", s.withAuth(s.handleDeleteAppliedJob))

	// Standalone job search
	mux.HandleFunc("GET /api/jobs", s.handleSearchJobs)

	// Coding stats endpoint
	mux.HandleFunc("GET /api/leetcode/{handle}", s.handleLeetCodeStats)

	// Resume upload analysis
	mux.HandleFunc("POST /api/resume/analyze", s.handleAnalyzeResume)

	// Book catalog proxy
	mux.HandleFunc("GET /api/books/search", s.handleSearchBooks)

	// Analysis endpoints
	mux.HandleFunc("POST /api/ai/full-analysis", s.handleFullAnalysis)
	mux.HandleFunc("POST /api/ai/target-company", s.handleTargetCompany)
	mux.HandleFunc("GET /api/ai/companies", s.handleListCompanies)

	return mux
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
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

	if s.closeStore != nil {
		s.closeStore()
	}
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// successResponse writes the success envelope with extra payload fields.
func (s *Server) successResponse(w http.ResponseWriter, status int, payload map[string]any) {
	body := map[string]any{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	s.jsonResponse(w, status, body)
}

// errorResponse writes the failure envelope
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]any{"success": false, "error": message})
}
