// Package server provides the HTTP REST API for the resume analyzer.
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

	"github.com/meetoza/resume-analyzer/internal/jd"
	"github.com/meetoza/resume-analyzer/internal/recommend"
	"github.com/meetoza/resume-analyzer/internal/resume"
	"github.com/meetoza/resume-analyzer/internal/scoring"
)

// Config holds server configuration
type Config struct {
	Port int
}

// Deps are the services the handlers dispatch to.
type Deps struct {
	Parser      *resume.Parser
	JDParser    *jd.Parser
	Scorer      *scoring.Scorer
	Recommender *recommend.Recommender
}

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	parser      *resume.Parser
	jdParser    *jd.Parser
	scorer      *scoring.Scorer
	recommender *recommend.Recommender
	validate    *validator.Validate
}

// New creates a new server instance
func New(cfg Config, deps Deps) *Server {
	s := &Server{
		parser:      deps.Parser,
		jdParser:    deps.JDParser,
		scorer:      deps.Scorer,
		recommender: deps.Recommender,
		validate:    validator.New(),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /parse-resume", s.handleParseResume)
	mux.HandleFunc("POST /score-resume", s.handleScoreResume)
	mux.HandleFunc("POST /analyze-resume", s.handleAnalyzeResume)
	mux.HandleFunc("POST /score-text", s.handleScoreText)
	mux.HandleFunc("POST /recommend-roles", s.handleRecommendRoles)
	mux.HandleFunc("GET /health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      mux,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 120 * time.Second,
	}
	return s
}

// Handler exposes the route table for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start begins listening for requests and blocks until an interrupt or
// SIGTERM triggers graceful shutdown.
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

	log.Println("Server stopped")
	return nil
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
	s.jsonResponse(w, status, map[string]string{"error": message})
}
