package http

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/R-Jayasree/LegalEase/internal/core/ports/driven"
	"github.com/R-Jayasree/LegalEase/internal/core/ports/driving"
)

// Pinger is a simple health check interface
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	router     *http.ServeMux
	version    string

	// Services
	documentService driving.DocumentService
	analysisService driving.AnalysisService
	chatService     driving.ChatService

	// Infrastructure
	exporter driven.ReportExporter
	store    Pinger // document store health check
}

// Config holds server configuration
type Config struct {
	Host           string
	Port           int
	Version        string
	AllowedOrigins []string
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Host:           "0.0.0.0",
		Port:           8080,
		Version:        "dev",
		AllowedOrigins: []string{"*"},
	}
}

// NewServer creates a new HTTP server
func NewServer(
	cfg Config,
	documentService driving.DocumentService,
	analysisService driving.AnalysisService,
	chatService driving.ChatService,
	exporter driven.ReportExporter,
	store Pinger,
) *Server {
	s := &Server{
		router:          http.NewServeMux(),
		version:         cfg.Version,
		documentService: documentService,
		analysisService: analysisService,
		chatService:     chatService,
		exporter:        exporter,
		store:           store,
	}

	var handler http.Handler = s.router
	handler = NewLoggingMiddleware().Handler(handler)
	handler = NewRecoveryMiddleware().Handler(handler)
	handler = NewCORSMiddleware(cfg.AllowedOrigins).Handler(handler)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.setupRoutes()
	return s
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() {
	// Health endpoints
	s.router.HandleFunc("GET /health", s.handleHealth)
	s.router.HandleFunc("GET /ready", s.handleReady)
	s.router.HandleFunc("GET /version", s.handleVersion)

	// Document endpoints
	s.router.HandleFunc("POST /api/v1/documents", s.handleIngestDocument)
	s.router.HandleFunc("GET /api/v1/documents/active", s.handleGetActiveDocument)
	s.router.HandleFunc("DELETE /api/v1/documents/active", s.handleClearActiveDocument)

	// Analysis endpoints
	s.router.HandleFunc("GET /api/v1/analysis", s.handleAnalyze)
	s.router.HandleFunc("GET /api/v1/analysis/export", s.handleExport)

	// Chat endpoints
	s.router.HandleFunc("POST /api/v1/chat/sessions", s.handleOpenSession)
	s.router.HandleFunc("GET /api/v1/chat/sessions/{id}", s.handleGetSession)
	s.router.HandleFunc("POST /api/v1/chat/sessions/{id}/messages", s.handleSubmitMessage)
	s.router.HandleFunc("DELETE /api/v1/chat/sessions/{id}", s.handleCloseSession)
}

// Start begins serving. Blocks until the context is cancelled, then
// shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		log.Printf("HTTP server listening on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	}
}

// Handler exposes the routed handler for tests
func (s *Server) Handler() http.Handler {
	return s.router
}
