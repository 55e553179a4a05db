package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/R-Jayasree/LegalEase/internal/core/domain"
)

// ErrorResponse represents an API error response
// @Description API error response
type ErrorResponse struct {
	Error string `json:"error" example:"invalid request body"`
}

// StatusResponse represents a simple status response
// @Description Simple status response
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}

// VersionResponse represents the API version response
// @Description API version response
type VersionResponse struct {
	Version string `json:"version" example:"1.0.0"`
}

// IngestRequest is the body for uploading a document as text
// @Description Document upload request
type IngestRequest struct {
	Name    string `json:"name" example:"rental_agreement.pdf"`
	Content string `json:"content"`
}

// MessageRequest is the body for submitting a chat message
// @Description Chat message submission
type MessageRequest struct {
	Text string `json:"text" example:"What happens if I break the lease early?"`
}

// Health endpoints

// handleHealth godoc
// @Summary      Health check
// @Description  Returns the health status of the API
// @Tags         Health
// @Produce      json
// @Success      200  {object}  StatusResponse
// @Router       /health [get]
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleReady godoc
// @Summary      Readiness check
// @Description  Returns the readiness status of the API (checks the document store)
// @Tags         Health
// @Produce      json
// @Success      200  {object}  StatusResponse
// @Failure      503  {object}  ErrorResponse  "Document store unreachable"
// @Router       /ready [get]
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if s.store != nil {
		if err := s.store.Ping(r.Context()); err != nil {
			writeError(w, http.StatusServiceUnavailable, "document store unreachable")
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

// handleVersion godoc
// @Summary      Get API version
// @Description  Returns the current API version
// @Tags         Health
// @Produce      json
// @Success      200  {object}  VersionResponse
// @Router       /version [get]
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"version": s.version})
}

// Document endpoints

// handleIngestDocument godoc
// @Summary      Upload a document
// @Description  Stores the submitted text as the active document, replacing any previous one
// @Tags         Documents
// @Accept       json
// @Produce      json
// @Param        request  body      IngestRequest  true  "Document name and content"
// @Success      201      {object}  StatusResponse
// @Failure      400      {object}  ErrorResponse  "Invalid request body or blank document"
// @Failure      500      {object}  ErrorResponse  "Internal server error"
// @Router       /api/v1/documents [post]
func (s *Server) handleIngestDocument(w http.ResponseWriter, r *http.Request) {
	var req IngestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.documentService.Ingest(r.Context(), req.Name, req.Content); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to store document")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"status": "stored"})
}

// handleGetActiveDocument godoc
// @Summary      Get the active document
// @Description  Returns the currently stored document
// @Tags         Documents
// @Produce      json
// @Success      200  {object}  domain.ActiveDocument
// @Failure      404  {object}  ErrorResponse  "No active document"
// @Failure      500  {object}  ErrorResponse  "Internal server error"
// @Router       /api/v1/documents/active [get]
func (s *Server) handleGetActiveDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := s.documentService.GetActive(r.Context())
	if err != nil {
		if errors.Is(err, domain.ErrMissingDocument) {
			writeError(w, http.StatusNotFound, "no active document")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to load document")
		return
	}

	writeJSON(w, http.StatusOK, doc)
}

// handleClearActiveDocument godoc
// @Summary      Clear the active document
// @Description  Removes the currently stored document
// @Tags         Documents
// @Produce      json
// @Success      200  {object}  StatusResponse
// @Failure      500  {object}  ErrorResponse  "Internal server error"
// @Router       /api/v1/documents/active [delete]
func (s *Server) handleClearActiveDocument(w http.ResponseWriter, r *http.Request) {
	if err := s.documentService.Clear(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to clear document")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}

// Analysis endpoints

// handleAnalyze godoc
// @Summary      Analyze the active document
// @Description  Annotates the document's clauses and derives the summary
// @Tags         Analysis
// @Produce      json
// @Success      200  {object}  domain.Analysis
// @Failure      404  {object}  ErrorResponse  "No active document"
// @Failure      500  {object}  ErrorResponse  "Internal server error"
// @Router       /api/v1/analysis [get]
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	analysis, err := s.analysisService.Analyze(r.Context())
	if err != nil {
		if errors.Is(err, domain.ErrMissingDocument) {
			writeError(w, http.StatusNotFound, "no active document")
			return
		}
		writeError(w, http.StatusInternalServerError, "analysis failed")
		return
	}

	writeJSON(w, http.StatusOK, analysis)
}

// handleExport godoc
// @Summary      Export the analysis report
// @Description  Downloads the analysis of the active document as a plain-text report
// @Tags         Analysis
// @Produce      plain
// @Success      200  {string}  string  "Report contents"
// @Failure      404  {object}  ErrorResponse  "No active document"
// @Failure      500  {object}  ErrorResponse  "Internal server error"
// @Router       /api/v1/analysis/export [get]
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	analysis, err := s.analysisService.Analyze(r.Context())
	if err != nil {
		if errors.Is(err, domain.ErrMissingDocument) {
			writeError(w, http.StatusNotFound, "no active document")
			return
		}
		writeError(w, http.StatusInternalServerError, "analysis failed")
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", s.exporter.Filename(analysis.DocumentName)))
	w.WriteHeader(http.StatusOK)
	_ = s.exporter.Export(w, analysis)
}

// Chat endpoints

// handleOpenSession godoc
// @Summary      Open a chat session
// @Description  Creates a conversation session for the active document, seeded with the assistant greeting
// @Tags         Chat
// @Produce      json
// @Success      201  {object}  driving.SessionInfo
// @Failure      404  {object}  ErrorResponse  "No active document"
// @Failure      500  {object}  ErrorResponse  "Internal server error"
// @Router       /api/v1/chat/sessions [post]
func (s *Server) handleOpenSession(w http.ResponseWriter, r *http.Request) {
	info, err := s.chatService.Open(r.Context())
	if err != nil {
		if errors.Is(err, domain.ErrMissingDocument) {
			writeError(w, http.StatusNotFound, "no active document")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to open session")
		return
	}

	writeJSON(w, http.StatusCreated, info)
}

// handleGetSession godoc
// @Summary      Get a chat session
// @Description  Returns the session's state and full message history
// @Tags         Chat
// @Produce      json
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  driving.SessionInfo
// @Failure      404  {object}  ErrorResponse  "Session not found"
// @Router       /api/v1/chat/sessions/{id} [get]
func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	info, err := s.chatService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			writeError(w, http.StatusNotFound, "session not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to load session")
		return
	}

	writeJSON(w, http.StatusOK, info)
}

// handleSubmitMessage godoc
// @Summary      Submit a chat message
// @Description  Appends the user message and schedules the assistant response. Poll the session to see the reply.
// @Tags         Chat
// @Accept       json
// @Produce      json
// @Param        id       path      string          true  "Session ID"
// @Param        request  body      MessageRequest  true  "Message text"
// @Success      202      {object}  domain.ChatMessage
// @Failure      400      {object}  ErrorResponse  "Invalid request body or blank message"
// @Failure      404      {object}  ErrorResponse  "Session not found"
// @Failure      409      {object}  ErrorResponse  "A response is already pending"
// @Router       /api/v1/chat/sessions/{id}/messages [post]
func (s *Server) handleSubmitMessage(w http.ResponseWriter, r *http.Request) {
	var req MessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	msg, err := s.chatService.Submit(r.Context(), r.PathValue("id"), req.Text)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyQuery):
			writeError(w, http.StatusBadRequest, "message text is empty")
		case errors.Is(err, domain.ErrSessionNotFound):
			writeError(w, http.StatusNotFound, "session not found")
		case errors.Is(err, domain.ErrSessionClosed):
			writeError(w, http.StatusConflict, "session is closed")
		case errors.Is(err, domain.ErrResponsePending):
			writeError(w, http.StatusConflict, "a response is already pending")
		default:
			writeError(w, http.StatusInternalServerError, "failed to submit message")
		}
		return
	}

	writeJSON(w, http.StatusAccepted, msg)
}

// handleCloseSession godoc
// @Summary      Close a chat session
// @Description  Tears the session down; any pending assistant response is discarded
// @Tags         Chat
// @Produce      json
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  StatusResponse
// @Failure      404  {object}  ErrorResponse  "Session not found"
// @Router       /api/v1/chat/sessions/{id} [delete]
func (s *Server) handleCloseSession(w http.ResponseWriter, r *http.Request) {
	if err := s.chatService.Close(r.Context(), r.PathValue("id")); err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			writeError(w, http.StatusNotFound, "session not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to close session")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "closed"})
}

// Helper functions

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
