package driving

import (
	"context"

	"github.com/R-Jayasree/LegalEase/internal/core/domain"
)

// SessionInfo is the read model of a conversation session
type SessionInfo struct {
	ID           string               `json:"id"`
	DocumentName string               `json:"document_name"`
	State        domain.SessionState  `json:"state"`
	Messages     []domain.ChatMessage `json:"messages"`
}

// ChatService owns conversation sessions and turn-taking.
// Each session is exclusively owned by the view that opened it; nothing
// else may append to its message history.
type ChatService interface {
	// Open creates a session for the active document, seeded with the
	// assistant greeting. Returns domain.ErrMissingDocument when no
	// document is active.
	Open(ctx context.Context) (*SessionInfo, error)

	// Submit appends a user message and schedules the assistant
	// response. Blank input is rejected with domain.ErrEmptyQuery and
	// leaves the session unchanged; a submit while a response is in
	// flight is rejected with domain.ErrResponsePending.
	Submit(ctx context.Context, sessionID, text string) (*domain.ChatMessage, error)

	// Get returns the session's current state and message history
	Get(ctx context.Context, sessionID string) (*SessionInfo, error)

	// Close tears the session down. Any pending response is discarded
	// and will not append to the closed session.
	Close(ctx context.Context, sessionID string) error
}

// IntentMatcher answers a free-text query from an ordered rule table
type IntentMatcher interface {
	// Match returns the response of the lowest-priority matching rule,
	// or the table's default response when nothing matches.
	Match(query string) string
}
