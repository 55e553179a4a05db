package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/R-Jayasree/LegalEase/internal/core/domain"
	"github.com/R-Jayasree/LegalEase/internal/core/ports/driving"
)

// Ensure conversationService implements ChatService
var _ driving.ChatService = (*conversationService)(nil)

const greetingFormat = `Hello! I'm your legal assistant. I've analyzed your document %q and I'm ready to help you understand any part of it. You can ask me questions like:

- "What are the penalties if I cancel early?"
- "Can my landlord increase rent without notice?"
- "What are my maintenance responsibilities?"
- "Are there any hidden fees I should know about?"

What would you like to know?`

// ConversationConfig holds conversation service configuration
type ConversationConfig struct {
	// ResponseDelay simulates processing latency before the assistant
	// message lands. Zero delivers responses synchronously (tests).
	ResponseDelay time.Duration

	Logger *slog.Logger
}

// session is one conversation. All mutation happens under mu; the
// generation counter invalidates scheduled completions on teardown so a
// late timer can never append to a closed or superseded session.
type session struct {
	mu           sync.Mutex
	id           string
	documentName string
	state        domain.SessionState
	messages     []domain.ChatMessage
	lastStamp    time.Time
	generation   uint64
	closed       bool
	pending      *time.Timer
}

// conversationService implements the ChatService interface
type conversationService struct {
	mu       sync.RWMutex
	sessions map[string]*session

	documents driving.DocumentService
	matcher   driving.IntentMatcher
	delay     time.Duration
	logger    *slog.Logger
	now       func() time.Time
}

// NewConversationService creates a new ChatService
func NewConversationService(documents driving.DocumentService, matcher driving.IntentMatcher, cfg ConversationConfig) driving.ChatService {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &conversationService{
		sessions:  make(map[string]*session),
		documents: documents,
		matcher:   matcher,
		delay:     cfg.ResponseDelay,
		logger:    logger,
		now:       time.Now,
	}
}

// Open creates a session for the active document, seeded with the
// assistant greeting
func (c *conversationService) Open(ctx context.Context) (*driving.SessionInfo, error) {
	doc, err := c.documents.GetActive(ctx)
	if err != nil {
		return nil, err
	}

	s := &session{
		id:           newID(),
		documentName: doc.Name,
		state:        domain.SessionIdle,
	}
	s.append(domain.MessageAssistant, fmt.Sprintf(greetingFormat, doc.Name), c.now())

	c.mu.Lock()
	c.sessions[s.id] = s
	c.mu.Unlock()

	c.logger.Info("conversation opened", "session_id", s.id, "document", doc.Name)
	return s.snapshot(), nil
}

// Submit appends a user message and schedules the assistant response
func (c *conversationService) Submit(ctx context.Context, sessionID, text string) (*domain.ChatMessage, error) {
	s, err := c.lookup(sessionID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(text) == "" {
		// No state change, no message appended
		return nil, domain.ErrEmptyQuery
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, domain.ErrSessionClosed
	}
	if s.state == domain.SessionAwaitingResponse {
		return nil, domain.ErrResponsePending
	}

	userMsg := s.append(domain.MessageUser, text, c.now())
	s.state = domain.SessionAwaitingResponse

	response := c.matcher.Match(text)
	generation := s.generation

	if c.delay <= 0 {
		c.complete(s, generation, response)
		return &userMsg, nil
	}

	s.pending = time.AfterFunc(c.delay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		c.complete(s, generation, response)
	})

	return &userMsg, nil
}

// complete applies a scheduled assistant response. Caller holds s.mu.
// A completion whose generation no longer matches belongs to a torn-down
// session and is discarded.
func (c *conversationService) complete(s *session, generation uint64, response string) {
	if s.closed || s.generation != generation {
		return
	}
	s.append(domain.MessageAssistant, response, c.now())
	s.state = domain.SessionIdle
	s.pending = nil
}

// Get returns the session's current state and message history
func (c *conversationService) Get(ctx context.Context, sessionID string) (*driving.SessionInfo, error) {
	s, err := c.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	return s.snapshot(), nil
}

// Close tears the session down and discards any pending response
func (c *conversationService) Close(ctx context.Context, sessionID string) error {
	c.mu.Lock()
	s, ok := c.sessions[sessionID]
	delete(c.sessions, sessionID)
	c.mu.Unlock()

	if !ok {
		return domain.ErrSessionNotFound
	}

	s.mu.Lock()
	s.closed = true
	s.generation++
	if s.pending != nil {
		s.pending.Stop()
		s.pending = nil
	}
	s.mu.Unlock()

	c.logger.Info("conversation closed", "session_id", sessionID)
	return nil
}

func (c *conversationService) lookup(sessionID string) (*session, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.sessions[sessionID]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return s, nil
}

// append adds a message, clamping the timestamp so stamps never go
// backwards within a session. Caller holds s.mu (or owns s exclusively).
func (s *session) append(msgType domain.MessageType, content string, now time.Time) domain.ChatMessage {
	if now.Before(s.lastStamp) {
		now = s.lastStamp
	}
	s.lastStamp = now

	msg := domain.ChatMessage{
		ID:        newID(),
		Type:      msgType,
		Content:   content,
		Timestamp: now,
	}
	s.messages = append(s.messages, msg)
	return msg
}

// snapshot copies the session read model
func (s *session) snapshot() *driving.SessionInfo {
	s.mu.Lock()
	defer s.mu.Unlock()

	messages := make([]domain.ChatMessage, len(s.messages))
	copy(messages, s.messages)
	return &driving.SessionInfo{
		ID:           s.id,
		DocumentName: s.documentName,
		State:        s.state,
		Messages:     messages,
	}
}

// newID generates an opaque random identifier
func newID() string {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	return hex.EncodeToString(buf)
}
