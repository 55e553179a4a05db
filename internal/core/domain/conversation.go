package domain

import "time"

// MessageType identifies who authored a chat message
type MessageType string

const (
	MessageUser      MessageType = "user"
	MessageAssistant MessageType = "assistant"
)

// ChatMessage is one turn in a conversation session.
// Timestamps are non-decreasing within a session.
type ChatMessage struct {
	ID        string      `json:"id"`
	Type      MessageType `json:"type"`
	Content   string      `json:"content"`
	Timestamp time.Time   `json:"timestamp"`
}

// SessionState is the turn-taking state of a conversation session
type SessionState string

const (
	// SessionIdle means no response is pending
	SessionIdle SessionState = "idle"

	// SessionAwaitingResponse means a user message was appended and the
	// assistant response is still in flight
	SessionAwaitingResponse SessionState = "awaiting_response"
)
