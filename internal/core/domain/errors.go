package domain

import "errors"

// Domain errors - used across all layers
var (
	// ErrNotFound indicates the requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates the input is invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrMissingDocument indicates no active document is available.
	// Callers recover by redirecting to the ingestion entry point.
	ErrMissingDocument = errors.New("missing document")

	// ErrInvalidFragment indicates a fragment with empty original text.
	// The fragment is dropped; the rest of the batch still annotates.
	ErrInvalidFragment = errors.New("invalid fragment")

	// ErrTaxonomyViolation indicates a classification rule emitted an
	// out-of-vocabulary category or risk level. This is a programming
	// error in the rule table and fails the whole annotation batch.
	ErrTaxonomyViolation = errors.New("taxonomy violation")

	// ErrEmptyQuery indicates a blank submission to a conversation session.
	// Rejected at the session boundary with no state change.
	ErrEmptyQuery = errors.New("empty query")

	// ErrResponsePending indicates a submit while a response is in flight.
	// A session never has two responses in flight.
	ErrResponsePending = errors.New("response pending")

	// ErrSessionNotFound indicates the conversation session does not exist
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionClosed indicates the conversation session was torn down
	ErrSessionClosed = errors.New("session closed")

	// ErrNoDefaultRule indicates a rule table without an unconditional
	// default rule. Such a table cannot guarantee termination.
	ErrNoDefaultRule = errors.New("rule table has no default rule")

	// ErrUnsupportedFormat indicates no extractor handles the file type
	ErrUnsupportedFormat = errors.New("unsupported document format")
)
