package driven

import (
	"context"

	"github.com/R-Jayasree/LegalEase/internal/core/domain"
)

// ActiveDocumentStore is the externally-owned key/value store holding the
// document under analysis. The contract is two string keys, documentContent
// and documentName; absence of documentContent means no active document.
type ActiveDocumentStore interface {
	// GetActiveDocument retrieves the active document.
	// Returns domain.ErrMissingDocument when no document is stored.
	GetActiveDocument(ctx context.Context) (*domain.ActiveDocument, error)

	// SetActiveDocument stores the document, replacing any previous one
	SetActiveDocument(ctx context.Context, doc *domain.ActiveDocument) error

	// ClearActiveDocument removes both keys. Clearing an empty store is
	// not an error.
	ClearActiveDocument(ctx context.Context) error

	// Ping checks if the store backend is healthy
	Ping(ctx context.Context) error
}
