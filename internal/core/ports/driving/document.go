package driving

import (
	"context"

	"github.com/R-Jayasree/LegalEase/internal/core/domain"
)

// DocumentService manages the active document
type DocumentService interface {
	// Ingest stores a document as the active one
	Ingest(ctx context.Context, name, content string) error

	// IngestFile extracts text from the file and stores it as the
	// active document
	IngestFile(ctx context.Context, path string) error

	// GetActive retrieves the active document.
	// Returns domain.ErrMissingDocument when none is stored.
	GetActive(ctx context.Context) (*domain.ActiveDocument, error)

	// Clear removes the active document
	Clear(ctx context.Context) error
}
