package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/R-Jayasree/LegalEase/internal/core/domain"
	"github.com/R-Jayasree/LegalEase/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.ActiveDocumentStore = (*DocumentStore)(nil)

const (
	documentContentKey = "documentContent"
	documentNameKey    = "documentName"
)

// DocumentStore implements driven.ActiveDocumentStore using PostgreSQL.
// Fallback for deployments without Redis; same two-key contract.
type DocumentStore struct {
	db *DB
}

// NewDocumentStore creates a new PostgreSQL-backed DocumentStore
func NewDocumentStore(db *DB) *DocumentStore {
	return &DocumentStore{db: db}
}

// GetActiveDocument retrieves the active document
func (s *DocumentStore) GetActiveDocument(ctx context.Context) (*domain.ActiveDocument, error) {
	content, err := s.get(ctx, documentContentKey)
	if err == sql.ErrNoRows {
		return nil, domain.ErrMissingDocument
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get document content: %w", err)
	}

	name, err := s.get(ctx, documentNameKey)
	if err == sql.ErrNoRows {
		name = ""
	} else if err != nil {
		return nil, fmt.Errorf("failed to get document name: %w", err)
	}

	return &domain.ActiveDocument{Name: name, Content: content}, nil
}

// SetActiveDocument stores both keys in one transaction
func (s *DocumentStore) SetActiveDocument(ctx context.Context, doc *domain.ActiveDocument) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO document_store (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = EXCLUDED.updated_at
	`
	if _, err := tx.ExecContext(ctx, query, documentContentKey, doc.Content); err != nil {
		return fmt.Errorf("failed to save document content: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, documentNameKey, doc.Name); err != nil {
		return fmt.Errorf("failed to save document name: %w", err)
	}

	return tx.Commit()
}

// ClearActiveDocument removes both keys
func (s *DocumentStore) ClearActiveDocument(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM document_store WHERE key IN ($1, $2)`,
		documentContentKey, documentNameKey)
	if err != nil {
		return fmt.Errorf("failed to clear document: %w", err)
	}
	return nil
}

// Ping checks if the store backend is healthy
func (s *DocumentStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *DocumentStore) get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM document_store WHERE key = $1`, key).Scan(&value)
	return value, err
}
