package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/R-Jayasree/LegalEase/internal/core/domain"
	"github.com/R-Jayasree/LegalEase/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.ActiveDocumentStore = (*DocumentStore)(nil)

// Keys for the active-document store. The contract is exactly these
// two string keys; absence of the content key means no active document.
const (
	documentContentKey = "documentContent"
	documentNameKey    = "documentName"
)

// DocumentStore implements driven.ActiveDocumentStore using Redis
type DocumentStore struct {
	client *redis.Client
}

// NewDocumentStore creates a new Redis-backed DocumentStore
func NewDocumentStore(client *redis.Client) *DocumentStore {
	return &DocumentStore{client: client}
}

// GetActiveDocument retrieves the active document.
// A missing content key signals domain.ErrMissingDocument.
func (s *DocumentStore) GetActiveDocument(ctx context.Context) (*domain.ActiveDocument, error) {
	content, err := s.client.Get(ctx, documentContentKey).Result()
	if err == redis.Nil {
		return nil, domain.ErrMissingDocument
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get document content: %w", err)
	}

	name, err := s.client.Get(ctx, documentNameKey).Result()
	if err == redis.Nil {
		name = ""
	} else if err != nil {
		return nil, fmt.Errorf("failed to get document name: %w", err)
	}

	return &domain.ActiveDocument{Name: name, Content: content}, nil
}

// SetActiveDocument stores both keys atomically
func (s *DocumentStore) SetActiveDocument(ctx context.Context, doc *domain.ActiveDocument) error {
	pipe := s.client.Pipeline()
	pipe.Set(ctx, documentContentKey, doc.Content, 0)
	pipe.Set(ctx, documentNameKey, doc.Name, 0)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}
	return nil
}

// ClearActiveDocument removes both keys. Clearing an empty store is a
// no-op, not an error.
func (s *DocumentStore) ClearActiveDocument(ctx context.Context) error {
	if err := s.client.Del(ctx, documentContentKey, documentNameKey).Err(); err != nil {
		return fmt.Errorf("failed to clear document: %w", err)
	}
	return nil
}

// Ping checks if the store backend is healthy
func (s *DocumentStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
