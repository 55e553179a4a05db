package mocks

import (
	"context"
	"sync"

	"github.com/R-Jayasree/LegalEase/internal/core/domain"
)

// MockActiveDocumentStore is an in-memory ActiveDocumentStore for testing
type MockActiveDocumentStore struct {
	mu  sync.RWMutex
	doc *domain.ActiveDocument

	// PingErr is returned by Ping when set
	PingErr error
}

// NewMockActiveDocumentStore creates a new MockActiveDocumentStore
func NewMockActiveDocumentStore() *MockActiveDocumentStore {
	return &MockActiveDocumentStore{}
}

func (m *MockActiveDocumentStore) GetActiveDocument(ctx context.Context) (*domain.ActiveDocument, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.doc == nil || m.doc.Content == "" {
		return nil, domain.ErrMissingDocument
	}
	copy := *m.doc
	return &copy, nil
}

func (m *MockActiveDocumentStore) SetActiveDocument(ctx context.Context, doc *domain.ActiveDocument) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copy := *doc
	m.doc = &copy
	return nil
}

func (m *MockActiveDocumentStore) ClearActiveDocument(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.doc = nil
	return nil
}

func (m *MockActiveDocumentStore) Ping(ctx context.Context) error {
	return m.PingErr
}
