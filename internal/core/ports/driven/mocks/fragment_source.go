package mocks

import (
	"context"
	"sync"

	"github.com/R-Jayasree/LegalEase/internal/core/domain"
)

// MockFragmentSource is a FragmentSource returning a fixed batch
type MockFragmentSource struct {
	mu        sync.RWMutex
	fragments []domain.Fragment
	err       error
}

// NewMockFragmentSource creates a new MockFragmentSource
func NewMockFragmentSource(fragments ...domain.Fragment) *MockFragmentSource {
	return &MockFragmentSource{fragments: fragments}
}

// SetError makes subsequent Fragments calls fail
func (m *MockFragmentSource) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

func (m *MockFragmentSource) Fragments(ctx context.Context, content string) ([]domain.Fragment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.err != nil {
		return nil, m.err
	}
	out := make([]domain.Fragment, len(m.fragments))
	copy(out, m.fragments)
	return out, nil
}
