package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/R-Jayasree/LegalEase/internal/core/domain"
	"github.com/R-Jayasree/LegalEase/internal/core/ports/driven"
	"github.com/R-Jayasree/LegalEase/internal/core/ports/driving"
)

// Ensure documentService implements DocumentService
var _ driving.DocumentService = (*documentService)(nil)

// documentService implements the DocumentService interface.
// The active document lives in the externally-owned key/value store;
// this service never touches ambient storage directly.
type documentService struct {
	store      driven.ActiveDocumentStore
	extractors driven.ExtractorRegistry
}

// NewDocumentService creates a new DocumentService
func NewDocumentService(store driven.ActiveDocumentStore, extractors driven.ExtractorRegistry) driving.DocumentService {
	return &documentService{store: store, extractors: extractors}
}

// Ingest stores a document as the active one
func (s *documentService) Ingest(ctx context.Context, name, content string) error {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(content) == "" {
		return domain.ErrInvalidInput
	}
	return s.store.SetActiveDocument(ctx, &domain.ActiveDocument{
		Name:    name,
		Content: content,
	})
}

// IngestFile extracts text from the file and stores it as the active
// document. The extractor is selected by file extension.
func (s *documentService) IngestFile(ctx context.Context, path string) error {
	extractor := s.extractors.Get(path)
	if extractor == nil {
		return fmt.Errorf("%s: %w", filepath.Ext(path), domain.ErrUnsupportedFormat)
	}

	content, err := extractor.Extract(path)
	if err != nil {
		return fmt.Errorf("extract %s: %w", path, err)
	}

	return s.Ingest(ctx, filepath.Base(path), content)
}

// GetActive retrieves the active document
func (s *documentService) GetActive(ctx context.Context) (*domain.ActiveDocument, error) {
	return s.store.GetActiveDocument(ctx)
}

// Clear removes the active document
func (s *documentService) Clear(ctx context.Context) error {
	return s.store.ClearActiveDocument(ctx)
}
