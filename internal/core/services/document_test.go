package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/R-Jayasree/LegalEase/internal/core/domain"
	"github.com/R-Jayasree/LegalEase/internal/core/ports/driven/mocks"
	"github.com/R-Jayasree/LegalEase/internal/extractors"
)

func TestDocumentService_IngestAndGetActive(t *testing.T) {
	store := mocks.NewMockActiveDocumentStore()
	svc := NewDocumentService(store, extractors.DefaultRegistry())
	ctx := context.Background()

	if err := svc.Ingest(ctx, "lease.pdf", "SECTION 1\nsome text"); err != nil {
		t.Fatalf("Ingest failed: %v", err)
	}

	doc, err := svc.GetActive(ctx)
	if err != nil {
		t.Fatalf("GetActive failed: %v", err)
	}
	if doc.Name != "lease.pdf" || doc.Content != "SECTION 1\nsome text" {
		t.Errorf("unexpected document: %+v", doc)
	}
}

func TestDocumentService_IngestValidation(t *testing.T) {
	store := mocks.NewMockActiveDocumentStore()
	svc := NewDocumentService(store, extractors.DefaultRegistry())
	ctx := context.Background()

	tests := []struct {
		name    string
		docName string
		content string
	}{
		{"blank name", "   ", "content"},
		{"blank content", "lease.pdf", "   "},
		{"both blank", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Ingest(ctx, tt.docName, tt.content)
			if !errors.Is(err, domain.ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestDocumentService_IngestReplacesPrevious(t *testing.T) {
	store := mocks.NewMockActiveDocumentStore()
	svc := NewDocumentService(store, extractors.DefaultRegistry())
	ctx := context.Background()

	if err := svc.Ingest(ctx, "first.txt", "first content"); err != nil {
		t.Fatalf("first Ingest failed: %v", err)
	}
	if err := svc.Ingest(ctx, "second.txt", "second content"); err != nil {
		t.Fatalf("second Ingest failed: %v", err)
	}

	doc, err := svc.GetActive(ctx)
	if err != nil {
		t.Fatalf("GetActive failed: %v", err)
	}
	if doc.Name != "second.txt" {
		t.Errorf("expected the second document, got %s", doc.Name)
	}
}

func TestDocumentService_GetActiveMissing(t *testing.T) {
	store := mocks.NewMockActiveDocumentStore()
	svc := NewDocumentService(store, extractors.DefaultRegistry())

	_, err := svc.GetActive(context.Background())
	if !errors.Is(err, domain.ErrMissingDocument) {
		t.Fatalf("expected ErrMissingDocument, got %v", err)
	}
}

func TestDocumentService_Clear(t *testing.T) {
	store := mocks.NewMockActiveDocumentStore()
	svc := NewDocumentService(store, extractors.DefaultRegistry())
	ctx := context.Background()

	if err := svc.Ingest(ctx, "lease.txt", "content"); err != nil {
		t.Fatalf("Ingest failed: %v", err)
	}
	if err := svc.Clear(ctx); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if _, err := svc.GetActive(ctx); !errors.Is(err, domain.ErrMissingDocument) {
		t.Fatalf("expected ErrMissingDocument after Clear, got %v", err)
	}
}

func TestDocumentService_IngestFile_UnsupportedFormat(t *testing.T) {
	// A registry without the wildcard fallback rejects unknown extensions
	registry := extractors.NewRegistry()
	registry.Register(&extractors.PDFExtractor{})
	svc := NewDocumentService(mocks.NewMockActiveDocumentStore(), registry)

	err := svc.IngestFile(context.Background(), "notes.txt")
	if !errors.Is(err, domain.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestDocumentService_IngestFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(path, []byte("SECTION 1\r\nline two\r\n"), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	store := mocks.NewMockActiveDocumentStore()
	svc := NewDocumentService(store, extractors.DefaultRegistry())
	ctx := context.Background()

	if err := svc.IngestFile(ctx, path); err != nil {
		t.Fatalf("IngestFile failed: %v", err)
	}

	doc, err := svc.GetActive(ctx)
	if err != nil {
		t.Fatalf("GetActive failed: %v", err)
	}
	if doc.Name != "notes.txt" {
		t.Errorf("expected name 'notes.txt', got %s", doc.Name)
	}
	if doc.Content != "SECTION 1\nline two" {
		t.Errorf("expected normalized content, got %q", doc.Content)
	}
}
