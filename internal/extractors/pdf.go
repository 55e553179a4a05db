package extractors

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"

	"github.com/R-Jayasree/LegalEase/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.TextExtractor = (*PDFExtractor)(nil)

// PDFExtractor extracts plain text from PDF files
type PDFExtractor struct{}

func (e *PDFExtractor) Extract(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	reader, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to extract plain text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(reader); err != nil {
		return "", fmt.Errorf("failed to read text: %w", err)
	}

	return buf.String(), nil
}

func (e *PDFExtractor) SupportedExtensions() []string {
	return []string{".pdf"}
}

func (e *PDFExtractor) Priority() int {
	return 50 // Format-specific
}
