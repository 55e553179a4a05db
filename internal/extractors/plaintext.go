package extractors

import (
	"os"
	"strings"

	"github.com/R-Jayasree/LegalEase/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.TextExtractor = (*PlaintextExtractor)(nil)

// PlaintextExtractor reads text files as-is with basic cleanup.
// It is the universal fallback at the lowest priority.
type PlaintextExtractor struct{}

func (e *PlaintextExtractor) Extract(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	content := string(data)
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	return strings.TrimSpace(content), nil
}

func (e *PlaintextExtractor) SupportedExtensions() []string {
	return []string{".txt", ".md", "*"}
}

func (e *PlaintextExtractor) Priority() int {
	return 1 // Lowest priority - fallback
}
