// Package extractors converts uploaded files into plain text for
// ingestion. Extractors are selected by file extension with
// priority-based tie-breaking, so a format-specific extractor always
// beats the plaintext fallback.
package extractors

import (
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/R-Jayasree/LegalEase/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.ExtractorRegistry = (*Registry)(nil)

// Registry implements ExtractorRegistry with priority-based selection
type Registry struct {
	mu         sync.RWMutex
	extractors []driven.TextExtractor
}

// NewRegistry creates a new extractor registry
func NewRegistry() *Registry {
	return &Registry{
		extractors: make([]driven.TextExtractor, 0),
	}
}

// Register registers an extractor
func (r *Registry) Register(extractor driven.TextExtractor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.extractors = append(r.extractors, extractor)
}

// Get retrieves the best-matching extractor for a file path.
// Returns nil if nothing is registered for the extension.
func (r *Registry) Get(path string) driven.TextExtractor {
	ext := strings.ToLower(filepath.Ext(path))

	r.mu.RLock()
	defer r.mu.RUnlock()

	var matches []driven.TextExtractor
	for _, e := range r.extractors {
		if matchesExtension(e.SupportedExtensions(), ext) {
			matches = append(matches, e)
		}
	}
	if len(matches) == 0 {
		return nil
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Priority() > matches[j].Priority()
	})
	return matches[0]
}

// List returns all registered extensions
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	extSet := make(map[string]struct{})
	for _, e := range r.extractors {
		for _, ext := range e.SupportedExtensions() {
			extSet[ext] = struct{}{}
		}
	}

	exts := make([]string, 0, len(extSet))
	for ext := range extSet {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

func matchesExtension(supported []string, ext string) bool {
	for _, s := range supported {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == ext || s == "*" {
			return true
		}
	}
	return false
}

// DefaultRegistry creates a registry with the built-in extractors
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&PlaintextExtractor{})
	r.Register(&PDFExtractor{})
	return r
}
