package driven

// TextExtractor converts an on-disk document into plain text for
// ingestion. Extractors are selected by file extension.
type TextExtractor interface {
	// Extract reads the file and returns its plain-text content
	Extract(path string) (string, error)

	// SupportedExtensions returns the file extensions this extractor
	// handles, including the leading dot. "*" matches any extension.
	SupportedExtensions() []string

	// Priority returns the extractor priority (higher = more specific).
	// Format-specific extractors sit above the plaintext fallback.
	Priority() int
}

// ExtractorRegistry manages text extractors.
// When multiple extractors match an extension, the highest priority wins.
type ExtractorRegistry interface {
	// Get retrieves the best-matching extractor for a file path.
	// Returns nil if nothing is registered for the extension.
	Get(path string) TextExtractor

	// Register registers an extractor
	Register(extractor TextExtractor)

	// List returns all registered extensions
	List() []string
}
