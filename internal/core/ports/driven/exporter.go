package driven

import (
	"io"

	"github.com/R-Jayasree/LegalEase/internal/core/domain"
)

// ReportExporter renders an analysis as a plain-text report.
// The input types are stable and fully populated: empty summary buckets
// arrive as empty lists, never absent fields.
type ReportExporter interface {
	// Export writes the report for the analysis to w
	Export(w io.Writer, analysis *domain.Analysis) error

	// Filename returns the suggested download filename for a document
	Filename(documentName string) string
}
