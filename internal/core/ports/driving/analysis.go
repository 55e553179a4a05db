package driving

import (
	"context"

	"github.com/R-Jayasree/LegalEase/internal/core/domain"
)

// AnalysisService annotates the active document and derives its summary
type AnalysisService interface {
	// Annotate runs the classification rules over a fragment batch.
	// Fragments with empty original text are dropped with a warning;
	// an out-of-vocabulary verdict fails the whole batch.
	Annotate(ctx context.Context, fragments []domain.Fragment) ([]domain.Clause, error)

	// Summarize folds annotated clauses into a document summary.
	// Pure and deterministic: identical input yields identical output.
	Summarize(clauses []domain.Clause) *domain.DocumentSummary

	// Analyze annotates and summarizes the active document.
	// Returns domain.ErrMissingDocument when no document is active.
	Analyze(ctx context.Context) (*domain.Analysis, error)
}
