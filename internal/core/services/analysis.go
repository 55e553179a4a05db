package services

import (
	"context"

	"github.com/R-Jayasree/LegalEase/internal/core/domain"
	"github.com/R-Jayasree/LegalEase/internal/core/ports/driven"
	"github.com/R-Jayasree/LegalEase/internal/core/ports/driving"
)

// Ensure analysisService implements AnalysisService
var _ driving.AnalysisService = (*analysisService)(nil)

// analysisService implements the AnalysisService interface
type analysisService struct {
	documents  driving.DocumentService
	fragments  driven.FragmentSource
	annotator  *Annotator
	aggregator *Aggregator
}

// NewAnalysisService creates a new AnalysisService
func NewAnalysisService(
	documents driving.DocumentService,
	fragments driven.FragmentSource,
	annotator *Annotator,
	aggregator *Aggregator,
) driving.AnalysisService {
	return &analysisService{
		documents:  documents,
		fragments:  fragments,
		annotator:  annotator,
		aggregator: aggregator,
	}
}

// Annotate runs the classification rules over a fragment batch
func (s *analysisService) Annotate(ctx context.Context, fragments []domain.Fragment) ([]domain.Clause, error) {
	return s.annotator.Annotate(ctx, fragments)
}

// Summarize folds annotated clauses into a document summary
func (s *analysisService) Summarize(clauses []domain.Clause) *domain.DocumentSummary {
	return s.aggregator.Summarize(clauses)
}

// Analyze annotates and summarizes the active document.
// Returns domain.ErrMissingDocument when no document is active.
func (s *analysisService) Analyze(ctx context.Context) (*domain.Analysis, error) {
	doc, err := s.documents.GetActive(ctx)
	if err != nil {
		return nil, err
	}

	fragments, err := s.fragments.Fragments(ctx, doc.Content)
	if err != nil {
		return nil, err
	}

	clauses, err := s.annotator.Annotate(ctx, fragments)
	if err != nil {
		return nil, err
	}

	return &domain.Analysis{
		DocumentName: doc.Name,
		Clauses:      clauses,
		Summary:      s.aggregator.Summarize(clauses),
	}, nil
}
