package driven

import (
	"context"

	"github.com/R-Jayasree/LegalEase/internal/core/domain"
)

// FragmentSource supplies the ordered raw fragments fed to the annotator.
// In the demo configuration this is a static fixture keyed off the sample
// lease; a production source would segment the document text.
type FragmentSource interface {
	// Fragments returns the fragment batch for the given document
	// content, in document order.
	Fragments(ctx context.Context, content string) ([]domain.Fragment, error)
}
