package runtime

import (
	"sync"

	"github.com/R-Jayasree/LegalEase/internal/core/domain"
)

// Services holds the dynamically swappable rule tables.
// The demo ships a fixed lease table, but tables can be replaced at
// runtime without touching evaluation code - the engine only ever sees
// an ordered rule list. Thread-safe for concurrent access.
type Services struct {
	mu sync.RWMutex

	intentRules         domain.RuleTable
	classificationRules domain.ClassificationRules
}

// NewServices creates a Services registry with validated rule tables
func NewServices(intent domain.RuleTable, classification domain.ClassificationRules) (*Services, error) {
	if err := intent.Validate(); err != nil {
		return nil, err
	}
	if err := classification.Validate(); err != nil {
		return nil, err
	}
	return &Services{
		intentRules:         intent,
		classificationRules: classification,
	}, nil
}

// IntentRules returns the current intent rule table
func (s *Services) IntentRules() domain.RuleTable {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.intentRules
}

// SetIntentRules swaps the intent rule table after validating it
func (s *Services) SetIntentRules(table domain.RuleTable) error {
	if err := table.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.intentRules = table
	return nil
}

// ClassificationRules returns the current classification rule table
func (s *Services) ClassificationRules() domain.ClassificationRules {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.classificationRules
}

// SetClassificationRules swaps the classification table after validating it
func (s *Services) SetClassificationRules(table domain.ClassificationRules) error {
	if err := table.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.classificationRules = table
	return nil
}
