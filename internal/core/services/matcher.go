package services

import (
	"strings"

	"github.com/R-Jayasree/LegalEase/internal/core/ports/driving"
	"github.com/R-Jayasree/LegalEase/internal/runtime"
)

// Ensure intentMatcher implements IntentMatcher
var _ driving.IntentMatcher = (*intentMatcher)(nil)

// intentMatcher answers free-text queries from the active rule table.
// It is a priority list, not a ranked retrieval system: rules are tried
// in ascending priority and the first hit wins.
type intentMatcher struct {
	services *runtime.Services
}

// NewIntentMatcher creates a new IntentMatcher.
// The rule table is read from runtime.Services per query, so table swaps
// take effect immediately.
func NewIntentMatcher(services *runtime.Services) driving.IntentMatcher {
	return &intentMatcher{services: services}
}

// Match returns the response of the lowest-priority matching rule.
// The query is lowercased and trimmed; no stemming. A blank query
// matches no keyword rule and falls through to the default.
func (m *intentMatcher) Match(query string) string {
	normalized := strings.ToLower(strings.TrimSpace(query))

	for _, rule := range m.services.IntentRules().InOrder() {
		if rule.Default {
			return rule.Response
		}
		if normalized == "" || rule.Match == nil {
			continue
		}
		if rule.Match(normalized) {
			return rule.Response
		}
	}

	// Unreachable with a validated table; the default always terminates
	// the scan above.
	return ""
}
