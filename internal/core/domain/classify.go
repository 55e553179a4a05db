package domain

import (
	"sort"
	"strings"
)

// FragmentPredicate tests a raw fragment during classification
type FragmentPredicate func(f Fragment) bool

// SectionContains matches fragments whose section heading contains the
// given text (case-insensitive)
func SectionContains(text string) FragmentPredicate {
	text = strings.ToLower(text)
	return func(f Fragment) bool {
		return strings.Contains(strings.ToLower(f.Section), text)
	}
}

// TextContainsAny matches fragments whose original text contains any of
// the keywords (case-insensitive)
func TextContainsAny(keywords ...string) FragmentPredicate {
	lowered := make([]string, len(keywords))
	for i, k := range keywords {
		lowered[i] = strings.ToLower(k)
	}
	return func(f Fragment) bool {
		text := strings.ToLower(f.Original)
		for _, k := range lowered {
			if strings.Contains(text, k) {
				return true
			}
		}
		return false
	}
}

// EitherOf matches when any of the fragment predicates matches
func EitherOf(preds ...FragmentPredicate) FragmentPredicate {
	return func(f Fragment) bool {
		for _, p := range preds {
			if p(f) {
				return true
			}
		}
		return false
	}
}

// Verdict is the (category, riskLevel) pair a classification rule emits.
// Both fields are validated against the taxonomy at annotation time.
type Verdict struct {
	Category  Category
	RiskLevel RiskLevel
}

// Valid reports whether both verdict fields are in vocabulary
func (v Verdict) Valid() bool {
	return v.Category.Valid() && v.RiskLevel.Valid()
}

// ClassificationRule classifies a fragment. Evaluation is structurally
// identical to intent-rule evaluation: ascending priority, first match
// wins, an unconditional default guarantees every fragment a verdict.
type ClassificationRule struct {
	Name     string
	Priority int
	Match    FragmentPredicate
	Verdict  Verdict

	// Simplify produces the plain-language rendering of the fragment.
	// When nil the original text is reused.
	Simplify func(f Fragment) string

	// Default marks the reserved fallback rule
	Default bool
}

// ClassificationRules is an ordered classification rule table
type ClassificationRules []ClassificationRule

// InOrder returns the rules sorted by ascending priority, stable on
// declaration order
func (t ClassificationRules) InOrder() []ClassificationRule {
	rules := make([]ClassificationRule, len(t))
	copy(rules, t)
	sort.SliceStable(rules, func(i, j int) bool {
		return rules[i].Priority < rules[j].Priority
	})
	return rules
}

// Validate checks for exactly one default rule, last in priority order
func (t ClassificationRules) Validate() error {
	if len(t) == 0 {
		return ErrNoDefaultRule
	}

	defaults := 0
	maxPriority := 0
	var defaultPriority int
	for _, r := range t {
		if r.Priority > maxPriority {
			maxPriority = r.Priority
		}
		if r.Default {
			defaults++
			defaultPriority = r.Priority
		}
	}
	if defaults != 1 || defaultPriority < maxPriority {
		return ErrNoDefaultRule
	}
	return nil
}
