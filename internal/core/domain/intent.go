package domain

import (
	"sort"
	"strings"
)

// Predicate tests a normalized (lowercased, trimmed) query.
// Predicates compose with AllOf/AnyOf; there is no scoring.
type Predicate func(query string) bool

// Contains matches queries containing the keyword as a substring
func Contains(keyword string) Predicate {
	keyword = strings.ToLower(keyword)
	return func(query string) bool {
		return strings.Contains(query, keyword)
	}
}

// AllOf matches when every predicate matches (boolean AND)
func AllOf(preds ...Predicate) Predicate {
	return func(query string) bool {
		for _, p := range preds {
			if !p(query) {
				return false
			}
		}
		return true
	}
}

// AnyOf matches when at least one predicate matches (boolean OR).
// Used for synonym lists.
func AnyOf(preds ...Predicate) Predicate {
	return func(query string) bool {
		for _, p := range preds {
			if p(query) {
				return true
			}
		}
		return false
	}
}

// ContainsAny matches when the query contains any of the keywords
func ContainsAny(keywords ...string) Predicate {
	preds := make([]Predicate, len(keywords))
	for i, k := range keywords {
		preds[i] = Contains(k)
	}
	return AnyOf(preds...)
}

// Rule maps a keyword predicate to a canned response.
// Rules are evaluated in strictly ascending priority; the first match
// wins and later rules are never evaluated.
type Rule struct {
	Name     string
	Priority int
	Match    Predicate
	Response string

	// Default marks the reserved fallback rule. It matches
	// unconditionally and must carry the highest priority value.
	Default bool
}

// RuleTable is an ordered set of intent rules. The order is part of the
// contract: reordering changes behavior, so the table is a versioned
// artifact, not an implementation detail.
type RuleTable []Rule

// InOrder returns the rules sorted by ascending priority.
// The sort is stable so equal priorities keep declaration order.
func (t RuleTable) InOrder() []Rule {
	rules := make([]Rule, len(t))
	copy(rules, t)
	sort.SliceStable(rules, func(i, j int) bool {
		return rules[i].Priority < rules[j].Priority
	})
	return rules
}

// Validate checks the structural invariants of the table: at least one
// rule, exactly one default, and the default last in priority order.
func (t RuleTable) Validate() error {
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
	if defaults != 1 {
		return ErrNoDefaultRule
	}
	if defaultPriority < maxPriority {
		return ErrNoDefaultRule
	}
	return nil
}
