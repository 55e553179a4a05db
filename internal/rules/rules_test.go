package rules

import (
	"context"
	"testing"

	"github.com/R-Jayasree/LegalEase/internal/core/domain"
)

func TestLeaseIntentRules_Valid(t *testing.T) {
	table := LeaseIntentRules()

	if err := table.Validate(); err != nil {
		t.Fatalf("intent table failed validation: %v", err)
	}

	defaults := 0
	for _, rule := range table {
		if rule.Default {
			defaults++
			if rule.Match != nil {
				t.Errorf("default rule %q must be unconditional", rule.Name)
			}
		}
		if rule.Response == "" {
			t.Errorf("rule %q has no response", rule.Name)
		}
	}
	if defaults != 1 {
		t.Errorf("expected exactly one default rule, got %d", defaults)
	}
}

func TestLeaseClassificationRules_Valid(t *testing.T) {
	table := LeaseClassificationRules()

	if err := table.Validate(); err != nil {
		t.Fatalf("classification table failed validation: %v", err)
	}

	for _, rule := range table {
		if !rule.Verdict.Valid() {
			t.Errorf("rule %q carries an out-of-vocabulary verdict: %+v", rule.Name, rule.Verdict)
		}
	}
}

func TestLeaseClassificationRules_RoutesFixture(t *testing.T) {
	// Each fixture fragment must hit its intended rule, not the default
	// and not an earlier rule with overlapping keywords.
	ordered := LeaseClassificationRules().InOrder()

	matchRule := func(f domain.Fragment) string {
		for _, rule := range ordered {
			if rule.Default {
				return rule.Name
			}
			if rule.Match != nil && rule.Match(f) {
				return rule.Name
			}
		}
		return ""
	}

	want := []string{
		"payment-terms",
		"rent-increase",
		"tenant-maintenance",
		"landlord-maintenance",
		"early-termination",
		"security-deposit",
		"lease-term",
	}

	fragments := LeaseFragments()
	if len(fragments) != len(want) {
		t.Fatalf("fixture has %d fragments, expected %d", len(fragments), len(want))
	}
	for i, f := range fragments {
		if got := matchRule(f); got != want[i] {
			t.Errorf("fragment %d (%s) routed to %q, want %q", i, f.Section, got, want[i])
		}
	}
}

func TestFixtureSource_Fragments(t *testing.T) {
	source := NewFixtureSource()

	fragments, err := source.Fragments(context.Background(), SampleLease)
	if err != nil {
		t.Fatalf("Fragments failed: %v", err)
	}
	if len(fragments) != 7 {
		t.Fatalf("expected 7 fragments, got %d", len(fragments))
	}
	for i, f := range fragments {
		if f.Original == "" || f.Section == "" {
			t.Errorf("fragment %d is incomplete: %+v", i, f)
		}
	}

	owners := map[domain.Owner]int{}
	for _, f := range fragments {
		owners[f.Owner]++
	}
	if owners[domain.OwnerLandlord] != 2 {
		t.Errorf("expected 2 landlord fragments, got %d", owners[domain.OwnerLandlord])
	}
}
