package services

import (
	"context"
	"errors"
	"testing"

	"github.com/R-Jayasree/LegalEase/internal/core/domain"
	"github.com/R-Jayasree/LegalEase/internal/rules"
	"github.com/R-Jayasree/LegalEase/internal/runtime"
)

func TestAnnotator_Annotate_SampleLease(t *testing.T) {
	annotator := NewAnnotator(newTestServices(t), nil)

	clauses, err := annotator.Annotate(context.Background(), rules.LeaseFragments())
	if err != nil {
		t.Fatalf("Annotate failed: %v", err)
	}
	if len(clauses) != 7 {
		t.Fatalf("expected 7 clauses, got %d", len(clauses))
	}

	want := []struct {
		category domain.Category
		level    domain.RiskLevel
		section  string
	}{
		{domain.CategoryRisk, domain.RiskHigh, "Rent Payment Terms"},
		{domain.CategoryRisk, domain.RiskMedium, "Rent Increases"},
		{domain.CategoryObligation, domain.RiskLow, "Maintenance and Repairs"},
		{domain.CategoryObligation, domain.RiskLow, "Maintenance and Repairs"},
		{domain.CategoryRisk, domain.RiskHigh, "Early Termination"},
		{domain.CategoryImportant, domain.RiskMedium, "Security Deposit"},
		{domain.CategoryImportant, domain.RiskMedium, "Lease Term and Renewal"},
	}

	for i, w := range want {
		clause := clauses[i]
		if clause.Category != w.category || clause.RiskLevel != w.level {
			t.Errorf("clause %d (%s): got %s/%s, want %s/%s",
				i, clause.Section, clause.Category, clause.RiskLevel, w.category, w.level)
		}
		if clause.Section != w.section {
			t.Errorf("clause %d: got section %q, want %q", i, clause.Section, w.section)
		}
		if clause.Simplified == "" {
			t.Errorf("clause %d: empty simplified text", i)
		}
	}

	// IDs are assigned in batch order
	if clauses[0].ID != "clause-1" || clauses[6].ID != "clause-7" {
		t.Errorf("unexpected clause IDs: %s ... %s", clauses[0].ID, clauses[6].ID)
	}
}

func TestAnnotator_DropsEmptyFragments(t *testing.T) {
	annotator := NewAnnotator(newTestServices(t), nil)

	fragments := []domain.Fragment{
		{Original: "Tenant shall pay rent of $2,500.", Section: "Rent Payment Terms"},
		{Original: "   ", Section: "Blank"},
		{Original: "", Section: "Also Blank"},
		{Original: "Tenant has deposited $2,500 as security for performance.", Section: "Security Deposit"},
	}

	clauses, err := annotator.Annotate(context.Background(), fragments)
	if err != nil {
		t.Fatalf("Annotate failed: %v", err)
	}
	if len(clauses) != 2 {
		t.Fatalf("expected 2 clauses after dropping blanks, got %d", len(clauses))
	}

	// IDs stay contiguous across the dropped fragments
	if clauses[0].ID != "clause-1" || clauses[1].ID != "clause-2" {
		t.Errorf("expected contiguous IDs, got %s and %s", clauses[0].ID, clauses[1].ID)
	}
}

func TestAnnotator_TaxonomyViolationFailsBatch(t *testing.T) {
	table := domain.ClassificationRules{
		{
			Name:     "broken",
			Priority: 10,
			Match:    domain.TextContainsAny("rent"),
			Verdict:  domain.Verdict{Category: "urgent", RiskLevel: domain.RiskHigh},
		},
		{
			Name:     "default",
			Priority: 100,
			Verdict:  domain.Verdict{Category: domain.CategoryImportant, RiskLevel: domain.RiskLow},
			Default:  true,
		},
	}
	services, err := runtime.NewServices(rules.LeaseIntentRules(), table)
	if err != nil {
		t.Fatalf("failed to build services: %v", err)
	}
	annotator := NewAnnotator(services, nil)

	fragments := []domain.Fragment{
		{Original: "Some unmatched clause.", Section: "Misc"},
		{Original: "Tenant shall pay rent monthly.", Section: "Rent"},
	}

	clauses, err := annotator.Annotate(context.Background(), fragments)
	if !errors.Is(err, domain.ErrTaxonomyViolation) {
		t.Fatalf("expected ErrTaxonomyViolation, got %v", err)
	}
	if clauses != nil {
		t.Errorf("expected no clauses on batch failure, got %d", len(clauses))
	}
}

func TestAnnotator_ContextCancellation(t *testing.T) {
	annotator := NewAnnotator(newTestServices(t), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := annotator.Annotate(ctx, rules.LeaseFragments())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestExtractFigures(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantCents  []int64
		wantPcts   []string
		wantDays   []int
		wantMonths []int
	}{
		{
			name:      "payment clause",
			text:      "Rent of $2,500 per month. Late payment incurs 5% plus $25 per day.",
			wantCents: []int64{250000, 2500},
			wantPcts:  []string{"5%"},
		},
		{
			name:       "notice clause with parenthesized numerals",
			text:       "sixty (60) days written notice, not to exceed ten percent (10%) in any twelve (12) month period",
			wantPcts:   []string{"10%"},
			wantDays:   []int{60},
			wantMonths: []int{12},
		},
		{
			name:       "termination penalty",
			text:       "a penalty equal to two (2) months' rent",
			wantMonths: []int{2},
		},
		{
			name:      "decimal amount",
			text:      "an administrative fee of $25.50",
			wantCents: []int64{2550},
		},
		{
			name: "no figures",
			text: "The parties agree to act in good faith.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			figures := extractFigures(tt.text)

			if len(figures.Amounts) != len(tt.wantCents) {
				t.Fatalf("got %d amounts, want %d", len(figures.Amounts), len(tt.wantCents))
			}
			for i, cents := range tt.wantCents {
				if figures.Amounts[i].Cents != cents {
					t.Errorf("amount %d: got %d cents, want %d", i, figures.Amounts[i].Cents, cents)
				}
			}

			if len(figures.Percents) != len(tt.wantPcts) {
				t.Fatalf("got %v percents, want %v", figures.Percents, tt.wantPcts)
			}
			for i, pct := range tt.wantPcts {
				if figures.Percents[i] != pct {
					t.Errorf("percent %d: got %s, want %s", i, figures.Percents[i], pct)
				}
			}

			if len(figures.DayCounts) != len(tt.wantDays) {
				t.Fatalf("got %v day counts, want %v", figures.DayCounts, tt.wantDays)
			}
			for i, days := range tt.wantDays {
				if figures.DayCounts[i] != days {
					t.Errorf("day count %d: got %d, want %d", i, figures.DayCounts[i], days)
				}
			}

			if len(figures.MonthCounts) != len(tt.wantMonths) {
				t.Fatalf("got %v month counts, want %v", figures.MonthCounts, tt.wantMonths)
			}
			for i, months := range tt.wantMonths {
				if figures.MonthCounts[i] != months {
					t.Errorf("month count %d: got %d, want %d", i, figures.MonthCounts[i], months)
				}
			}
		})
	}
}

func TestParseCents(t *testing.T) {
	tests := []struct {
		display string
		want    int64
		ok      bool
	}{
		{"$2,500", 250000, true},
		{"$25", 2500, true},
		{"$25.50", 2550, true},
		{"$1,250,000", 125000000, true},
		{"$", 0, false},
	}

	for _, tt := range tests {
		got, ok := parseCents(tt.display)
		if ok != tt.ok || got != tt.want {
			t.Errorf("parseCents(%q) = %d, %v; want %d, %v", tt.display, got, ok, tt.want, tt.ok)
		}
	}
}
