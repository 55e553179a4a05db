package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/R-Jayasree/LegalEase/internal/core/domain"
)

const notSpecified = "Not specified"

// Aggregator folds annotated clauses into a document summary.
// Summarize is pure: identical input yields byte-identical output, and
// every list field is emitted even when empty.
type Aggregator struct{}

// NewAggregator creates a new Aggregator
func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// Summarize builds the summary from a clause set. Risks are ordered by
// severity descending with ties broken by arrival order; obligations
// are split by the owner tag; dates come from day-count figures on
// important clauses. All headline figures are composed from the numbers
// the annotator extracted at creation time.
func (a *Aggregator) Summarize(clauses []domain.Clause) *domain.DocumentSummary {
	risks := make([]domain.Clause, 0, len(clauses))
	tenantObligations := make([]string, 0)
	landlordObligations := make([]string, 0)
	importantDates := make([]string, 0)

	for _, clause := range clauses {
		switch clause.Category {
		case domain.CategoryRisk:
			risks = append(risks, clause)
		case domain.CategoryObligation:
			if clause.Owner == domain.OwnerLandlord {
				landlordObligations = append(landlordObligations, clause.Simplified)
			} else {
				tenantObligations = append(tenantObligations, clause.Simplified)
			}
		case domain.CategoryImportant:
			for _, days := range clause.Figures.DayCounts {
				importantDates = append(importantDates, fmt.Sprintf("%s: %d days' notice", clause.Section, days))
			}
		}
	}

	// Severity descending, stable on arrival order
	sort.SliceStable(risks, func(i, j int) bool {
		return risks[i].RiskLevel.Severity() > risks[j].RiskLevel.Severity()
	})

	majorRisks := make([]string, 0, len(risks))
	for _, clause := range risks {
		majorRisks = append(majorRisks, clause.Simplified)
		for _, days := range clause.Figures.DayCounts {
			// Risk clauses can carry notice periods too (rent increases)
			importantDates = append(importantDates, fmt.Sprintf("%s: %d days' notice", clause.Section, days))
		}
	}

	return &domain.DocumentSummary{
		Overview:            a.overview(clauses, risks),
		KeyTerms:            a.keyTerms(clauses),
		MajorRisks:          majorRisks,
		YourObligations:     tenantObligations,
		LandlordObligations: landlordObligations,
		ImportantDates:      importantDates,
		FinancialImpact:     a.financialImpact(clauses),
	}
}

func (a *Aggregator) overview(clauses, risks []domain.Clause) string {
	if len(clauses) == 0 {
		return "No clauses were identified in this document."
	}

	sections := make(map[string]struct{})
	high := 0
	for _, clause := range clauses {
		sections[clause.Section] = struct{}{}
		if clause.Category == domain.CategoryRisk && clause.RiskLevel == domain.RiskHigh {
			high++
		}
	}

	return fmt.Sprintf(
		"This document contains %d reviewed clauses across %d sections, establishing the rights and responsibilities of both parties. "+
			"%d of %d flagged risk items carry high risk and deserve close attention. "+
			"The analysis below covers the major risks, each party's obligations, important dates, and the financial impact of the agreement.",
		len(clauses), len(sections), high, len(risks))
}

func (a *Aggregator) keyTerms(clauses []domain.Clause) domain.KeyTerms {
	terms := domain.KeyTerms{
		RentAmount:      notSpecified,
		LeaseDuration:   notSpecified,
		SecurityDeposit: notSpecified,
		LateFeePenalty:  notSpecified,
	}

	if payment, ok := findClause(clauses, sectionHas("payment")); ok {
		if rent, ok := payment.Figures.FirstAmount(); ok {
			terms.RentAmount = rent.Display + " per month"
		}
		if len(payment.Figures.Percents) > 0 && len(payment.Figures.Amounts) > 1 {
			terms.LateFeePenalty = fmt.Sprintf("%s of rent + %s/day",
				payment.Figures.Percents[0], payment.Figures.Amounts[1].Display)
		}
	}

	if deposit, ok := findClause(clauses, sectionHas("deposit")); ok {
		if amount, ok := deposit.Figures.FirstAmount(); ok {
			terms.SecurityDeposit = amount.Display
		}
	}

	if term, ok := findClause(clauses, hasLeaseTerm); ok {
		months := term.Figures.MonthCounts[0]
		terms.LeaseDuration = fmt.Sprintf("%d months", months)
		if sectionHas("renewal")(term) {
			terms.LeaseDuration += " (renewable)"
		}
	}

	return terms
}

func (a *Aggregator) financialImpact(clauses []domain.Clause) domain.FinancialImpact {
	impact := domain.FinancialImpact{
		MonthlyCommitment:  notSpecified,
		PotentialPenalties: notSpecified,
		TotalCostEstimate:  notSpecified,
	}

	var rent domain.Amount
	haveRent := false
	if payment, ok := findClause(clauses, sectionHas("payment")); ok {
		rent, haveRent = payment.Figures.FirstAmount()
	}
	if !haveRent {
		return impact
	}

	impact.MonthlyCommitment = rent.Display + " (rent) + utilities + potential fees"

	if termination, ok := findClause(clauses, func(c domain.Clause) bool {
		return c.Category == domain.CategoryRisk && sectionHas("termination")(c) && len(c.Figures.MonthCounts) > 0
	}); ok {
		penalty := rent.Cents * int64(termination.Figures.MonthCounts[0])
		impact.PotentialPenalties = fmt.Sprintf("Up to %s for early termination + daily late fees", formatUSD(penalty))
	}

	months := 12
	if term, ok := findClause(clauses, hasLeaseTerm); ok {
		months = term.Figures.MonthCounts[0]
	}
	estimate := fmt.Sprintf("%s annually (rent only)", formatUSD(rent.Cents*int64(months)))
	if deposit, ok := findClause(clauses, sectionHas("deposit")); ok {
		if amount, ok := deposit.Figures.FirstAmount(); ok {
			estimate += fmt.Sprintf(" + %s deposit", amount.Display)
		}
	}
	impact.TotalCostEstimate = estimate

	return impact
}

// findClause returns the first clause matching the predicate, in input
// order - part of the determinism contract.
func findClause(clauses []domain.Clause, match func(domain.Clause) bool) (domain.Clause, bool) {
	for _, clause := range clauses {
		if match(clause) {
			return clause, true
		}
	}
	return domain.Clause{}, false
}

func sectionHas(text string) func(domain.Clause) bool {
	return func(c domain.Clause) bool {
		return strings.Contains(strings.ToLower(c.Section), text)
	}
}

func hasLeaseTerm(c domain.Clause) bool {
	return c.Category == domain.CategoryImportant && len(c.Figures.MonthCounts) > 0
}

// formatUSD renders cents as a dollar display string with thousands
// separators, dropping the fraction for whole-dollar values
func formatUSD(cents int64) string {
	dollars := cents / 100
	remainder := cents % 100

	digits := fmt.Sprintf("%d", dollars)
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	out := "$" + strings.Join(groups, ",")
	if remainder != 0 {
		out += fmt.Sprintf(".%02d", remainder)
	}
	return out
}
