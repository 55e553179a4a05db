package services

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/R-Jayasree/LegalEase/internal/core/domain"
	"github.com/R-Jayasree/LegalEase/internal/runtime"
)

// Annotator assigns a taxonomy verdict and a simplified rendering to
// each fragment. Pure transform: no side effects beyond the warning log
// for dropped fragments.
type Annotator struct {
	services *runtime.Services
	logger   *slog.Logger
}

// NewAnnotator creates a new Annotator
func NewAnnotator(services *runtime.Services, logger *slog.Logger) *Annotator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Annotator{services: services, logger: logger}
}

// Annotate classifies a fragment batch in order. Fragments with empty
// original text are dropped with a warning and the rest of the batch
// still annotates; a rule emitting an out-of-vocabulary verdict fails
// the whole batch with domain.ErrTaxonomyViolation.
func (a *Annotator) Annotate(ctx context.Context, fragments []domain.Fragment) ([]domain.Clause, error) {
	rules := a.services.ClassificationRules().InOrder()

	clauses := make([]domain.Clause, 0, len(fragments))
	for i, fragment := range fragments {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if strings.TrimSpace(fragment.Original) == "" {
			a.logger.Warn("dropping fragment with empty text",
				"section", fragment.Section,
				"position", i,
				"reason", domain.ErrInvalidFragment,
			)
			continue
		}

		clause, err := a.annotateOne(fragment, rules)
		if err != nil {
			return nil, err
		}
		clause.ID = fmt.Sprintf("clause-%d", len(clauses)+1)
		clauses = append(clauses, clause)
	}

	return clauses, nil
}

// annotateOne evaluates the classification rules in ascending priority;
// the first match wins and the default guarantees a verdict.
func (a *Annotator) annotateOne(fragment domain.Fragment, rules []domain.ClassificationRule) (domain.Clause, error) {
	for _, rule := range rules {
		if !rule.Default && (rule.Match == nil || !rule.Match(fragment)) {
			continue
		}

		if !rule.Verdict.Valid() {
			return domain.Clause{}, fmt.Errorf("rule %q emitted category=%q level=%q: %w",
				rule.Name, rule.Verdict.Category, rule.Verdict.RiskLevel, domain.ErrTaxonomyViolation)
		}

		simplified := fragment.Original
		if rule.Simplify != nil {
			simplified = rule.Simplify(fragment)
		}

		return domain.Clause{
			Original:   fragment.Original,
			Simplified: simplified,
			Category:   rule.Verdict.Category,
			RiskLevel:  rule.Verdict.RiskLevel,
			Section:    fragment.Section,
			Owner:      fragment.Owner,
			Figures:    extractFigures(fragment.Original),
		}, nil
	}

	// Unreachable with a validated table
	return domain.Clause{}, domain.ErrNoDefaultRule
}

// Figure extraction patterns. Amounts keep the document's spelling as
// the display form; day and month counts prefer the parenthesized
// numeral legal drafting favors ("sixty (60) days").
var (
	amountPattern  = regexp.MustCompile(`\$[0-9][0-9,]*(?:\.[0-9]{2})?`)
	percentPattern = regexp.MustCompile(`[0-9]+(?:\.[0-9]+)?%`)
	dayPattern     = regexp.MustCompile(`(?i)\(?([0-9]+)\)?\s+days?\b`)
	monthPattern   = regexp.MustCompile(`(?i)\(?([0-9]+)\)?\s+months?\b`)
)

// extractFigures pulls the canonical numbers out of clause text once,
// at annotation time. Downstream consumers work from these figures and
// never re-parse prose.
func extractFigures(text string) domain.Figures {
	var figures domain.Figures

	for _, match := range amountPattern.FindAllString(text, -1) {
		cents, ok := parseCents(match)
		if !ok {
			continue
		}
		figures.Amounts = append(figures.Amounts, domain.Amount{
			Cents:   cents,
			Display: match,
		})
	}

	figures.Percents = percentPattern.FindAllString(text, -1)

	for _, match := range dayPattern.FindAllStringSubmatch(text, -1) {
		if n, err := strconv.Atoi(match[1]); err == nil {
			figures.DayCounts = append(figures.DayCounts, n)
		}
	}
	for _, match := range monthPattern.FindAllStringSubmatch(text, -1) {
		if n, err := strconv.Atoi(match[1]); err == nil {
			figures.MonthCounts = append(figures.MonthCounts, n)
		}
	}

	return figures
}

// parseCents converts "$2,500" or "$25.50" to cents
func parseCents(display string) (int64, bool) {
	s := strings.TrimPrefix(display, "$")
	s = strings.ReplaceAll(s, ",", "")

	whole := s
	fraction := "00"
	if idx := strings.Index(s, "."); idx != -1 {
		whole = s[:idx]
		fraction = s[idx+1:]
	}

	dollars, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, false
	}
	cents, err := strconv.ParseInt(fraction, 10, 64)
	if err != nil {
		return 0, false
	}
	return dollars*100 + cents, true
}
