// Package export renders an analysis as a plain-text report, the shape
// a user downloads after reviewing a document.
package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/R-Jayasree/LegalEase/internal/core/domain"
	"github.com/R-Jayasree/LegalEase/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.ReportExporter = (*TextExporter)(nil)

// TextExporter implements driven.ReportExporter with a plain-text layout
type TextExporter struct {
	// Now supplies the report timestamp; defaults to time.Now
	Now func() time.Time
}

// NewTextExporter creates a new TextExporter
func NewTextExporter() *TextExporter {
	return &TextExporter{Now: time.Now}
}

// Filename returns the suggested download filename for a document
func (e *TextExporter) Filename(documentName string) string {
	base := documentName
	if idx := strings.LastIndex(base, "."); idx > 0 {
		base = base[:idx]
	}
	return fmt.Sprintf("%s_Analysis_%s.txt", base, e.now().Format("2006-01-02"))
}

// Export writes the report for the analysis to w. Every section is
// rendered even when its bucket is empty.
func (e *TextExporter) Export(w io.Writer, analysis *domain.Analysis) error {
	var b strings.Builder

	title := "DOCUMENT ANALYSIS REPORT"
	b.WriteString(title + "\n")
	b.WriteString(strings.Repeat("=", len(title)) + "\n\n")
	fmt.Fprintf(&b, "Document:  %s\n", analysis.DocumentName)
	fmt.Fprintf(&b, "Generated: %s\n\n", e.now().Format("2006-01-02 15:04"))

	summary := analysis.Summary

	section(&b, "OVERVIEW")
	b.WriteString(summary.Overview + "\n\n")

	section(&b, "KEY TERMS")
	fmt.Fprintf(&b, "Rent amount:      %s\n", summary.KeyTerms.RentAmount)
	fmt.Fprintf(&b, "Lease duration:   %s\n", summary.KeyTerms.LeaseDuration)
	fmt.Fprintf(&b, "Security deposit: %s\n", summary.KeyTerms.SecurityDeposit)
	fmt.Fprintf(&b, "Late fee penalty: %s\n\n", summary.KeyTerms.LateFeePenalty)

	numbered(&b, "MAJOR RISKS", summary.MajorRisks)
	numbered(&b, "YOUR OBLIGATIONS", summary.YourObligations)
	numbered(&b, "LANDLORD OBLIGATIONS", summary.LandlordObligations)
	numbered(&b, "IMPORTANT DATES", summary.ImportantDates)

	section(&b, "FINANCIAL IMPACT")
	fmt.Fprintf(&b, "Monthly commitment:  %s\n", summary.FinancialImpact.MonthlyCommitment)
	fmt.Fprintf(&b, "Potential penalties: %s\n", summary.FinancialImpact.PotentialPenalties)
	fmt.Fprintf(&b, "Total cost estimate: %s\n\n", summary.FinancialImpact.TotalCostEstimate)

	section(&b, "CLAUSE-BY-CLAUSE BREAKDOWN")
	if len(analysis.Clauses) == 0 {
		b.WriteString("(none)\n")
	}
	for _, clause := range analysis.Clauses {
		fmt.Fprintf(&b, "[%s] %s / %s risk\n", clause.Section, clause.Category, clause.RiskLevel)
		fmt.Fprintf(&b, "Original:   %s\n", clause.Original)
		fmt.Fprintf(&b, "Simplified: %s\n\n", clause.Simplified)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func (e *TextExporter) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

func section(b *strings.Builder, heading string) {
	b.WriteString(heading + "\n")
	b.WriteString(strings.Repeat("-", len(heading)) + "\n")
}

func numbered(b *strings.Builder, heading string, items []string) {
	section(b, heading)
	if len(items) == 0 {
		b.WriteString("(none)\n")
	}
	for i, item := range items {
		fmt.Fprintf(b, "%d. %s\n", i+1, item)
	}
	b.WriteString("\n")
}
