package domain

// Fragment is a raw piece of the source document, as supplied by the
// clause source collaborator. Order within the batch is meaningful.
type Fragment struct {
	Original   string `json:"original"`
	Section    string `json:"section"`
	SourceHint string `json:"source_hint,omitempty"` // e.g. page or heading locator
	Owner      Owner  `json:"owner,omitempty"`       // which party the fragment binds
}

// Amount is a dollar figure extracted from clause text.
// Cents is the parsed value; Display preserves the document's spelling.
type Amount struct {
	Cents   int64  `json:"cents"`
	Display string `json:"display"`
}

// Figures holds the canonical numbers embedded in a clause, extracted
// once at annotation time. Downstream consumers never re-derive figures
// from prose.
type Figures struct {
	Amounts     []Amount `json:"amounts,omitempty"`
	Percents    []string `json:"percents,omitempty"`
	DayCounts   []int    `json:"day_counts,omitempty"`
	MonthCounts []int    `json:"month_counts,omitempty"`
}

// FirstAmount returns the first extracted dollar amount, if any
func (f Figures) FirstAmount() (Amount, bool) {
	if len(f.Amounts) == 0 {
		return Amount{}, false
	}
	return f.Amounts[0], true
}

// Clause is an annotated fragment of the source document.
// Category and RiskLevel are jointly assigned at creation and never
// mutated independently; the whole record is immutable after creation.
type Clause struct {
	ID         string    `json:"id"`
	Original   string    `json:"original"`
	Simplified string    `json:"simplified"`
	Category   Category  `json:"category"`
	RiskLevel  RiskLevel `json:"risk_level"`
	Section    string    `json:"section"`
	Owner      Owner     `json:"owner,omitempty"`
	Figures    Figures   `json:"figures"`
}
