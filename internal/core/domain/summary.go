package domain

// KeyTerms is the headline-figures table of a summary.
// Values are display strings composed from annotator-extracted figures.
type KeyTerms struct {
	RentAmount      string `json:"rent_amount"`
	LeaseDuration   string `json:"lease_duration"`
	SecurityDeposit string `json:"security_deposit"`
	LateFeePenalty  string `json:"late_fee_penalty"`
}

// FinancialImpact estimates what the document costs the reader
type FinancialImpact struct {
	MonthlyCommitment  string `json:"monthly_commitment"`
	PotentialPenalties string `json:"potential_penalties"`
	TotalCostEstimate  string `json:"total_cost_estimate"`
}

// DocumentSummary is the derived, read-only aggregate over a clause set.
// Recomputed deterministically from the same clauses - no hidden state.
// List fields are always non-nil so exported reports never carry absent
// sections, only empty ones.
type DocumentSummary struct {
	Overview            string          `json:"overview"`
	KeyTerms            KeyTerms        `json:"key_terms"`
	MajorRisks          []string        `json:"major_risks"`
	YourObligations     []string        `json:"your_obligations"`
	LandlordObligations []string        `json:"landlord_obligations"`
	ImportantDates      []string        `json:"important_dates"`
	FinancialImpact     FinancialImpact `json:"financial_impact"`
}
