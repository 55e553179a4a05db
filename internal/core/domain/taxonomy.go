package domain

// Category classifies why a clause matters to the reader.
// The vocabulary is closed; anything else is a taxonomy violation.
type Category string

const (
	CategoryRisk       Category = "risk"
	CategoryObligation Category = "obligation"
	CategoryImportant  Category = "important"
)

// Valid reports whether the category is part of the taxonomy
func (c Category) Valid() bool {
	switch c {
	case CategoryRisk, CategoryObligation, CategoryImportant:
		return true
	}
	return false
}

// RiskLevel is the severity attached to a clause.
// The vocabulary is closed; anything else is a taxonomy violation.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Valid reports whether the risk level is part of the taxonomy
func (r RiskLevel) Valid() bool {
	switch r {
	case RiskLow, RiskMedium, RiskHigh:
		return true
	}
	return false
}

// Severity returns the total order on risk levels (high > medium > low).
// Used for sorting and severity-based tie-breaking. Invalid levels rank
// below low so they can never displace a valid clause in a summary.
func (r RiskLevel) Severity() int {
	switch r {
	case RiskHigh:
		return 3
	case RiskMedium:
		return 2
	case RiskLow:
		return 1
	}
	return 0
}

// Owner identifies which party a clause binds. Carried on the fragment
// and used to split obligations between tenant and landlord.
type Owner string

const (
	OwnerTenant   Owner = "tenant"
	OwnerLandlord Owner = "landlord"
	OwnerNone     Owner = ""
)
