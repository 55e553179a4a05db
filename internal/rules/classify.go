package rules

import "github.com/R-Jayasree/LegalEase/internal/core/domain"

// Canned simplifications for the sample lease, keyed by rule
const (
	simplifiedPayment = `You must pay $2,500 rent by the 1st of each month. If you're late, you'll pay an extra 5% of your rent ($125) plus $25 for each day you're late.`

	simplifiedRentIncrease = `Your landlord can raise your rent with 60 days notice, but not more than 10% per year (maximum $250 increase from current rent).`

	simplifiedTenantMaintenance = `You need to keep the apartment clean and tell your landlord about any repairs needed quickly.`

	simplifiedLandlordMaintenance = `Your landlord handles major structural repairs and keeps the appliances working.`

	simplifiedTermination = `Breaking the lease early costs you two months' rent plus whatever your landlord spends advertising for a new tenant.`

	simplifiedDeposit = `Your $2,500 deposit comes back when you move out, minus unpaid rent, damage, or cleaning costs.`

	simplifiedLeaseTerm = `The lease runs for 12 months. Tell your landlord 30 days before it ends if you're not renewing.`
)

func canned(text string) func(domain.Fragment) string {
	return func(domain.Fragment) string { return text }
}

// LeaseClassificationRules returns the classification table for the
// sample lease. Rules match on section headings first and fall back to
// keyword sets so re-sectioned documents still classify; the
// unconditional default files anything unrecognized as important/low.
func LeaseClassificationRules() domain.ClassificationRules {
	return domain.ClassificationRules{
		{
			Name:     "payment-terms",
			Priority: 10,
			Match: domain.EitherOf(
				domain.SectionContains("payment"),
				domain.TextContainsAny("pay rent", "delinquent"),
			),
			Verdict:  domain.Verdict{Category: domain.CategoryRisk, RiskLevel: domain.RiskHigh},
			Simplify: canned(simplifiedPayment),
		},
		{
			Name:     "rent-increase",
			Priority: 20,
			Match: domain.EitherOf(
				domain.SectionContains("rent increase"),
				domain.TextContainsAny("increase rent"),
			),
			Verdict:  domain.Verdict{Category: domain.CategoryRisk, RiskLevel: domain.RiskMedium},
			Simplify: canned(simplifiedRentIncrease),
		},
		{
			Name:     "early-termination",
			Priority: 30,
			Match: domain.EitherOf(
				domain.SectionContains("termination"),
				domain.TextContainsAny("terminates this lease", "replacement tenant"),
			),
			Verdict:  domain.Verdict{Category: domain.CategoryRisk, RiskLevel: domain.RiskHigh},
			Simplify: canned(simplifiedTermination),
		},
		{
			Name:     "landlord-maintenance",
			Priority: 40,
			Match: domain.EitherOf(
				domain.TextContainsAny("landlord shall be responsible", "structural repairs"),
			),
			Verdict:  domain.Verdict{Category: domain.CategoryObligation, RiskLevel: domain.RiskLow},
			Simplify: canned(simplifiedLandlordMaintenance),
		},
		{
			Name:     "tenant-maintenance",
			Priority: 50,
			Match: domain.EitherOf(
				domain.SectionContains("maintenance"),
				domain.TextContainsAny("maintaining the premises", "repairs or maintenance"),
			),
			Verdict:  domain.Verdict{Category: domain.CategoryObligation, RiskLevel: domain.RiskLow},
			Simplify: canned(simplifiedTenantMaintenance),
		},
		{
			Name:     "security-deposit",
			Priority: 60,
			Match: domain.EitherOf(
				domain.SectionContains("deposit"),
				domain.TextContainsAny("security for performance"),
			),
			Verdict:  domain.Verdict{Category: domain.CategoryImportant, RiskLevel: domain.RiskMedium},
			Simplify: canned(simplifiedDeposit),
		},
		{
			Name:     "lease-term",
			Priority: 70,
			Match: domain.EitherOf(
				domain.SectionContains("term"),
				domain.TextContainsAny("commence", "renew"),
			),
			Verdict:  domain.Verdict{Category: domain.CategoryImportant, RiskLevel: domain.RiskMedium},
			Simplify: canned(simplifiedLeaseTerm),
		},
		{
			Name:     "default",
			Priority: 100,
			Verdict:  domain.Verdict{Category: domain.CategoryImportant, RiskLevel: domain.RiskLow},
			Default:  true,
		},
	}
}
