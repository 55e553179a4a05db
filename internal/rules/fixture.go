package rules

import (
	"context"

	"github.com/R-Jayasree/LegalEase/internal/core/domain"
	"github.com/R-Jayasree/LegalEase/internal/core/ports/driven"
)

// SampleLeaseName is the display name of the bundled sample document
const SampleLeaseName = "Sample Lease Agreement.pdf"

// SampleLease is the bundled demo document
const SampleLease = `RESIDENTIAL LEASE AGREEMENT

This Lease Agreement ("Agreement") is entered into on January 1, 2024, between John Smith ("Landlord") and Jane Doe ("Tenant") for the property located at 123 Main Street, Anytown, ST 12345.

RENT PAYMENT TERMS
The Tenant shall pay rent in the amount of $2,500 per calendar month, due and payable in advance on or before the first day of each month. Late payment shall incur a penalty of 5% of the monthly rent amount plus $25 administrative fee for each day the payment is delinquent.

RENT INCREASES
Landlord reserves the right to increase rent with sixty (60) days written notice to Tenant, provided such increase does not exceed ten percent (10%) of the current monthly rental amount in any twelve (12) month period.

MAINTENANCE AND REPAIRS
Tenant acknowledges responsibility for maintaining the premises in good condition and shall promptly notify Landlord of any necessary repairs or maintenance issues. Landlord shall be responsible for major structural repairs and appliance maintenance.

EARLY TERMINATION
In the event Tenant terminates this lease prior to the expiration date, Tenant shall pay a penalty equal to two (2) months' rent and shall be responsible for advertising costs incurred by Landlord to secure a replacement tenant.

SECURITY DEPOSIT
Tenant has deposited $2,500 as security for performance of Tenant's obligations. This deposit may be applied toward unpaid rent, damages, or cleaning costs upon termination of tenancy.

LEASE TERM AND RENEWAL
This Agreement shall commence on January 1, 2024 and continue for a term of twelve (12) months, renewable upon mutual agreement. Tenant shall provide thirty (30) days written notice prior to expiration if Tenant does not intend to renew.
`

// LeaseFragments returns the demo fragment batch in document order
func LeaseFragments() []domain.Fragment {
	return []domain.Fragment{
		{
			Original:   `The Tenant shall pay rent in the amount of $2,500 per calendar month, due and payable in advance on or before the first day of each month. Late payment shall incur a penalty of 5% of the monthly rent amount plus $25 administrative fee for each day the payment is delinquent.`,
			Section:    "Rent Payment Terms",
			SourceHint: "page 1",
			Owner:      domain.OwnerTenant,
		},
		{
			Original:   `Landlord reserves the right to increase rent with sixty (60) days written notice to Tenant, provided such increase does not exceed ten percent (10%) of the current monthly rental amount in any twelve (12) month period.`,
			Section:    "Rent Increases",
			SourceHint: "page 1",
			Owner:      domain.OwnerLandlord,
		},
		{
			Original:   `Tenant acknowledges responsibility for maintaining the premises in good condition and shall promptly notify Landlord of any necessary repairs or maintenance issues.`,
			Section:    "Maintenance and Repairs",
			SourceHint: "page 1",
			Owner:      domain.OwnerTenant,
		},
		{
			Original:   `Landlord shall be responsible for major structural repairs and appliance maintenance.`,
			Section:    "Maintenance and Repairs",
			SourceHint: "page 1",
			Owner:      domain.OwnerLandlord,
		},
		{
			Original:   `In the event Tenant terminates this lease prior to the expiration date, Tenant shall pay a penalty equal to two (2) months' rent and shall be responsible for advertising costs incurred by Landlord to secure a replacement tenant.`,
			Section:    "Early Termination",
			SourceHint: "page 2",
			Owner:      domain.OwnerTenant,
		},
		{
			Original:   `Tenant has deposited $2,500 as security for performance of Tenant's obligations. This deposit may be applied toward unpaid rent, damages, or cleaning costs upon termination of tenancy.`,
			Section:    "Security Deposit",
			SourceHint: "page 2",
			Owner:      domain.OwnerTenant,
		},
		{
			Original:   `This Agreement shall commence on January 1, 2024 and continue for a term of twelve (12) months, renewable upon mutual agreement. Tenant shall provide thirty (30) days written notice prior to expiration if Tenant does not intend to renew.`,
			Section:    "Lease Term and Renewal",
			SourceHint: "page 2",
			Owner:      domain.OwnerTenant,
		},
	}
}

// Verify interface compliance
var _ driven.FragmentSource = (*FixtureSource)(nil)

// FixtureSource is the demo FragmentSource. It serves the bundled lease
// fragments regardless of document content; a production source would
// segment the supplied text instead.
type FixtureSource struct{}

// NewFixtureSource creates a new FixtureSource
func NewFixtureSource() *FixtureSource {
	return &FixtureSource{}
}

func (s *FixtureSource) Fragments(ctx context.Context, content string) ([]domain.Fragment, error) {
	return LeaseFragments(), nil
}
