// Package rules carries the demo rule tables for the sample residential
// lease. Tables are data, not logic: precedence between overlapping
// keyword sets is encoded in the Priority column, so changing which rule
// wins an ambiguous query is a table edit reviewed like any other change.
package rules

import "github.com/R-Jayasree/LegalEase/internal/core/domain"

// Canned responses for the sample lease
const (
	responsePenalties = `Based on your lease agreement, if you cancel early, you may be required to pay a penalty equal to two months' rent ($5,000). The lease also mentions you're responsible for advertising costs to find a new tenant. This is found in the "Early Termination" clause.`

	responseRentIncrease = `According to your lease, your landlord can increase rent with 60 days written notice, but the increase cannot exceed 10% of your current rent in any 12-month period. For your $2,500/month rent, this means a maximum increase of $250 per year.`

	responseLatePayment = `If you pay rent late, you'll be charged a penalty of 5% of your monthly rent ($125) plus an additional $25 for each day you're late. For example, if you're 3 days late, you'd pay $125 + $75 = $200 in penalties.`

	responseMaintenance = `You are responsible for keeping the apartment clean and reporting any repair issues to your landlord promptly. Your landlord handles major structural repairs and appliance maintenance. This means you handle day-to-day upkeep while they handle big repairs.`

	responseSecurityDeposit = `You paid a $2,500 security deposit. This can be used to cover unpaid rent, damages beyond normal wear and tear, or cleaning costs when you move out. You should get it back if you leave the place in good condition.`

	responseTermination = `To end your lease early, you'll need to pay a penalty equal to two months' rent ($5,000) and cover any advertising costs your landlord incurs to find a new tenant. The exact amount depends on how much it costs to re-rent the unit.`

	responseFees = `The main fees in your lease are: 1) Late payment penalty of 5% + $25/day if rent is late, 2) Early termination penalty of 2 months' rent, 3) Potential advertising costs if you break the lease early.`

	responseObligations = `Your main responsibilities include: paying $2,500 rent by the 1st of each month, maintaining the property in good condition, promptly reporting repair needs, and following all lease terms to avoid penalties.`

	responseRights = `Your rights include: 60 days notice before any rent increase, rent increases limited to 10% per year, landlord responsibility for major repairs, and return of your security deposit if you meet lease terms.`

	responseDefault = `I can help you understand any part of your legal document. Try asking about specific terms like "What happens if I break the lease?", "What are my maintenance responsibilities?", or "What fees should I know about?"`
)

// LeaseIntentRules returns the intent table for the sample lease.
// Priorities preserve the original response cascade; in particular the
// compound rent-increase rule (20) outranks every later rule that would
// also match on "rent" alone, and late-payment (30) wins queries
// containing "fee" before the generic fees rule (70) is reached.
func LeaseIntentRules() domain.RuleTable {
	return domain.RuleTable{
		{
			Name:     "early-termination-penalty",
			Priority: 10,
			Match:    domain.ContainsAny("penalty", "cancel", "break", "early", "terminate"),
			Response: responsePenalties,
		},
		{
			Name:     "rent-increase",
			Priority: 20,
			Match: domain.AnyOf(
				domain.AllOf(domain.Contains("rent"), domain.Contains("increase")),
				domain.Contains("raise rent"),
			),
			Response: responseRentIncrease,
		},
		{
			Name:     "late-payment",
			Priority: 30,
			Match: domain.AnyOf(
				domain.Contains("late"),
				domain.AllOf(domain.Contains("payment"), domain.ContainsAny("fee", "penalty")),
			),
			Response: responseLatePayment,
		},
		{
			Name:     "maintenance",
			Priority: 40,
			Match:    domain.ContainsAny("maintenance", "repair", "fix"),
			Response: responseMaintenance,
		},
		{
			Name:     "security-deposit",
			Priority: 50,
			Match:    domain.ContainsAny("security deposit", "deposit"),
			Response: responseSecurityDeposit,
		},
		{
			Name:     "termination",
			Priority: 60,
			Match:    domain.ContainsAny("termination", "end lease", "move out"),
			Response: responseTermination,
		},
		{
			Name:     "fees",
			Priority: 70,
			Match:    domain.ContainsAny("fees", "charges", "cost"),
			Response: responseFees,
		},
		{
			Name:     "obligations",
			Priority: 80,
			Match:    domain.ContainsAny("obligation", "responsibility", "duties"),
			Response: responseObligations,
		},
		{
			Name:     "rights",
			Priority: 90,
			Match:    domain.ContainsAny("rights", "protection", "what can"),
			Response: responseRights,
		},
		{
			Name:     "default",
			Priority: 100,
			Response: responseDefault,
			Default:  true,
		},
	}
}
