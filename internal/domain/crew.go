package domain

// Seniority is a pilot pay tier.
type Seniority string

// Pilot pay tiers.
const (
	SeniorityJunior   Seniority = "JUNIOR"
	SeniorityMidLevel Seniority = "MIDLEVEL"
	SenioritySenior   Seniority = "SENIOR"
)

// CrewMember is a pilot assigned to a single flight.
type CrewMember struct {
	Seniority     Seniority
	CostPerFlight Money
}
