package usecase

import "github.com/airline-sim/airline-route-simulator/internal/domain"

// CrewAssigner picks pilot seniority from aircraft size.
type CrewAssigner struct {
	juniorPay   domain.Money
	midLevelPay domain.Money
	seniorPay   domain.Money
}

// NewCrewAssigner reads the three pilot pay settings.
func NewCrewAssigner(settings domain.Settings) (*CrewAssigner, error) {
	junior, err := settings.Money(domain.KeyJuniorPilotPay)
	if err != nil {
		return nil, err
	}
	mid, err := settings.Money(domain.KeyMidLevelPilotPay)
	if err != nil {
		return nil, err
	}
	senior, err := settings.Money(domain.KeySeniorPilotPay)
	if err != nil {
		return nil, err
	}
	return &CrewAssigner{juniorPay: junior, midLevelPay: mid, seniorPay: senior}, nil
}

// Assign returns a new crew member for an aircraft of the given size.
// Large gets a senior pilot, medium a mid-level one, anything else a junior.
func (c *CrewAssigner) Assign(size domain.AircraftSize) domain.CrewMember {
	switch size {
	case domain.SizeLarge:
		return domain.CrewMember{Seniority: domain.SenioritySenior, CostPerFlight: c.seniorPay}
	case domain.SizeMedium:
		return domain.CrewMember{Seniority: domain.SeniorityMidLevel, CostPerFlight: c.midLevelPay}
	default:
		return domain.CrewMember{Seniority: domain.SeniorityJunior, CostPerFlight: c.juniorPay}
	}
}
