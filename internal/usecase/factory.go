package usecase

import "github.com/airline-sim/airline-route-simulator/internal/domain"

// FlightFactory assembles flight records: crew, aircraft and RCP figures.
// It does not check seat counts against capacity; loaders do that before calling Build.
type FlightFactory struct {
	crew *CrewAssigner
	rcp  *RCPEngine
}

// NewFlightFactory creates a factory from its collaborators.
func NewFlightFactory(crew *CrewAssigner, rcp *RCPEngine) *FlightFactory {
	return &FlightFactory{crew: crew, rcp: rcp}
}

// NewFlightFactoryFromSettings wires a factory from model settings.
func NewFlightFactoryFromSettings(settings domain.Settings) (*FlightFactory, error) {
	crew, err := NewCrewAssigner(settings)
	if err != nil {
		return nil, err
	}
	rcp, err := NewRCPEngineFromSettings(settings)
	if err != nil {
		return nil, err
	}
	return NewFlightFactory(crew, rcp), nil
}

// RCP returns the engine used to price flights.
func (f *FlightFactory) RCP() *RCPEngine {
	return f.rcp
}

// Build creates a flight with two independently assigned pilots and its RCP set.
func (f *FlightFactory) Build(in domain.FlightInput) (*domain.FlightRecord, error) {
	pilot := f.crew.Assign(in.Size)
	coPilot := f.crew.Assign(in.Size)

	record := domain.NewFlightRecord(in, pilot, coPilot)
	if err := record.SetRCP(f.rcp.Compute(record)); err != nil {
		return nil, err
	}
	return record, nil
}

var _ domain.FlightBuilder = (*FlightFactory)(nil)
