package domain

import (
	"fmt"
	"math"
)

// FlightInput is the raw description of a flight before crew and money are attached.
// Loaders and the synthetic generator both produce it.
type FlightInput struct {
	Size        AircraftSize
	MaxSeats    SeatCounts
	Occupied    SeatCounts
	Prices      SeatPrices
	Source      string
	Destination string
	Distance    float64
}

// Validate checks the seat and distance constraints of the input.
func (in FlightInput) Validate() error {
	if !in.Size.IsValid() {
		return fmt.Errorf("%w: unknown aircraft size %q", ErrInvalidFlight, in.Size)
	}
	if in.Distance <= 0 || math.IsNaN(in.Distance) || math.IsInf(in.Distance, 0) {
		return fmt.Errorf("%w: distance must be positive, got %v", ErrInvalidFlight, in.Distance)
	}
	for i := 0; i < SectionCount; i++ {
		if in.MaxSeats[i] < 0 || in.Occupied[i] < 0 {
			return fmt.Errorf("%w: negative seat count in section %s", ErrInvalidFlight, SectionClasses[i])
		}
		if in.Occupied[i] > in.MaxSeats[i] {
			return fmt.Errorf("%w: section %s has %d occupied of %d",
				ErrSeatOverflow, SectionClasses[i], in.Occupied[i], in.MaxSeats[i])
		}
	}
	return nil
}

// RCP holds the derived revenue, cost and profit of a flight.
type RCP struct {
	Revenue Money
	Cost    Money
	Profit  Money
}

// FlightRecord is one simulated or ingested flight. Its inputs are fixed at
// construction; the RCP figures may be set exactly once.
type FlightRecord struct {
	size        AircraftSize
	maxSeats    SeatCounts
	occupied    SeatCounts
	prices      SeatPrices
	source      Airport
	destination Airport
	distance    float64
	pilot       CrewMember
	coPilot     CrewMember
	aircraft    Aircraft

	rcp    RCP
	rcpSet bool
}

// NewFlightRecord assembles a flight from its inputs and crew.
func NewFlightRecord(in FlightInput, pilot, coPilot CrewMember) *FlightRecord {
	return &FlightRecord{
		size:        in.Size,
		maxSeats:    in.MaxSeats,
		occupied:    in.Occupied,
		prices:      in.Prices,
		source:      NewAirport(in.Source),
		destination: NewAirport(in.Destination),
		distance:    in.Distance,
		pilot:       pilot,
		coPilot:     coPilot,
		aircraft:    NewAircraft(in.Size, in.MaxSeats, in.Occupied, in.Prices),
	}
}

func (f *FlightRecord) Size() AircraftSize { return f.size }
func (f *FlightRecord) MaxSeats() SeatCounts { return f.maxSeats }
func (f *FlightRecord) Occupied() SeatCounts { return f.occupied }
func (f *FlightRecord) Prices() SeatPrices { return f.prices }
func (f *FlightRecord) Source() Airport { return f.source }
func (f *FlightRecord) Destination() Airport { return f.destination }
func (f *FlightRecord) Distance() float64 { return f.distance }
func (f *FlightRecord) Pilot() CrewMember { return f.pilot }
func (f *FlightRecord) CoPilot() CrewMember { return f.coPilot }
func (f *FlightRecord) Aircraft() Aircraft { return f.aircraft }
func (f *FlightRecord) Revenue() Money { return f.rcp.Revenue }
func (f *FlightRecord) Cost() Money { return f.rcp.Cost }
func (f *FlightRecord) Profit() Money { return f.rcp.Profit }
func (f *FlightRecord) RCP() RCP { return f.rcp }
func (f *FlightRecord) HasRCP() bool { return f.rcpSet }

// SetRCP stores the derived figures. It fails if they were already stored.
func (f *FlightRecord) SetRCP(rcp RCP) error {
	if f.rcpSet {
		return ErrRCPAlreadySet
	}
	f.rcp = rcp
	f.rcpSet = true
	return nil
}

// Validate reports seat overflow or malformed inputs. Construction does not call it;
// the loader decides whether to reject.
func (f *FlightRecord) Validate() error {
	return FlightInput{
		Size:        f.size,
		MaxSeats:    f.maxSeats,
		Occupied:    f.occupied,
		Prices:      f.prices,
		Source:      f.source.Name,
		Destination: f.destination.Name,
		Distance:    f.distance,
	}.Validate()
}
