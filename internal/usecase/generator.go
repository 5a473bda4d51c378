package usecase

import (
	"context"
	"fmt"

	"github.com/airline-sim/airline-route-simulator/internal/domain"
)

// Bias weights used by PickEdge. A draw below the weight moves the pick one step
// toward the long-distance end of the sorted edge list.
const (
	smallBias  = 0.25
	mediumBias = 0.5
	largeBias  = 0.75
)

// SizeProfile is the seat layout and fares of one aircraft size.
type SizeProfile struct {
	MaxSeats domain.SeatCounts
	Prices   domain.SeatPrices
}

// Generator produces synthetic flights over a route graph.
// It is not safe for concurrent use; the random source is not synchronized.
type Generator struct {
	rng       domain.RandomSource
	factory   *FlightFactory
	preferred domain.AircraftSize
	flights   int
	smallMax  float64
	mediumMax float64
	profiles  map[domain.AircraftSize]SizeProfile
}

// NewGenerator reads flight count, preferred size, range limits and the per-size seat
// profiles from settings.
func NewGenerator(settings domain.Settings, factory *FlightFactory, rng domain.RandomSource) (*Generator, error) {
	g := &Generator{
		rng:      rng,
		factory:  factory,
		profiles: make(map[domain.AircraftSize]SizeProfile, 3),
	}

	var err error
	if g.flights, err = settings.Int(domain.KeyNumberOfFlights); err != nil {
		return nil, err
	}
	if g.preferred, err = settings.AircraftSize(domain.KeyPreferredAircraftSize); err != nil {
		return nil, err
	}
	if g.smallMax, err = settings.Float(domain.KeySmallPlaneMaxRange); err != nil {
		return nil, err
	}
	if g.mediumMax, err = settings.Float(domain.KeyMediumPlaneMaxRange); err != nil {
		return nil, err
	}

	for _, size := range []domain.AircraftSize{domain.SizeSmall, domain.SizeMedium, domain.SizeLarge} {
		seats, err := settings.Sections(domain.SeatMaxKey(size))
		if err != nil {
			return nil, err
		}
		prices, err := settings.SectionPrices(domain.SeatPriceKey(size))
		if err != nil {
			return nil, err
		}
		g.profiles[size] = SizeProfile{MaxSeats: seats, Prices: prices}
	}

	return g, nil
}

// PreferredSize returns the size that biases edge selection.
func (g *Generator) PreferredSize() domain.AircraftSize {
	return g.preferred
}

// FlightCount returns how many flights GenerateMany produces.
func (g *Generator) FlightCount() int {
	return g.flights
}

// PickEdge selects an edge from a list sorted by ascending distance. For a known size
// it makes len(sorted)-1 draws and advances the index on every draw below the size's
// bias weight, so small aircraft favour short routes and large aircraft long ones.
// An unknown size picks uniformly.
func (g *Generator) PickEdge(sorted []domain.Edge, preferred domain.AircraftSize) (domain.Edge, error) {
	if len(sorted) == 0 {
		return domain.Edge{}, domain.ErrNoRoutes
	}

	var bias float64
	switch preferred {
	case domain.SizeSmall:
		bias = smallBias
	case domain.SizeMedium:
		bias = mediumBias
	case domain.SizeLarge:
		bias = largeBias
	default:
		return sorted[g.rng.Intn(len(sorted))], nil
	}

	index := 0
	for i := 0; i < len(sorted)-1; i++ {
		if g.rng.Float64() < bias {
			index++
		}
	}
	return sorted[index], nil
}

// ClassifyBySize maps a distance onto the aircraft size able to fly it.
func (g *Generator) ClassifyBySize(distance float64) domain.AircraftSize {
	switch {
	case distance < g.smallMax:
		return domain.SizeSmall
	case distance < g.mediumMax:
		return domain.SizeMedium
	default:
		return domain.SizeLarge
	}
}

// Profile returns the configured seats and fares for a size.
func (g *Generator) Profile(size domain.AircraftSize) SizeProfile {
	return g.profiles[size]
}

// RandomSeatsFilled draws occupancy in [0, max) for every section with seats installed.
// Sections without seats stay empty.
func (g *Generator) RandomSeatsFilled(size domain.AircraftSize) domain.SeatCounts {
	var filled domain.SeatCounts
	for i, capacity := range g.profiles[size].MaxSeats {
		if capacity > 0 {
			filled[i] = g.rng.Intn(capacity)
		}
	}
	return filled
}

// GenerateOne picks a route, sizes the aircraft for it, fills seats and builds the flight.
func (g *Generator) GenerateOne(sorted []domain.Edge) (*domain.FlightRecord, error) {
	edge, err := g.PickEdge(sorted, g.preferred)
	if err != nil {
		return nil, err
	}

	size := g.ClassifyBySize(edge.Distance)
	profile := g.profiles[size]

	return g.factory.Build(domain.FlightInput{
		Size:        size,
		MaxSeats:    profile.MaxSeats,
		Occupied:    g.RandomSeatsFilled(size),
		Prices:      profile.Prices,
		Source:      edge.Source,
		Destination: edge.Destination,
		Distance:    edge.Distance,
	})
}

// GenerateMany adds the configured number of synthetic flights to ledger and
// returns how many were added. It stops early if ctx is done.
func (g *Generator) GenerateMany(ctx context.Context, graph *domain.RouteGraph, ledger *domain.FlightLedger) (int, error) {
	sorted := graph.SortedEdges()
	if len(sorted) == 0 {
		return 0, domain.ErrNoRoutes
	}

	for i := 0; i < g.flights; i++ {
		if err := ctx.Err(); err != nil {
			return i, err
		}
		f, err := g.GenerateOne(sorted)
		if err != nil {
			return i, fmt.Errorf("generate flight %d: %w", i+1, err)
		}
		ledger.Add(f, graph)
	}
	return g.flights, nil
}
