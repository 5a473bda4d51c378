// Package mock provides configurable in-memory simulation inputs for integration tests:
// fixed routes, settings and recorded flights, with optional delays and errors.
package mock

import (
	"context"
	"sync"
	"time"

	"github.com/airline-sim/airline-route-simulator/internal/domain"
)

// Route is one edge of a fake graph.
type Route struct {
	Source      string
	Destination string
	Distance    float64
}

// counter tracks calls and applies the configured delay and error.
type counter struct {
	err       error
	delay     time.Duration
	callCount int
	mu        sync.Mutex
}

func (c *counter) call(ctx context.Context) error {
	c.mu.Lock()
	c.callCount++
	c.mu.Unlock()

	if c.delay > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(c.delay):
		}
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return c.err
}

// CallCount returns the number of loads so far.
func (c *counter) CallCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.callCount
}

// GraphSource is a fake domain.GraphSource.
type GraphSource struct {
	counter
	routes []Route
}

// NewGraphSource creates a graph source serving routes.
func NewGraphSource(routes ...Route) *GraphSource {
	return &GraphSource{routes: routes}
}

// WithDelay makes every load wait d, or until the context ends.
func (g *GraphSource) WithDelay(d time.Duration) *GraphSource {
	g.delay = d
	return g
}

// WithError makes every load fail with err.
func (g *GraphSource) WithError(err error) *GraphSource {
	g.err = err
	return g
}

// LoadGraph implements domain.GraphSource.
func (g *GraphSource) LoadGraph(ctx context.Context, graph *domain.RouteGraph) (domain.LoadReport, error) {
	var report domain.LoadReport
	if err := g.call(ctx); err != nil {
		return report, err
	}
	for _, r := range g.routes {
		graph.AddAirport(r.Source)
		graph.AddAirport(r.Destination)
		if _, err := graph.CreateEdge(r.Source, r.Destination, r.Distance); err != nil {
			report.Skipped++
			continue
		}
		report.Read++
	}
	return report, nil
}

// SettingsSource is a fake domain.SettingsSource.
type SettingsSource struct {
	counter
	values map[string]string
}

// NewSettingsSource creates a settings source serving values.
func NewSettingsSource(values map[string]string) *SettingsSource {
	return &SettingsSource{values: values}
}

// WithError makes every load fail with err.
func (s *SettingsSource) WithError(err error) *SettingsSource {
	s.err = err
	return s
}

// LoadSettings implements domain.SettingsSource.
func (s *SettingsSource) LoadSettings(ctx context.Context) (domain.Settings, error) {
	if err := s.call(ctx); err != nil {
		return domain.Settings{}, err
	}
	return domain.NewSettings(s.values), nil
}

// DataSource is a fake domain.FlightDataSource.
type DataSource struct {
	counter
	flights []domain.FlightInput
}

// NewDataSource creates a data source serving the given flights in order.
func NewDataSource(flights ...domain.FlightInput) *DataSource {
	return &DataSource{flights: flights}
}

// LoadFlights implements domain.FlightDataSource. Invalid inputs are skipped.
func (d *DataSource) LoadFlights(ctx context.Context, graph *domain.RouteGraph, ledger *domain.FlightLedger, builder domain.FlightBuilder) (domain.LoadReport, error) {
	var report domain.LoadReport
	if err := d.call(ctx); err != nil {
		return report, err
	}
	for _, in := range d.flights {
		if err := in.Validate(); err != nil {
			report.Skipped++
			continue
		}
		graph.AddAirport(in.Source)
		graph.AddAirport(in.Destination)
		_, _ = graph.CreateEdge(in.Source, in.Destination, in.Distance)

		flight, err := builder.Build(in)
		if err != nil {
			return report, err
		}
		ledger.Add(flight, graph)
		report.Read++
	}
	return report, nil
}

// Ensure the fakes implement the domain interfaces at compile time.
var (
	_ domain.GraphSource      = (*GraphSource)(nil)
	_ domain.SettingsSource   = (*SettingsSource)(nil)
	_ domain.FlightDataSource = (*DataSource)(nil)
)

// DefaultSettings returns a complete, valid settings map.
func DefaultSettings() map[string]string {
	return map[string]string{
		domain.KeyFuelCost:              "15",
		domain.KeyJuniorPilotPay:        "400",
		domain.KeyMidLevelPilotPay:      "600",
		domain.KeySeniorPilotPay:        "800",
		domain.KeyNumberOfFlights:       "100",
		domain.KeyPreferredAircraftSize: "M",
		domain.KeySmallPlaneMaxRange:    "500",
		domain.KeyMediumPlaneMaxRange:   "1500",
		domain.KeySmallPlaneSeatMax:     "50|0|0|0",
		domain.KeyMediumPlaneSeatMax:    "100|0|20|10",
		domain.KeyLargePlaneSeatMax:     "200|50|30|20",
		domain.KeySmallPlaneSeatPrice:   "100|0|0|0",
		domain.KeyMediumPlaneSeatPrice:  "150|0|400|800",
		domain.KeyLargePlaneSeatPrice:   "200|300|600|1200",
	}
}

// SampleRoutes returns a small connected network.
func SampleRoutes() []Route {
	return []Route{
		{Source: "JFK", Destination: "BOS", Distance: 187},
		{Source: "JFK", Destination: "ORD", Distance: 740},
		{Source: "ORD", Destination: "LAX", Distance: 1745},
		{Source: "LAX", Destination: "SFO", Distance: 337},
		{Source: "BOS", Destination: "MIA", Distance: 1258},
	}
}

// FullLargeFlight is a large aircraft flying 100 units with ten seats sold in every
// section at 10, 15, 20 and 25: revenue 700, cost 100*15 + 2*800 = 3100, profit -2400.
func FullLargeFlight(src, dst string) domain.FlightInput {
	return domain.FlightInput{
		Size:     domain.SizeLarge,
		MaxSeats: domain.SeatCounts{10, 10, 10, 10},
		Occupied: domain.SeatCounts{10, 10, 10, 10},
		Prices: domain.SeatPrices{
			domain.MoneyFromInt(10), domain.MoneyFromInt(15), domain.MoneyFromInt(20), domain.MoneyFromInt(25),
		},
		Source:      src,
		Destination: dst,
		Distance:    100,
	}
}
