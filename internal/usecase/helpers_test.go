package usecase

import (
	"context"

	"github.com/airline-sim/airline-route-simulator/internal/domain"
)

func testSettings() domain.Settings {
	return domain.NewSettings(map[string]string{
		domain.KeyFuelCost:              "15",
		domain.KeyJuniorPilotPay:        "400",
		domain.KeyMidLevelPilotPay:      "600",
		domain.KeySeniorPilotPay:        "800",
		domain.KeyNumberOfFlights:       "50",
		domain.KeyPreferredAircraftSize: "M",
		domain.KeySmallPlaneMaxRange:    "500",
		domain.KeyMediumPlaneMaxRange:   "1500",
		domain.KeySmallPlaneSeatMax:     "50|0|0|0",
		domain.KeyMediumPlaneSeatMax:    "100|0|20|10",
		domain.KeyLargePlaneSeatMax:     "200|50|30|20",
		domain.KeySmallPlaneSeatPrice:   "100|0|0|0",
		domain.KeyMediumPlaneSeatPrice:  "150|0|400|800",
		domain.KeyLargePlaneSeatPrice:   "200|300|600|1200",
	})
}

// largeTestInput is a large aircraft flying 100 units with every seat sold:
// revenue 700, cost 100*15 + 2*800 = 3100, profit -2400.
func largeTestInput(src, dst string) domain.FlightInput {
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

// scriptedRandom replays fixed draws.
type scriptedRandom struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (r *scriptedRandom) Float64() float64 {
	v := r.floats[r.fi%len(r.floats)]
	r.fi++
	return v
}

func (r *scriptedRandom) Intn(n int) int {
	if len(r.ints) == 0 {
		return n - 1
	}
	v := r.ints[r.ii%len(r.ints)] % n
	r.ii++
	return v
}

// staticGraph is a GraphSource that adds fixed routes.
type staticGraph struct {
	routes []domain.Edge
}

func (s staticGraph) LoadGraph(_ context.Context, graph *domain.RouteGraph) (domain.LoadReport, error) {
	var report domain.LoadReport
	for _, r := range s.routes {
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

func testRoutes() staticGraph {
	return staticGraph{routes: []domain.Edge{
		{Source: "JFK", Destination: "BOS", Distance: 300},
		{Source: "JFK", Destination: "ORD", Distance: 1200},
		{Source: "ORD", Destination: "LAX", Distance: 2800},
		{Source: "BOS", Destination: "LAX", Distance: 4200},
	}}
}
