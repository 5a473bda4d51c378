package usecase

import (
	"fmt"

	"github.com/airline-sim/airline-route-simulator/internal/domain"
)

// Totals is the sum of revenue, cost and profit over a ledger.
type Totals struct {
	Flights int          `json:"flights"`
	Revenue domain.Money `json:"revenue"`
	Cost    domain.Money `json:"cost"`
	Profit  domain.Money `json:"profit"`
}

// AverageProfit divides total profit by the flight count, floor-rounded to two places.
// An empty total averages to zero.
func (t Totals) AverageProfit() (domain.Money, error) {
	if t.Flights == 0 {
		return domain.Zero, nil
	}
	return t.Profit.DivFloorInt(int64(t.Flights), domain.MoneyScale)
}

// RCPEngine applies the revenue, cost and profit rules.
type RCPEngine struct {
	fuelCost domain.Money
}

// NewRCPEngine creates an engine charging fuelCost per unit of distance.
func NewRCPEngine(fuelCost domain.Money) *RCPEngine {
	return &RCPEngine{fuelCost: fuelCost}
}

// NewRCPEngineFromSettings reads FUEL_COST.
func NewRCPEngineFromSettings(settings domain.Settings) (*RCPEngine, error) {
	fuel, err := settings.Money(domain.KeyFuelCost)
	if err != nil {
		return nil, err
	}
	return NewRCPEngine(fuel), nil
}

// FuelCost returns the per-distance fuel charge.
func (e *RCPEngine) FuelCost() domain.Money {
	return e.fuelCost
}

// Revenue is the sum over sections of occupied seats times unit price.
func (e *RCPEngine) Revenue(f *domain.FlightRecord) domain.Money {
	occupied := f.Occupied()
	prices := f.Prices()

	revenue := domain.Zero
	for i := 0; i < domain.SectionCount; i++ {
		revenue = revenue.Add(prices[i].MulInt(int64(occupied[i])))
	}
	return revenue
}

// Cost is distance times fuel cost plus both pilots' pay.
func (e *RCPEngine) Cost(f *domain.FlightRecord) domain.Money {
	fuel := domain.MoneyFromFloat(f.Distance()).Mul(e.fuelCost)
	return fuel.Add(f.Pilot().CostPerFlight).Add(f.CoPilot().CostPerFlight)
}

// Profit is revenue minus cost.
func (e *RCPEngine) Profit(f *domain.FlightRecord) domain.Money {
	return e.Revenue(f).Sub(e.Cost(f))
}

// Compute derives all three figures in one pass.
func (e *RCPEngine) Compute(f *domain.FlightRecord) domain.RCP {
	revenue := e.Revenue(f)
	cost := e.Cost(f)
	return domain.RCP{Revenue: revenue, Cost: cost, Profit: revenue.Sub(cost)}
}

// Aggregate sums every flight of the ledger exactly once. Flights that already carry
// RCP figures contribute them as stored; the others are computed on the fly.
// visit, if not nil, is called once per flight with its figures.
func (e *RCPEngine) Aggregate(ledger *domain.FlightLedger, visit func(*domain.FlightRecord, domain.RCP)) Totals {
	return e.Sum(ledger.All(), visit)
}

// Sum totals the given flights the way Aggregate does.
func (e *RCPEngine) Sum(flights []*domain.FlightRecord, visit func(*domain.FlightRecord, domain.RCP)) Totals {
	var totals Totals
	for _, f := range flights {
		rcp := f.RCP()
		if !f.HasRCP() {
			rcp = e.Compute(f)
		}
		if visit != nil {
			visit(f, rcp)
		}
		totals.Flights++
		totals.Revenue = totals.Revenue.Add(rcp.Revenue)
		totals.Cost = totals.Cost.Add(rcp.Cost)
		totals.Profit = totals.Profit.Add(rcp.Profit)
	}
	return totals
}

// AverageProfitForEdge averages the profit of the flights flown between two airports,
// floor-rounded to two places. It fails with ErrNoFlightsOnEdge when the airports are
// not joined by a route or the route has no flights.
func (e *RCPEngine) AverageProfitForEdge(ledger *domain.FlightLedger, routes domain.EdgeResolver, source, destination string) (domain.Money, error) {
	id, ok := routes.EdgeBetween(source, destination)
	if !ok {
		return domain.Zero, fmt.Errorf("%w: no route between %s and %s", domain.ErrNoFlightsOnEdge, source, destination)
	}
	flights, ok := ledger.FlightsOnEdge(id)
	if !ok || len(flights) == 0 {
		return domain.Zero, fmt.Errorf("%w: %s-%s", domain.ErrNoFlightsOnEdge, source, destination)
	}

	sum := domain.Zero
	for _, f := range flights {
		sum = sum.Add(f.Profit())
	}
	return sum.DivFloorInt(int64(len(flights)), domain.MoneyScale)
}
