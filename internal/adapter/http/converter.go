package http

import (
	"github.com/airline-sim/airline-route-simulator/internal/domain"
	"github.com/airline-sim/airline-route-simulator/internal/usecase"
)

// ToRunOptions converts a RunSimulationRequest into use case options.
// The request must already be validated.
func ToRunOptions(req *RunSimulationRequest) usecase.RunOptions {
	return usecase.RunOptions{
		Seed:          req.Seed,
		PreferredSize: domain.ParseAircraftSize(req.PreferredSize),
		Flights:       req.Flights,
	}
}

// ToSizes converts the requested size names, keeping order.
func ToSizes(names []string) []domain.AircraftSize {
	if len(names) == 0 {
		return nil
	}
	sizes := make([]domain.AircraftSize, 0, len(names))
	for _, n := range names {
		sizes = append(sizes, domain.ParseAircraftSize(n))
	}
	return sizes
}

// ToTotalsDTO converts aggregate totals.
func ToTotalsDTO(t usecase.Totals) TotalsDTO {
	return TotalsDTO{
		Flights: t.Flights,
		Revenue: t.Revenue.String(),
		Cost:    t.Cost.String(),
		Profit:  t.Profit.String(),
	}
}

// ToSimulationResponse converts a run result.
func ToSimulationResponse(r *usecase.SimulationResult) SimulationResponse {
	return SimulationResponse{
		RunID:         r.RunID,
		Mode:          string(r.Mode),
		Seed:          r.Seed,
		PreferredSize: string(r.PreferredSize),
		StartedAt:     r.StartedAt,
		FinishedAt:    r.FinishedAt,
		DurationMs:    r.FinishedAt.Sub(r.StartedAt).Milliseconds(),
		Airports:      r.Airports,
		Routes:        r.Routes,
		Load:          LoadReportDTO{Read: r.Load.Read, Skipped: r.Load.Skipped},
		Totals:        ToTotalsDTO(r.Totals),
		AverageProfit: r.AverageProfit.String(),
	}
}

// ToFlightDTO converts a flight at the given ledger index.
func ToFlightDTO(index int, f *domain.FlightRecord) FlightDTO {
	aircraft := f.Aircraft()
	sections := make([]SectionDTO, 0, domain.SectionCount)
	for _, s := range aircraft.Sections {
		sections = append(sections, SectionDTO{
			Class:     string(s.Class),
			Capacity:  s.Capacity,
			Occupied:  s.Occupied,
			UnitPrice: s.UnitPrice.String(),
		})
	}

	return FlightDTO{
		Index:        index,
		Source:       f.Source().Name,
		Destination:  f.Destination().Name,
		Distance:     f.Distance(),
		AircraftSize: string(f.Size()),
		Sections:     sections,
		Pilot:        toCrewDTO(f.Pilot()),
		CoPilot:      toCrewDTO(f.CoPilot()),
		Revenue:      f.Revenue().String(),
		Cost:         f.Cost().String(),
		Profit:       f.Profit().String(),
	}
}

func toCrewDTO(c domain.CrewMember) CrewDTO {
	return CrewDTO{
		Seniority:     string(c.Seniority),
		CostPerFlight: c.CostPerFlight.String(),
	}
}

// ToFlightListResponse converts a page of flights. Indexes are ledger positions.
func ToFlightListResponse(page *usecase.FlightPage) FlightListResponse {
	flights := make([]FlightDTO, 0, len(page.Flights))
	for i, f := range page.Flights {
		flights = append(flights, ToFlightDTO(page.Offset+i, f))
	}
	return FlightListResponse{
		Total:   page.Total,
		Offset:  page.Offset,
		Count:   len(flights),
		Flights: flights,
	}
}

// ToGraphResponse converts a graph snapshot.
func ToGraphResponse(g *usecase.GraphSnapshot) GraphResponse {
	adjacency := make([]AirportDTO, 0, len(g.Adjacency))
	for _, entry := range g.Adjacency {
		neighbours := make([]NeighbourDTO, 0, len(entry.Neighbours))
		for _, n := range entry.Neighbours {
			neighbours = append(neighbours, NeighbourDTO{
				Airport:  n.Airport,
				Distance: n.Distance,
				RouteID:  uint64(n.EdgeID),
			})
		}
		adjacency = append(adjacency, AirportDTO{Airport: entry.Airport, Neighbours: neighbours})
	}
	return GraphResponse{
		Airports:  g.Airports,
		Routes:    g.Routes,
		Adjacency: adjacency,
		Dump:      g.Dump,
	}
}

// ToCompareResponse converts comparison outcomes.
func ToCompareResponse(results []usecase.SizeComparison) CompareResponse {
	out := CompareResponse{Results: make([]SizeComparisonDTO, 0, len(results))}
	for _, r := range results {
		out.Results = append(out.Results, SizeComparisonDTO{
			Size:          string(r.Size),
			SizeName:      r.Size.Name(),
			Seed:          r.Seed,
			Routes:        r.Routes,
			Totals:        ToTotalsDTO(r.Totals),
			AverageProfit: r.AverageProfit.String(),
		})
	}
	return out
}

// ToRouteReportOptions converts route query parameters. Zero values set no filter.
func ToRouteReportOptions(q *RoutesQuery) usecase.RouteReportOptions {
	opts := usecase.RouteReportOptions{
		SortBy: domain.ParseRouteSortOption(q.SortBy),
		Limit:  q.Limit,
	}
	filters := &domain.RouteFilterOptions{Airport: q.Airport}
	if q.MinFlights > 0 {
		filters.MinFlights = &q.MinFlights
	}
	if q.MaxDistance > 0 {
		filters.MaxDistance = &q.MaxDistance
	}
	opts.Filters = filters
	return opts
}

// ToRouteListResponse converts a route report.
func ToRouteListResponse(routes []usecase.RouteStats) RouteListResponse {
	out := RouteListResponse{Count: len(routes), Routes: make([]RouteStatsDTO, 0, len(routes))}
	for _, r := range routes {
		out.Routes = append(out.Routes, RouteStatsDTO{
			RouteID:       uint64(r.Route.ID),
			Source:        r.Route.Source,
			Destination:   r.Route.Destination,
			Distance:      r.Route.Distance,
			Flights:       r.Totals.Flights,
			Revenue:       r.Totals.Revenue.String(),
			Cost:          r.Totals.Cost.String(),
			Profit:        r.Totals.Profit.String(),
			AverageProfit: r.AverageProfit.String(),
		})
	}
	return out
}
