package usecase

import (
	"sort"

	"github.com/airline-sim/airline-route-simulator/internal/domain"
)

// RouteStats summarizes the flights of one route.
type RouteStats struct {
	Route         domain.Edge
	Totals        Totals
	AverageProfit domain.Money
}

// RouteReportOptions contains optional parameters for a route report.
type RouteReportOptions struct {
	// Filters contains optional filtering criteria
	Filters *domain.RouteFilterOptions

	// SortBy specifies the ordering (default: average profit, best first)
	SortBy domain.RouteSortOption

	// Limit caps the number of routes returned; zero returns all
	Limit int
}

// RouteStats sums the stored figures of every route's flights. Routes come in ascending
// distance order, routes without flights included.
func (e *RCPEngine) RouteStats(ledger *domain.FlightLedger, graph *domain.RouteGraph) ([]RouteStats, error) {
	edges := graph.SortedEdges()
	out := make([]RouteStats, 0, len(edges))
	for _, edge := range edges {
		flights, _ := ledger.FlightsOnEdge(edge.ID)
		totals := e.Sum(flights, nil)
		avg, err := totals.AverageProfit()
		if err != nil {
			return nil, err
		}
		out = append(out, RouteStats{Route: edge, Totals: totals, AverageProfit: avg})
	}
	return out, nil
}

// ApplyRouteFilters returns the routes matching every filter.
//
// Behavior:
//   - Returns the original slice if opts is nil (no filtering)
//   - Nil/empty filter values are skipped
//   - Does NOT mutate the original slice
func ApplyRouteFilters(routes []RouteStats, opts *domain.RouteFilterOptions) []RouteStats {
	if opts == nil {
		return routes
	}

	result := make([]RouteStats, 0, len(routes))
	for _, r := range routes {
		if opts.MatchesRoute(r.Route, r.Totals.Flights) {
			result = append(result, r)
		}
	}
	return result
}

// SortRoutes orders routes by the given option. Ties keep their input order.
//
// Sort options:
//   - SortByAverageProfit (default): descending average profit per flight
//   - SortByTotalProfit: descending summed profit
//   - SortByFlights: descending flight count
//   - SortByDistance: ascending distance
//
// Does NOT mutate the original slice.
func SortRoutes(routes []RouteStats, sortBy domain.RouteSortOption) []RouteStats {
	result := make([]RouteStats, len(routes))
	copy(result, routes)

	if len(result) < 2 {
		return result
	}

	if !sortBy.IsValid() {
		sortBy = domain.SortByAverageProfit
	}

	switch sortBy {
	case domain.SortByAverageProfit:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].AverageProfit.Cmp(result[j].AverageProfit) > 0
		})
	case domain.SortByTotalProfit:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Totals.Profit.Cmp(result[j].Totals.Profit) > 0
		})
	case domain.SortByFlights:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Totals.Flights > result[j].Totals.Flights
		})
	case domain.SortByDistance:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Route.Distance < result[j].Route.Distance
		})
	}

	return result
}

// BuildRouteReport filters, sorts and limits route statistics.
func BuildRouteReport(routes []RouteStats, opts RouteReportOptions) []RouteStats {
	result := SortRoutes(ApplyRouteFilters(routes, opts.Filters), opts.SortBy)
	if opts.Limit > 0 && len(result) > opts.Limit {
		result = result[:opts.Limit]
	}
	return result
}
