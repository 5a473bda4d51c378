package domain

// RouteSortOption defines the available orderings of a route report.
type RouteSortOption string

// Available sort options.
const (
	// SortByAverageProfit puts the most profitable route per flight first (default)
	SortByAverageProfit RouteSortOption = "average_profit"

	// SortByTotalProfit puts the route with the largest summed profit first
	SortByTotalProfit RouteSortOption = "total_profit"

	// SortByFlights puts the busiest route first
	SortByFlights RouteSortOption = "flights"

	// SortByDistance puts the shortest route first
	SortByDistance RouteSortOption = "distance"
)

// IsValid checks if the sort option is a valid value.
func (s RouteSortOption) IsValid() bool {
	switch s {
	case SortByAverageProfit, SortByTotalProfit, SortByFlights, SortByDistance:
		return true
	default:
		return false
	}
}

// ParseRouteSortOption converts a string to a RouteSortOption.
// Returns SortByAverageProfit if the string is empty or invalid.
func ParseRouteSortOption(s string) RouteSortOption {
	option := RouteSortOption(s)
	if option.IsValid() {
		return option
	}
	return SortByAverageProfit
}

// RouteFilterOptions defines optional filters for a route report.
type RouteFilterOptions struct {
	// Airport keeps routes with this airport at either end
	Airport string `json:"airport,omitempty"`

	// MinFlights drops routes flown fewer times than this
	MinFlights *int `json:"min_flights,omitempty"`

	// MaxDistance drops routes longer than this
	MaxDistance *float64 `json:"max_distance,omitempty"`
}

// IsValid returns false for a negative MinFlights or a non-positive MaxDistance.
func (f *RouteFilterOptions) IsValid() bool {
	if f == nil {
		return true
	}
	if f.MinFlights != nil && *f.MinFlights < 0 {
		return false
	}
	if f.MaxDistance != nil && *f.MaxDistance <= 0 {
		return false
	}
	return true
}

// MatchesRoute checks if a route flown the given number of times passes every filter.
func (f *RouteFilterOptions) MatchesRoute(e Edge, flights int) bool {
	if f == nil {
		return true
	}

	if f.Airport != "" {
		name := NormalizeAirportName(f.Airport)
		if e.Source != name && e.Destination != name {
			return false
		}
	}

	if f.MinFlights != nil && flights < *f.MinFlights {
		return false
	}

	if f.MaxDistance != nil && e.Distance > *f.MaxDistance {
		return false
	}

	return true
}
