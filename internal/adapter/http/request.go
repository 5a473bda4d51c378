package http

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/airline-sim/airline-route-simulator/internal/domain"
	"github.com/airline-sim/airline-route-simulator/internal/usecase"
)

// Request limits.
const (
	// MaxFlightsPerRun caps the flights override of a single synthetic run
	MaxFlightsPerRun = 1_000_000

	// DefaultPageSize is used when a flight listing does not name a limit
	DefaultPageSize = 100

	// MaxPageSize caps the limit of a flight listing
	MaxPageSize = 1000
)

// RunSimulationRequest is the body of POST /api/v1/simulations.
// An empty body runs a synthetic simulation with the configured settings.
type RunSimulationRequest struct {
	// Mode is "synthetic" (default) or "data"
	Mode string `json:"mode" example:"synthetic"`

	// Seed for the random source; zero uses the service seed
	Seed int64 `json:"seed" example:"42"`

	// PreferredSize overrides PREFERRED_AIRCRAFT_SIZE (S, M, L)
	PreferredSize string `json:"preferred_size" example:"M"`

	// Flights overrides NUMBER_OF_FLIGHTS
	Flights int `json:"flights" example:"1000"`
}

// Validate checks the request fields. Synthetic-only overrides are rejected in data mode.
func (r *RunSimulationRequest) Validate() error {
	dataMode := r.Mode == string(usecase.ModeData)
	return validation.ValidateStruct(r,
		validation.Field(&r.Mode,
			validation.In(string(usecase.ModeSynthetic), string(usecase.ModeData)).
				Error("must be synthetic or data")),
		validation.Field(&r.Seed, validation.Min(int64(0))),
		validation.Field(&r.PreferredSize,
			validation.By(aircraftSize),
			validation.When(dataMode, validation.Empty.Error("is not used in data mode"))),
		validation.Field(&r.Flights,
			validation.Min(0),
			validation.Max(MaxFlightsPerRun),
			validation.When(dataMode, validation.Empty.Error("is not used in data mode"))),
	)
}

// CompareRequest is the body of POST /api/v1/simulations/compare.
type CompareRequest struct {
	// Sizes to compare; empty compares S, M and L
	Sizes []string `json:"sizes" example:"S,L"`

	// Seed shared by every run; zero uses the service seed
	Seed int64 `json:"seed" example:"7"`
}

// Validate checks the request fields.
func (r *CompareRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Sizes,
			validation.Length(0, 3),
			validation.Each(validation.Required, validation.By(aircraftSize))),
		validation.Field(&r.Seed, validation.Min(int64(0))),
	)
}

// FlightsQuery holds the paging parameters of GET /api/v1/simulations/latest/flights.
type FlightsQuery struct {
	Offset int `json:"offset" query:"offset"`
	Limit  int `json:"limit" query:"limit"`
}

// Validate checks the paging parameters.
func (q *FlightsQuery) Validate() error {
	return validation.ValidateStruct(q,
		validation.Field(&q.Offset, validation.Min(0)),
		validation.Field(&q.Limit, validation.Min(0), validation.Max(MaxPageSize)),
	)
}

// RouteProfitQuery names the airport pair of GET /api/v1/routes/profit.
type RouteProfitQuery struct {
	Source      string `json:"source" query:"source"`
	Destination string `json:"destination" query:"destination"`
}

// Validate checks that both airports are named and distinct.
func (q *RouteProfitQuery) Validate() error {
	return validation.ValidateStruct(q,
		validation.Field(&q.Source, validation.Required),
		validation.Field(&q.Destination,
			validation.Required,
			validation.By(func(value interface{}) error {
				dst, _ := value.(string)
				if dst != "" && domain.NormalizeAirportName(dst) == domain.NormalizeAirportName(q.Source) {
					return errors.New("must differ from source")
				}
				return nil
			})),
	)
}

// RoutesQuery holds the filters of GET /api/v1/routes. Zero values disable a filter.
type RoutesQuery struct {
	Airport     string  `json:"airport" query:"airport"`
	MinFlights  int     `json:"min_flights" query:"min_flights"`
	MaxDistance float64 `json:"max_distance" query:"max_distance"`
	SortBy      string  `json:"sort_by" query:"sort_by"`
	Limit       int     `json:"limit" query:"limit"`
}

// Validate checks the filter and sort parameters.
func (q *RoutesQuery) Validate() error {
	return validation.ValidateStruct(q,
		validation.Field(&q.MinFlights, validation.Min(0)),
		validation.Field(&q.MaxDistance, validation.Min(0.0)),
		validation.Field(&q.SortBy,
			validation.In(
				string(domain.SortByAverageProfit),
				string(domain.SortByTotalProfit),
				string(domain.SortByFlights),
				string(domain.SortByDistance),
			).Error("must be average_profit, total_profit, flights or distance")),
		validation.Field(&q.Limit, validation.Min(0), validation.Max(MaxPageSize)),
	)
}

func aircraftSize(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if !domain.ParseAircraftSize(s).IsValid() {
		return errors.New("must be one of S, M, L")
	}
	return nil
}

// validationDetails flattens ozzo field errors into the response details map.
func validationDetails(err error) (map[string]string, bool) {
	var errs validation.Errors
	if !errors.As(err, &errs) {
		return nil, false
	}
	details := make(map[string]string, len(errs))
	for field, fieldErr := range errs {
		details[field] = fieldErr.Error()
	}
	return details, true
}
