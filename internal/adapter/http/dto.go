package http

import "time"

// Money amounts are rendered as two-decimal strings so no precision is lost.

// TotalsDTO aggregates revenue, cost and profit over a set of flights.
type TotalsDTO struct {
	Flights int    `json:"flights" example:"1000"`
	Revenue string `json:"revenue" example:"700000.00"`
	Cost    string `json:"cost" example:"3100000.00"`
	Profit  string `json:"profit" example:"-2400000.00"`
}

// LoadReportDTO counts the input lines a run accepted and skipped.
type LoadReportDTO struct {
	Read    int `json:"read"`
	Skipped int `json:"skipped"`
}

// SimulationResponse describes a completed simulation run.
type SimulationResponse struct {
	RunID         string        `json:"run_id" example:"0f1c2d3e-4b5a-6978-8a9b-0c1d2e3f4a5b"`
	Mode          string        `json:"mode" example:"synthetic"`
	Seed          int64         `json:"seed,omitempty" example:"42"`
	PreferredSize string        `json:"preferred_size,omitempty" example:"M"`
	StartedAt     time.Time     `json:"started_at"`
	FinishedAt    time.Time     `json:"finished_at"`
	DurationMs    int64         `json:"duration_ms"`
	Airports      int           `json:"airports"`
	Routes        int           `json:"routes"`
	Load          LoadReportDTO `json:"load"`
	Totals        TotalsDTO     `json:"totals"`
	AverageProfit string        `json:"average_profit" example:"-2400.00"`
}

// SectionDTO is one fare section of a flight's aircraft.
type SectionDTO struct {
	Class     string `json:"class" example:"ECON_BASIC"`
	Capacity  int    `json:"capacity"`
	Occupied  int    `json:"occupied"`
	UnitPrice string `json:"unit_price" example:"10.00"`
}

// CrewDTO is one pilot of a flight.
type CrewDTO struct {
	Seniority     string `json:"seniority" example:"SENIOR"`
	CostPerFlight string `json:"cost_per_flight" example:"800.00"`
}

// FlightDTO is one flight of the ledger.
type FlightDTO struct {
	Index        int          `json:"index"`
	Source       string       `json:"source" example:"JFK"`
	Destination  string       `json:"destination" example:"BOS"`
	Distance     float64      `json:"distance" example:"187"`
	AircraftSize string       `json:"aircraft_size" example:"L"`
	Sections     []SectionDTO `json:"sections"`
	Pilot        CrewDTO      `json:"pilot"`
	CoPilot      CrewDTO      `json:"co_pilot"`
	Revenue      string       `json:"revenue" example:"700.00"`
	Cost         string       `json:"cost" example:"3100.00"`
	Profit       string       `json:"profit" example:"-2400.00"`
}

// FlightListResponse is a page of flights from the latest run.
type FlightListResponse struct {
	Total   int         `json:"total"`
	Offset  int         `json:"offset"`
	Count   int         `json:"count"`
	Flights []FlightDTO `json:"flights"`
}

// RouteProfitResponse is the average profit of the flights on one route.
type RouteProfitResponse struct {
	Source        string `json:"source" example:"JFK"`
	Destination   string `json:"destination" example:"BOS"`
	AverageProfit string `json:"average_profit" example:"-2400.00"`
}

// NeighbourDTO is one adjacency entry.
type NeighbourDTO struct {
	Airport  string  `json:"airport" example:"BOS"`
	Distance float64 `json:"distance" example:"187"`
	RouteID  uint64  `json:"route_id"`
}

// AirportDTO lists an airport with its neighbours.
type AirportDTO struct {
	Airport    string         `json:"airport" example:"JFK"`
	Neighbours []NeighbourDTO `json:"neighbours"`
}

// GraphResponse is the current route graph.
type GraphResponse struct {
	Airports  int          `json:"airports"`
	Routes    int          `json:"routes"`
	Adjacency []AirportDTO `json:"adjacency"`
	Dump      string       `json:"dump"`
}

// SizeComparisonDTO is the outcome of one size in a comparison.
type SizeComparisonDTO struct {
	Size          string    `json:"size" example:"L"`
	SizeName      string    `json:"size_name" example:"large"`
	Seed          int64     `json:"seed" example:"7"`
	Routes        int       `json:"routes"`
	Totals        TotalsDTO `json:"totals"`
	AverageProfit string    `json:"average_profit" example:"-2400.00"`
}

// CompareResponse lists the comparison outcomes in request order.
type CompareResponse struct {
	Results []SizeComparisonDTO `json:"results"`
}

// RouteStatsDTO summarizes the flights of one route.
type RouteStatsDTO struct {
	RouteID       uint64  `json:"route_id"`
	Source        string  `json:"source" example:"JFK"`
	Destination   string  `json:"destination" example:"BOS"`
	Distance      float64 `json:"distance" example:"187"`
	Flights       int     `json:"flights"`
	Revenue       string  `json:"revenue" example:"1400.00"`
	Cost          string  `json:"cost" example:"6200.00"`
	Profit        string  `json:"profit" example:"-4800.00"`
	AverageProfit string  `json:"average_profit" example:"-2400.00"`
}

// RouteListResponse is a route report of the latest run.
type RouteListResponse struct {
	Count  int             `json:"count"`
	Routes []RouteStatsDTO `json:"routes"`
}
