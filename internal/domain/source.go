package domain

import "context"

// LoadReport summarizes a file ingest.
type LoadReport struct {
	// Read is the number of records accepted
	Read int `json:"read"`

	// Skipped is the number of records rejected and logged
	Skipped int `json:"skipped"`
}

// GraphSource populates a route graph from an external description.
type GraphSource interface {
	// LoadGraph adds airports and routes to graph. Malformed records are skipped;
	// only source-level failures are returned.
	LoadGraph(ctx context.Context, graph *RouteGraph) (LoadReport, error)
}

// FlightBuilder turns a flight description into a record with crew and RCP attached.
type FlightBuilder interface {
	Build(in FlightInput) (*FlightRecord, error)
}

// FlightDataSource ingests recorded flights. Each accepted row adds its route to graph
// and its flight to ledger.
type FlightDataSource interface {
	LoadFlights(ctx context.Context, graph *RouteGraph, ledger *FlightLedger, builder FlightBuilder) (LoadReport, error)
}

// SettingsSource supplies the model settings for a run.
type SettingsSource interface {
	LoadSettings(ctx context.Context) (Settings, error)
}

//go:generate mockgen -source=source.go -destination=mock_source.go -package=domain
