package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the simulation core. Callers match them with errors.Is;
// producers wrap them with context using fmt.Errorf("%w: ...").
var (
	// ErrInvalidEdge is returned when an edge would break a graph invariant
	// (non-positive distance, self-loop, duplicate edge, missing endpoint).
	ErrInvalidEdge = errors.New("invalid edge")

	// ErrNoFlightsOnEdge is returned when an average-profit query targets a
	// route with no recorded flights.
	ErrNoFlightsOnEdge = errors.New("no flights on edge")

	// ErrArithmetic is returned for undefined monetary operations such as division by zero.
	ErrArithmetic = errors.New("arithmetic error")

	// ErrConfiguration is returned when a required model setting is missing or malformed.
	ErrConfiguration = errors.New("configuration error")

	// ErrInvalidFlight is returned when a flight record fails validation.
	ErrInvalidFlight = errors.New("invalid flight")

	// ErrSeatOverflow is returned when a section has more occupied seats than capacity.
	ErrSeatOverflow = errors.New("occupied seats exceed section capacity")

	// ErrRCPAlreadySet is returned when revenue, cost and profit are assigned twice.
	ErrRCPAlreadySet = errors.New("revenue, cost and profit already set")

	// ErrNoRoutes is returned when a flight is requested from a graph without edges.
	ErrNoRoutes = errors.New("route graph has no edges")

	// ErrNoSimulation is returned when results are requested before any run completed.
	ErrNoSimulation = errors.New("no simulation has been run")

	// ErrAirportNotFound is returned when a queried airport is not in the graph.
	ErrAirportNotFound = errors.New("airport not found")

	// ErrAirportsNotConnected is returned when two airports share no route.
	ErrAirportsNotConnected = errors.New("airports are not connected")

	// ErrInvalidRequest is returned when caller-supplied parameters are unusable.
	ErrInvalidRequest = errors.New("invalid request")
)

// ConfigError describes a single missing or malformed model setting.
type ConfigError struct {
	// Key is the settings key that failed
	Key string

	// Reason explains what was wrong with the value
	Reason string
}

// NewConfigError creates a ConfigError for the given key.
func NewConfigError(key, reason string) *ConfigError {
	return &ConfigError{Key: key, Reason: reason}
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrConfiguration, e.Key, e.Reason)
}

// Unwrap allows errors.Is(err, ErrConfiguration).
func (e *ConfigError) Unwrap() error {
	return ErrConfiguration
}
