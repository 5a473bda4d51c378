// Package http provides the HTTP handler layer for the airline route simulator API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"context"
	"errors"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/airline-sim/airline-route-simulator/internal/adapter/http/response"
	"github.com/airline-sim/airline-route-simulator/internal/domain"
	"github.com/airline-sim/airline-route-simulator/internal/usecase"
)

// SimulationHandler handles HTTP requests for simulation endpoints.
type SimulationHandler struct {
	useCase usecase.SimulationUseCase

	// timeout bounds simulation runs; zero leaves them unbounded
	timeout time.Duration
}

// NewSimulationHandler creates a new SimulationHandler with the given use case.
func NewSimulationHandler(uc usecase.SimulationUseCase, timeout time.Duration) *SimulationHandler {
	return &SimulationHandler{
		useCase: uc,
		timeout: timeout,
	}
}

// RunSimulation handles POST /api/v1/simulations
//
// @Summary Run a simulation
// @Description Clear the session and run a synthetic simulation or ingest recorded flights
// @Tags simulations
// @Accept json
// @Produce json
// @Param request body RunSimulationRequest false "Run options"
// @Success 201 {object} SimulationResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 422 {object} response.ErrorDetail "Unusable settings or route graph"
// @Failure 504 {object} response.ErrorDetail "Simulation timed out"
// @Router /api/v1/simulations [post]
func (h *SimulationHandler) RunSimulation(c echo.Context) error {
	var req RunSimulationRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	ctx, cancel := h.runContext(c)
	defer cancel()

	mode, _ := usecase.ParseRunMode(req.Mode)

	var (
		result *usecase.SimulationResult
		err    error
	)
	switch mode {
	case usecase.ModeData:
		result, err = h.useCase.RunFromData(ctx)
	default:
		result, err = h.useCase.RunSynthetic(ctx, ToRunOptions(&req))
	}
	if err != nil {
		return h.handleError(c, err)
	}

	return response.Created(c, ToSimulationResponse(result))
}

// LatestSimulation handles GET /api/v1/simulations/latest
//
// @Summary Latest simulation
// @Description Return the totals of the latest completed run
// @Tags simulations
// @Produce json
// @Success 200 {object} SimulationResponse
// @Failure 409 {object} response.ErrorDetail "No simulation has been run"
// @Router /api/v1/simulations/latest [get]
func (h *SimulationHandler) LatestSimulation(c echo.Context) error {
	result, err := h.useCase.Results(c.Request().Context())
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, ToSimulationResponse(result))
}

// ListFlights handles GET /api/v1/simulations/latest/flights
//
// @Summary List flights
// @Description Page through the flights of the latest run in ledger order
// @Tags simulations
// @Produce json
// @Param offset query int false "Index of the first flight" minimum(0)
// @Param limit query int false "Page size, default 100" minimum(0) maximum(1000)
// @Success 200 {object} FlightListResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 409 {object} response.ErrorDetail "No simulation has been run"
// @Router /api/v1/simulations/latest/flights [get]
func (h *SimulationHandler) ListFlights(c echo.Context) error {
	var q FlightsQuery
	if err := c.Bind(&q); err != nil {
		return response.BadRequest(c, "offset and limit must be integers")
	}
	if err := q.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}
	if q.Limit == 0 {
		q.Limit = DefaultPageSize
	}

	page, err := h.useCase.Flights(c.Request().Context(), q.Offset, q.Limit)
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, ToFlightListResponse(page))
}

// RouteProfit handles GET /api/v1/routes/profit
//
// @Summary Average profit of a route
// @Description Average profit over the latest run's flights between two airports, floored to cents
// @Tags routes
// @Produce json
// @Param source query string true "Source airport" example(JFK)
// @Param destination query string true "Destination airport" example(BOS)
// @Success 200 {object} RouteProfitResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 404 {object} response.ErrorDetail "Unknown airport, route or no flights"
// @Failure 409 {object} response.ErrorDetail "No simulation has been run"
// @Router /api/v1/routes/profit [get]
func (h *SimulationHandler) RouteProfit(c echo.Context) error {
	var q RouteProfitQuery
	if err := c.Bind(&q); err != nil {
		return response.BadRequest(c, "source and destination must be strings")
	}
	if err := q.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	avg, err := h.useCase.AverageProfit(c.Request().Context(), q.Source, q.Destination)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, RouteProfitResponse{
		Source:        domain.NormalizeAirportName(q.Source),
		Destination:   domain.NormalizeAirportName(q.Destination),
		AverageProfit: avg.String(),
	})
}

// ListRoutes handles GET /api/v1/routes
//
// @Summary Route report
// @Description Per-route flight count, totals and average profit of the latest run, filtered and sorted
// @Tags routes
// @Produce json
// @Param airport query string false "Keep routes touching this airport" example(JFK)
// @Param min_flights query int false "Drop routes with fewer flights" minimum(0)
// @Param max_distance query number false "Drop routes longer than this" minimum(0)
// @Param sort_by query string false "Ordering" Enums(average_profit, total_profit, flights, distance)
// @Param limit query int false "Maximum number of routes, 0 for all" minimum(0) maximum(1000)
// @Success 200 {object} RouteListResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 409 {object} response.ErrorDetail "No simulation has been run"
// @Router /api/v1/routes [get]
func (h *SimulationHandler) ListRoutes(c echo.Context) error {
	var q RoutesQuery
	if err := c.Bind(&q); err != nil {
		return response.BadRequest(c, "min_flights, max_distance and limit must be numbers")
	}
	if err := q.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	routes, err := h.useCase.Routes(c.Request().Context(), ToRouteReportOptions(&q))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, ToRouteListResponse(routes))
}

// Graph handles GET /api/v1/graph
//
// @Summary Route graph
// @Description Adjacency list of the route graph loaded by the latest run; empty before any run
// @Tags routes
// @Produce json
// @Success 200 {object} GraphResponse
// @Router /api/v1/graph [get]
func (h *SimulationHandler) Graph(c echo.Context) error {
	snapshot, err := h.useCase.Graph(c.Request().Context())
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, ToGraphResponse(snapshot))
}

// CompareSizes handles POST /api/v1/simulations/compare
//
// @Summary Compare preferred aircraft sizes
// @Description Run one independent synthetic simulation per size with a shared seed. The latest run is not replaced.
// @Tags simulations
// @Accept json
// @Produce json
// @Param request body CompareRequest false "Sizes and seed"
// @Success 200 {object} CompareResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 422 {object} response.ErrorDetail "Unusable settings or route graph"
// @Failure 504 {object} response.ErrorDetail "Simulation timed out"
// @Router /api/v1/simulations/compare [post]
func (h *SimulationHandler) CompareSizes(c echo.Context) error {
	var req CompareRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	ctx, cancel := h.runContext(c)
	defer cancel()

	results, err := h.useCase.Compare(ctx, ToSizes(req.Sizes), req.Seed)
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, ToCompareResponse(results))
}

// Health handles GET /health
//
// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} response.HealthResponse
// @Router /health [get]
func (h *SimulationHandler) Health(c echo.Context) error {
	var runID string
	if result, err := h.useCase.Results(c.Request().Context()); err == nil {
		runID = result.RunID
	}
	return response.Health(c, runID)
}

func (h *SimulationHandler) runContext(c echo.Context) (context.Context, context.CancelFunc) {
	ctx := c.Request().Context()
	if h.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, h.timeout)
}

// handleValidationError writes ozzo field errors as a validation response.
func (h *SimulationHandler) handleValidationError(c echo.Context, err error) error {
	if details, ok := validationDetails(err); ok {
		return response.ValidationError(c, details)
	}
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps use case errors to HTTP responses.
func (h *SimulationHandler) handleError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return response.GatewayTimeout(c)
	case errors.Is(err, context.Canceled):
		return response.RequestCancelled(c)
	case errors.Is(err, domain.ErrInvalidRequest):
		return response.ValidationErrorWithMessage(c, err.Error())
	case errors.Is(err, domain.ErrNoSimulation):
		return response.NoSimulation(c)
	case errors.Is(err, domain.ErrAirportNotFound),
		errors.Is(err, domain.ErrAirportsNotConnected),
		errors.Is(err, domain.ErrNoFlightsOnEdge):
		return response.NotFound(c, err.Error())
	case errors.Is(err, domain.ErrConfiguration), errors.Is(err, domain.ErrNoRoutes):
		return response.ConfigurationError(c, err.Error())
	default:
		zerolog.Ctx(c.Request().Context()).Error().Err(err).
			Str("path", c.Path()).
			Msg("simulation request failed")
		return response.InternalServerError(c)
	}
}
