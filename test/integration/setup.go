// Package integration exercises the simulator end to end: HTTP handlers over the real
// simulation use case, fed by in-memory sources or by the file adapters.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	httpAdapter "github.com/airline-sim/airline-route-simulator/internal/adapter/http"
	"github.com/airline-sim/airline-route-simulator/internal/adapter/http/response"
	"github.com/airline-sim/airline-route-simulator/internal/domain"
	"github.com/airline-sim/airline-route-simulator/internal/usecase"
	"github.com/airline-sim/airline-route-simulator/test/mock"
)

// TestServer wraps an Echo instance and provides helper methods for integration testing.
type TestServer struct {
	Echo    *echo.Echo
	Handler *httpAdapter.SimulationHandler
}

// NewTestServer creates a new test server with the given use case and no run timeout.
func NewTestServer(uc usecase.SimulationUseCase) *TestServer {
	return NewTestServerWithTimeout(uc, 0)
}

// NewTestServerWithTimeout creates a test server whose runs are bounded by timeout.
func NewTestServerWithTimeout(uc usecase.SimulationUseCase, timeout time.Duration) *TestServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	handler := httpAdapter.NewSimulationHandler(uc, timeout)
	httpAdapter.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:    e,
		Handler: handler,
	}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method      string
	Path        string
	Body        interface{}
	RawBody     []byte
	ContentType string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	if req.RawBody != nil {
		bodyReader = bytes.NewReader(req.RawBody)
	} else if req.Body != nil {
		bodyBytes, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(bodyBytes)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)

	if req.ContentType != "" {
		httpReq.Header.Set(echo.HeaderContentType, req.ContentType)
	} else if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// RunRequest starts a simulation with the given body (nil runs with the configured settings).
func (ts *TestServer) RunRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/simulations",
		Body:   body,
	})
}

// CompareRequest compares preferred sizes.
func (ts *TestServer) CompareRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/simulations/compare",
		Body:   body,
	})
}

// LatestRequest fetches the latest run.
func (ts *TestServer) LatestRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/api/v1/simulations/latest",
	})
}

// FlightsRequest pages through the latest run's flights.
func (ts *TestServer) FlightsRequest(offset, limit int) Response {
	q := url.Values{}
	q.Set("offset", strconv.Itoa(offset))
	q.Set("limit", strconv.Itoa(limit))
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/api/v1/simulations/latest/flights?" + q.Encode(),
	})
}

// RouteProfitRequest asks for the average profit between two airports.
func (ts *TestServer) RouteProfitRequest(source, destination string) Response {
	q := url.Values{}
	q.Set("source", source)
	q.Set("destination", destination)
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/api/v1/routes/profit?" + q.Encode(),
	})
}

// RoutesRequest fetches the route report with the given raw query string.
func (ts *TestServer) RoutesRequest(query string) Response {
	path := "/api/v1/routes"
	if query != "" {
		path += "?" + query
	}
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   path,
	})
}

// GraphRequest fetches the route graph.
func (ts *TestServer) GraphRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/api/v1/graph",
	})
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/health",
	})
}

// Decode unmarshals the response body into v.
func (r *Response) Decode(v interface{}) error {
	return json.Unmarshal(r.Body, v)
}

// ParseSimulation parses the body as a SimulationResponse.
func (r *Response) ParseSimulation() (*httpAdapter.SimulationResponse, error) {
	var resp httpAdapter.SimulationResponse
	if err := r.Decode(&resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseError parses the body as an ErrorDetail.
func (r *Response) ParseError() (*response.ErrorDetail, error) {
	var resp response.ErrorDetail
	if err := r.Decode(&resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Inputs bundles the fake sources behind a use case so tests can inspect them.
type Inputs struct {
	Graph    *mock.GraphSource
	Settings *mock.SettingsSource
	Data     *mock.DataSource
}

// DefaultInputs serves mock.SampleRoutes, mock.DefaultSettings and no recorded flights.
func DefaultInputs() Inputs {
	return Inputs{
		Graph:    mock.NewGraphSource(mock.SampleRoutes()...),
		Settings: mock.NewSettingsSource(mock.DefaultSettings()),
		Data:     mock.NewDataSource(),
	}
}

// CreateUseCase creates a use case over the given inputs with a fixed service seed.
func CreateUseCase(in Inputs) usecase.SimulationUseCase {
	return CreateUseCaseWithConfig(in, &usecase.SimulationConfig{Seed: 1})
}

// CreateUseCaseWithConfig creates a use case with custom configuration.
func CreateUseCaseWithConfig(in Inputs, config *usecase.SimulationConfig) usecase.SimulationUseCase {
	return usecase.NewSimulationUseCase(usecase.Sources{
		Graph:    in.Graph,
		Data:     in.Data,
		Settings: in.Settings,
	}, zerolog.Nop(), config)
}

// RecordedFlights returns n FullLargeFlight inputs alternating between two routes.
func RecordedFlights(n int) []domain.FlightInput {
	out := make([]domain.FlightInput, 0, n)
	for i := 0; i < n; i++ {
		if i%2 == 0 {
			out = append(out, mock.FullLargeFlight("JFK", "BOS"))
		} else {
			out = append(out, mock.FullLargeFlight("BOS", "MIA"))
		}
	}
	return out
}
