package usecase

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/airline-sim/airline-route-simulator/internal/domain"
	"github.com/airline-sim/airline-route-simulator/internal/infrastructure/timeutil"
)

// RunMode identifies how a simulation populated its ledger.
type RunMode string

// Run modes.
const (
	ModeSynthetic RunMode = "synthetic"
	ModeData      RunMode = "data"
)

// ParseRunMode returns the mode for s, defaulting to synthetic.
func ParseRunMode(s string) (RunMode, bool) {
	switch RunMode(s) {
	case ModeSynthetic, "":
		return ModeSynthetic, true
	case ModeData:
		return ModeData, true
	default:
		return "", false
	}
}

// RunOptions override model settings for a single synthetic run.
// Zero values keep the configured behaviour.
type RunOptions struct {
	// Seed for the random source. Zero uses the service seed, or the clock when that is zero too.
	Seed int64

	// PreferredSize replaces PREFERRED_AIRCRAFT_SIZE when valid
	PreferredSize domain.AircraftSize

	// Flights replaces NUMBER_OF_FLIGHTS when positive
	Flights int
}

func (o RunOptions) apply(settings domain.Settings) domain.Settings {
	if o.PreferredSize.IsValid() {
		settings = settings.With(domain.KeyPreferredAircraftSize, string(o.PreferredSize))
	}
	if o.Flights > 0 {
		settings = settings.With(domain.KeyNumberOfFlights, strconv.Itoa(o.Flights))
	}
	return settings
}

// SimulationResult describes the latest completed run.
type SimulationResult struct {
	RunID         string              `json:"run_id"`
	Mode          RunMode             `json:"mode"`
	Seed          int64               `json:"seed,omitempty"`
	PreferredSize domain.AircraftSize `json:"preferred_size,omitempty"`
	StartedAt     time.Time           `json:"started_at"`
	FinishedAt    time.Time           `json:"finished_at"`
	Airports      int                 `json:"airports"`
	Routes        int                 `json:"routes"`
	Load          domain.LoadReport   `json:"load"`
	Totals        Totals              `json:"totals"`
	AverageProfit domain.Money        `json:"average_profit"`
}

// FlightPage is a window over the flights of the latest run.
type FlightPage struct {
	Total   int
	Offset  int
	Flights []*domain.FlightRecord
}

// GraphSnapshot is a read-only view of the current route graph.
type GraphSnapshot struct {
	Airports  int
	Routes    int
	Adjacency []domain.AdjacencyEntry
	Dump      string
}

// SizeComparison is the outcome of one run in a Compare call.
type SizeComparison struct {
	Size          domain.AircraftSize `json:"size"`
	Seed          int64               `json:"seed"`
	Routes        int                 `json:"routes"`
	Totals        Totals              `json:"totals"`
	AverageProfit domain.Money        `json:"average_profit"`
}

// SimulationUseCase runs simulations and answers queries about the latest one.
type SimulationUseCase interface {
	// RunSynthetic clears the session, loads settings and graph, and generates flights.
	RunSynthetic(ctx context.Context, opts RunOptions) (*SimulationResult, error)

	// RunFromData clears the session and ingests recorded flights from the data source.
	RunFromData(ctx context.Context) (*SimulationResult, error)

	// Results returns the latest run, or ErrNoSimulation.
	Results(ctx context.Context) (*SimulationResult, error)

	// Flights pages through the latest run's flights in ledger order.
	Flights(ctx context.Context, offset, limit int) (*FlightPage, error)

	// AverageProfit averages profit over the flights between two airports.
	AverageProfit(ctx context.Context, source, destination string) (domain.Money, error)

	// Graph returns the current route graph.
	Graph(ctx context.Context) (*GraphSnapshot, error)

	// Routes reports per-route totals of the latest run, filtered and sorted.
	Routes(ctx context.Context, opts RouteReportOptions) ([]RouteStats, error)

	// Compare runs one independent synthetic simulation per size, concurrently.
	// The session is left untouched.
	Compare(ctx context.Context, sizes []domain.AircraftSize, seed int64) ([]SizeComparison, error)
}

// Sources are the collaborators a simulation reads its inputs from.
type Sources struct {
	Graph    domain.GraphSource
	Data     domain.FlightDataSource
	Settings domain.SettingsSource
}

// SimulationConfig contains configuration options for the use case.
type SimulationConfig struct {
	// Seed is used when a run does not name one. Zero seeds from the clock.
	Seed int64

	// Clock stamps runs. Defaults to the real clock.
	Clock timeutil.Clock
}

// simulationUseCase keeps one simulation session. Runs are serialized by mu;
// queries take the read lock.
type simulationUseCase struct {
	sources Sources
	log     zerolog.Logger
	seed    int64
	clock   timeutil.Clock

	mu     sync.RWMutex
	graph  *domain.RouteGraph
	ledger *domain.FlightLedger
	engine *RCPEngine
	result *SimulationResult
}

// NewSimulationUseCase creates the service. If config is nil the clock seeds every run.
func NewSimulationUseCase(sources Sources, log zerolog.Logger, config *SimulationConfig) SimulationUseCase {
	uc := &simulationUseCase{
		sources: sources,
		log:     log,
		clock:   timeutil.NewRealClock(),
		graph:   domain.NewRouteGraph(),
		ledger:  domain.NewFlightLedger(),
	}
	if config != nil {
		uc.seed = config.Seed
		if config.Clock != nil {
			uc.clock = config.Clock
		}
	}
	return uc
}

// RunSynthetic implements SimulationUseCase.RunSynthetic.
func (uc *simulationUseCase) RunSynthetic(ctx context.Context, opts RunOptions) (*SimulationResult, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	started := uc.clock.Now()
	uc.reset()

	settings, err := uc.loadSettings(ctx)
	if err != nil {
		return nil, err
	}
	settings = opts.apply(settings)

	seed := uc.resolveSeed(opts.Seed)
	run, err := simulate(ctx, uc.sources.Graph, settings, seed, uc.graph, uc.ledger)
	if err != nil {
		return nil, err
	}
	uc.engine = run.engine

	return uc.finish(ModeSynthetic, started, seed, run.preferred, run.report), nil
}

// RunFromData implements SimulationUseCase.RunFromData.
func (uc *simulationUseCase) RunFromData(ctx context.Context) (*SimulationResult, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	started := uc.clock.Now()
	uc.reset()

	if uc.sources.Data == nil {
		return nil, fmt.Errorf("%w: no flight data source configured", domain.ErrInvalidRequest)
	}

	settings, err := uc.loadSettings(ctx)
	if err != nil {
		return nil, err
	}
	factory, err := NewFlightFactoryFromSettings(settings)
	if err != nil {
		return nil, err
	}

	report, err := uc.sources.Data.LoadFlights(ctx, uc.graph, uc.ledger, factory)
	if err != nil {
		return nil, fmt.Errorf("load flight data: %w", err)
	}
	uc.engine = factory.RCP()

	return uc.finish(ModeData, started, 0, domain.SizeUnknown, report), nil
}

// Results implements SimulationUseCase.Results.
func (uc *simulationUseCase) Results(ctx context.Context) (*SimulationResult, error) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	if uc.result == nil {
		return nil, domain.ErrNoSimulation
	}
	out := *uc.result
	return &out, nil
}

// Flights implements SimulationUseCase.Flights.
func (uc *simulationUseCase) Flights(ctx context.Context, offset, limit int) (*FlightPage, error) {
	if offset < 0 || limit < 0 {
		return nil, fmt.Errorf("%w: offset and limit must not be negative", domain.ErrInvalidRequest)
	}

	uc.mu.RLock()
	defer uc.mu.RUnlock()

	if uc.result == nil {
		return nil, domain.ErrNoSimulation
	}

	all := uc.ledger.All()
	page := &FlightPage{Total: len(all), Offset: offset}
	if offset >= len(all) {
		page.Flights = []*domain.FlightRecord{}
		return page, nil
	}
	end := len(all)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	page.Flights = append([]*domain.FlightRecord(nil), all[offset:end]...)
	return page, nil
}

// AverageProfit implements SimulationUseCase.AverageProfit.
func (uc *simulationUseCase) AverageProfit(ctx context.Context, source, destination string) (domain.Money, error) {
	src := domain.NormalizeAirportName(source)
	dst := domain.NormalizeAirportName(destination)
	if src == "" || dst == "" {
		return domain.Zero, fmt.Errorf("%w: source and destination are required", domain.ErrInvalidRequest)
	}

	uc.mu.RLock()
	defer uc.mu.RUnlock()

	if uc.result == nil {
		return domain.Zero, domain.ErrNoSimulation
	}
	for _, name := range []string{src, dst} {
		if !uc.graph.IsInGraph(name) {
			return domain.Zero, fmt.Errorf("%w: %s", domain.ErrAirportNotFound, name)
		}
	}
	if !uc.graph.AreConnected(src, dst) {
		return domain.Zero, fmt.Errorf("%w: %s and %s", domain.ErrAirportsNotConnected, src, dst)
	}

	return uc.engine.AverageProfitForEdge(uc.ledger, uc.graph, src, dst)
}

// Graph implements SimulationUseCase.Graph.
func (uc *simulationUseCase) Graph(ctx context.Context) (*GraphSnapshot, error) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	return &GraphSnapshot{
		Airports:  uc.graph.AirportCount(),
		Routes:    uc.graph.EdgeCount(),
		Adjacency: uc.graph.Adjacency(),
		Dump:      uc.graph.String(),
	}, nil
}

// Routes implements SimulationUseCase.Routes.
func (uc *simulationUseCase) Routes(ctx context.Context, opts RouteReportOptions) ([]RouteStats, error) {
	if !opts.Filters.IsValid() || opts.Limit < 0 {
		return nil, fmt.Errorf("%w: invalid route filters", domain.ErrInvalidRequest)
	}

	uc.mu.RLock()
	defer uc.mu.RUnlock()

	if uc.result == nil {
		return nil, domain.ErrNoSimulation
	}
	stats, err := uc.engine.RouteStats(uc.ledger, uc.graph)
	if err != nil {
		return nil, err
	}
	return BuildRouteReport(stats, opts), nil
}

// Compare implements SimulationUseCase.Compare. Every size gets its own graph, ledger
// and random source seeded identically, so differences come from the size alone.
func (uc *simulationUseCase) Compare(ctx context.Context, sizes []domain.AircraftSize, seed int64) ([]SizeComparison, error) {
	if len(sizes) == 0 {
		sizes = []domain.AircraftSize{domain.SizeSmall, domain.SizeMedium, domain.SizeLarge}
	}
	for _, size := range sizes {
		if !size.IsValid() {
			return nil, fmt.Errorf("%w: unknown aircraft size %q", domain.ErrInvalidRequest, size)
		}
	}

	settings, err := uc.loadSettings(ctx)
	if err != nil {
		return nil, err
	}

	seed = uc.resolveSeed(seed)

	results := make([]SizeComparison, len(sizes))
	g, gctx := errgroup.WithContext(ctx)
	for i, size := range sizes {
		g.Go(func() error {
			graph := domain.NewRouteGraph()
			ledger := domain.NewFlightLedger()

			run, err := simulate(gctx, uc.sources.Graph, RunOptions{PreferredSize: size}.apply(settings), seed, graph, ledger)
			if err != nil {
				return fmt.Errorf("compare %s: %w", size.Name(), err)
			}
			totals := run.engine.Aggregate(ledger, nil)
			avg, err := totals.AverageProfit()
			if err != nil {
				return fmt.Errorf("compare %s: %w", size.Name(), err)
			}

			results[i] = SizeComparison{
				Size:          size,
				Seed:          seed,
				Routes:        graph.EdgeCount(),
				Totals:        totals,
				AverageProfit: avg,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, r := range results {
		uc.log.Info().
			Str("size", r.Size.Name()).
			Int("flights", r.Totals.Flights).
			Str("total_profit", r.Totals.Profit.String()).
			Str("average_profit", r.AverageProfit.String()).
			Msg("comparison run completed")
	}
	return results, nil
}

// syntheticRun carries what simulate produced besides the populated graph and ledger.
type syntheticRun struct {
	engine    *RCPEngine
	preferred domain.AircraftSize
	report    domain.LoadReport
}

// simulate loads the graph and generates flights into the given graph and ledger.
// It touches no shared state and is safe to call concurrently with distinct instances.
func simulate(ctx context.Context, source domain.GraphSource, settings domain.Settings, seed int64,
	graph *domain.RouteGraph, ledger *domain.FlightLedger) (*syntheticRun, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	factory, err := NewFlightFactoryFromSettings(settings)
	if err != nil {
		return nil, err
	}
	gen, err := NewGenerator(settings, factory, domain.NewSeededRandom(seed))
	if err != nil {
		return nil, err
	}

	report, err := source.LoadGraph(ctx, graph)
	if err != nil {
		return nil, fmt.Errorf("load graph: %w", err)
	}
	if _, err := gen.GenerateMany(ctx, graph, ledger); err != nil {
		return nil, err
	}

	return &syntheticRun{engine: factory.RCP(), preferred: gen.PreferredSize(), report: report}, nil
}

func (uc *simulationUseCase) loadSettings(ctx context.Context) (domain.Settings, error) {
	settings, err := uc.sources.Settings.LoadSettings(ctx)
	if err != nil {
		return domain.Settings{}, fmt.Errorf("load settings: %w", err)
	}
	return settings, nil
}

func (uc *simulationUseCase) resolveSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	if uc.seed != 0 {
		return uc.seed
	}
	return uc.clock.Now().UnixNano()
}

// reset drops the previous run. Callers hold the write lock.
func (uc *simulationUseCase) reset() {
	uc.graph.Clear()
	uc.ledger.Clear()
	uc.engine = nil
	uc.result = nil
}

// finish aggregates the ledger, logs every flight's profit and stores the result.
// Callers hold the write lock.
func (uc *simulationUseCase) finish(mode RunMode, started time.Time, seed int64, preferred domain.AircraftSize, report domain.LoadReport) *SimulationResult {
	runID := uuid.NewString()
	log := uc.log.With().Str("run_id", runID).Str("mode", string(mode)).Logger()

	totals := uc.engine.Aggregate(uc.ledger, func(f *domain.FlightRecord, rcp domain.RCP) {
		log.Debug().
			Str("source", f.Source().Name).
			Str("destination", f.Destination().Name).
			Str("size", string(f.Size())).
			Str("profit", rcp.Profit.String()).
			Msg("flight profit")
	})

	// Totals.Flights is zero-checked, so the division cannot fail.
	avg, _ := totals.AverageProfit()

	uc.result = &SimulationResult{
		RunID:         runID,
		Mode:          mode,
		Seed:          seed,
		PreferredSize: preferred,
		StartedAt:     started,
		FinishedAt:    uc.clock.Now(),
		Airports:      uc.graph.AirportCount(),
		Routes:        uc.graph.EdgeCount(),
		Load:          report,
		Totals:        totals,
		AverageProfit: avg,
	}

	log.Info().
		Int("airports", uc.result.Airports).
		Int("routes", uc.result.Routes).
		Int("flights", totals.Flights).
		Int("skipped", report.Skipped).
		Str("total_revenue", totals.Revenue.String()).
		Str("total_cost", totals.Cost.String()).
		Str("total_profit", totals.Profit.String()).
		Str("average_profit", avg.String()).
		Msg("simulation completed")

	out := *uc.result
	return &out
}

var _ SimulationUseCase = (*simulationUseCase)(nil)

//go:generate mockgen -source=simulation.go -destination=mock_simulation.go -package=usecase
