package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airline-sim/airline-route-simulator/internal/domain"
)

func newTestGenerator(t *testing.T, settings domain.Settings, rng domain.RandomSource) *Generator {
	t.Helper()
	factory, err := NewFlightFactoryFromSettings(settings)
	require.NoError(t, err)
	gen, err := NewGenerator(settings, factory, rng)
	require.NoError(t, err)
	return gen
}

func sortedTestEdges() []domain.Edge {
	return []domain.Edge{
		{ID: 1, Source: "A", Destination: "B", Distance: 100},
		{ID: 2, Source: "A", Destination: "C", Distance: 600},
		{ID: 3, Source: "B", Destination: "C", Distance: 1600},
		{ID: 4, Source: "C", Destination: "D", Distance: 3000},
	}
}

func TestGenerator_PickEdge(t *testing.T) {
	tests := []struct {
		name      string
		preferred domain.AircraftSize
		rng       *scriptedRandom
		wantID    domain.EdgeID
	}{
		{
			name:      "medium advances on draws below one half",
			preferred: domain.SizeMedium,
			rng:       &scriptedRandom{floats: []float64{0.1, 0.9, 0.3}},
			wantID:    3,
		},
		{
			name:      "small never advances on 0.6",
			preferred: domain.SizeSmall,
			rng:       &scriptedRandom{floats: []float64{0.6}},
			wantID:    1,
		},
		{
			name:      "large always advances on 0.6",
			preferred: domain.SizeLarge,
			rng:       &scriptedRandom{floats: []float64{0.6}},
			wantID:    4,
		},
		{
			name:      "unknown size picks uniformly",
			preferred: domain.SizeUnknown,
			rng:       &scriptedRandom{ints: []int{1}},
			wantID:    2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := newTestGenerator(t, testSettings(), tt.rng)

			edge, err := gen.PickEdge(sortedTestEdges(), tt.preferred)
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, edge.ID)
		})
	}
}

func TestGenerator_PickEdgeDrawCount(t *testing.T) {
	rng := &scriptedRandom{floats: []float64{0.0}}
	gen := newTestGenerator(t, testSettings(), rng)

	_, err := gen.PickEdge(sortedTestEdges(), domain.SizeMedium)
	require.NoError(t, err)
	assert.Equal(t, 3, rng.fi)

	_, err = gen.PickEdge(sortedTestEdges()[:1], domain.SizeMedium)
	require.NoError(t, err)
	assert.Equal(t, 3, rng.fi)
}

func TestGenerator_PickEdgeEmpty(t *testing.T) {
	gen := newTestGenerator(t, testSettings(), domain.NewSeededRandom(1))

	_, err := gen.PickEdge(nil, domain.SizeLarge)
	assert.ErrorIs(t, err, domain.ErrNoRoutes)
}

func TestGenerator_PickEdgeStaysInBounds(t *testing.T) {
	gen := newTestGenerator(t, testSettings(), domain.NewSeededRandom(42))
	edges := sortedTestEdges()

	for _, size := range []domain.AircraftSize{domain.SizeSmall, domain.SizeMedium, domain.SizeLarge, domain.SizeUnknown} {
		for i := 0; i < 200; i++ {
			edge, err := gen.PickEdge(edges, size)
			require.NoError(t, err)
			assert.Contains(t, edges, edge)
		}
	}
}

func TestGenerator_ClassifyBySize(t *testing.T) {
	gen := newTestGenerator(t, testSettings(), domain.NewSeededRandom(1))

	tests := []struct {
		distance float64
		want     domain.AircraftSize
	}{
		{distance: 1, want: domain.SizeSmall},
		{distance: 499.9, want: domain.SizeSmall},
		{distance: 500, want: domain.SizeMedium},
		{distance: 1499, want: domain.SizeMedium},
		{distance: 1500, want: domain.SizeLarge},
		{distance: 9000, want: domain.SizeLarge},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, gen.ClassifyBySize(tt.distance), "distance %v", tt.distance)
	}
}

func TestGenerator_RandomSeatsFilled(t *testing.T) {
	gen := newTestGenerator(t, testSettings(), &scriptedRandom{})

	assert.Equal(t, domain.SeatCounts{99, 0, 19, 9}, gen.RandomSeatsFilled(domain.SizeMedium))
	assert.Equal(t, domain.SeatCounts{49, 0, 0, 0}, gen.RandomSeatsFilled(domain.SizeSmall))
}

func TestGenerator_RandomSeatsFilledCapacityOne(t *testing.T) {
	settings := testSettings().With(domain.KeySmallPlaneSeatMax, "1|0|0|1")
	gen := newTestGenerator(t, settings, domain.NewSeededRandom(7))

	for i := 0; i < 20; i++ {
		assert.Equal(t, domain.SeatCounts{}, gen.RandomSeatsFilled(domain.SizeSmall))
	}
}

func TestGenerator_GenerateOne(t *testing.T) {
	gen := newTestGenerator(t, testSettings(), &scriptedRandom{floats: []float64{0.9}})

	f, err := gen.GenerateOne(sortedTestEdges())
	require.NoError(t, err)

	assert.Equal(t, "A", f.Source().Name)
	assert.Equal(t, "B", f.Destination().Name)
	assert.Equal(t, domain.SizeSmall, f.Size())
	assert.Equal(t, domain.SeniorityJunior, f.Pilot().Seniority)
	assert.Equal(t, domain.SeatCounts{50, 0, 0, 0}, f.MaxSeats())
	assert.True(t, f.HasRCP())
	assert.NoError(t, f.Validate())
}

func TestGenerator_GenerateMany(t *testing.T) {
	graph := domain.NewRouteGraph()
	_, err := testRoutes().LoadGraph(context.Background(), graph)
	require.NoError(t, err)

	gen := newTestGenerator(t, testSettings(), domain.NewSeededRandom(2024))
	ledger := domain.NewFlightLedger()

	n, err := gen.GenerateMany(context.Background(), graph, ledger)
	require.NoError(t, err)
	assert.Equal(t, 50, n)
	assert.Equal(t, 50, ledger.Len())

	indexed := 0
	for _, id := range ledger.EdgeIDs() {
		flights, _ := ledger.FlightsOnEdge(id)
		indexed += len(flights)
	}
	assert.Equal(t, 50, indexed)

	for _, f := range ledger.All() {
		assert.NoError(t, f.Validate())
		for i, capacity := range f.MaxSeats() {
			if capacity == 0 {
				assert.Zero(t, f.Occupied()[i])
			}
		}
	}
}

func TestGenerator_GenerateManyIsReproducible(t *testing.T) {
	run := func() []string {
		graph := domain.NewRouteGraph()
		_, err := testRoutes().LoadGraph(context.Background(), graph)
		require.NoError(t, err)

		gen := newTestGenerator(t, testSettings(), domain.NewSeededRandom(99))
		ledger := domain.NewFlightLedger()
		_, err = gen.GenerateMany(context.Background(), graph, ledger)
		require.NoError(t, err)

		out := make([]string, 0, ledger.Len())
		for _, f := range ledger.All() {
			out = append(out, f.Source().Name+"-"+f.Destination().Name+":"+f.Profit().String())
		}
		return out
	}

	assert.Equal(t, run(), run())
}

func TestGenerator_GenerateManyEmptyGraph(t *testing.T) {
	gen := newTestGenerator(t, testSettings(), domain.NewSeededRandom(1))

	_, err := gen.GenerateMany(context.Background(), domain.NewRouteGraph(), domain.NewFlightLedger())
	assert.ErrorIs(t, err, domain.ErrNoRoutes)
}

func TestGenerator_GenerateManyCancelled(t *testing.T) {
	graph := domain.NewRouteGraph()
	_, err := testRoutes().LoadGraph(context.Background(), graph)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	gen := newTestGenerator(t, testSettings(), domain.NewSeededRandom(1))
	n, err := gen.GenerateMany(ctx, graph, domain.NewFlightLedger())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, n)
}

func TestNewGenerator_MissingSetting(t *testing.T) {
	settings := domain.NewSettings(map[string]string{domain.KeyNumberOfFlights: "10"})
	factory := newTestFactory(t)

	_, err := NewGenerator(settings, factory, domain.NewSeededRandom(1))
	assert.ErrorIs(t, err, domain.ErrConfiguration)
}
