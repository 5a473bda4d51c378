package integration

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airline-sim/airline-route-simulator/internal/adapter/provider/flightdata"
	"github.com/airline-sim/airline-route-simulator/internal/adapter/provider/graphfile"
	"github.com/airline-sim/airline-route-simulator/internal/adapter/provider/properties"
	"github.com/airline-sim/airline-route-simulator/internal/domain"
	"github.com/airline-sim/airline-route-simulator/internal/usecase"
	"github.com/airline-sim/airline-route-simulator/test/mock"
	"github.com/airline-sim/airline-route-simulator/test/testutil"
)

func fileUseCase(graphPath, dataPath, propertiesPath string, opts ...properties.Option) usecase.SimulationUseCase {
	log := zerolog.Nop()
	return usecase.NewSimulationUseCase(usecase.Sources{
		Graph:    graphfile.NewAdapter(graphPath, log),
		Data:     flightdata.NewAdapter(dataPath, log),
		Settings: properties.NewAdapter(propertiesPath, log, opts...),
	}, log, &usecase.SimulationConfig{Seed: 3})
}

// TestSimulation_DataFile_KnownFigures ingests a data file with one malformed row
// and checks totals, averages and the skip count.
func TestSimulation_DataFile_KnownFigures(t *testing.T) {
	// Arrange
	data := testutil.WriteFile(t, "flights.psv", testutil.PSV(testutil.DataHeader,
		testutil.LargeFlightRow("JFK", "BOS"),
		testutil.LargeFlightRow("BOS", "JFK"),
		"JFK|BOS|not-a-number|L|10|10|10|10|10|10|10|10|10|15|20|25",
		testutil.LargeFlightRow("ORD", "LAX"),
	))
	props := testutil.WriteFile(t, "sim.properties", testutil.Properties(mock.DefaultSettings()))
	uc := fileUseCase("", data, props)

	// Act
	result, err := uc.RunFromData(context.Background())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, domain.LoadReport{Read: 3, Skipped: 1}, result.Load)
	assert.Equal(t, 4, result.Airports)
	assert.Equal(t, 2, result.Routes)
	assert.Equal(t, 3, result.Totals.Flights)
	assert.Equal(t, "2100.00", result.Totals.Revenue.String())
	assert.Equal(t, "9300.00", result.Totals.Cost.String())
	assert.Equal(t, "-7200.00", result.Totals.Profit.String())
	assert.Equal(t, "-2400.00", result.AverageProfit.String())

	avg, err := uc.AverageProfit(context.Background(), "jfk", "bos")
	require.NoError(t, err)
	assert.Equal(t, "-2400.00", avg.String())
}

func TestSimulation_GraphFile_Synthetic(t *testing.T) {
	// Arrange
	graph := testutil.WriteFile(t, "routes.psv", testutil.PSV(testutil.GraphHeader,
		"JFK|BOS|187",
		"JFK|ORD|740",
		"ORD|ORD|10",
		"ORD|LAX|-5",
		"BOS|JFK|187",
	))
	uc := fileUseCase(graph, "", "")

	// Act
	result, err := uc.RunSynthetic(context.Background(), usecase.RunOptions{Flights: 25})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, domain.LoadReport{Read: 2, Skipped: 3}, result.Load)
	// LAX is added before its route is rejected
	assert.Equal(t, 4, result.Airports)
	assert.Equal(t, 2, result.Routes)
	assert.Equal(t, 25, result.Totals.Flights)
	assert.Equal(t, int64(3), result.Seed)

	page, err := uc.Flights(context.Background(), 0, 0)
	require.NoError(t, err)
	for _, f := range page.Flights {
		assert.True(t, f.HasRCP())
		assert.Contains(t, []string{"JFK", "BOS", "ORD"}, f.Source().Name)
	}
}

func TestSimulation_YAMLProperties(t *testing.T) {
	yamlBody := "FUEL_COST: 15\n" +
		"JUNIOR_PILOT_PAY: 400\n" +
		"MIDLEVEL_PILOT_PAY: 600\n" +
		"SENIOR_PILOT_PAY: 800\n" +
		"NUMBER_OF_FLIGHTS: 12\n" +
		"PREFERRED_AIRCRAFT_SIZE: S\n" +
		"SMALL_PLANE_MAX_RANGE: 500\n" +
		"MEDIUM_PLANE_MAX_RANGE: 1500\n" +
		"SMALL_PLANE_SEAT_MAX_PER_SECTION: 50|0|0|0\n" +
		"MEDIUM_PLANE_SEAT_MAX_PER_SECTION: 100|0|20|10\n" +
		"LARGE_PLANE_SEAT_MAX_PER_SECTION: 200|50|30|20\n" +
		"SMALL_PLANE_SEAT_PRICE: 100|0|0|0\n" +
		"MEDIUM_PLANE_SEAT_PRICE: 150|0|400|800\n" +
		"LARGE_PLANE_SEAT_PRICE: 200|300|600|1200\n"
	props := testutil.WriteFile(t, "sim.yaml", yamlBody)
	uc := fileUseCase("", "", props)

	result, err := uc.RunSynthetic(context.Background(), usecase.RunOptions{})

	require.NoError(t, err)
	assert.Equal(t, 12, result.Totals.Flights)
	assert.Equal(t, domain.SizeSmall, result.PreferredSize)
}

func TestSimulation_PropertiesFallback(t *testing.T) {
	missing := t.TempDir() + "/missing.properties"

	t.Run("without fallback the run fails", func(t *testing.T) {
		_, err := fileUseCase("", "", missing).RunSynthetic(context.Background(), usecase.RunOptions{Flights: 5})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "open properties file")
	})

	t.Run("with fallback the bundled settings are used", func(t *testing.T) {
		result, err := fileUseCase("", "", missing, properties.WithFallback()).
			RunSynthetic(context.Background(), usecase.RunOptions{Flights: 5})
		require.NoError(t, err)
		assert.Equal(t, 5, result.Totals.Flights)
	})
}

func TestSimulation_InvalidSettingsFile(t *testing.T) {
	values := mock.DefaultSettings()
	values[domain.KeyMediumPlaneSeatMax] = "100|0|20"
	values[domain.KeyFuelCost] = "-1"
	props := testutil.WriteFile(t, "bad.properties", testutil.Properties(values))

	_, err := fileUseCase("", "", props).RunSynthetic(context.Background(), usecase.RunOptions{})

	require.ErrorIs(t, err, domain.ErrConfiguration)
	assert.Contains(t, err.Error(), domain.KeyMediumPlaneSeatMax)
	assert.Contains(t, err.Error(), domain.KeyFuelCost)
}

func TestSimulation_ContextCancellation(t *testing.T) {
	in := DefaultInputs()
	in.Graph = mock.NewGraphSource(mock.SampleRoutes()...).WithDelay(time.Second)
	uc := CreateUseCase(in)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	_, err := uc.RunSynthetic(ctx, usecase.RunOptions{})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), 500*time.Millisecond)

	_, err = uc.Results(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoSimulation)
}

func TestSimulation_NewRunReplacesOld(t *testing.T) {
	in := DefaultInputs()
	in.Data = mock.NewDataSource(RecordedFlights(2)...)
	uc := CreateUseCase(in)
	ctx := context.Background()

	first, err := uc.RunFromData(ctx)
	require.NoError(t, err)

	second, err := uc.RunSynthetic(ctx, usecase.RunOptions{Flights: 7})
	require.NoError(t, err)
	assert.NotEqual(t, first.RunID, second.RunID)

	page, err := uc.Flights(ctx, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 7, page.Total)

	graph, err := uc.Graph(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, graph.Routes)
}
