package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFlight(src, dst string) *FlightRecord {
	return NewFlightRecord(FlightInput{
		Size:        SizeSmall,
		MaxSeats:    SeatCounts{50, 0, 0, 0},
		Occupied:    SeatCounts{7, 0, 0, 0},
		Prices:      SeatPrices{MoneyFromInt(100), Zero, Zero, Zero},
		Source:      src,
		Destination: dst,
		Distance:    120,
	}, CrewMember{Seniority: SeniorityJunior}, CrewMember{Seniority: SeniorityJunior})
}

func TestFlightLedger_Add(t *testing.T) {
	g := newTestGraph(t)
	l := NewFlightLedger()

	idAB, indexed := l.Add(testFlight("A", "B"), g)
	require.True(t, indexed)
	idBA, indexed := l.Add(testFlight("b", "a"), g)
	require.True(t, indexed)
	assert.Equal(t, idAB, idBA)

	_, indexed = l.Add(testFlight("B", "D"), g)
	assert.False(t, indexed)

	assert.Equal(t, 3, l.Len())
	assert.Len(t, l.All(), 3)

	flights, ok := l.FlightsOnEdge(idAB)
	require.True(t, ok)
	assert.Len(t, flights, 2)
	assert.Equal(t, []EdgeID{idAB}, l.EdgeIDs())
}

func TestFlightLedger_FlightsOnUnknownEdge(t *testing.T) {
	l := NewFlightLedger()

	flights, ok := l.FlightsOnEdge(EdgeID(42))
	assert.False(t, ok)
	assert.Nil(t, flights)
}

func TestFlightLedger_Clear(t *testing.T) {
	g := newTestGraph(t)
	l := NewFlightLedger()
	id, _ := l.Add(testFlight("A", "C"), g)

	l.Clear()

	assert.Equal(t, 0, l.Len())
	assert.Empty(t, l.EdgeIDs())
	_, ok := l.FlightsOnEdge(id)
	assert.False(t, ok)
}
