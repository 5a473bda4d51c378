package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airline-sim/airline-route-simulator/internal/domain"
)

func TestCrewAssigner_Assign(t *testing.T) {
	crew, err := NewCrewAssigner(testSettings())
	require.NoError(t, err)

	tests := []struct {
		name      string
		size      domain.AircraftSize
		seniority domain.Seniority
		pay       int64
	}{
		{name: "large gets senior", size: domain.SizeLarge, seniority: domain.SenioritySenior, pay: 800},
		{name: "medium gets mid-level", size: domain.SizeMedium, seniority: domain.SeniorityMidLevel, pay: 600},
		{name: "small gets junior", size: domain.SizeSmall, seniority: domain.SeniorityJunior, pay: 400},
		{name: "unknown falls back to junior", size: domain.SizeUnknown, seniority: domain.SeniorityJunior, pay: 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			member := crew.Assign(tt.size)
			assert.Equal(t, tt.seniority, member.Seniority)
			assert.True(t, member.CostPerFlight.Equal(domain.MoneyFromInt(tt.pay)))
		})
	}
}

func TestNewCrewAssigner_MissingPay(t *testing.T) {
	settings := domain.NewSettings(map[string]string{
		domain.KeyJuniorPilotPay:   "400",
		domain.KeyMidLevelPilotPay: "600",
	})

	_, err := NewCrewAssigner(settings)

	var cfgErr *domain.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, domain.KeySeniorPilotPay, cfgErr.Key)
}

func TestFlightFactory_Build(t *testing.T) {
	factory := newTestFactory(t)

	in := largeTestInput("den", "sfo")
	in.Occupied = domain.SeatCounts{3, 0, 10, 10}
	f, err := factory.Build(in)
	require.NoError(t, err)

	assert.Equal(t, domain.SenioritySenior, f.Pilot().Seniority)
	assert.Equal(t, domain.SenioritySenior, f.CoPilot().Seniority)
	assert.Equal(t, 40, f.Aircraft().TotalCapacity)
	assert.Equal(t, 23, f.Aircraft().TotalOccupied)
	assert.Equal(t, "DEN", f.Source().Name)
	assert.True(t, f.HasRCP())
	assert.Equal(t, "480.00", f.Revenue().String())
}

func TestFlightFactory_TrustsInputs(t *testing.T) {
	factory := newTestFactory(t)

	in := largeTestInput("A", "B")
	in.Occupied[0] = 11

	f, err := factory.Build(in)
	require.NoError(t, err)
	assert.ErrorIs(t, f.Validate(), domain.ErrSeatOverflow)
}
