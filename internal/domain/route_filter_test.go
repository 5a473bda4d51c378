package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(i int) *int { return &i }
func floatPtr(f float64) *float64 { return &f }

func TestRouteSortOption_IsValid(t *testing.T) {
	tests := []struct {
		option RouteSortOption
		want   bool
	}{
		{SortByAverageProfit, true},
		{SortByTotalProfit, true},
		{SortByFlights, true},
		{SortByDistance, true},
		{"", false},
		{"price", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.option), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.option.IsValid())
		})
	}
}

func TestParseRouteSortOption(t *testing.T) {
	assert.Equal(t, SortByFlights, ParseRouteSortOption("flights"))
	assert.Equal(t, SortByAverageProfit, ParseRouteSortOption(""))
	assert.Equal(t, SortByAverageProfit, ParseRouteSortOption("FLIGHTS"))
}

func TestRouteFilterOptions_IsValid(t *testing.T) {
	tests := []struct {
		name string
		opts *RouteFilterOptions
		want bool
	}{
		{name: "nil", opts: nil, want: true},
		{name: "empty", opts: &RouteFilterOptions{}, want: true},
		{name: "zero min flights", opts: &RouteFilterOptions{MinFlights: intPtr(0)}, want: true},
		{name: "negative min flights", opts: &RouteFilterOptions{MinFlights: intPtr(-1)}, want: false},
		{name: "zero max distance", opts: &RouteFilterOptions{MaxDistance: floatPtr(0)}, want: false},
		{name: "positive max distance", opts: &RouteFilterOptions{MaxDistance: floatPtr(500)}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.opts.IsValid())
		})
	}
}

func TestRouteFilterOptions_MatchesRoute(t *testing.T) {
	edge := Edge{ID: 1, Source: "JFK", Destination: "BOS", Distance: 187}

	tests := []struct {
		name    string
		opts    *RouteFilterOptions
		flights int
		want    bool
	}{
		{name: "nil matches everything", opts: nil, want: true},
		{name: "airport as source", opts: &RouteFilterOptions{Airport: "JFK"}, want: true},
		{name: "airport as destination, lower case", opts: &RouteFilterOptions{Airport: " bos "}, want: true},
		{name: "other airport", opts: &RouteFilterOptions{Airport: "ORD"}, want: false},
		{name: "enough flights", opts: &RouteFilterOptions{MinFlights: intPtr(3)}, flights: 3, want: true},
		{name: "too few flights", opts: &RouteFilterOptions{MinFlights: intPtr(3)}, flights: 2, want: false},
		{name: "within distance", opts: &RouteFilterOptions{MaxDistance: floatPtr(187)}, want: true},
		{name: "too long", opts: &RouteFilterOptions{MaxDistance: floatPtr(100)}, want: false},
		{
			name:    "all filters combined",
			opts:    &RouteFilterOptions{Airport: "BOS", MinFlights: intPtr(1), MaxDistance: floatPtr(200)},
			flights: 1,
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.opts.MatchesRoute(edge, tt.flights))
		})
	}
}
