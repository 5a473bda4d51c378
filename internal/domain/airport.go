package domain

import "strings"

// Airport is a vertex of the route graph. Identity is the normalized name.
type Airport struct {
	Name string
}

// NormalizeAirportName trims and upper-cases an airport name.
func NormalizeAirportName(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// NewAirport creates an Airport with a normalized name.
func NewAirport(name string) Airport {
	return Airport{Name: NormalizeAirportName(name)}
}

// String implements fmt.Stringer.
func (a Airport) String() string {
	return a.Name
}
