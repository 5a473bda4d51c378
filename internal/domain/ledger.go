package domain

import "sort"

// EdgeResolver maps an airport pair to the handle of the route joining them.
// *RouteGraph implements it.
type EdgeResolver interface {
	EdgeBetween(source, destination string) (EdgeID, bool)
}

// FlightLedger is the ordered list of flights of one simulation plus an index
// from route handle to the flights flown on that route.
type FlightLedger struct {
	flights []*FlightRecord
	byEdge  map[EdgeID][]*FlightRecord
}

// NewFlightLedger creates an empty ledger.
func NewFlightLedger() *FlightLedger {
	return &FlightLedger{
		byEdge: make(map[EdgeID][]*FlightRecord),
	}
}

// Add appends a flight and indexes it under its route when the resolver knows one.
// It returns the route handle and whether the flight was indexed.
func (l *FlightLedger) Add(f *FlightRecord, routes EdgeResolver) (EdgeID, bool) {
	l.flights = append(l.flights, f)

	id, ok := routes.EdgeBetween(f.Source().Name, f.Destination().Name)
	if !ok {
		return 0, false
	}
	l.byEdge[id] = append(l.byEdge[id], f)
	return id, true
}

// All returns the flights in insertion order. The slice must not be modified.
func (l *FlightLedger) All() []*FlightRecord {
	return l.flights
}

// Len returns the number of flights.
func (l *FlightLedger) Len() int {
	return len(l.flights)
}

// FlightsOnEdge returns the flights indexed under a route handle.
func (l *FlightLedger) FlightsOnEdge(id EdgeID) ([]*FlightRecord, bool) {
	flights, ok := l.byEdge[id]
	return flights, ok
}

// EdgeIDs returns the indexed route handles in ascending order.
func (l *FlightLedger) EdgeIDs() []EdgeID {
	ids := make([]EdgeID, 0, len(l.byEdge))
	for id := range l.byEdge {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Clear drops every flight together with the index.
func (l *FlightLedger) Clear() {
	l.flights = nil
	l.byEdge = make(map[EdgeID][]*FlightRecord)
}
