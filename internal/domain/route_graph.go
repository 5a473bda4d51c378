package domain

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// EdgeID is a stable handle for a route. It is issued when the edge is created,
// stays valid while the edge exists and is never re-issued until the graph is cleared.
type EdgeID uint64

// Edge is an undirected, weighted route between two airports.
// Source and Destination keep the order in which the edge was created.
type Edge struct {
	ID          EdgeID
	Source      string
	Destination string
	Distance    float64
}

// Other returns the endpoint opposite to name.
func (e Edge) Other(name string) string {
	if e.Source == name {
		return e.Destination
	}
	return e.Source
}

// pairKey identifies an unordered airport pair.
type pairKey struct {
	a, b string
}

func newPairKey(x, y string) pairKey {
	if x > y {
		x, y = y, x
	}
	return pairKey{a: x, b: y}
}

// RouteGraph is an undirected simple weighted graph of airports.
// It is not safe for concurrent mutation; each simulation run owns its own graph.
type RouteGraph struct {
	airports map[string]Airport
	order    []string
	edges    map[EdgeID]Edge
	byPair   map[pairKey]EdgeID
	adjacent map[string]map[EdgeID]struct{}
	nextID   EdgeID
}

// NewRouteGraph creates an empty graph.
func NewRouteGraph() *RouteGraph {
	g := &RouteGraph{}
	g.reset()
	return g
}

func (g *RouteGraph) reset() {
	g.airports = make(map[string]Airport)
	g.order = nil
	g.edges = make(map[EdgeID]Edge)
	g.byPair = make(map[pairKey]EdgeID)
	g.adjacent = make(map[string]map[EdgeID]struct{})
	g.nextID = 0
}

// AddAirport adds a vertex. Adding an existing airport is a no-op.
func (g *RouteGraph) AddAirport(name string) {
	a := NewAirport(name)
	if a.Name == "" {
		return
	}
	if _, ok := g.airports[a.Name]; ok {
		return
	}
	g.airports[a.Name] = a
	g.order = append(g.order, a.Name)
	g.adjacent[a.Name] = make(map[EdgeID]struct{})
}

// CreateEdge connects two existing airports. It returns ErrInvalidEdge when the
// distance is not positive, the endpoints are equal, an endpoint is missing,
// or the pair is already connected in either direction.
func (g *RouteGraph) CreateEdge(source, destination string, distance float64) (EdgeID, error) {
	src := NormalizeAirportName(source)
	dst := NormalizeAirportName(destination)

	if distance <= 0 || math.IsNaN(distance) || math.IsInf(distance, 0) {
		return 0, fmt.Errorf("%w: distance must be positive, got %v", ErrInvalidEdge, distance)
	}
	if src == dst {
		return 0, fmt.Errorf("%w: source and destination are the same (%s)", ErrInvalidEdge, src)
	}
	if _, ok := g.airports[src]; !ok {
		return 0, fmt.Errorf("%w: airport %q not in graph", ErrInvalidEdge, src)
	}
	if _, ok := g.airports[dst]; !ok {
		return 0, fmt.Errorf("%w: airport %q not in graph", ErrInvalidEdge, dst)
	}
	key := newPairKey(src, dst)
	if _, ok := g.byPair[key]; ok {
		return 0, fmt.Errorf("%w: %s and %s are already connected", ErrInvalidEdge, src, dst)
	}

	g.nextID++
	id := g.nextID
	g.edges[id] = Edge{ID: id, Source: src, Destination: dst, Distance: distance}
	g.byPair[key] = id
	g.adjacent[src][id] = struct{}{}
	g.adjacent[dst][id] = struct{}{}
	return id, nil
}

// Distance returns the weight between two airports, or 0 when they are not connected.
func (g *RouteGraph) Distance(source, destination string) float64 {
	id, ok := g.EdgeBetween(source, destination)
	if !ok {
		return 0
	}
	return g.edges[id].Distance
}

// RemoveEdge deletes the edge between two airports if it exists.
func (g *RouteGraph) RemoveEdge(source, destination string) {
	id, ok := g.EdgeBetween(source, destination)
	if !ok {
		return
	}
	g.deleteEdge(id)
}

func (g *RouteGraph) deleteEdge(id EdgeID) {
	e, ok := g.edges[id]
	if !ok {
		return
	}
	delete(g.edges, id)
	delete(g.byPair, newPairKey(e.Source, e.Destination))
	delete(g.adjacent[e.Source], id)
	delete(g.adjacent[e.Destination], id)
}

// RemoveAirport deletes an airport and every edge touching it.
func (g *RouteGraph) RemoveAirport(name string) {
	n := NormalizeAirportName(name)
	if _, ok := g.airports[n]; !ok {
		return
	}
	for id := range g.adjacent[n] {
		g.deleteEdge(id)
	}
	delete(g.adjacent, n)
	delete(g.airports, n)
	for i, v := range g.order {
		if v == n {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}
}

// AreConnected reports whether an edge joins the two airports, in either order.
func (g *RouteGraph) AreConnected(source, destination string) bool {
	_, ok := g.EdgeBetween(source, destination)
	return ok
}

// IsInGraph reports whether the airport is a vertex.
func (g *RouteGraph) IsInGraph(name string) bool {
	_, ok := g.airports[NormalizeAirportName(name)]
	return ok
}

// Airport returns the stored airport, or false if it is not in the graph.
func (g *RouteGraph) Airport(name string) (Airport, bool) {
	a, ok := g.airports[NormalizeAirportName(name)]
	return a, ok
}

// Airports returns all airports in insertion order.
func (g *RouteGraph) Airports() []Airport {
	out := make([]Airport, 0, len(g.order))
	for _, n := range g.order {
		out = append(out, g.airports[n])
	}
	return out
}

// EdgeBetween resolves the handle of the edge joining two airports.
func (g *RouteGraph) EdgeBetween(source, destination string) (EdgeID, bool) {
	id, ok := g.byPair[newPairKey(NormalizeAirportName(source), NormalizeAirportName(destination))]
	return id, ok
}

// Edge returns the edge for a handle, or false if it no longer exists.
func (g *RouteGraph) Edge(id EdgeID) (Edge, bool) {
	e, ok := g.edges[id]
	return e, ok
}

// AirportCount returns the number of vertices.
func (g *RouteGraph) AirportCount() int {
	return len(g.airports)
}

// EdgeCount returns the number of edges.
func (g *RouteGraph) EdgeCount() int {
	return len(g.edges)
}

// SortedEdges returns every edge ordered by ascending distance.
// Equal distances keep creation order, so the result is reproducible.
func (g *RouteGraph) SortedEdges() []Edge {
	out := g.edgesByID()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Distance < out[j].Distance
	})
	return out
}

func (g *RouteGraph) edgesByID() []Edge {
	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out
}

// Clear removes all airports and edges and resets handle numbering.
func (g *RouteGraph) Clear() {
	g.reset()
}

// Neighbour is one entry of an airport's adjacency list.
type Neighbour struct {
	Airport  string
	Distance float64
	EdgeID   EdgeID
}

// AdjacencyEntry lists the neighbours of one airport.
type AdjacencyEntry struct {
	Airport    string
	Neighbours []Neighbour
}

// Adjacency returns every airport with its neighbours, airports in insertion order
// and neighbours in edge creation order.
func (g *RouteGraph) Adjacency() []AdjacencyEntry {
	out := make([]AdjacencyEntry, 0, len(g.order))
	for _, name := range g.order {
		ids := make([]EdgeID, 0, len(g.adjacent[name]))
		for id := range g.adjacent[name] {
			ids = append(ids, id)
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

		entry := AdjacencyEntry{Airport: name, Neighbours: make([]Neighbour, 0, len(ids))}
		for _, id := range ids {
			e := g.edges[id]
			entry.Neighbours = append(entry.Neighbours, Neighbour{
				Airport:  e.Other(name),
				Distance: e.Distance,
				EdgeID:   id,
			})
		}
		out = append(out, entry)
	}
	return out
}

// String renders the adjacency dump used by display collaborators:
//
//	Vertex: A
//	-> B(120)
func (g *RouteGraph) String() string {
	var b strings.Builder
	for _, entry := range g.Adjacency() {
		b.WriteString("Vertex: ")
		b.WriteString(entry.Airport)
		b.WriteByte('\n')
		for _, n := range entry.Neighbours {
			b.WriteString("-> ")
			b.WriteString(n.Airport)
			b.WriteByte('(')
			b.WriteString(strconv.FormatFloat(n.Distance, 'f', -1, 64))
			b.WriteString(")\n")
		}
	}
	return b.String()
}
