package core

import "strings"

// Edge is a directed flight route from one vertex to another. It stores
// the destination airport code rather than a vertex pointer; resolve it
// through Graph.FindVertex.
type Edge struct {
	// To is the canonical code of the destination airport.
	To string

	// Distance is the great-circle distance between the endpoints in
	// kilometers, computed once when the route is created.
	Distance float64

	// Airlines is the ordered set of carriers operating this route.
	Airlines *AirlineSet
}

// Vertex is one airport in the graph together with its outgoing routes
// and persistent traffic counters. FlightsTo and FlightsFrom count
// flight instances; InDegree and OutDegree count routes and are valid
// after ComputeDegrees.
type Vertex struct {
	// key is the canonical lookup code, matching Edge.To.
	key string

	// Airport holds the immutable airport attributes.
	Airport Airport

	// Adj is the outgoing edge list in insertion (adjacency) order.
	Adj []*Edge

	// FlightsTo counts inbound flight instances.
	FlightsTo int

	// FlightsFrom counts outbound flight instances.
	FlightsFrom int

	// InDegree counts inbound routes; set by ComputeDegrees.
	InDegree int

	// OutDegree counts outbound routes; set by ComputeDegrees.
	OutDegree int
}

// Key returns the canonical code of this vertex. Edge.To values and the
// side tables of the traversal algorithms use this form.
func (v *Vertex) Key() string { return v.key }

// Graph is the set of vertices of the airport network. It owns all
// vertices and their edges. Directionality matters: there is no
// implicit reverse edge.
//
// The graph is not safe for concurrent mutation; build it fully, then
// query it.
type Graph struct {
	vertices map[string]*Vertex // canonical code → vertex
	order    []string           // canonical codes in insertion order
}

// NewGraph creates an empty Graph.
func NewGraph() *Graph {
	return &Graph{vertices: make(map[string]*Vertex)}
}

// canonical maps an airport code to its lookup key. Codes are unique
// case-insensitively.
func canonical(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// FindVertex returns the vertex for the given airport code, or nil when
// absent. The lookup is case-insensitive.
func (g *Graph) FindVertex(code string) *Vertex {
	return g.vertices[canonical(code)]
}

// NumVertices returns the number of airports in the graph.
func (g *Graph) NumVertices() int { return len(g.vertices) }

// Vertices returns all vertices in insertion order.
func (g *Graph) Vertices() []*Vertex {
	out := make([]*Vertex, 0, len(g.order))
	for _, code := range g.order {
		out = append(out, g.vertices[code])
	}
	return out
}

// AddAirport inserts a new vertex for a. It rejects empty and duplicate
// codes.
func (g *Graph) AddAirport(a Airport) error {
	key := canonical(a.Code)
	if key == "" {
		return ErrEmptyCode
	}
	if _, ok := g.vertices[key]; ok {
		return ErrDuplicateAirport
	}
	g.vertices[key] = &Vertex{key: key, Airport: a}
	g.order = append(g.order, key)
	return nil
}

// FindRoute returns the edge from src to dst, or nil when either
// airport is missing or no direct route exists.
func (g *Graph) FindRoute(src, dst string) *Edge {
	v := g.FindVertex(src)
	if v == nil || g.FindVertex(dst) == nil {
		return nil
	}
	key := canonical(dst)
	for _, e := range v.Adj {
		if e.To == key {
			return e
		}
	}
	return nil
}

// AddRoute inserts a directed edge from src to dst with the given
// distance and an empty airline set. Both endpoints must already exist.
// Adding a route that is already present leaves the edge list unchanged
// and returns the existing edge.
func (g *Graph) AddRoute(src, dst string, distance float64) (*Edge, error) {
	from := g.FindVertex(src)
	to := g.FindVertex(dst)
	if from == nil || to == nil {
		return nil, ErrAirportNotFound
	}
	key := canonical(dst)
	for _, e := range from.Adj {
		if e.To == key {
			return e, nil
		}
	}
	e := &Edge{To: key, Distance: distance, Airlines: NewAirlineSet()}
	from.Adj = append(from.Adj, e)
	return e, nil
}

// AddFlight records one flight instance from src to dst operated by
// airline. The route edge is created on first use with the great-circle
// distance between the endpoints; a repeated flight on the same route
// adds its airline to the existing edge's set instead of creating a
// duplicate edge. The endpoints' flight counters are incremented either
// way.
func (g *Graph) AddFlight(src, dst string, airline Airline) error {
	from := g.FindVertex(src)
	to := g.FindVertex(dst)
	if from == nil || to == nil {
		return ErrAirportNotFound
	}
	e := g.FindRoute(src, dst)
	if e == nil {
		var err error
		e, err = g.AddRoute(src, dst, Haversine(from.Airport.Location, to.Airport.Location))
		if err != nil {
			return err
		}
	}
	e.Airlines.Insert(airline)
	from.FlightsFrom++
	to.FlightsTo++
	return nil
}

// RemoveAirport deletes the vertex for code and cascades: every edge
// pointing at it is removed from the remaining vertices.
func (g *Graph) RemoveAirport(code string) error {
	key := canonical(code)
	if _, ok := g.vertices[key]; !ok {
		return ErrAirportNotFound
	}
	delete(g.vertices, key)
	for i, c := range g.order {
		if c == key {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}
	for _, v := range g.vertices {
		v.Adj = dropEdgeTo(v.Adj, key)
	}
	return nil
}

// dropEdgeTo removes the edge pointing at key, preserving adjacency
// order of the rest.
func dropEdgeTo(adj []*Edge, key string) []*Edge {
	for i, e := range adj {
		if e.To == key {
			return append(adj[:i], adj[i+1:]...)
		}
	}
	return adj
}

// RemoveRoute deletes the directed edge from src to dst.
func (g *Graph) RemoveRoute(src, dst string) error {
	from := g.FindVertex(src)
	if from == nil || g.FindVertex(dst) == nil {
		return ErrAirportNotFound
	}
	key := canonical(dst)
	for i, e := range from.Adj {
		if e.To == key {
			from.Adj = append(from.Adj[:i], from.Adj[i+1:]...)
			return nil
		}
	}
	return ErrRouteNotFound
}

// ComputeDegrees recomputes the in-degree and out-degree counters of
// every vertex from the current edge lists. Call it once after the
// batch build, before any query runs.
func (g *Graph) ComputeDegrees() {
	for _, v := range g.vertices {
		v.InDegree = 0
		v.OutDegree = len(v.Adj)
	}
	for _, v := range g.vertices {
		for _, e := range v.Adj {
			g.vertices[e.To].InDegree++
		}
	}
}
