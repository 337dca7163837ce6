package query

import (
	"github.com/katalvlaran/airnet/core"
	"github.com/katalvlaran/airnet/traverse"
)

// Projection selects which destination attribute a reachability count
// deduplicates on.
type Projection int

const (
	// Airports counts distinct destination airports (by code).
	Airports Projection = iota
	// Cities counts distinct destination city names.
	Cities
	// Countries counts distinct destination countries.
	Countries
)

// key extracts the projected attribute of a vertex.
func (p Projection) key(v *core.Vertex) string {
	switch p {
	case Cities:
		return v.Airport.City
	case Countries:
		return v.Airport.Country
	default:
		return v.Airport.Code
	}
}

// ReachableWithinStops counts the distinct destinations (per the
// projection) reachable from src with at most stops layovers. The bound
// applies to the hop distance of an edge's source: destinations of
// edges leaving a vertex at the boundary hop are included even though
// they themselves sit one hop beyond it. Returns 0 when src is unknown.
func (e *Engine) ReachableWithinStops(src string, stops int, p Projection) int {
	if e.g.FindVertex(src) == nil {
		return 0
	}
	seen := make(map[string]struct{})
	_, _ = traverse.BFS(e.g, src,
		traverse.WithOnVisit(func(v *core.Vertex, depth int) error {
			if depth <= stops {
				for _, edge := range v.Adj {
					seen[p.key(e.g.FindVertex(edge.To))] = struct{}{}
				}
			}
			return nil
		}))
	return len(seen)
}

// Reachable counts the distinct destinations (per the projection)
// reachable from src with no hop bound. The source itself is counted
// only when a cycle through another airport leads back to it. Returns 0
// when src is unknown.
func (e *Engine) Reachable(src string, p Projection) int {
	v := e.g.FindVertex(src)
	if v == nil {
		return 0
	}
	seen := make(map[string]struct{})
	visited := make(map[string]bool, e.g.NumVertices())
	// The source is deliberately left unmarked: only airports reached
	// as a destination of some edge are collected.
	e.collectDestinations(v, visited, func(d *core.Vertex) {
		seen[p.key(d)] = struct{}{}
	})
	return len(seen)
}

// collectDestinations walks the out-edges of v depth-first, marking and
// processing each destination the first time it is reached.
func (e *Engine) collectDestinations(v *core.Vertex, visited map[string]bool, process func(*core.Vertex)) {
	for _, edge := range v.Adj {
		if visited[edge.To] {
			continue
		}
		visited[edge.To] = true
		d := e.g.FindVertex(edge.To)
		process(d)
		e.collectDestinations(d, visited, process)
	}
}
