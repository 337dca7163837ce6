package query

import (
	"math"

	"github.com/katalvlaran/airnet/core"
)

// pathItem pairs a partial path with the vertex at its tip.
type pathItem struct {
	path []string
	at   *core.Vertex
}

// ShortestPaths enumerates every minimum-hop path from src to dst as
// ordered sequences of airport codes, or nil when either endpoint is
// unknown or no path exists.
//
// A plain visited-marking BFS would record only one path per vertex, so
// each queue entry carries its partial path instead, and a neighbor
// equal to the target is captured without ever being marked visited.
// Every parallel route into the target at the minimal depth is thereby
// collected, while internal vertices are still expanded only once.
func (e *Engine) ShortestPaths(src, dst string) [][]string {
	source := e.g.FindVertex(src)
	target := e.g.FindVertex(dst)
	if source == nil || target == nil {
		return nil
	}

	var smallest [][]string
	smallestLen := math.MaxInt

	visited := make(map[string]bool, e.g.NumVertices())
	visited[source.Key()] = true

	queue := []pathItem{{path: []string{source.Key()}, at: source}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, edge := range cur.at.Adj {
			if edge.To == target.Key() {
				full := append(append(make([]string, 0, len(cur.path)+1), cur.path...), edge.To)
				switch {
				case len(full) < smallestLen:
					smallest = [][]string{full}
					smallestLen = len(full)
				case len(full) == smallestLen:
					smallest = append(smallest, full)
				}
				continue
			}
			if !visited[edge.To] {
				visited[edge.To] = true
				next := append(append(make([]string, 0, len(cur.path)+1), cur.path...), edge.To)
				queue = append(queue, pathItem{path: next, at: e.g.FindVertex(edge.To)})
			}
		}
	}
	return smallest
}
