package query

import "github.com/katalvlaran/airnet/core"

// lowlink holds the per-run state of the essential-airport pass.
type lowlink struct {
	g       *core.Graph
	visited map[string]bool
	onStack map[string]bool
	num     map[string]int
	low     map[string]int
	index   int
	out     map[string]struct{}
}

// EssentialAirports flags the airports whose removal would fragment the
// network, using a single low-link DFS pass that restarts at every
// unvisited vertex. The returned set holds canonical airport codes.
//
// The test is the classical articulation-point rule applied directly to
// the directed adjacency: a non-root vertex is essential when some DFS
// child's low-link reaches no higher than the vertex's own discovery
// index, and the root when it has more than one DFS-tree child. Two
// long-standing quirks are kept on purpose: the discovery counter is
// global across component restarts, so only the very first root is
// treated as a root, and there is no parent-edge exclusion, so the
// result approximates cut vertices on the traversal tree rather than a
// rigorous directed-graph analogue.
func (e *Engine) EssentialAirports() map[string]struct{} {
	n := e.g.NumVertices()
	s := &lowlink{
		g:       e.g,
		visited: make(map[string]bool, n),
		onStack: make(map[string]bool, n),
		num:     make(map[string]int, n),
		low:     make(map[string]int, n),
		out:     make(map[string]struct{}),
	}
	for _, v := range e.g.Vertices() {
		if !s.visited[v.Key()] {
			s.visit(v)
		}
	}
	return s.out
}

// visit assigns discovery and low-link indices to v, recurses into
// unvisited destinations and applies the essential test after each tree
// child returns.
func (s *lowlink) visit(v *core.Vertex) {
	code := v.Key()
	s.visited[code] = true
	s.onStack[code] = true
	s.num[code] = s.index
	s.low[code] = s.index
	s.index++

	children := 0
	for _, edge := range v.Adj {
		d := s.g.FindVertex(edge.To)
		if !s.visited[edge.To] {
			children++
			s.visit(d)
			if s.low[edge.To] < s.low[code] {
				s.low[code] = s.low[edge.To]
			}
			if (s.num[code] != 0 && s.low[edge.To] >= s.num[code]) ||
				(s.num[code] == 0 && children > 1) {
				s.out[code] = struct{}{}
			}
		} else if s.onStack[edge.To] {
			if s.num[edge.To] < s.low[code] {
				s.low[code] = s.num[edge.To]
			}
		}
	}
	s.onStack[code] = false
}
