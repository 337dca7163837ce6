package traverse

import (
	"fmt"

	"github.com/katalvlaran/airnet/core"
)

// DFSOption configures a depth-first walk.
type DFSOption func(*DFSOptions)

// DFSOptions holds the configurable parameters of a depth-first walk.
type DFSOptions struct {
	// OnDiscover, if non-nil, runs when a vertex is first discovered
	// (pre-order). Returning an error aborts the walk with that error.
	OnDiscover func(v *core.Vertex) error

	// Forest, if true, restarts the walk at every unvisited vertex in
	// insertion order, covering disconnected components. The start code
	// is ignored in forest mode.
	Forest bool
}

// DefaultDFSOptions returns the defaults: single-source, no hook.
func DefaultDFSOptions() DFSOptions { return DFSOptions{} }

// WithOnDiscover installs fn as the pre-order hook.
func WithOnDiscover(fn func(v *core.Vertex) error) DFSOption {
	return func(o *DFSOptions) { o.OnDiscover = fn }
}

// WithForest enables whole-graph traversal: the walk restarts at each
// unvisited vertex, preserving discovery order across components.
func WithForest() DFSOption {
	return func(o *DFSOptions) { o.Forest = true }
}

// DFSResult captures the outcome of a depth-first walk.
type DFSResult struct {
	// Order records airport codes in discovery order.
	Order []string

	// Visited flags the codes reached by the walk.
	Visited map[string]bool

	// Parent maps each discovered code to the code it was discovered
	// from; roots are absent.
	Parent map[string]string
}

// dfsWalker holds the per-run traversal state.
type dfsWalker struct {
	graph *core.Graph
	opts  DFSOptions
	res   *DFSResult
}

// DFS runs a depth-first walk on g from start, visiting unvisited
// out-neighbors in adjacency order. With WithForest it iterates all
// vertices as potential roots instead. Visitation state is local to the
// call; nothing on the graph is mutated.
func DFS(g *core.Graph, start string, opts ...DFSOption) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultDFSOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := g.NumVertices()
	res := &DFSResult{
		Order:   make([]string, 0, n),
		Visited: make(map[string]bool, n),
		Parent:  make(map[string]string, n),
	}
	w := &dfsWalker{graph: g, opts: o, res: res}

	if o.Forest {
		for _, v := range g.Vertices() {
			if !res.Visited[v.Key()] {
				if err := w.visit(v, ""); err != nil {
					return res, err
				}
			}
		}
		return res, nil
	}

	s := g.FindVertex(start)
	if s == nil {
		return nil, ErrStartNotFound
	}
	return res, w.visit(s, "")
}

// visit marks v, records it, fires the hook and recurses into unvisited
// out-neighbors in adjacency order.
func (w *dfsWalker) visit(v *core.Vertex, parent string) error {
	code := v.Key()
	w.res.Visited[code] = true
	w.res.Order = append(w.res.Order, code)
	if parent != "" {
		w.res.Parent[code] = parent
	}
	if w.opts.OnDiscover != nil {
		if err := w.opts.OnDiscover(v); err != nil {
			return fmt.Errorf("traverse: OnDiscover hook for %q: %w", code, err)
		}
	}
	for _, e := range v.Adj {
		if !w.res.Visited[e.To] {
			if err := w.visit(w.graph.FindVertex(e.To), code); err != nil {
				return err
			}
		}
	}
	return nil
}
