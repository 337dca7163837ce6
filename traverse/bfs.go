package traverse

import (
	"fmt"

	"github.com/katalvlaran/airnet/core"
)

// BFSOption configures a breadth-first walk.
type BFSOption func(*BFSOptions)

// BFSOptions holds the configurable parameters of a breadth-first walk.
type BFSOptions struct {
	// OnVisit, if non-nil, runs when a vertex is dequeued, with its hop
	// depth from the start. Returning an error aborts the walk.
	OnVisit func(v *core.Vertex, depth int) error

	// MaxDepth, if > 0, stops expanding beyond this hop depth. Zero
	// means no limit.
	MaxDepth int
}

// DefaultBFSOptions returns the defaults: no hook, no depth limit.
func DefaultBFSOptions() BFSOptions { return BFSOptions{} }

// WithOnVisit installs fn as the per-dequeue hook.
func WithOnVisit(fn func(v *core.Vertex, depth int) error) BFSOption {
	return func(o *BFSOptions) { o.OnVisit = fn }
}

// WithMaxDepth limits frontier expansion to the given hop depth.
// Zero disables the limit.
func WithMaxDepth(d int) BFSOption {
	return func(o *BFSOptions) { o.MaxDepth = d }
}

// BFSResult captures the outcome of a breadth-first walk.
type BFSResult struct {
	// Order records airport codes in visit sequence.
	Order []string

	// Depth maps each reached code to its hop distance from the start.
	Depth map[string]int

	// Parent maps each reached code to its predecessor in the BFS
	// tree; the start code is absent.
	Parent map[string]string
}

// PathTo reconstructs the start→dest path from the parent links, or nil
// when dest was not reached.
func (r *BFSResult) PathTo(dest string) []string {
	if _, ok := r.Depth[dest]; !ok {
		return nil
	}
	path := []string{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// queueItem pairs a vertex with its BFS depth.
type queueItem struct {
	v     *core.Vertex
	depth int
}

// BFS runs a breadth-first walk on g from start, visiting each
// reachable vertex exactly once in increasing hop distance. Visitation
// state is local to the call; nothing on the graph is mutated.
func BFS(g *core.Graph, start string, opts ...BFSOption) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultBFSOptions()
	for _, opt := range opts {
		opt(&o)
	}
	s := g.FindVertex(start)
	if s == nil {
		return nil, ErrStartNotFound
	}

	n := g.NumVertices()
	res := &BFSResult{
		Order:  make([]string, 0, n),
		Depth:  make(map[string]int, n),
		Parent: make(map[string]string, n),
	}
	visited := make(map[string]bool, n)

	queue := make([]queueItem, 0, n)
	queue = append(queue, queueItem{v: s, depth: 0})
	visited[s.Key()] = true
	res.Depth[s.Key()] = 0

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		code := item.v.Key()
		res.Order = append(res.Order, code)
		if o.OnVisit != nil {
			if err := o.OnVisit(item.v, item.depth); err != nil {
				return res, fmt.Errorf("traverse: OnVisit hook for %q: %w", code, err)
			}
		}

		if o.MaxDepth > 0 && item.depth >= o.MaxDepth {
			continue
		}
		for _, e := range item.v.Adj {
			if visited[e.To] {
				continue
			}
			visited[e.To] = true
			res.Depth[e.To] = item.depth + 1
			res.Parent[e.To] = code
			queue = append(queue, queueItem{v: g.FindVertex(e.To), depth: item.depth + 1})
		}
	}
	return res, nil
}
