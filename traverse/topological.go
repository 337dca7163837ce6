package traverse

import "github.com/katalvlaran/airnet/core"

// TopologicalOrder computes a vertex order in which every route's
// source precedes its destination, by repeatedly dequeuing vertices
// whose remaining in-degree is zero.
//
// The order is only meaningful for acyclic graphs: on a graph with
// cycles the vertices trapped in a cycle never reach in-degree zero and
// are silently omitted from the result. In-degree counts are computed
// locally; the persistent degree counters on the vertices are not
// touched.
func TopologicalOrder(g *core.Graph) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	vertices := g.Vertices()
	indegree := make(map[string]int, len(vertices))
	for _, v := range vertices {
		for _, e := range v.Adj {
			indegree[e.To]++
		}
	}

	queue := make([]*core.Vertex, 0, len(vertices))
	for _, v := range vertices {
		if indegree[v.Key()] == 0 {
			queue = append(queue, v)
		}
	}

	order := make([]string, 0, len(vertices))
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		order = append(order, v.Key())
		for _, e := range v.Adj {
			indegree[e.To]--
			if indegree[e.To] == 0 {
				queue = append(queue, g.FindVertex(e.To))
			}
		}
	}
	return order, nil
}
