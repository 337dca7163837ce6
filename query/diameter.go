package query

import "github.com/katalvlaran/airnet/traverse"

// MaxTrip computes the network diameter in hops together with every
// witness path achieving it: for every airport as a BFS source it takes
// the greatest hop distance reached, tracks the global maximum across
// sources, and collects the reconstructed shortest path for each
// (source, farthest destination) pair at that maximum. Witness paths
// are cleared whenever a strictly larger distance appears and
// accumulated on ties.
//
// On a disconnected graph the diameter is the largest finite distance
// in any component. On a graph with no edges at all every source's
// farthest distance is 0, so the diameter is 0 and each airport
// contributes its own trivial single-vertex path.
func (e *Engine) MaxTrip() (int, [][]string) {
	diameter := 0
	var paths [][]string

	for _, src := range e.g.Vertices() {
		res, err := traverse.BFS(e.g, src.Key())
		if err != nil {
			continue
		}

		maxDistance := 0
		for _, d := range res.Depth {
			if d > maxDistance {
				maxDistance = d
			}
		}

		if maxDistance > diameter {
			diameter = maxDistance
			paths = nil
		}
		if maxDistance == diameter {
			for _, v := range e.g.Vertices() {
				if d, ok := res.Depth[v.Key()]; ok && d == maxDistance {
					paths = append(paths, res.PathTo(v.Key()))
				}
			}
		}
	}
	return diameter, paths
}
