package itinerary

import (
	"math"
	"sort"

	"github.com/katalvlaran/airnet/core"
	"github.com/katalvlaran/airnet/query"
)

// Mode selects the airline-consistency constraint of a plan.
type Mode int

const (
	// AnyAirline allows mixed carriers; trips carry an empty airline
	// set meaning unconstrained.
	AnyAirline Mode = iota

	// SameAirline keeps only itineraries at least one carrier can fly
	// end to end; trips carry the set of such carriers.
	SameAirline
)

// Trip is one composed itinerary: the airlines able to fly every leg
// (empty in AnyAirline mode), the airport code sequence, and the total
// great-circle distance of its legs in kilometers.
type Trip struct {
	Airlines *core.AirlineSet
	Path     []string
	Distance float64
}

// Option configures a plan.
type Option func(*options)

type options struct {
	mode     Mode
	layovers []string
}

// WithMode sets the airline-consistency mode; the default is
// AnyAirline.
func WithMode(m Mode) Option {
	return func(o *options) { o.mode = m }
}

// WithLayovers requires the itinerary to pass through the given
// airports, in order.
func WithLayovers(codes ...string) Option {
	return func(o *options) { o.layovers = codes }
}

// Plan composes the best itineraries between any of the sources and any
// of the destinations. For every (source, destination) pair it
// enumerates the minimum-hop shortest paths (segment by segment when
// layovers are required), applies the airline constraint, and keeps
// only the paths with the globally fewest layovers across all pairs.
// The result is unsorted; apply ByDistance for the usual presentation
// order.
func Plan(e *query.Engine, sources, destinations []string, opts ...Option) []Trip {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	var trips []Trip
	minLayovers := math.MaxInt

	for _, src := range sources {
		for _, dst := range destinations {
			for _, path := range candidatePaths(e, src, dst, o.layovers) {
				airlines := core.NewAirlineSet()
				if o.mode == SameAirline {
					var ok bool
					airlines, ok = commonAirlines(e, path)
					if !ok {
						continue
					}
				}
				layovers := len(path) - 2
				if layovers < minLayovers {
					minLayovers = layovers
					trips = trips[:0]
				}
				if layovers == minLayovers {
					trips = append(trips, Trip{
						Airlines: airlines,
						Path:     path,
						Distance: pathDistance(e, path),
					})
				}
			}
		}
	}
	return trips
}

// candidatePaths enumerates the shortest paths from src to dst. With
// layovers, per-segment shortest paths are concatenated in every
// combination, leg by leg.
func candidatePaths(e *query.Engine, src, dst string, layovers []string) [][]string {
	if len(layovers) == 0 {
		return e.ShortestPaths(src, dst)
	}

	partial := e.ShortestPaths(src, layovers[0])
	for i := 0; i+1 < len(layovers); i++ {
		segment := e.ShortestPaths(layovers[i], layovers[i+1])
		partial = concatAll(partial, segment)
	}
	return concatAll(partial, e.ShortestPaths(layovers[len(layovers)-1], dst))
}

// concatAll merges every path of a with every path of b.
func concatAll(a, b [][]string) [][]string {
	var out [][]string
	for _, first := range a {
		for _, second := range b {
			if merged := mergePaths(first, second); merged != nil {
				out = append(out, merged)
			}
		}
	}
	return out
}

// mergePaths joins two paths whose endpoints coincide: the last airport
// of first must equal the first airport of second. Returns nil when
// either path is empty or the endpoints differ.
func mergePaths(first, second []string) []string {
	if len(first) == 0 || len(second) == 0 {
		return nil
	}
	if first[len(first)-1] != second[0] {
		return nil
	}
	merged := make([]string, 0, len(first)+len(second)-1)
	merged = append(merged, first...)
	merged = append(merged, second[1:]...)
	return merged
}

// commonAirlines intersects the operating-airline sets of every leg of
// the path. It reports false as soon as the running intersection
// empties, meaning no single carrier can fly the whole itinerary.
func commonAirlines(e *query.Engine, path []string) (*core.AirlineSet, bool) {
	var common *core.AirlineSet
	for i := 0; i+1 < len(path); i++ {
		leg := e.AirlinesBetween(path[i], path[i+1])
		if i == 0 {
			common = leg
		} else {
			common = common.Intersect(leg)
		}
		if common.Len() == 0 {
			return nil, false
		}
	}
	if common == nil {
		common = core.NewAirlineSet()
	}
	return common, true
}

// pathDistance sums the direct-route distances of the path's legs.
func pathDistance(e *query.Engine, path []string) float64 {
	total := 0.0
	for i := 0; i+1 < len(path); i++ {
		total += e.DistanceBetween(path[i], path[i+1])
	}
	return total
}

// ByDistance sorts trips by ascending total distance.
func ByDistance(trips []Trip) {
	sort.SliceStable(trips, func(i, j int) bool { return trips[i].Distance < trips[j].Distance })
}
