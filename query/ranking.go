package query

import (
	"sort"

	"github.com/katalvlaran/airnet/core"
)

// TrafficEntry pairs an airport with its total traffic (inbound plus
// outbound flight instances).
type TrafficEntry struct {
	Airport core.Airport
	Flights int
}

// TopTraffic returns the k airports with the greatest total traffic in
// descending order. When the airport just past the cutoff ties the last
// included value, all further ties are included as well, so the result
// may be longer than k. A non-positive k takes nothing by rank, though
// on a network whose greatest total is zero the tie rule still admits
// every airport.
func (e *Engine) TopTraffic(k int) []TrafficEntry {
	vertices := e.g.Vertices()
	sort.SliceStable(vertices, func(i, j int) bool {
		return vertices[i].FlightsTo+vertices[i].FlightsFrom >
			vertices[j].FlightsTo+vertices[j].FlightsFrom
	})

	res := make([]TrafficEntry, 0, max(k, 0))
	last := 0
	for i, v := range vertices {
		total := v.FlightsTo + v.FlightsFrom
		if i < k || total == last {
			res = append(res, TrafficEntry{Airport: v.Airport, Flights: total})
			last = total
			continue
		}
		break
	}
	return res
}

// AllTraffic returns every airport with its total traffic, in
// descending traffic order.
func (e *Engine) AllTraffic() []TrafficEntry {
	vertices := e.g.Vertices()
	res := make([]TrafficEntry, 0, len(vertices))
	for _, v := range vertices {
		res = append(res, TrafficEntry{Airport: v.Airport, Flights: v.FlightsTo + v.FlightsFrom})
	}
	sort.SliceStable(res, func(i, j int) bool { return res[i].Flights > res[j].Flights })
	return res
}
