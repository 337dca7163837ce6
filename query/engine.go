package query

import "github.com/katalvlaran/airnet/core"

// Engine answers queries over an airport graph and its airline catalog.
// Both are read-only after construction.
type Engine struct {
	g        *core.Graph
	airlines *core.AirlineSet
}

// NewEngine creates an Engine over g and the airline catalog. A nil
// catalog is treated as empty.
func NewEngine(g *core.Graph, airlines *core.AirlineSet) *Engine {
	if airlines == nil {
		airlines = core.NewAirlineSet()
	}
	return &Engine{g: g, airlines: airlines}
}

// Graph returns the underlying graph.
func (e *Engine) Graph() *core.Graph { return e.g }

// Airlines returns the airline catalog.
func (e *Engine) Airlines() *core.AirlineSet { return e.airlines }

// NumAirports returns the number of airports in the network.
func (e *Engine) NumAirports() int { return e.g.NumVertices() }

// NumFlights returns the total number of flight instances, summed from
// the per-airport inbound counters.
func (e *Engine) NumFlights() int {
	total := 0
	for _, v := range e.g.Vertices() {
		total += v.FlightsTo
	}
	return total
}

// NumRoutes returns the total number of flight routes, summed from the
// per-airport out-degrees.
func (e *Engine) NumRoutes() int {
	total := 0
	for _, v := range e.g.Vertices() {
		total += v.OutDegree
	}
	return total
}

// FlightsOut returns the number of outbound flight instances of the
// airport, or 0 when the airport is unknown.
func (e *Engine) FlightsOut(code string) int {
	v := e.g.FindVertex(code)
	if v == nil {
		return 0
	}
	return v.FlightsFrom
}

// FlightsIn returns the number of inbound flight instances of the
// airport, or 0 when the airport is unknown.
func (e *Engine) FlightsIn(code string) int {
	v := e.g.FindVertex(code)
	if v == nil {
		return 0
	}
	return v.FlightsTo
}

// AirlinesOut returns the number of distinct carriers operating any
// route out of the airport.
func (e *Engine) AirlinesOut(code string) int {
	v := e.g.FindVertex(code)
	if v == nil {
		return 0
	}
	distinct := core.NewAirlineSet()
	for _, edge := range v.Adj {
		edge.Airlines.Ascend(func(a core.Airline) bool {
			distinct.Insert(a)
			return true
		})
	}
	return distinct.Len()
}
