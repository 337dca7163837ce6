package query

import (
	"github.com/katalvlaran/airnet/core"
	"github.com/katalvlaran/airnet/traverse"
)

// FlightsPerCity aggregates outbound flight counts per (city, country).
// A single whole-graph DFS visits every airport once and adds its
// outbound counter into the city's bucket.
func (e *Engine) FlightsPerCity() map[core.CityKey]int {
	res := make(map[core.CityKey]int)
	_, _ = traverse.DFS(e.g, "", traverse.WithForest(),
		traverse.WithOnDiscover(func(v *core.Vertex) error {
			key := core.CityKey{City: v.Airport.City, Country: v.Airport.Country}
			res[key] += v.FlightsFrom
			return nil
		}))
	return res
}

// FlightsPerAirline counts, for every airline, the routes it operates:
// each visited airport contributes one count per airline found on each
// of its outgoing edges.
func (e *Engine) FlightsPerAirline() map[core.Airline]int {
	res := make(map[core.Airline]int)
	_, _ = traverse.DFS(e.g, "", traverse.WithForest(),
		traverse.WithOnDiscover(func(v *core.Vertex) error {
			for _, edge := range v.Adj {
				edge.Airlines.Ascend(func(a core.Airline) bool {
					res[a]++
					return true
				})
			}
			return nil
		}))
	return res
}

// CountriesFrom returns the number of distinct countries served by
// direct routes out of the airport, or 0 when the airport is unknown.
func (e *Engine) CountriesFrom(code string) int {
	v := e.g.FindVertex(code)
	if v == nil {
		return 0
	}
	countries := make(map[string]struct{})
	for _, edge := range v.Adj {
		countries[e.g.FindVertex(edge.To).Airport.Country] = struct{}{}
	}
	return len(countries)
}

// CountriesFromCity returns the number of distinct countries served by
// direct routes out of any airport of the given city. City and country
// match on their folded (case- and space-insensitive) forms.
func (e *Engine) CountriesFromCity(city, country string) int {
	countries := make(map[string]struct{})
	for _, v := range e.AirportsInCity(city, country) {
		for _, edge := range v.Adj {
			countries[e.g.FindVertex(edge.To).Airport.Country] = struct{}{}
		}
	}
	return len(countries)
}
