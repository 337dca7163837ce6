package query

import (
	"math"
	"sort"
	"strings"

	"github.com/katalvlaran/airnet/core"
	"github.com/katalvlaran/airnet/traverse"
)

// Attribute selects which airport attribute a search matches against.
type Attribute int

const (
	// AirportName matches against the airport name.
	AirportName Attribute = iota
	// CityName matches against the city.
	CityName
	// CountryName matches against the country.
	CountryName
)

// value extracts the selected attribute of an airport.
func (a Attribute) value(ap core.Airport) string {
	switch a {
	case CityName:
		return ap.City
	case CountryName:
		return ap.Country
	default:
		return ap.Name
	}
}

// FindAirport returns the vertex for the given code, or nil when
// absent. The lookup is case-insensitive.
func (e *Engine) FindAirport(code string) *core.Vertex {
	return e.g.FindVertex(code)
}

// SearchAirports returns the airports whose selected attribute contains
// q, comparing folded (case- and space-insensitive) forms. Matches are
// sorted by airport name, case-insensitively.
func (e *Engine) SearchAirports(q string, attr Attribute) []*core.Vertex {
	folded := core.Fold(q)
	var matches []*core.Vertex
	for _, v := range e.g.Vertices() {
		if strings.Contains(core.Fold(attr.value(v.Airport)), folded) {
			matches = append(matches, v)
		}
	}
	sortByName(matches)
	return matches
}

// ClosestAirports returns every airport tied at the minimum great-circle
// distance from the given coordinates, sorted by airport name.
func (e *Engine) ClosestAirports(c core.Coordinates) []*core.Vertex {
	var closest []*core.Vertex
	minDistance := math.MaxFloat64
	for _, v := range e.g.Vertices() {
		d := core.Haversine(c, v.Airport.Location)
		if d < minDistance {
			minDistance = d
			closest = closest[:0]
			closest = append(closest, v)
		} else if d == minDistance {
			closest = append(closest, v)
		}
	}
	sortByName(closest)
	return closest
}

// AirportsInCity collects, via a whole-graph DFS, the airports whose
// folded city and country both equal the given values.
func (e *Engine) AirportsInCity(city, country string) []*core.Vertex {
	cityFolded := core.Fold(city)
	countryFolded := core.Fold(country)
	var matches []*core.Vertex
	_, _ = traverse.DFS(e.g, "", traverse.WithForest(),
		traverse.WithOnDiscover(func(v *core.Vertex) error {
			if core.Fold(v.Airport.City) == cityFolded && core.Fold(v.Airport.Country) == countryFolded {
				matches = append(matches, v)
			}
			return nil
		}))
	return matches
}

// sortByName orders vertices by lower-cased airport name.
func sortByName(vs []*core.Vertex) {
	sort.Slice(vs, func(i, j int) bool {
		return strings.ToLower(vs[i].Airport.Name) < strings.ToLower(vs[j].Airport.Name)
	})
}
