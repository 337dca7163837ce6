package query

import (
	"strings"

	"github.com/katalvlaran/airnet/core"
)

// AirlinesBetween returns the ordered set of carriers operating the
// direct route from src to dst. The set is empty when either airport is
// unknown or no direct route exists.
func (e *Engine) AirlinesBetween(src, dst string) *core.AirlineSet {
	edge := e.g.FindRoute(src, dst)
	if edge == nil {
		return core.NewAirlineSet()
	}
	return edge.Airlines.Clone()
}

// DistanceBetween returns the direct-route distance from src to dst in
// kilometers, or 0 when no direct route exists. Callers must not read 0
// as a zero-length route.
func (e *Engine) DistanceBetween(src, dst string) float64 {
	edge := e.g.FindRoute(src, dst)
	if edge == nil {
		return 0
	}
	return edge.Distance
}

// AirlineByCode looks the carrier up in the catalog; the code is
// upper-cased first.
func (e *Engine) AirlineByCode(code string) (core.Airline, bool) {
	return e.airlines.ByCode(strings.ToUpper(strings.TrimSpace(code)))
}
