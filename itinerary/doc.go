// Package itinerary composes multi-leg itineraries from the per-leg
// shortest paths of a query.Engine.
//
// Given candidate source and destination airports (a city selection
// expands to all its airports) and optionally an ordered list of
// mandatory layovers, Plan enumerates every minimum-hop route,
// optionally restricted to itineraries a single airline can fly end to
// end, and keeps only the routes with the globally fewest layovers.
// Sorting the result is left to the caller; ByDistance orders trips by
// ascending total distance.
package itinerary
