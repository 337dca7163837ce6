// Package core defines the central Graph, Vertex and Edge types for an
// airport network, together with the Airport and Airline values they
// carry.
//
// The graph is directed: an edge records a flight route from one
// airport to another, the great-circle distance between them, and the
// ordered set of airlines operating that route. At most one edge exists
// per ordered (source, destination) pair; recording a second flight on
// the same route adds its airline to the existing edge instead of
// creating a parallel edge.
//
// The intended lifecycle is batch build, then read-only queries: all
// vertices and edges are inserted first, ComputeDegrees finalizes the
// in/out-degree counters, and no mutation happens afterwards. Vertices
// carry no traversal state; algorithms in traverse and query own their
// visitation bookkeeping in side tables keyed by airport code.
//
// Errors:
//
//	ErrEmptyCode        - airport code is the empty string.
//	ErrDuplicateAirport - airport with the same code already present.
//	ErrAirportNotFound  - operation referenced a missing airport.
//	ErrRouteNotFound    - operation referenced a missing route.
package core
