// Package query implements the analytical operations over an airport
// graph: traffic counts and aggregations, bounded and unbounded
// reachability, top-K traffic ranking, essential-airport detection,
// network diameter with witness paths, shortest-path enumeration, and
// airport search.
//
// An Engine is constructed once from a fully built core.Graph and an
// airline catalog, both treated as read-only thereafter. Operations are
// stateless between calls: each whole-graph algorithm allocates fresh
// visitation state at entry, so results never depend on a previous
// call.
//
// Absence is not an error: a missing airport, route or path yields an
// empty or zero result. Degenerate arguments (negative stop bounds,
// non-positive K) are the caller's responsibility and degrade to empty
// results rather than failing.
package query
