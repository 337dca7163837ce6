// Package traverse provides the walk primitives the query layer is
// built on: depth-first search (single-source and whole-graph forest),
// breadth-first search with per-vertex hop depth, and a topological
// order driven by in-degree counts.
//
// Every walk accepts a per-visited-vertex hook so callers can layer
// aggregation or collection on top without re-implementing the
// traversal. Walks never mutate the graph; visitation state lives in
// per-call side tables keyed by airport code, so concurrent read-only
// walks over the same graph do not interfere.
package traverse
