// Package airnet models a network of airports and flight routes as a
// directed, airline-labeled graph and answers structural and routing
// queries over it.
//
// The graph is built once (typically via the ingest package) and then
// queried many times:
//
//	core/       Airport, Airline, Vertex, Edge and the Graph store
//	traverse/   DFS, BFS and topological-order walk primitives
//	query/      traffic statistics, reachability, ranking, essential
//	            airports, diameter, shortest-path enumeration, search
//	itinerary/  multi-leg best-flight planning with layover and
//	            airline-consistency constraints
//	ingest/     CSV loaders for airports, airlines and flights
//	cmd/airnet  command-line front end over a CSV dataset
//
// All query operations are pure functions of the current graph state:
// absence (missing airport, no direct route, no path) is reported as an
// empty result, never as an error.
package airnet
