// Package ingest builds an airport graph and airline catalog from CSV
// files.
//
// Three files feed the build: airlines (code, name, callsign, country),
// airports (code, name, city, country, latitude, longitude) and flights
// (source, target, airline). The first row of each file is a header and
// is skipped; fields are trimmed. LoadDataset runs all three loads and
// finalizes the degree counters, after which the graph is ready for
// querying.
package ingest
