// Package core declares the Airport, Airline and Coordinates value
// types and the sentinel errors shared by the graph store.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrEmptyCode indicates that an airport code is the empty string.
	ErrEmptyCode = errors.New("core: airport code is empty")

	// ErrDuplicateAirport indicates an airport with the same code is already present.
	ErrDuplicateAirport = errors.New("core: airport already present")

	// ErrAirportNotFound indicates an operation referenced a non-existent airport.
	ErrAirportNotFound = errors.New("core: airport not found")

	// ErrRouteNotFound indicates an operation referenced a non-existent route.
	ErrRouteNotFound = errors.New("core: route not found")
)

// Coordinates is a geographic position in degrees.
type Coordinates struct {
	Lat float64
	Lon float64
}

// Airport describes one airport. Identity is the IATA-style Code;
// lookups by code are case-insensitive. Values are immutable once
// parsed and equality is by Code alone.
type Airport struct {
	// Code is the unique IATA-style identifier.
	Code string

	// Name is the full airport name.
	Name string

	// City and Country locate the airport; Country disambiguates
	// same-named cities.
	City    string
	Country string

	// Location holds the geographic coordinates in degrees.
	Location Coordinates
}

// CityKey identifies a city unambiguously across countries.
type CityKey struct {
	City    string
	Country string
}

// Airline describes one carrier. Identity is the carrier Code; airlines
// order by Code for deterministic set membership and iteration.
type Airline struct {
	// Code is the unique carrier identifier.
	Code string

	// Name is the official airline name.
	Name string

	// Callsign is the radio callsign, "_" when unavailable.
	Callsign string

	// Country is the country of registry.
	Country string
}
