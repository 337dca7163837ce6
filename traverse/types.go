// Package traverse defines the shared option and error types for the
// walk primitives.
package traverse

import "errors"

// Sentinel errors for traversal entry points.
var (
	// ErrGraphNil is returned when a nil graph is passed to a walk.
	ErrGraphNil = errors.New("traverse: graph is nil")

	// ErrStartNotFound is returned when the start airport code is
	// absent from the graph.
	ErrStartNotFound = errors.New("traverse: start vertex not found")
)
