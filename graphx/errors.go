package graphx

import "errors"

// Sentinel errors surfaced (wrapped in a *pathgraph.DomainError) by
// NewGraph and Graph's query methods.
var (
	// ErrBadVertexCount indicates a non-positive vertex count was supplied.
	ErrBadVertexCount = errors.New("graphx: vertex count must be positive")

	// ErrCoordLengthMismatch indicates WithCoordinates was given a slice of
	// the wrong length.
	ErrCoordLengthMismatch = errors.New("graphx: coordinate count must equal vertex count")
)
