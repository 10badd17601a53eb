package spacetime

import "errors"

// Sentinel errors surfaced (wrapped in a *pathgraph.DomainError) by the
// FindPathWith* queries.
var (
	// ErrStartOutOfRange indicates an out-of-range start vertex.
	ErrStartOutOfRange = errors.New("spacetime: start vertex out of range")

	// ErrGoalOutOfRange indicates an out-of-range goal vertex.
	ErrGoalOutOfRange = errors.New("spacetime: goal vertex out of range")

	// ErrBadLimit indicates a non-positive depth/length limit or exact
	// length.
	ErrBadLimit = errors.New("spacetime: limit must be positive")
)
