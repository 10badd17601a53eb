package reservation

import "errors"

// Sentinel errors surfaced (wrapped in a *pathgraph.DomainError) by Table
// constructors and mutators.
var (
	// ErrBadGraphSize indicates a non-positive graph size.
	ErrBadGraphSize = errors.New("reservation: graph size must be positive")

	// ErrNegativeWeight indicates a negative additive weight.
	ErrNegativeWeight = errors.New("reservation: additional weight must be >= 0")

	// ErrEmptyPath indicates AddPath or AddWeightPath was given an empty
	// path.
	ErrEmptyPath = errors.New("reservation: path must contain at least one vertex")
)
