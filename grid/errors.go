package grid

import "errors"

// Sentinel errors surfaced (wrapped in a *pathgraph.DomainError) by
// NewGrid, UpdateWeight, and SetWeights.
var (
	// ErrBadDimensions indicates a non-positive width or height.
	ErrBadDimensions = errors.New("grid: width and height must be positive")

	// ErrBadWeight indicates a weight that is neither >= 0 nor the -1
	// obstacle sentinel.
	ErrBadWeight = errors.New("grid: weight must be >= 0 or the -1 obstacle sentinel")

	// ErrWeightCountMismatch indicates NewGrid or SetWeights was given a
	// slice whose length does not equal Width*Height.
	ErrWeightCountMismatch = errors.New("grid: weight count must equal width*height")
)
