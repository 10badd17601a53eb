package search

import "errors"

// Sentinel errors surfaced (wrapped in a *pathgraph.DomainError) by BFS,
// Dijkstra, AStar, and the resumable variants.
var (
	// ErrStartOutOfRange indicates an out-of-range start vertex.
	ErrStartOutOfRange = errors.New("search: start vertex out of range")

	// ErrGoalOutOfRange indicates an out-of-range goal vertex.
	ErrGoalOutOfRange = errors.New("search: goal vertex out of range")
)
