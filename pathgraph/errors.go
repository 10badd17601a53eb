package pathgraph

import (
	"errors"
	"fmt"
)

// Sentinel errors wrapped by DomainError. Callers should compare with
// errors.Is against these, not against DomainError itself.
var (
	// ErrVertexOutOfRange indicates a vertex id outside [0, Size()).
	ErrVertexOutOfRange = errors.New("pathgraph: vertex id out of range")

	// ErrNegativeWeight indicates an edge or cell weight below zero where
	// non-negative is required.
	ErrNegativeWeight = errors.New("pathgraph: negative weight not allowed")

	// ErrInvalidEnum indicates an out-of-range enum value (diagonal policy,
	// pause-cost type).
	ErrInvalidEnum = errors.New("pathgraph: invalid enum value")

	// ErrEmptyPath indicates an operation that requires at least one vertex
	// was given an empty path.
	ErrEmptyPath = errors.New("pathgraph: path must contain at least one vertex")

	// ErrNotAdjacent indicates a path step between two vertices that share
	// no edge.
	ErrNotAdjacent = errors.New("pathgraph: consecutive path vertices are not adjacent")

	// ErrGraphMutated indicates a resumable search was queried after its
	// underlying graph's weights changed.
	ErrGraphMutated = errors.New("pathgraph: underlying graph mutated since search state was built")
)

// DomainError wraps a sentinel with the operation that triggered it. It is
// the "detectable before search starts" error kind from this module's error
// taxonomy: bad vertex ids, negative weights where disallowed, mismatched
// weight-vector lengths, invalid enum values.
type DomainError struct {
	Op  string
	Err error
}

// Error renders "pathgraph: <op>: <wrapped error>".
func (e *DomainError) Error() string {
	return fmt.Sprintf("pathgraph: %s: %v", e.Op, e.Err)
}

// Unwrap exposes the wrapped sentinel for errors.Is/errors.As.
func (e *DomainError) Unwrap() error { return e.Err }

// NewDomainError wraps sentinel as a DomainError raised by op.
func NewDomainError(op string, sentinel error) *DomainError {
	return &DomainError{Op: op, Err: sentinel}
}

// TimeoutError indicates a caller-imposed expansion budget was exhausted
// mid-search. Non-recoverable: the caller owns retry/backoff policy.
type TimeoutError struct {
	Op     string
	Budget int
}

// Error renders "pathgraph: <op>: expansion budget <n> exhausted".
func (e *TimeoutError) Error() string {
	return fmt.Sprintf("pathgraph: %s: expansion budget %d exhausted", e.Op, e.Budget)
}
