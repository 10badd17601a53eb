package grid

import "sync"

// DiagonalPolicy governs when a diagonal move between two orthogonally
// adjacent obstacles is permitted.
type DiagonalPolicy int

const (
	// DiagonalNever allows only 4-neighborhood (orthogonal) moves.
	DiagonalNever DiagonalPolicy = iota
	// DiagonalOnlyWhenNoObstacle allows a diagonal move only when both
	// orthogonal cells adjacent to the move are passable.
	DiagonalOnlyWhenNoObstacle
	// DiagonalAtMostOneObstacle allows a diagonal move unless both
	// orthogonal cells adjacent to the move are obstacles.
	DiagonalAtMostOneObstacle
	// DiagonalAlways allows a diagonal move whenever the target cell is
	// passable, regardless of the orthogonal corners.
	DiagonalAlways
)

// PauseCostType selects how PauseCost computes the cost of remaining at a
// cell for one time step.
type PauseCostType int

const (
	// PauseCostFixed charges a constant configured via WithFixedPauseCost.
	PauseCostFixed PauseCostType = iota
	// PauseCostCellWeight charges the agent's current cell weight, clamped
	// to zero if negative.
	PauseCostCellWeight
)

// obstacle is the sentinel cell weight denoting an impassable cell.
const obstacle = -1

// offset is a candidate neighbor displacement; diagonal offsets have both
// components non-zero.
type offset struct{ dx, dy int }

// orthogonalOffsets and diagonalOffsets are enumerated in a fixed order so
// Neighbors is reproducible: orthogonal first, then diagonal.
var orthogonalOffsets = []offset{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
var diagonalOffsets = []offset{{1, -1}, {1, 1}, {-1, 1}, {-1, -1}}

// Option configures a Grid at construction time.
type Option func(*Grid)

// WithDiagonal sets the diagonal-movement policy (default DiagonalNever).
func WithDiagonal(policy DiagonalPolicy) Option {
	return func(g *Grid) { g.diagonalPolicy = policy }
}

// WithDiagonalCostMultiplier scales the cost of diagonal moves (default 1).
func WithDiagonalCostMultiplier(mult float64) Option {
	return func(g *Grid) { g.diagonalMultiplier = mult }
}

// WithBorderWrap sets the left-right and up-down border wrap flags
// (default false, false).
func WithBorderWrap(leftRight, upDown bool) Option {
	return func(g *Grid) { g.wrapLeftRight, g.wrapUpDown = leftRight, upDown }
}

// WithPauseCostType selects how PauseCost is computed (default
// PauseCostFixed).
func WithPauseCostType(t PauseCostType) Option {
	return func(g *Grid) { g.pauseCostType = t }
}

// WithFixedPauseCost sets the constant used by PauseCostFixed (default 1).
func WithFixedPauseCost(cost float64) Option {
	return func(g *Grid) { g.fixedPauseCost = cost }
}

// Grid is a 2D implicit weighted graph, row-major indexed: v = y*Width + x.
// It implements pathgraph.AbsGraph. Weight mutation (UpdateWeight,
// SetWeights) is supported post-construction and bumps generation so
// resumable searches can detect staleness.
type Grid struct {
	mu sync.RWMutex

	width, height int
	weights       []float64 // len == width*height; -1 == obstacle

	diagonalPolicy     DiagonalPolicy
	diagonalMultiplier float64
	wrapLeftRight      bool
	wrapUpDown         bool

	pauseCostType  PauseCostType
	fixedPauseCost float64

	generation uint64
}
