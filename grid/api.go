// File: api.go
// Role: Constructor, coordinate/neighbor machinery, and AbsGraph methods.
package grid

import (
	"math"

	"github.com/wayfarer-go/wayfarer/pathgraph"
)

// NewGrid builds a width x height grid. If weights is nil, every cell
// defaults to weight 1. Otherwise len(weights) must equal width*height and
// each entry must be >= 0 or the -1 obstacle sentinel.
//
// Complexity: O(width*height).
func NewGrid(width, height int, weights []float64, opts ...Option) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, pathgraph.NewDomainError("NewGrid", ErrBadDimensions)
	}

	n := width * height
	g := &Grid{
		width:              width,
		height:             height,
		diagonalMultiplier: 1,
		fixedPauseCost:     1,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.diagonalPolicy < DiagonalNever || g.diagonalPolicy > DiagonalAlways {
		return nil, pathgraph.NewDomainError("NewGrid", pathgraph.ErrInvalidEnum)
	}
	if g.pauseCostType < PauseCostFixed || g.pauseCostType > PauseCostCellWeight {
		return nil, pathgraph.NewDomainError("NewGrid", pathgraph.ErrInvalidEnum)
	}

	if weights == nil {
		g.weights = make([]float64, n)
		for i := range g.weights {
			g.weights[i] = 1
		}
	} else {
		if len(weights) != n {
			return nil, pathgraph.NewDomainError("NewGrid", ErrWeightCountMismatch)
		}
		for _, w := range weights {
			if w != obstacle && w < 0 {
				return nil, pathgraph.NewDomainError("NewGrid", ErrBadWeight)
			}
		}
		g.weights = append([]float64(nil), weights...)
	}

	return g, nil
}

// Size returns Width*Height.
func (g *Grid) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.width * g.height
}

// coord converts a dense vertex id into (x, y). Caller must hold mu.
func (g *Grid) coord(v pathgraph.Vertex) (x, y int) {
	return v % g.width, v / g.width
}

// index converts (x, y) into a dense vertex id. Caller must hold mu.
func (g *Grid) index(x, y int) pathgraph.Vertex {
	return y*g.width + x
}

// wrapCoord normalizes (x, y) according to the configured border-wrap
// flags, reporting whether the resulting position lies on the grid. Caller
// must hold mu.
func (g *Grid) wrapCoord(x, y int) (int, int, bool) {
	if x < 0 || x >= g.width {
		if !g.wrapLeftRight {
			return 0, 0, false
		}
		x = ((x % g.width) + g.width) % g.width
	}
	if y < 0 || y >= g.height {
		if !g.wrapUpDown {
			return 0, 0, false
		}
		y = ((y % g.height) + g.height) % g.height
	}

	return x, y, true
}

// passable reports whether (x, y) is not the obstacle sentinel. Caller must
// hold mu.
func (g *Grid) passable(x, y int) bool {
	return g.weights[g.index(x, y)] != obstacle
}

// weightAt returns the cell weight at (x, y). Caller must hold mu.
func (g *Grid) weightAt(x, y int) float64 {
	return g.weights[g.index(x, y)]
}

// diagonalAllowed reports whether a diagonal move out of (x, y) along
// (dx, dy) is permitted under the configured DiagonalPolicy, by inspecting
// the two orthogonal cells shared between the source and the diagonal
// target. Caller must hold mu.
func (g *Grid) diagonalAllowed(x, y, dx, dy int) bool {
	switch g.diagonalPolicy {
	case DiagonalNever:
		return false
	case DiagonalAlways:
		return true
	}

	cx, cy, cOK := g.wrapCoord(x+dx, y)
	rx, ry, rOK := g.wrapCoord(x, y+dy)
	cPassable := cOK && g.passable(cx, cy)
	rPassable := rOK && g.passable(rx, ry)

	switch g.diagonalPolicy {
	case DiagonalOnlyWhenNoObstacle:
		return cPassable && rPassable
	case DiagonalAtMostOneObstacle:
		return cPassable || rPassable
	default:
		return false
	}
}

// stepCost resolves one candidate move out of (x, y) along off, returning
// the destination vertex and its entry cost. ok is false if the move is
// out of bounds, lands on an obstacle, or is a diagonal disallowed by
// policy. Caller must hold mu.
func (g *Grid) stepCost(x, y int, off offset) (to pathgraph.Vertex, cost float64, ok bool) {
	nx, ny, inBounds := g.wrapCoord(x+off.dx, y+off.dy)
	if !inBounds || !g.passable(nx, ny) {
		return 0, 0, false
	}
	diagonal := off.dx != 0 && off.dy != 0
	if diagonal && !g.diagonalAllowed(x, y, off.dx, off.dy) {
		return 0, 0, false
	}
	cost = g.weightAt(nx, ny)
	if diagonal {
		cost *= g.diagonalMultiplier
	}

	return g.index(nx, ny), cost, true
}

// allOffsets returns orthogonal offsets followed by diagonal offsets, the
// stable enumeration order Neighbors documents.
func allOffsets() []offset {
	out := make([]offset, 0, 8)
	out = append(out, orthogonalOffsets...)
	out = append(out, diagonalOffsets...)

	return out
}

// Neighbors returns v's passable out-edges (orthogonal first, then
// diagonal), or, when reversed is true, the predecessors p for which a
// forward edge p -> v exists, carrying the cost that edge would have had.
func (g *Grid) Neighbors(v pathgraph.Vertex, reversed bool) ([]pathgraph.Neighbor, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := g.width * g.height
	if v < 0 || v >= n {
		return nil, pathgraph.NewDomainError("Neighbors", pathgraph.ErrVertexOutOfRange)
	}

	x, y := g.coord(v)
	var out []pathgraph.Neighbor
	for _, off := range allOffsets() {
		if !reversed {
			to, cost, ok := g.stepCost(x, y, off)
			if ok {
				out = append(out, pathgraph.Neighbor{To: to, Cost: cost})
			}
			continue
		}

		// Reversed: find predecessor p = v - off such that p -> v is a
		// valid forward move; cost mirrors stepCost(p, off) which equals
		// weight(v) (possibly scaled), computed directly here since v is
		// fixed.
		px, py, inBounds := g.wrapCoord(x-off.dx, y-off.dy)
		if !inBounds || !g.passable(px, py) || !g.passable(x, y) {
			continue
		}
		diagonal := off.dx != 0 && off.dy != 0
		if diagonal && !g.diagonalAllowed(px, py, off.dx, off.dy) {
			continue
		}
		cost := g.weightAt(x, y)
		if diagonal {
			cost *= g.diagonalMultiplier
		}
		out = append(out, pathgraph.Neighbor{To: g.index(px, py), Cost: cost})
	}

	return out, nil
}

// EstimateDistance returns the Chebyshev (when diagonal movement is
// possible) or Manhattan distance between u and v, scaled by MinWeight, an
// admissible lower bound since no traversal costs less than MinWeight per
// unit step and diagonal multipliers are expected to be >= 1. Along an axis
// whose border wraps, the shorter of the direct and wrapped offsets is used.
func (g *Grid) EstimateDistance(u, v pathgraph.Vertex) float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := g.width * g.height
	if u < 0 || u >= n || v < 0 || v >= n {
		return 0
	}
	ux, uy := g.coord(u)
	vx, vy := g.coord(v)
	dx := math.Abs(float64(ux - vx))
	dy := math.Abs(float64(uy - vy))
	if g.wrapLeftRight {
		dx = math.Min(dx, float64(g.width)-dx)
	}
	if g.wrapUpDown {
		dy = math.Min(dy, float64(g.height)-dy)
	}

	var dist float64
	if g.diagonalPolicy != DiagonalNever {
		dist = math.Max(dx, dy)
	} else {
		dist = dx + dy
	}

	return dist * g.minWeightLocked()
}

// HasCoordinates always returns true: every grid cell has a well-defined
// (x, y) position.
func (g *Grid) HasCoordinates() bool { return true }

// IsDirected always returns false: grid adjacency is symmetric (costs may
// still differ by direction since entry cost depends on the target cell).
func (g *Grid) IsDirected() bool { return false }

// MinWeight returns the minimum weight among passable cells.
func (g *Grid) MinWeight() float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.minWeightLocked()
}

// minWeightLocked computes the minimum passable-cell weight. Caller must
// hold mu (read or write).
func (g *Grid) minWeightLocked() float64 {
	min := math.Inf(1)
	for _, w := range g.weights {
		if w != obstacle && w < min {
			min = w
		}
	}
	if math.IsInf(min, 1) {
		return 0
	}

	return min
}

// PauseCost returns the cost of remaining at v for one time step, per the
// configured PauseCostType.
func (g *Grid) PauseCost(v pathgraph.Vertex) float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.pauseCostType == PauseCostFixed {
		return g.fixedPauseCost
	}
	n := g.width * g.height
	if v < 0 || v >= n {
		return 0
	}
	w := g.weights[v]
	if w < 0 {
		return 0
	}

	return w
}

// Adjacent reports whether there is a forward edge u -> v.
func (g *Grid) Adjacent(u, v pathgraph.Vertex) (bool, error) {
	return pathgraph.Adjacent(g, u, v)
}

// CalculateCost sums edge and pause costs along path.
func (g *Grid) CalculateCost(path []pathgraph.Vertex) (float64, error) {
	return pathgraph.CalculateCost(g, path)
}

// IsValidPath reports whether every consecutive pair in path is adjacent or
// a legitimate pause.
func (g *Grid) IsValidPath(path []pathgraph.Vertex) bool {
	return pathgraph.IsValidPath(g, path)
}

// Generation returns the current mutation generation counter, bumped by
// UpdateWeight and SetWeights. Resumable searches compare this against the
// value captured at construction to detect staleness.
func (g *Grid) Generation() uint64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.generation
}

// UpdateWeight sets the weight of a single cell. w must be >= 0 or the -1
// obstacle sentinel. Bumps Generation.
func (g *Grid) UpdateWeight(v pathgraph.Vertex, w float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	n := g.width * g.height
	if v < 0 || v >= n {
		return pathgraph.NewDomainError("UpdateWeight", pathgraph.ErrVertexOutOfRange)
	}
	if w != obstacle && w < 0 {
		return pathgraph.NewDomainError("UpdateWeight", ErrBadWeight)
	}
	g.weights[v] = w
	g.generation++

	return nil
}

// SetWeights replaces every cell weight at once. len(weights) must equal
// Width*Height. Bumps Generation.
func (g *Grid) SetWeights(weights []float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if len(weights) != g.width*g.height {
		return pathgraph.NewDomainError("SetWeights", ErrWeightCountMismatch)
	}
	for _, w := range weights {
		if w != obstacle && w < 0 {
			return pathgraph.NewDomainError("SetWeights", ErrBadWeight)
		}
	}
	g.weights = append([]float64(nil), weights...)
	g.generation++

	return nil
}

// Width returns the grid's column count.
func (g *Grid) Width() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.width
}

// Height returns the grid's row count.
func (g *Grid) Height() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.height
}

// Index converts (x, y) into a dense vertex id.
func (g *Grid) Index(x, y int) pathgraph.Vertex {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.index(x, y)
}

// Coordinate converts a dense vertex id back into (x, y).
func (g *Grid) Coordinate(v pathgraph.Vertex) (x, y int) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.coord(v)
}
