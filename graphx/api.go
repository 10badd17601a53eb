// File: api.go
// Role: Constructors and AbsGraph method implementations for Graph.
package graphx

import (
	"math"
	"sort"

	"github.com/wayfarer-go/wayfarer/pathgraph"
)

// NewGraph builds an explicit weighted graph over n vertices (ids 0..n-1)
// from edges, applying opts deterministically left-to-right.
//
// Validation, in order: n must be positive (ErrBadVertexCount); if
// WithCoordinates was used, its slice must have exactly n entries
// (ErrCoordLengthMismatch); then, edge by edge, every endpoint must be in
// range (pathgraph.ErrVertexOutOfRange) and every cost must be non-negative
// (pathgraph.ErrNegativeWeight). All validation errors are wrapped as
// *pathgraph.DomainError.
//
// Complexity: O(V + E log E) (the log E is the per-vertex neighbor sort that
// keeps Neighbors deterministic).
func NewGraph(n int, directed bool, edges []EdgeSpec, opts ...Option) (*Graph, error) {
	if n <= 0 {
		return nil, pathgraph.NewDomainError("NewGraph", ErrBadVertexCount)
	}

	g := &Graph{
		n:         n,
		directed:  directed,
		forward:   make([][]pathgraph.Neighbor, n),
		reverse:   make([][]pathgraph.Neighbor, n),
		minWeight: 0,
		pauseCost: 1,
		edgeCount: len(edges),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.coords != nil && len(g.coords) != n {
		return nil, pathgraph.NewDomainError("NewGraph", ErrCoordLengthMismatch)
	}

	minWeight := math.Inf(1)
	for _, e := range edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return nil, pathgraph.NewDomainError("NewGraph", pathgraph.ErrVertexOutOfRange)
		}
		if e.Cost < 0 {
			return nil, pathgraph.NewDomainError("NewGraph", pathgraph.ErrNegativeWeight)
		}
		g.forward[e.From] = append(g.forward[e.From], pathgraph.Neighbor{To: e.To, Cost: e.Cost})
		g.reverse[e.To] = append(g.reverse[e.To], pathgraph.Neighbor{To: e.From, Cost: e.Cost})
		if !directed && e.From != e.To {
			g.forward[e.To] = append(g.forward[e.To], pathgraph.Neighbor{To: e.From, Cost: e.Cost})
			g.reverse[e.From] = append(g.reverse[e.From], pathgraph.Neighbor{To: e.To, Cost: e.Cost})
		}
		if e.Cost < minWeight {
			minWeight = e.Cost
		}
	}
	if math.IsInf(minWeight, 1) {
		minWeight = 0
	}
	g.minWeight = minWeight

	for v := 0; v < n; v++ {
		sortNeighbors(g.forward[v])
		sortNeighbors(g.reverse[v])
	}

	return g, nil
}

// sortNeighbors orders a neighbor slice by target id, ties broken by cost,
// so Neighbors is reproducible across calls.
func sortNeighbors(ns []pathgraph.Neighbor) {
	sort.Slice(ns, func(i, j int) bool {
		if ns[i].To != ns[j].To {
			return ns[i].To < ns[j].To
		}
		return ns[i].Cost < ns[j].Cost
	})
}

// Size returns the vertex count N.
func (g *Graph) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.n
}

// Neighbors returns v's out-edges, or its in-edges when reversed is true.
func (g *Graph) Neighbors(v pathgraph.Vertex, reversed bool) ([]pathgraph.Neighbor, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if v < 0 || v >= g.n {
		return nil, pathgraph.NewDomainError("Neighbors", pathgraph.ErrVertexOutOfRange)
	}
	src := g.forward
	if reversed {
		src = g.reverse
	}
	out := make([]pathgraph.Neighbor, len(src[v]))
	copy(out, src[v])

	return out, nil
}

// EstimateDistance returns 0 when the graph has no coordinates, otherwise
// the straight-line Euclidean distance between u and v. This is admissible
// under the standard assumption for coordinate-embedded graphs: no edge
// costs less than the straight-line distance between its own endpoints, so
// no path can cost less than the straight-line distance between its ends.
// Scaling this up by MinWeight (the minimum per-edge Cost, not a
// per-distance rate) would overestimate whenever a single edge is both
// cheap and geometrically long, breaking admissibility, so it is not
// applied here. grid.Grid differs: its heuristic is counted in hops, where
// multiplying by the minimum per-hop cost is always safe.
func (g *Graph) EstimateDistance(u, v pathgraph.Vertex) float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.coords == nil || u < 0 || u >= g.n || v < 0 || v >= g.n {
		return 0
	}
	a, b := g.coords[u], g.coords[v]
	dx, dy, dz := a.X-b.X, a.Y-b.Y, a.Z-b.Z

	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// HasCoordinates reports whether WithCoordinates was supplied at construction.
func (g *Graph) HasCoordinates() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.coords != nil
}

// IsDirected reports the graph's directedness.
func (g *Graph) IsDirected() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// MinWeight returns a lower bound on every edge cost in the graph.
func (g *Graph) MinWeight() float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.minWeight
}

// PauseCost returns the fixed per-step pause cost configured via
// WithPauseCost (default 1), the same for every vertex in an explicit graph.
func (g *Graph) PauseCost(pathgraph.Vertex) float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.pauseCost
}

// Adjacent reports whether there is a forward edge u -> v.
func (g *Graph) Adjacent(u, v pathgraph.Vertex) (bool, error) {
	return pathgraph.Adjacent(g, u, v)
}

// CalculateCost sums edge and pause costs along path.
func (g *Graph) CalculateCost(path []pathgraph.Vertex) (float64, error) {
	return pathgraph.CalculateCost(g, path)
}

// IsValidPath reports whether every consecutive pair in path is adjacent or
// a legitimate pause.
func (g *Graph) IsValidPath(path []pathgraph.Vertex) bool {
	return pathgraph.IsValidPath(g, path)
}

// Summary produces an O(1) read-only snapshot of the graph's configuration
// and size.
func (g *Graph) Summary() *Summary {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return &Summary{
		VertexCount:    g.n,
		EdgeCount:      g.edgeCount,
		Directed:       g.directed,
		HasCoordinates: g.coords != nil,
		MinWeight:      g.minWeight,
	}
}
