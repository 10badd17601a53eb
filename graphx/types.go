package graphx

import (
	"sync"

	"github.com/wayfarer-go/wayfarer/pathgraph"
)

// Point is an optional coordinate attached to a vertex, used to compute an
// admissible Euclidean heuristic. Z always takes part in the distance; 2D
// callers simply leave it at zero.
type Point struct {
	X, Y, Z float64
}

// EdgeSpec describes one edge at construction time: a transition From -> To
// with non-negative Cost. Graph is immutable once built, so
// edges are supplied up front rather than added incrementally.
type EdgeSpec struct {
	From, To pathgraph.Vertex
	Cost     float64
}

// Option configures a Graph at construction time.
type Option func(*Graph)

// WithCoordinates attaches a Point per vertex (len(coords) must equal n),
// switching EstimateDistance from the zero heuristic to the unscaled
// straight-line Euclidean distance, admissible under the standard
// assumption that no edge costs less than the straight-line distance
// between its own endpoints (see DESIGN.md for why scaling by MinWeight,
// sound for grid.Grid's hop-count heuristic, is unsound here).
func WithCoordinates(coords []Point) Option {
	return func(g *Graph) { g.coords = coords }
}

// WithPauseCost sets the fixed cost charged by PauseCost for remaining at
// any vertex for one time step (used by space-time search over an explicit
// graph, e.g. a corridor). Default is 1.
func WithPauseCost(cost float64) Option {
	return func(g *Graph) { g.pauseCost = cost }
}

// Graph is an explicit weighted edge list. It supports directed and
// undirected topologies and optional coordinates. Once constructed it is
// immutable; concurrent readers share a single RWMutex guarding nothing but
// future extension points (the adjacency slices themselves never mutate
// after NewGraph returns).
type Graph struct {
	mu sync.RWMutex

	n        int
	directed bool

	// forward[v] lists v's out-edges; reverse[v] lists v's in-edges. For
	// undirected graphs the two are identical by construction.
	forward [][]pathgraph.Neighbor
	reverse [][]pathgraph.Neighbor

	coords    []Point
	minWeight float64
	pauseCost float64
	edgeCount int
}

// Summary is a read-only snapshot of a Graph's configuration and size.
type Summary struct {
	VertexCount    int
	EdgeCount      int
	Directed       bool
	HasCoordinates bool
	MinWeight      float64
}
