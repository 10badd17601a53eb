package spacetime

import (
	"context"

	"github.com/wayfarer-go/wayfarer/pathgraph"
)

// State is one node of the product state space the search explores: an
// agent standing at vertex V at discrete time step T.
type State struct {
	V pathgraph.Vertex
	T int
}

// Options configures a space-time query. The zero value runs with an
// unbounded expansion budget and context.Background.
type Options struct {
	Ctx             context.Context
	ExpansionBudget int // 0 means unbounded.
}

// DefaultOptions returns the zero-configuration Options.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// Option customizes Options at call time.
type Option func(*Options)

// WithContext sets the context checked for cancellation once per
// expansion.
func WithContext(ctx context.Context) Option {
	return func(o *Options) { o.Ctx = ctx }
}

// WithExpansionBudget caps the number of node expansions before the engine
// raises a *pathgraph.TimeoutError. A budget of 0 (the default) is
// unbounded.
func WithExpansionBudget(budget int) Option {
	return func(o *Options) { o.ExpansionBudget = budget }
}

func buildOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}

	return o
}

// astarNode is one space-time frontier entry, carrying enough to
// reconstruct the path once the search settles on a goal state.
type astarNode struct {
	state  State
	g      float64
	f      float64
	h      float64
	parent *astarNode
}

// astarPQ is a min-heap of *astarNode ordered by f ascending, then h
// ascending (favoring deeper progress), then State ascending for
// deterministic expansion order.
type astarPQ []*astarNode

func (pq astarPQ) Len() int { return len(pq) }
func (pq astarPQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	if pq[i].h != pq[j].h {
		return pq[i].h < pq[j].h
	}
	if pq[i].state.V != pq[j].state.V {
		return pq[i].state.V < pq[j].state.V
	}

	return pq[i].state.T < pq[j].state.T
}
func (pq astarPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *astarPQ) Push(x interface{}) { *pq = append(*pq, x.(*astarNode)) }

func (pq *astarPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
