package search

import (
	"container/heap"

	"github.com/wayfarer-go/wayfarer/pathgraph"
)

// Dijkstra returns the minimum-cost path from start to goal using a
// min-priority frontier keyed on tentative distance. Ties are broken by
// ascending vertex id via the lazy decrease-key discipline: a shorter
// distance pushes a fresh heap entry rather than mutating the old one, and
// stale entries are skipped on pop.
func Dijkstra(g pathgraph.AbsGraph, start, goal pathgraph.Vertex, opts ...Option) ([]pathgraph.Vertex, error) {
	o := buildOptions(opts...)

	n := g.Size()
	if start < 0 || start >= n {
		return nil, pathgraph.NewDomainError("Dijkstra", ErrStartOutOfRange)
	}
	if goal < 0 || goal >= n {
		return nil, pathgraph.NewDomainError("Dijkstra", ErrGoalOutOfRange)
	}
	if start == goal {
		return []pathgraph.Vertex{start}, nil
	}

	dist := make(map[pathgraph.Vertex]float64, n)
	prev := make(map[pathgraph.Vertex]pathgraph.Vertex, n)
	settled := make(map[pathgraph.Vertex]bool, n)

	pq := make(nodePQ, 0, n)
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{v: start, dist: 0})
	dist[start] = 0

	expansions := 0
	for pq.Len() > 0 {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		item := heap.Pop(&pq).(*nodeItem)
		u, d := item.v, item.dist
		if settled[u] {
			continue
		}

		if o.ExpansionBudget > 0 && expansions >= o.ExpansionBudget {
			return nil, &pathgraph.TimeoutError{Op: "Dijkstra", Budget: o.ExpansionBudget}
		}
		expansions++

		settled[u] = true
		if u == goal {
			return reconstruct(prev, start, goal), nil
		}

		neighbors, err := g.Neighbors(u, false)
		if err != nil {
			return nil, err
		}
		for _, nb := range neighbors {
			if settled[nb.To] {
				continue
			}
			newDist := d + nb.Cost
			if old, ok := dist[nb.To]; ok && newDist >= old {
				continue
			}
			dist[nb.To] = newDist
			prev[nb.To] = u
			heap.Push(&pq, &nodeItem{v: nb.To, dist: newDist})
		}
	}

	return nil, nil
}

// nodeItem pairs a vertex with its tentative distance from the source, the
// unit stored in a nodePQ min-heap.
type nodeItem struct {
	v    pathgraph.Vertex
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending, with ties
// broken by ascending vertex id for deterministic expansion order.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].v < pq[j].v
}
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
