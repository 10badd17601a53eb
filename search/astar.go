package search

import (
	"container/heap"

	"github.com/wayfarer-go/wayfarer/pathgraph"
)

// AStar returns the minimum-cost path from start to goal using a
// min-priority frontier keyed on f = g + h, with h = g.EstimateDistance(v,
// goal). When g has no coordinates, EstimateDistance degenerates to 0 and
// AStar behaves exactly like Dijkstra. Ties prefer lower f, then lower h,
// then ascending vertex id.
func AStar(g pathgraph.AbsGraph, start, goal pathgraph.Vertex, opts ...Option) ([]pathgraph.Vertex, error) {
	o := buildOptions(opts...)

	n := g.Size()
	if start < 0 || start >= n {
		return nil, pathgraph.NewDomainError("AStar", ErrStartOutOfRange)
	}
	if goal < 0 || goal >= n {
		return nil, pathgraph.NewDomainError("AStar", ErrGoalOutOfRange)
	}
	if start == goal {
		return []pathgraph.Vertex{start}, nil
	}

	gScore := make(map[pathgraph.Vertex]float64, n)
	prev := make(map[pathgraph.Vertex]pathgraph.Vertex, n)
	closed := make(map[pathgraph.Vertex]bool, n)

	startH := g.EstimateDistance(start, goal)
	pq := make(astarPQ, 0, n)
	heap.Init(&pq)
	heap.Push(&pq, &astarNode{v: start, g: 0, f: startH, h: startH})
	gScore[start] = 0

	expansions := 0
	for pq.Len() > 0 {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		node := heap.Pop(&pq).(*astarNode)
		u := node.v
		if closed[u] {
			continue
		}
		if node.g > gScore[u] {
			continue // stale lazy-decrease-key entry
		}

		if o.ExpansionBudget > 0 && expansions >= o.ExpansionBudget {
			return nil, &pathgraph.TimeoutError{Op: "AStar", Budget: o.ExpansionBudget}
		}
		expansions++

		closed[u] = true
		if u == goal {
			return reconstruct(prev, start, goal), nil
		}

		neighbors, err := g.Neighbors(u, false)
		if err != nil {
			return nil, err
		}
		for _, nb := range neighbors {
			if closed[nb.To] {
				continue
			}
			tentative := node.g + nb.Cost
			if old, ok := gScore[nb.To]; ok && tentative >= old {
				continue
			}
			gScore[nb.To] = tentative
			prev[nb.To] = u
			h := g.EstimateDistance(nb.To, goal)
			heap.Push(&pq, &astarNode{v: nb.To, g: tentative, f: tentative + h, h: h})
		}
	}

	return nil, nil
}

// astarNode is one frontier entry: the vertex, its best-known g score, the
// combined f = g + h priority, and h kept separately for tie-breaking.
type astarNode struct {
	v    pathgraph.Vertex
	g, f float64
	h    float64
}

// astarPQ is a min-heap of *astarNode ordered by f ascending, then h
// ascending, then vertex id ascending, matching the required deterministic
// expansion order.
type astarPQ []*astarNode

func (pq astarPQ) Len() int { return len(pq) }
func (pq astarPQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	if pq[i].h != pq[j].h {
		return pq[i].h < pq[j].h
	}

	return pq[i].v < pq[j].v
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
