package search

import (
	"container/heap"
	"math"

	"github.com/wayfarer-go/wayfarer/pathgraph"
)

// ResumableDijkstra anchors a Dijkstra search at a fixed start node and
// persists its distance table and open frontier between queries, lazily
// expanding only as far as each call requires. The settled set is exactly
// the prefix of vertices whose distance is <= every key left in the
// frontier: expansion is monotone-nondecreasing in distance.
//
// A ResumableDijkstra must not outlive a mutation to its graph. If the
// graph implements pathgraph.Versioned, every call checks its Generation
// against the value captured at construction (or the last SetStartNode)
// and returns pathgraph.ErrGraphMutated on mismatch.
type ResumableDijkstra struct {
	g          pathgraph.AbsGraph
	start      pathgraph.Vertex
	generation uint64

	dist    map[pathgraph.Vertex]float64
	prev    map[pathgraph.Vertex]pathgraph.Vertex
	settled map[pathgraph.Vertex]bool
	pq      nodePQ
}

// NewResumableDijkstra anchors a new instance at start.
func NewResumableDijkstra(g pathgraph.AbsGraph, start pathgraph.Vertex) (*ResumableDijkstra, error) {
	r := &ResumableDijkstra{g: g}
	if err := r.SetStartNode(start); err != nil {
		return nil, err
	}

	return r, nil
}

// SetStartNode resets all distance/predecessor state and reseeds the
// frontier with v.
func (r *ResumableDijkstra) SetStartNode(v pathgraph.Vertex) error {
	n := r.g.Size()
	if v < 0 || v >= n {
		return pathgraph.NewDomainError("SetStartNode", ErrStartOutOfRange)
	}

	r.start = v
	r.generation = currentGeneration(r.g)
	r.dist = map[pathgraph.Vertex]float64{v: 0}
	r.prev = make(map[pathgraph.Vertex]pathgraph.Vertex)
	r.settled = make(map[pathgraph.Vertex]bool)
	r.pq = make(nodePQ, 0, n)
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{v: v, dist: 0})

	return nil
}

// Distance returns the shortest-path distance from the anchored start node
// to v, expanding the frontier until v is settled or the frontier is
// empty (in which case it returns +Inf).
func (r *ResumableDijkstra) Distance(v pathgraph.Vertex) (float64, error) {
	if err := r.checkStale(); err != nil {
		return 0, err
	}
	n := r.g.Size()
	if v < 0 || v >= n {
		return 0, pathgraph.NewDomainError("Distance", ErrGoalOutOfRange)
	}
	if r.settled[v] {
		return r.dist[v], nil
	}

	if err := r.expandUntil(v); err != nil {
		return 0, err
	}
	if d, ok := r.dist[v]; ok && r.settled[v] {
		return d, nil
	}

	return math.Inf(1), nil
}

// FindPath expands the frontier until v is settled, then reconstructs the
// path from the anchored start node via recorded predecessors.
func (r *ResumableDijkstra) FindPath(v pathgraph.Vertex) ([]pathgraph.Vertex, error) {
	if err := r.checkStale(); err != nil {
		return nil, err
	}
	if v == r.start {
		return []pathgraph.Vertex{r.start}, nil
	}

	d, err := r.Distance(v)
	if err != nil {
		return nil, err
	}
	if math.IsInf(d, 1) {
		return nil, nil
	}

	return reconstruct(r.prev, r.start, v), nil
}

// expandUntil pops from the frontier, relaxing edges, until target is
// settled or the frontier is exhausted.
func (r *ResumableDijkstra) expandUntil(target pathgraph.Vertex) error {
	for r.pq.Len() > 0 {
		if r.settled[target] {
			return nil
		}

		item := heap.Pop(&r.pq).(*nodeItem)
		u, d := item.v, item.dist
		if r.settled[u] {
			continue
		}
		r.settled[u] = true

		neighbors, err := r.g.Neighbors(u, false)
		if err != nil {
			return err
		}
		for _, nb := range neighbors {
			if r.settled[nb.To] {
				continue
			}
			newDist := d + nb.Cost
			if old, ok := r.dist[nb.To]; ok && newDist >= old {
				continue
			}
			r.dist[nb.To] = newDist
			r.prev[nb.To] = u
			heap.Push(&r.pq, &nodeItem{v: nb.To, dist: newDist})
		}
	}

	return nil
}

func (r *ResumableDijkstra) checkStale() error {
	if currentGeneration(r.g) != r.generation {
		return pathgraph.NewDomainError("ResumableDijkstra", pathgraph.ErrGraphMutated)
	}

	return nil
}

// ResumableBFS is the unweighted counterpart of ResumableDijkstra: a FIFO
// frontier anchored at a fixed start node, persisted across queries.
type ResumableBFS struct {
	g          pathgraph.AbsGraph
	start      pathgraph.Vertex
	generation uint64

	depth   map[pathgraph.Vertex]int
	prev    map[pathgraph.Vertex]pathgraph.Vertex
	visited map[pathgraph.Vertex]bool
	queue   []pathgraph.Vertex
}

// NewResumableBFS anchors a new instance at start.
func NewResumableBFS(g pathgraph.AbsGraph, start pathgraph.Vertex) (*ResumableBFS, error) {
	r := &ResumableBFS{g: g}
	if err := r.SetStartNode(start); err != nil {
		return nil, err
	}

	return r, nil
}

// SetStartNode resets all depth/predecessor state and reseeds the queue
// with v.
func (r *ResumableBFS) SetStartNode(v pathgraph.Vertex) error {
	n := r.g.Size()
	if v < 0 || v >= n {
		return pathgraph.NewDomainError("SetStartNode", ErrStartOutOfRange)
	}

	r.start = v
	r.generation = currentGeneration(r.g)
	r.depth = map[pathgraph.Vertex]int{v: 0}
	r.prev = make(map[pathgraph.Vertex]pathgraph.Vertex)
	r.visited = map[pathgraph.Vertex]bool{v: true}
	r.queue = []pathgraph.Vertex{v}

	return nil
}

// Distance returns the hop count from the anchored start node to v,
// expanding the frontier until v is visited or the frontier is empty (in
// which case it returns +Inf).
func (r *ResumableBFS) Distance(v pathgraph.Vertex) (float64, error) {
	if err := r.checkStale(); err != nil {
		return 0, err
	}
	n := r.g.Size()
	if v < 0 || v >= n {
		return 0, pathgraph.NewDomainError("Distance", ErrGoalOutOfRange)
	}
	if r.visited[v] {
		return float64(r.depth[v]), nil
	}

	if err := r.expandUntil(v); err != nil {
		return 0, err
	}
	if r.visited[v] {
		return float64(r.depth[v]), nil
	}

	return math.Inf(1), nil
}

// FindPath expands the frontier until v is visited, then reconstructs the
// path from the anchored start node.
func (r *ResumableBFS) FindPath(v pathgraph.Vertex) ([]pathgraph.Vertex, error) {
	if err := r.checkStale(); err != nil {
		return nil, err
	}
	if v == r.start {
		return []pathgraph.Vertex{r.start}, nil
	}

	d, err := r.Distance(v)
	if err != nil {
		return nil, err
	}
	if math.IsInf(d, 1) {
		return nil, nil
	}

	return reconstruct(r.prev, r.start, v), nil
}

func (r *ResumableBFS) expandUntil(target pathgraph.Vertex) error {
	for len(r.queue) > 0 {
		if r.visited[target] {
			return nil
		}

		u := r.queue[0]
		r.queue = r.queue[1:]

		neighbors, err := r.g.Neighbors(u, false)
		if err != nil {
			return err
		}
		for _, nb := range neighbors {
			if r.visited[nb.To] {
				continue
			}
			r.visited[nb.To] = true
			r.depth[nb.To] = r.depth[u] + 1
			r.prev[nb.To] = u
			r.queue = append(r.queue, nb.To)
		}
	}

	return nil
}

func (r *ResumableBFS) checkStale() error {
	if currentGeneration(r.g) != r.generation {
		return pathgraph.NewDomainError("ResumableBFS", pathgraph.ErrGraphMutated)
	}

	return nil
}

// currentGeneration returns g's Generation if it implements
// pathgraph.Versioned, else 0 (meaning "never considered stale").
func currentGeneration(g pathgraph.AbsGraph) uint64 {
	if v, ok := g.(pathgraph.Versioned); ok {
		return v.Generation()
	}

	return 0
}
