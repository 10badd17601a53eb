// File: components.go
// Role: Connected-component and strongly-connected-component analysis over
// AbsGraph.
package pathgraph

// FindComponents partitions an undirected graph's vertices into connected
// components via BFS flood fill, the same technique used for grid "island"
// detection: start from any unvisited vertex, flood along both
// Neighbors(v, false) and Neighbors(v, true), and repeat until every vertex
// has been assigned to a component.
//
// The graph is treated as undirected regardless of g.IsDirected(); callers
// working with a directed graph should symmetrize it first or use FindSCC.
//
// Complexity: O(V + E).
func FindComponents(g AbsGraph) ([][]Vertex, error) {
	n := g.Size()
	visited := make([]bool, n)
	var components [][]Vertex

	for start := 0; start < n; start++ {
		if visited[start] {
			continue
		}
		var comp []Vertex
		queue := []Vertex{start}
		visited[start] = true
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			comp = append(comp, v)

			forward, err := g.Neighbors(v, false)
			if err != nil {
				return nil, err
			}
			backward, err := g.Neighbors(v, true)
			if err != nil {
				return nil, err
			}
			for _, nb := range forward {
				if !visited[nb.To] {
					visited[nb.To] = true
					queue = append(queue, nb.To)
				}
			}
			for _, nb := range backward {
				if !visited[nb.To] {
					visited[nb.To] = true
					queue = append(queue, nb.To)
				}
			}
		}
		components = append(components, comp)
	}

	return components, nil
}

// tarjanState holds the per-vertex bookkeeping for the iterative Tarjan SCC
// pass. index/lowlink/onStack mirror the textbook recursive algorithm;
// indices is kept explicit (not recursion-depth-limited) because vertex
// counts are not bounded by this module.
type tarjanState struct {
	g        AbsGraph
	index    []int
	lowlink  []int
	onStack  []bool
	stack    []Vertex
	counter  int
	sccs     [][]Vertex
	visitErr error
}

// FindSCC computes the strongly connected components of a directed graph
// using Tarjan's algorithm, implemented iteratively (an explicit work stack
// standing in for the call stack) so pathological chains do not overflow
// Go's goroutine stack. Ordering of SCCs, and of vertices within an SCC, is
// unspecified beyond being deterministic for a fixed graph and neighbor
// ordering.
//
// Complexity: O(V + E).
func FindSCC(g AbsGraph) ([][]Vertex, error) {
	n := g.Size()
	st := &tarjanState{
		g:       g,
		index:   make([]int, n),
		lowlink: make([]int, n),
		onStack: make([]bool, n),
	}
	for i := range st.index {
		st.index[i] = -1
	}

	for v := 0; v < n; v++ {
		if st.index[v] == -1 {
			st.strongConnect(v)
			if st.visitErr != nil {
				return nil, st.visitErr
			}
		}
	}

	return st.sccs, nil
}

// frame is one level of the explicit Tarjan recursion stack: the vertex
// being processed and how far its neighbor iteration has progressed.
type frame struct {
	v        Vertex
	edges    []Neighbor
	edgeIdx  int
	childSet bool
}

// strongConnect runs Tarjan's algorithm from root using an explicit stack of
// frames instead of native recursion.
func (st *tarjanState) strongConnect(root Vertex) {
	work := []*frame{st.push(root)}

	for len(work) > 0 {
		top := work[len(work)-1]

		if top.edges == nil && !top.childSet {
			edges, err := st.g.Neighbors(top.v, false)
			if err != nil {
				st.visitErr = err
				return
			}
			top.edges = edges
			top.childSet = true
		}

		if top.edgeIdx < len(top.edges) {
			w := top.edges[top.edgeIdx].To
			top.edgeIdx++
			switch {
			case st.index[w] == -1:
				work = append(work, st.push(w))
			case st.onStack[w]:
				if st.index[w] < st.lowlink[top.v] {
					st.lowlink[top.v] = st.index[w]
				}
			}
			continue
		}

		// All of top.v's edges processed: pop the frame and propagate
		// lowlink to the parent, closing an SCC if top.v is its own root.
		work = work[:len(work)-1]
		if len(work) > 0 {
			parent := work[len(work)-1]
			if st.lowlink[top.v] < st.lowlink[parent.v] {
				st.lowlink[parent.v] = st.lowlink[top.v]
			}
		}
		if st.lowlink[top.v] == st.index[top.v] {
			st.popSCC(top.v)
		}
	}
}

// push assigns a fresh index to v, places it on the Tarjan stack, and
// returns a new work frame for it.
func (st *tarjanState) push(v Vertex) *frame {
	st.index[v] = st.counter
	st.lowlink[v] = st.counter
	st.counter++
	st.stack = append(st.stack, v)
	st.onStack[v] = true

	return &frame{v: v}
}

// popSCC drains the Tarjan stack down to and including root, emitting the
// resulting component.
func (st *tarjanState) popSCC(root Vertex) {
	var comp []Vertex
	for {
		n := len(st.stack) - 1
		w := st.stack[n]
		st.stack = st.stack[:n]
		st.onStack[w] = false
		comp = append(comp, w)
		if w == root {
			break
		}
	}
	st.sccs = append(st.sccs, comp)
}
