// File: api.go
// Role: The three FindPathWith* entry points and the shared A* engine that
// backs them.
package spacetime

import (
	"container/heap"

	"github.com/wayfarer-go/wayfarer/pathgraph"
	"github.com/wayfarer-go/wayfarer/reservation"
)

// FindPathWithDepthLimit searches bounded by t <= maxDepth, returning the
// best path that reaches goal at any t <= maxDepth at a time after
// rt.LastTimeReserved(goal). Plain vertex reservations on goal later than
// the arrival time are not checked. Returns an empty path if none is found
// within the bound.
func FindPathWithDepthLimit(g pathgraph.AbsGraph, rt *reservation.Table, start, goal pathgraph.Vertex, maxDepth int, opts ...Option) ([]pathgraph.Vertex, error) {
	if maxDepth <= 0 {
		return nil, pathgraph.NewDomainError("FindPathWithDepthLimit", ErrBadLimit)
	}

	return run(g, rt, start, goal, maxDepth, modeDepthLimit, opts...)
}

// FindPathWithExactLength returns a path of exactly length steps (counting
// the starting vertex) ending at goal, padding with pauses as needed.
// Returns an empty path if no such path exists. Because its horizon is
// fixed, it does not apply the goal-settling check the other two variants
// do: reaching goal at exactly the requested length is always terminal.
func FindPathWithExactLength(g pathgraph.AbsGraph, rt *reservation.Table, start, goal pathgraph.Vertex, length int, opts ...Option) ([]pathgraph.Vertex, error) {
	if length <= 0 {
		return nil, pathgraph.NewDomainError("FindPathWithExactLength", ErrBadLimit)
	}

	return run(g, rt, start, goal, length-1, modeExactLength, opts...)
}

// FindPathWithLengthLimit returns the minimum-cost path of length <=
// maxLength (counting the starting vertex) ending at goal, honoring the
// same settling semantics as FindPathWithDepthLimit. Returns an empty path
// if none is found within the bound.
func FindPathWithLengthLimit(g pathgraph.AbsGraph, rt *reservation.Table, start, goal pathgraph.Vertex, maxLength int, opts ...Option) ([]pathgraph.Vertex, error) {
	if maxLength <= 0 {
		return nil, pathgraph.NewDomainError("FindPathWithLengthLimit", ErrBadLimit)
	}

	return run(g, rt, start, goal, maxLength-1, modeLengthLimit, opts...)
}

// goalMode selects how a popped goal-vertex state is judged terminal.
type goalMode int

const (
	modeDepthLimit goalMode = iota
	modeExactLength
	modeLengthLimit
)

// run is the shared A* engine over the (vertex, time) product state space.
// maxT is the maximum time index the search may reach: for modeExactLength
// it is the exact target time (length-1); for the other two modes it is an
// upper bound the search may settle anywhere at or below.
func run(g pathgraph.AbsGraph, rt *reservation.Table, start, goal pathgraph.Vertex, maxT int, mode goalMode, opts ...Option) ([]pathgraph.Vertex, error) {
	o := buildOptions(opts...)

	n := g.Size()
	if start < 0 || start >= n {
		return nil, pathgraph.NewDomainError("spacetime", ErrStartOutOfRange)
	}
	if goal < 0 || goal >= n {
		return nil, pathgraph.NewDomainError("spacetime", ErrGoalOutOfRange)
	}

	startH := g.EstimateDistance(start, goal)
	startState := State{V: start, T: 0}

	best := map[State]float64{startState: 0}
	closed := make(map[State]bool)
	pq := make(astarPQ, 0, 64)
	heap.Init(&pq)
	heap.Push(&pq, &astarNode{state: startState, g: 0, f: startH, h: startH})

	expansions := 0
	for pq.Len() > 0 {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		node := heap.Pop(&pq).(*astarNode)
		if closed[node.state] {
			continue
		}
		if node.g > best[node.state] {
			continue
		}

		if o.ExpansionBudget > 0 && expansions >= o.ExpansionBudget {
			return nil, &pathgraph.TimeoutError{Op: "spacetime", Budget: o.ExpansionBudget}
		}
		expansions++
		closed[node.state] = true

		if node.state.V == goal && isTerminal(rt, node.state, maxT, mode) {
			return reconstructState(node), nil
		}

		if node.state.T >= maxT {
			continue
		}

		if err := expand(g, rt, node, goal, maxT, &pq, best); err != nil {
			return nil, err
		}
	}

	return nil, nil
}

// isTerminal reports whether a goal-vertex state is an acceptable place to
// stop, per mode. modeExactLength accepts only the exact target time.
// modeDepthLimit and modeLengthLimit additionally require that no other
// agent's permanent reservation at the goal makes settling there unsafe:
// the agent must keep moving if rt.LastTimeReserved(goal) >= state.T.
func isTerminal(rt *reservation.Table, state State, maxT int, mode goalMode) bool {
	if mode == modeExactLength {
		return state.T == maxT
	}
	if state.T > maxT {
		return false
	}

	return lastTimeReserved(rt, state.V) < reservation.Time(state.T)
}

// expand generates the neighbor-move and pause successors of node and
// pushes any improving ones onto pq.
func expand(g pathgraph.AbsGraph, rt *reservation.Table, node *astarNode, goal pathgraph.Vertex, maxT int, pq *astarPQ, best map[State]float64) error {
	t2 := node.state.T + 1

	neighbors, err := g.Neighbors(node.state.V, false)
	if err != nil {
		return err
	}
	for _, nb := range neighbors {
		if isReserved(rt, t2, nb.To) || isEdgeReserved(rt, t2, node.state.V, nb.To) {
			continue
		}
		cost := nb.Cost + additionalWeight(rt, t2, nb.To)
		pushSuccessor(g, node, State{V: nb.To, T: t2}, goal, cost, pq, best)
	}

	if !isReserved(rt, t2, node.state.V) {
		cost := g.PauseCost(node.state.V) + additionalWeight(rt, t2, node.state.V)
		pushSuccessor(g, node, State{V: node.state.V, T: t2}, goal, cost, pq, best)
	}

	return nil
}

// pushSuccessor relaxes the edge from node to next, pushing a fresh heap
// entry if it improves on any previously recorded g for next (the lazy
// decrease-key discipline also used by search.AStar).
func pushSuccessor(g pathgraph.AbsGraph, node *astarNode, next State, goal pathgraph.Vertex, cost float64, pq *astarPQ, best map[State]float64) {
	newG := node.g + cost
	if old, ok := best[next]; ok && newG >= old {
		return
	}
	best[next] = newG
	h := g.EstimateDistance(next.V, goal)
	heap.Push(pq, &astarNode{state: next, g: newG, f: newG + h, h: h, parent: node})
}

// reconstructState walks parent pointers from node back to the start state
// and reverses the result into a vertex path (consecutive repeats are
// pauses, preserved as-is).
func reconstructState(node *astarNode) []pathgraph.Vertex {
	var rev []pathgraph.Vertex
	for n := node; n != nil; n = n.parent {
		rev = append(rev, n.state.V)
	}
	path := make([]pathgraph.Vertex, len(rev))
	for i, v := range rev {
		path[len(rev)-1-i] = v
	}

	return path
}

func isReserved(rt *reservation.Table, t int, v pathgraph.Vertex) bool {
	if rt == nil {
		return false
	}

	return rt.IsReserved(reservation.Time(t), v)
}

func isEdgeReserved(rt *reservation.Table, t int, from, to pathgraph.Vertex) bool {
	if rt == nil {
		return false
	}

	return rt.IsEdgeReserved(reservation.Time(t), from, to)
}

func additionalWeight(rt *reservation.Table, t int, v pathgraph.Vertex) float64 {
	if rt == nil {
		return 0
	}

	return rt.AdditionalWeight(reservation.Time(t), v)
}

func lastTimeReserved(rt *reservation.Table, v pathgraph.Vertex) reservation.Time {
	if rt == nil {
		return reservation.NoReservation
	}

	return rt.LastTimeReserved(v)
}
