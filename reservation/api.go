// File: api.go
// Role: Mutators and queries over Table's vertex/edge reservation sets.
package reservation

import "github.com/wayfarer-go/wayfarer/pathgraph"

// IsReserved reports whether (t, v) is occupied, either directly or because
// v carries a permanent reservation effective at or before t.
func (tbl *Table) IsReserved(t Time, v pathgraph.Vertex) bool {
	tbl.mu.RLock()
	defer tbl.mu.RUnlock()

	if _, ok := tbl.vertexReservations[vertexKey{t: t, v: v}]; ok {
		return true
	}
	if v >= 0 && v < len(tbl.lastPermanent) && tbl.lastPermanent[v] != NoReservation {
		return t >= tbl.lastPermanent[v]
	}

	return false
}

// IsEdgeReserved reports whether the directed transition from -> to
// completing at time t is blocked by an edge constraint.
func (tbl *Table) IsEdgeReserved(t Time, from, to pathgraph.Vertex) bool {
	tbl.mu.RLock()
	defer tbl.mu.RUnlock()

	_, ok := tbl.edgeReservations[edgeKey{t: t, from: from, to: to}]

	return ok
}

// AddVertexConstraint directly reserves (t, v).
func (tbl *Table) AddVertexConstraint(t Time, v pathgraph.Vertex) {
	tbl.mu.Lock()
	defer tbl.mu.Unlock()

	tbl.vertexReservations[vertexKey{t: t, v: v}] = struct{}{}
}

// AddEdgeConstraint directly reserves the directed transition from -> to at
// time t.
func (tbl *Table) AddEdgeConstraint(t Time, from, to pathgraph.Vertex) {
	tbl.mu.Lock()
	defer tbl.mu.Unlock()

	tbl.edgeReservations[edgeKey{t: t, from: from, to: to}] = struct{}{}
}

// LastTimeReserved returns the time from which v holds a permanent
// reservation (see AddPath's reserveDestination; the earliest such arrival
// when there are several), or NoReservation if v has none.
func (tbl *Table) LastTimeReserved(v pathgraph.Vertex) Time {
	tbl.mu.RLock()
	defer tbl.mu.RUnlock()

	if v < 0 || v >= len(tbl.lastPermanent) {
		return NoReservation
	}

	return tbl.lastPermanent[v]
}

// AddPath registers an agent's committed path, occupying path[i] at time
// startTime+i for every step. When reserveEdges is true, each transition
// path[i] -> path[i+1] additionally reserves the reverse edge
// path[i+1] -> path[i] at time startTime+i+1, blocking a head-on swap with
// an agent crossing in the opposite direction during the same step. When
// reserveDestination is true, the final vertex is treated as permanently
// occupied from its arrival time onward.
func (tbl *Table) AddPath(startTime Time, path []pathgraph.Vertex, reserveDestination, reserveEdges bool) error {
	if len(path) == 0 {
		return pathgraph.NewDomainError("AddPath", ErrEmptyPath)
	}

	tbl.mu.Lock()
	defer tbl.mu.Unlock()

	for i, v := range path {
		t := startTime + Time(i)
		tbl.vertexReservations[vertexKey{t: t, v: v}] = struct{}{}

		if i+1 < len(path) {
			to := path[i+1]
			if reserveEdges {
				arrival := startTime + Time(i+1)
				tbl.edgeReservations[edgeKey{t: arrival, from: to, to: v}] = struct{}{}
			}
		}
	}

	if reserveDestination {
		last := path[len(path)-1]
		arrival := startTime + Time(len(path)-1)
		if last >= 0 && last < len(tbl.lastPermanent) {
			if tbl.lastPermanent[last] == NoReservation || arrival < tbl.lastPermanent[last] {
				tbl.lastPermanent[last] = arrival
			}
		}
	}

	return nil
}

// AddWeightPath applies an additive cost extra to every (t, v) pair along
// path, starting at startTime. extra must be >= 0.
func (tbl *Table) AddWeightPath(startTime Time, path []pathgraph.Vertex, extra float64) error {
	if len(path) == 0 {
		return pathgraph.NewDomainError("AddWeightPath", ErrEmptyPath)
	}
	if extra < 0 {
		return pathgraph.NewDomainError("AddWeightPath", ErrNegativeWeight)
	}

	tbl.mu.Lock()
	defer tbl.mu.Unlock()

	for i, v := range path {
		t := startTime + Time(i)
		key := vertexKey{t: t, v: v}
		tbl.additionalWeights[key] += extra
	}

	return nil
}

// AdditionalWeight returns the accumulated additive weight at (t, v), or 0
// if none was recorded.
func (tbl *Table) AdditionalWeight(t Time, v pathgraph.Vertex) float64 {
	tbl.mu.RLock()
	defer tbl.mu.RUnlock()

	return tbl.additionalWeights[vertexKey{t: t, v: v}]
}
