package reservation

import (
	"sync"

	"github.com/wayfarer-go/wayfarer/pathgraph"
)

// Time is a discrete planning step, counted from 0.
type Time = int64

// NoReservation is the sentinel returned by LastTimeReserved when a vertex
// has no permanent reservation.
const NoReservation Time = -1

// vertexKey identifies a (time, vertex) pair.
type vertexKey struct {
	t Time
	v pathgraph.Vertex
}

// edgeKey identifies a directed (time, from, to) transition.
type edgeKey struct {
	t    Time
	from pathgraph.Vertex
	to   pathgraph.Vertex
}

// Table is a time-indexed vertex/edge occupancy store plus additive
// per-(time, vertex) weights, consumed by spacetime searches. Every method
// takes the table's RWMutex, so concurrent reads and mutations do not race;
// the order in which concurrent mutations land is up to the caller.
type Table struct {
	mu sync.RWMutex

	graphSize int

	vertexReservations map[vertexKey]struct{}
	edgeReservations   map[edgeKey]struct{}
	additionalWeights  map[vertexKey]float64

	// lastPermanent[v] is the earliest time from which v is reserved "from
	// this time onward" (AddPath with reserveDestination; with several such
	// paths ending at v the earliest arrival is kept), or NoReservation if
	// none.
	lastPermanent []Time
}

// NewTable builds an empty reservation table sized for a graph with
// graphSize vertices.
func NewTable(graphSize int) (*Table, error) {
	if graphSize <= 0 {
		return nil, pathgraph.NewDomainError("NewTable", ErrBadGraphSize)
	}

	lastPermanent := make([]Time, graphSize)
	for i := range lastPermanent {
		lastPermanent[i] = NoReservation
	}

	return &Table{
		graphSize:          graphSize,
		vertexReservations: make(map[vertexKey]struct{}),
		edgeReservations:   make(map[edgeKey]struct{}),
		additionalWeights:  make(map[vertexKey]float64),
		lastPermanent:      lastPermanent,
	}, nil
}
