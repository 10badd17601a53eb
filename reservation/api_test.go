package reservation_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wayfarer-go/wayfarer/pathgraph"
	"github.com/wayfarer-go/wayfarer/reservation"
)

func TestNewTable_RejectsBadSize(t *testing.T) {
	_, err := reservation.NewTable(0)
	require.Error(t, err)
	require.ErrorIs(t, err, reservation.ErrBadGraphSize)
}

func TestAddVertexConstraint_IsReserved(t *testing.T) {
	tbl, err := reservation.NewTable(5)
	require.NoError(t, err)

	require.False(t, tbl.IsReserved(3, 2))
	tbl.AddVertexConstraint(3, 2)
	require.True(t, tbl.IsReserved(3, 2))
	require.False(t, tbl.IsReserved(4, 2))
}

func TestAddEdgeConstraint_IsEdgeReserved(t *testing.T) {
	tbl, err := reservation.NewTable(5)
	require.NoError(t, err)

	require.False(t, tbl.IsEdgeReserved(1, 0, 1))
	tbl.AddEdgeConstraint(1, 0, 1)
	require.True(t, tbl.IsEdgeReserved(1, 0, 1))
	require.False(t, tbl.IsEdgeReserved(1, 1, 0))
}

func TestAddPath_ReservesEachStep(t *testing.T) {
	tbl, err := reservation.NewTable(5)
	require.NoError(t, err)

	path := []pathgraph.Vertex{0, 1, 2}
	require.NoError(t, tbl.AddPath(0, path, false, false))

	require.True(t, tbl.IsReserved(0, 0))
	require.True(t, tbl.IsReserved(1, 1))
	require.True(t, tbl.IsReserved(2, 2))
	require.False(t, tbl.IsReserved(2, 1))
}

func TestAddPath_ReserveEdgesBlocksHeadOnSwap(t *testing.T) {
	tbl, err := reservation.NewTable(5)
	require.NoError(t, err)

	// Agent A moves 0 -> 1 between t=0 and t=1.
	require.NoError(t, tbl.AddPath(0, []pathgraph.Vertex{0, 1}, false, true))

	// Agent B attempting 1 -> 0 in the same window should be blocked.
	require.True(t, tbl.IsEdgeReserved(1, 1, 0))
}

func TestAddPath_ReserveDestinationBlocksFutureOccupancy(t *testing.T) {
	tbl, err := reservation.NewTable(5)
	require.NoError(t, err)

	require.NoError(t, tbl.AddPath(0, []pathgraph.Vertex{0, 1, 2}, true, false))

	require.Equal(t, reservation.Time(2), tbl.LastTimeReserved(2))
	require.True(t, tbl.IsReserved(2, 2))
	require.True(t, tbl.IsReserved(100, 2)) // permanent from arrival onward
	require.False(t, tbl.IsReserved(1, 2))  // before arrival, unreserved
}

func TestAddPath_RejectsEmpty(t *testing.T) {
	tbl, err := reservation.NewTable(3)
	require.NoError(t, err)

	err = tbl.AddPath(0, nil, false, false)
	require.Error(t, err)
	require.ErrorIs(t, err, reservation.ErrEmptyPath)
}

func TestAddWeightPath_Accumulates(t *testing.T) {
	tbl, err := reservation.NewTable(3)
	require.NoError(t, err)

	require.NoError(t, tbl.AddWeightPath(0, []pathgraph.Vertex{0, 1}, 2))
	require.NoError(t, tbl.AddWeightPath(0, []pathgraph.Vertex{0}, 3))

	require.Equal(t, 5.0, tbl.AdditionalWeight(0, 0))
	require.Equal(t, 2.0, tbl.AdditionalWeight(1, 1))
	require.Equal(t, 0.0, tbl.AdditionalWeight(0, 2))
}

func TestAddWeightPath_RejectsNegative(t *testing.T) {
	tbl, err := reservation.NewTable(3)
	require.NoError(t, err)

	err = tbl.AddWeightPath(0, []pathgraph.Vertex{0}, -1)
	require.Error(t, err)
	require.ErrorIs(t, err, reservation.ErrNegativeWeight)
}

func TestLastTimeReserved_DefaultsToNoReservation(t *testing.T) {
	tbl, err := reservation.NewTable(3)
	require.NoError(t, err)

	require.Equal(t, reservation.NoReservation, tbl.LastTimeReserved(1))
}
