package grid_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wayfarer-go/wayfarer/grid"
	"github.com/wayfarer-go/wayfarer/pathgraph"
	"github.com/wayfarer-go/wayfarer/search"
)

func TestNewGrid_DefaultWeights(t *testing.T) {
	g, err := grid.NewGrid(3, 3, nil)
	require.NoError(t, err)
	require.Equal(t, 9, g.Size())
	require.Equal(t, 1.0, g.MinWeight())
}

func TestNewGrid_RejectsBadDimensions(t *testing.T) {
	_, err := grid.NewGrid(0, 3, nil)
	require.Error(t, err)
	require.ErrorIs(t, err, grid.ErrBadDimensions)
}

func TestNewGrid_RejectsWeightCountMismatch(t *testing.T) {
	_, err := grid.NewGrid(2, 2, []float64{1, 1, 1})
	require.Error(t, err)
	require.ErrorIs(t, err, grid.ErrWeightCountMismatch)
}

func TestNewGrid_RejectsBadWeight(t *testing.T) {
	_, err := grid.NewGrid(1, 1, []float64{-2})
	require.Error(t, err)
	require.ErrorIs(t, err, grid.ErrBadWeight)
}

func TestNewGrid_RejectsInvalidDiagonalPolicy(t *testing.T) {
	_, err := grid.NewGrid(2, 2, nil, grid.WithDiagonal(grid.DiagonalPolicy(99)))
	require.Error(t, err)
	require.ErrorIs(t, err, pathgraph.ErrInvalidEnum)
}

func TestNewGrid_RejectsInvalidPauseCostType(t *testing.T) {
	_, err := grid.NewGrid(2, 2, nil, grid.WithPauseCostType(grid.PauseCostType(99)))
	require.Error(t, err)
	require.ErrorIs(t, err, pathgraph.ErrInvalidEnum)
}

func TestNeighbors_OrthogonalOnly(t *testing.T) {
	g, err := grid.NewGrid(3, 3, nil)
	require.NoError(t, err)

	// Center cell (1,1) == vertex 4 has all 4 orthogonal neighbors.
	ns, err := g.Neighbors(4, false)
	require.NoError(t, err)
	require.Len(t, ns, 4)
	for _, n := range ns {
		require.Equal(t, 1.0, n.Cost)
	}
}

func TestNeighbors_CornerCell(t *testing.T) {
	g, err := grid.NewGrid(3, 3, nil)
	require.NoError(t, err)

	ns, err := g.Neighbors(0, false) // top-left corner
	require.NoError(t, err)
	require.Len(t, ns, 2)
}

func TestNeighbors_Obstacle(t *testing.T) {
	weights := []float64{1, 1, 1, 1, -1, 1, 1, 1, 1}
	g, err := grid.NewGrid(3, 3, weights)
	require.NoError(t, err)

	ns, err := g.Neighbors(1, false) // above the obstacle at 4
	require.NoError(t, err)
	for _, n := range ns {
		require.NotEqual(t, pathgraph.Vertex(4), n.To)
	}
}

func TestNeighbors_DiagonalOnlyWhenNoObstacle(t *testing.T) {
	// 3x3, obstacle directly right of center so the NE diagonal corner
	// requirement fails.
	weights := []float64{1, 1, 1, 1, 1, -1, 1, 1, 1}
	g, err := grid.NewGrid(3, 3, weights, grid.WithDiagonal(grid.DiagonalOnlyWhenNoObstacle))
	require.NoError(t, err)

	ns, err := g.Neighbors(4, false) // center
	require.NoError(t, err)
	for _, n := range ns {
		require.NotEqual(t, pathgraph.Vertex(2), n.To) // NE corner (1,1)->(2,0) blocked
	}
}

func TestNeighbors_DiagonalAlways(t *testing.T) {
	weights := []float64{1, 1, 1, 1, 1, -1, 1, 1, 1}
	g, err := grid.NewGrid(3, 3, weights, grid.WithDiagonal(grid.DiagonalAlways))
	require.NoError(t, err)

	ns, err := g.Neighbors(4, false)
	require.NoError(t, err)
	found := false
	for _, n := range ns {
		if n.To == 2 {
			found = true
		}
	}
	require.True(t, found)
}

func TestNeighbors_BorderWrap(t *testing.T) {
	g, err := grid.NewGrid(3, 3, nil, grid.WithBorderWrap(true, true))
	require.NoError(t, err)

	ns, err := g.Neighbors(0, false) // top-left corner wraps around
	require.NoError(t, err)
	require.Len(t, ns, 4)
}

func TestNeighbors_ReversedMirrorsForwardCost(t *testing.T) {
	weights := []float64{1, 1, 1, 1, 5, 1, 1, 1, 1}
	g, err := grid.NewGrid(3, 3, weights)
	require.NoError(t, err)

	fwd, err := g.Neighbors(1, false) // above center, moving down costs weight(4)=5
	require.NoError(t, err)

	var downCost float64
	for _, n := range fwd {
		if n.To == 4 {
			downCost = n.Cost
		}
	}
	require.Equal(t, 5.0, downCost)

	rev, err := g.Neighbors(4, true) // predecessors of center
	require.NoError(t, err)
	for _, n := range rev {
		if n.To == 1 {
			require.Equal(t, 5.0, n.Cost)
		}
	}
}

func TestUpdateWeight_BumpsGeneration(t *testing.T) {
	g, err := grid.NewGrid(2, 2, nil)
	require.NoError(t, err)
	before := g.Generation()

	require.NoError(t, g.UpdateWeight(0, 3))
	require.Greater(t, g.Generation(), before)

	ns, err := g.Neighbors(1, false)
	require.NoError(t, err)
	for _, n := range ns {
		if n.To == 0 {
			require.Equal(t, 3.0, n.Cost)
		}
	}
}

func TestUpdateWeight_RejectsOutOfRange(t *testing.T) {
	g, err := grid.NewGrid(2, 2, nil)
	require.NoError(t, err)
	err = g.UpdateWeight(99, 1)
	require.Error(t, err)
	require.ErrorIs(t, err, pathgraph.ErrVertexOutOfRange)
}

func TestSetWeights_RejectsMismatch(t *testing.T) {
	g, err := grid.NewGrid(2, 2, nil)
	require.NoError(t, err)
	err = g.SetWeights([]float64{1, 2, 3})
	require.Error(t, err)
	require.ErrorIs(t, err, grid.ErrWeightCountMismatch)
}

func TestPauseCost_FixedVsCellWeight(t *testing.T) {
	fixed, err := grid.NewGrid(1, 1, []float64{9}, grid.WithFixedPauseCost(2))
	require.NoError(t, err)
	require.Equal(t, 2.0, fixed.PauseCost(0))

	cellWeight, err := grid.NewGrid(1, 1, []float64{9}, grid.WithPauseCostType(grid.PauseCostCellWeight))
	require.NoError(t, err)
	require.Equal(t, 9.0, cellWeight.PauseCost(0))
}

func TestEstimateDistance_DiagonalVsOrthogonal(t *testing.T) {
	diag, err := grid.NewGrid(5, 5, nil, grid.WithDiagonal(grid.DiagonalAlways))
	require.NoError(t, err)
	orth, err := grid.NewGrid(5, 5, nil)
	require.NoError(t, err)

	from, to := pathgraph.Vertex(0), diag.Index(3, 3)
	require.Equal(t, 3.0, diag.EstimateDistance(from, to)) // Chebyshev
	require.Equal(t, 6.0, orth.EstimateDistance(from, to)) // Manhattan
}

func TestCoordinateRoundTrip(t *testing.T) {
	g, err := grid.NewGrid(4, 3, nil)
	require.NoError(t, err)

	v := g.Index(2, 1)
	x, y := g.Coordinate(v)
	require.Equal(t, 2, x)
	require.Equal(t, 1, y)
}

func TestAStar_3x3GridCornerToCorner_OrthogonalOnlyTakesManhattanRoute(t *testing.T) {
	g, err := grid.NewGrid(3, 3, nil)
	require.NoError(t, err)

	path, err := search.AStar(g, 0, 8)
	require.NoError(t, err)
	require.Len(t, path, 5)
	require.Equal(t, pathgraph.Vertex(0), path[0])
	require.Equal(t, pathgraph.Vertex(8), path[len(path)-1])
	require.True(t, g.IsValidPath(path))

	cost, err := g.CalculateCost(path)
	require.NoError(t, err)
	require.Equal(t, 4.0, cost)
}

func TestDijkstra_3x3GridCornerToCorner_OrthogonalOnlyTakesManhattanRoute(t *testing.T) {
	g, err := grid.NewGrid(3, 3, nil)
	require.NoError(t, err)

	path, err := search.Dijkstra(g, 0, 8)
	require.NoError(t, err)
	require.Len(t, path, 5)

	cost, err := g.CalculateCost(path)
	require.NoError(t, err)
	require.Equal(t, 4.0, cost)
}

func TestAStar_3x3GridCornerToCorner_DiagonalAlwaysCutsThroughCenter(t *testing.T) {
	g, err := grid.NewGrid(3, 3, nil,
		grid.WithDiagonal(grid.DiagonalAlways),
		grid.WithDiagonalCostMultiplier(math.Sqrt2))
	require.NoError(t, err)

	path, err := search.AStar(g, 0, 8)
	require.NoError(t, err)
	require.Equal(t, []pathgraph.Vertex{0, 4, 8}, path)

	cost, err := g.CalculateCost(path)
	require.NoError(t, err)
	require.InDelta(t, 2*math.Sqrt2, cost, 1e-9)
}

func TestIsValidPath_RejectsNonAdjacent(t *testing.T) {
	g, err := grid.NewGrid(3, 3, nil)
	require.NoError(t, err)

	require.True(t, g.IsValidPath([]pathgraph.Vertex{0, 1, 2}))
	require.False(t, g.IsValidPath([]pathgraph.Vertex{0, 8}))
}

func TestResumableDijkstra_InvalidatedByWeightUpdate(t *testing.T) {
	g, err := grid.NewGrid(3, 3, nil)
	require.NoError(t, err)

	r, err := search.NewResumableDijkstra(g, 0)
	require.NoError(t, err)
	_, err = r.Distance(8)
	require.NoError(t, err)

	require.NoError(t, g.UpdateWeight(4, 7))

	_, err = r.Distance(8)
	require.Error(t, err)
	require.ErrorIs(t, err, pathgraph.ErrGraphMutated)

	// SetStartNode re-anchors against the mutated weights.
	require.NoError(t, r.SetStartNode(0))
	d, err := r.Distance(8)
	require.NoError(t, err)
	require.Equal(t, 4.0, d)
}

func TestDijkstraAndAStar_EqualCostOnWeightedGrid(t *testing.T) {
	weights := []float64{
		1, 3, 1,
		1, 9, 1,
		1, 3, 1,
	}
	g, err := grid.NewGrid(3, 3, weights)
	require.NoError(t, err)

	dPath, err := search.Dijkstra(g, 0, 8)
	require.NoError(t, err)
	aPath, err := search.AStar(g, 0, 8)
	require.NoError(t, err)

	dCost, err := g.CalculateCost(dPath)
	require.NoError(t, err)
	aCost, err := g.CalculateCost(aPath)
	require.NoError(t, err)
	require.Equal(t, dCost, aCost)
	require.Equal(t, 6.0, dCost) // both rim routes cost 6; the center costs 9 to enter
}

func TestAllObstacleInterior_NoCrossGridPath(t *testing.T) {
	weights := []float64{
		1, -1, 1,
		-1, -1, -1,
		1, -1, 1,
	}
	g, err := grid.NewGrid(3, 3, weights)
	require.NoError(t, err)

	path, err := search.AStar(g, 0, 8)
	require.NoError(t, err)
	require.Empty(t, path)
}
