// Package grid implements Grid, an implicit 2D weighted graph with
// per-cell entry costs, obstacles, border wraparound, and a configurable
// diagonal-movement policy. Grid implements pathgraph.AbsGraph so every
// engine in search and spacetime runs over it unchanged.
//
// What:
//
//   - Row-major dense vertex ids: v = y*Width + x.
//   - Per-cell weight w >= 0, with the sentinel w == -1 denoting an
//     impassable obstacle.
//   - Independent left/right and up/down wrap flags.
//   - DiagonalPolicy: Never, OnlyWhenNoObstacle, AtMostOneObstacle, Always.
//   - PauseCostType: Fixed (a configured constant) or CellWeight (the
//     agent's current cell weight, clamped to zero if negative).
//
// Why:
//
//   - Grids are the common case for game maps, warehouse floors, and other
//     2D/3D environments where enumerating edges explicitly would be
//     wasteful; Grid computes neighbors on demand from coordinates instead.
//
// Complexity:
//
//   - Neighbors: O(1) (at most 8 candidate offsets).
//   - UpdateWeight / SetWeights: O(1) / O(N).
//
// Errors:
//
//   - Wrapped pathgraph.DomainError for out-of-range vertex ids, invalid
//     weights (not >= 0 and not the -1 obstacle sentinel), mismatched
//     SetWeights length, or an invalid DiagonalPolicy/PauseCostType value.
//
// Mutation and resumable search:
//
//	UpdateWeight and SetWeights bump an internal generation counter. Any
//	search.ResumableBFS / search.ResumableDijkstra built against a Grid
//	checks this counter and returns pathgraph.ErrGraphMutated rather than
//	silently answering from stale state: weight changes invalidate any
//	outstanding resumable-search instance.
package grid
