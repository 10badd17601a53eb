// Package search implements BFS, Dijkstra, and A* over pathgraph.AbsGraph,
// plus resumable BFS/Dijkstra variants that persist a frontier and distance
// table across repeated queries anchored at a fixed source.
//
// What:
//
//   - BFS: unweighted hop-count shortest path, FIFO frontier.
//   - Dijkstra: min-priority frontier keyed on tentative distance, lazy
//     decrease-key via heap re-push plus a settled set.
//   - AStar: min-priority on f = g + h, h from AbsGraph.EstimateDistance.
//   - ResumableBFS / ResumableDijkstra: anchor at start_node once, then
//     answer Distance/FindPath queries by expanding the frontier only as
//     far as each query requires, remembering prior work between calls.
//
// Why:
//
//   - All three one-shot engines share an expand-relax-repeat shape that
//     differs only in frontier ordering and edge weighting; factoring them
//     over the same AbsGraph interface keeps that shape written once.
//
// Common contract:
//
//	BFS, Dijkstra, and AStar (start, goal) return an empty path iff no path
//	exists.
//	start == goal returns the singleton [start]. The returned path begins
//	with start and ends with goal. Expansion order is deterministic given
//	the graph, start, and goal (lower distance first, ties broken by
//	ascending vertex id), a required property for reproducible tests.
//
// Errors:
//
//   - Wrapped pathgraph.DomainError for out-of-range start/goal vertices.
//   - pathgraph.TimeoutError when a caller-supplied expansion budget
//     (WithExpansionBudget) is exhausted before the search concludes.
package search
