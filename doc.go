// Package wayfarer is a single-agent and reservation-aware pathfinding
// core: uniform graph/grid abstractions, BFS/Dijkstra/A*, resumable
// variants anchored at a fixed source, and a space-time A* that plans
// against a shared reservation table.
//
// Under the hood, everything is organized under focused subpackages:
//
//	pathgraph/    - the AbsGraph contract every engine searches over, plus
//	                free functions (CalculateCost, FindComponents, FindSCC)
//	                shared by every concrete graph type
//	graphx/       - explicit weighted edge-list graphs, with optional
//	                vertex coordinates for an admissible heuristic
//	grid/         - implicit 2D weighted grids: obstacles, border wrap,
//	                diagonal-movement policy
//	reservation/  - time-indexed vertex/edge occupancy and additive
//	                weights, the structure a MAPF coordinator populates
//	                and space-time A* consults
//	search/       - BFS, Dijkstra, A*, and their resumable counterparts
//	spacetime/    - A* over the (vertex, time) product state space,
//	                respecting a reservation.Table
//
// This core owns no coordinator logic (conflict-based search, WHCA*, and
// similar belong one layer up); it exposes the primitives such a
// coordinator composes.
package wayfarer
