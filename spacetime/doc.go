// Package spacetime implements A* search over the product state space
// (vertex, time), respecting a reservation.Table of other agents'
// committed occupancy. This is the search primitive multi-agent pathfinding
// coordinators (conflict-based search, WHCA*, and similar) compose with
// their own conflict resolution; this package implements only the single-
// agent query, not the coordinator.
//
// What:
//
//   - State: (v, t). Successors from (v, t): one candidate (u, t+1) per
//     graph neighbor (u, c) of v, cost c + rt.AdditionalWeight(t+1, u),
//     blocked if rt.IsReserved(t+1, u) or rt.IsEdgeReserved(t+1, v, u); plus
//     a pause candidate (v, t+1) costing g.PauseCost(v) +
//     rt.AdditionalWeight(t+1, v), blocked if rt.IsReserved(t+1, v).
//   - Heuristic: h(v) = g.EstimateDistance(v, goal).
//   - Three query shapes: FindPathWithDepthLimit, FindPathWithExactLength,
//     FindPathWithLengthLimit.
//
// Why:
//
//   - Treating time as a first-class state dimension is the standard way to
//     let a single-agent search respect a growing set of per-timestep
//     reservations without baking conflict resolution into the search
//     itself.
//
// Goal semantics:
//
//	Reaching goal at t* is not automatically terminal: if
//	rt.LastTimeReserved(goal) >= t*, the agent must keep moving until it
//	finds a time at which settling at goal is safe. FindPathWithExactLength
//	is the exception: its horizon is fixed, so it accepts goal at exactly
//	the requested length regardless of settling safety.
//
// Tie-breaking:
//
//	Lower f = g + h first, then lower h (favoring deeper progress), then
//	deterministic ordering by (v, t).
//
// Errors:
//
//   - Wrapped pathgraph.DomainError for out-of-range start/goal or a
//     non-positive limit.
//   - pathgraph.TimeoutError when a caller-supplied expansion budget is
//     exceeded.
package spacetime
