// Package reservation implements Table, a time-indexed store of vertex and
// edge occupancy plus additive per-(time, vertex) weights, shared by MAPF
// coordinators and consumed by spacetime.FindPathWithDepthLimit and its
// siblings.
//
// What:
//
//   - Vertex reservations: the set of (time, vertex) pairs an agent
//     occupies.
//   - Edge reservations: directional (time, from, to) constraints that
//     block a head-on swap between two agents crossing the same edge in
//     opposite directions during the same time step.
//   - Additional weights: an additive real >= 0 charged on top of the
//     graph's own edge cost when a search expands (time, vertex).
//
// Why:
//
//   - Space-time A* needs a uniform way to ask "is this (vertex, time) or
//     this (from, to, time) transition available" without knowing how many
//     other agents have already committed paths through the same space.
//
// Invariant:
//
//	Reservation operations are monotonic within a planning episode: nothing
//	in the core API removes a reservation. A coordinator that needs to
//	revise a plan builds a fresh Table for the next episode.
package reservation
