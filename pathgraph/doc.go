// Package pathgraph defines the capability set shared by every graph-like
// search target in wayfarer: dense integer vertex ids, ordered neighbor
// enumeration, an admissible heuristic hook, and the component/SCC analysis
// every concrete graph gets "for free" by implementing AbsGraph.
//
// What:
//
//   - AbsGraph: the minimal interface search engines depend on. Concrete
//     graphs (graphx.Graph, grid.Grid) implement it; search engines never
//     type-switch on the concrete type.
//   - CalculateCost / IsValidPath: generic helpers implemented once against
//     AbsGraph, so concrete graphs delegate instead of duplicating the logic.
//   - FindComponents / FindSCC: connected-component and strongly-connected-
//     component analysis, likewise implemented once against AbsGraph.
//   - DomainError / TimeoutError: the two non-recoverable error kinds every
//     engine in this module surfaces; "no path" is never one of them (it is
//     signaled by returning a nil/empty path).
//
// Why:
//
//   - Search engines are written once against AbsGraph and run unchanged
//     over explicit graphs and grids alike.
//   - Keeping CalculateCost/IsValidPath/FindComponents/FindSCC as free
//     functions (not per-type methods) means every AbsGraph implementation
//     gets them automatically, matching this module's "avoid duplicating the
//     hot-path contract across concrete graph types" design choice.
//
// Determinism:
//
//	Vertex ids are dense non-negative integers assigned at construction time
//	by the concrete graph; AbsGraph implementations must return Neighbors in
//	a stable order across calls so that search engines relying on visitation
//	order (BFS, the tie-breaking rules in search and spacetime) are
//	reproducible.
package pathgraph
