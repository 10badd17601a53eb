// Package graphx provides Graph, an explicit weighted directed or
// undirected edge list implementing pathgraph.AbsGraph, with optional
// per-vertex coordinates for an admissible A* heuristic.
package graphx
