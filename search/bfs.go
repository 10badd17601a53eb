package search

import (
	"github.com/wayfarer-go/wayfarer/pathgraph"
)

// BFS returns any shortest-hop path from start to goal, treating g as
// unweighted. Appropriate only when the caller does not care about edge
// cost.
func BFS(g pathgraph.AbsGraph, start, goal pathgraph.Vertex, opts ...Option) ([]pathgraph.Vertex, error) {
	o := buildOptions(opts...)

	n := g.Size()
	if start < 0 || start >= n {
		return nil, pathgraph.NewDomainError("BFS", ErrStartOutOfRange)
	}
	if goal < 0 || goal >= n {
		return nil, pathgraph.NewDomainError("BFS", ErrGoalOutOfRange)
	}
	if start == goal {
		return []pathgraph.Vertex{start}, nil
	}

	parent := make(map[pathgraph.Vertex]pathgraph.Vertex, n)
	visited := make(map[pathgraph.Vertex]bool, n)
	queue := []pathgraph.Vertex{start}
	visited[start] = true

	expansions := 0
	for len(queue) > 0 {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		if o.ExpansionBudget > 0 && expansions >= o.ExpansionBudget {
			return nil, &pathgraph.TimeoutError{Op: "BFS", Budget: o.ExpansionBudget}
		}
		expansions++

		u := queue[0]
		queue = queue[1:]

		neighbors, err := g.Neighbors(u, false)
		if err != nil {
			return nil, err
		}
		for _, nb := range neighbors {
			if visited[nb.To] {
				continue
			}
			visited[nb.To] = true
			parent[nb.To] = u
			if nb.To == goal {
				return reconstruct(parent, start, goal), nil
			}
			queue = append(queue, nb.To)
		}
	}

	return nil, nil
}

// reconstruct walks parent links from goal back to start and reverses the
// result.
func reconstruct(parent map[pathgraph.Vertex]pathgraph.Vertex, start, goal pathgraph.Vertex) []pathgraph.Vertex {
	path := []pathgraph.Vertex{goal}
	for path[len(path)-1] != start {
		path = append(path, parent[path[len(path)-1]])
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
