package bfs

import (
	"fmt"

	"github.com/katalvlaran/wgraph/core"
)

// TopologicalOrder returns a topological order of a directed graph using
// Kahn's algorithm: repeatedly emit a vertex of in-degree zero.
//
// Vertices that start with in-degree zero are queued in increasing id
// order and successors in edge insertion order, so the result is
// deterministic. If some vertex is never emitted the graph has a cycle and
// ErrCycleDetected is returned. Parallel edges and self-loops are counted
// like any other edge; a self-loop is therefore a cycle.
//
// Complexity: O(V + E).
func TopologicalOrder(g *core.Graph) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrNotDirected
	}

	n := g.VertexCount()
	indeg := make([]int, n)
	for _, e := range g.Edges() {
		indeg[e.To]++
	}

	queue := make([]int, 0, n)
	for v := 0; v < n; v++ {
		if indeg[v] == 0 {
			queue = append(queue, v)
		}
	}
	for head := 0; head < len(queue); head++ {
		u := queue[head]
		nbs, err := g.Neighbors(u)
		if err != nil {
			return nil, fmt.Errorf("bfs: failed to get neighbors of %d: %w", u, err)
		}
		for _, e := range nbs {
			indeg[e.To]--
			if indeg[e.To] == 0 {
				queue = append(queue, e.To)
			}
		}
	}

	if len(queue) < n {
		return nil, fmt.Errorf("%w: %d of %d vertices ordered", ErrCycleDetected, len(queue), n)
	}

	return queue, nil
}

// CourseOrder returns an order in which to take courses 0..n-1 so that each
// pair [course, prerequisite] is honoured (the prerequisite comes first).
// It returns ErrCycleDetected if no such order exists.
func CourseOrder(n int, prerequisites [][2]int) ([]int, error) {
	g := core.NewGraph(n, core.WithDirected(true), core.WithLoops())
	for _, p := range prerequisites {
		if err := g.AddEdge(p[1], p[0], 0); err != nil {
			return nil, fmt.Errorf("bfs: prerequisite %v: %w", p, err)
		}
	}

	return TopologicalOrder(g)
}
