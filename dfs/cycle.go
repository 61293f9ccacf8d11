package dfs

import (
	"errors"

	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/disjointset"
)

// HasCycle reports whether g contains a cycle.
//
// Directed graphs are checked for a back edge with three-colour DFS.
// Undirected graphs are checked with a disjoint set: an edge whose endpoints
// are already connected closes a cycle. Self-loops and parallel edges count
// as cycles in both modes.
//
// Complexity: O(V + E).
func HasCycle(g *core.Graph) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}

	if !g.Directed() {
		ds := disjointset.New(g.VertexCount())
		for _, e := range g.Edges() {
			if !ds.Union(e.From, e.To) {
				return true, nil
			}
		}
		return false, nil
	}

	_, err := TopologicalSort(g)
	switch {
	case err == nil:
		return false, nil
	case errors.Is(err, ErrCycleDetected):
		return true, nil
	default:
		return false, err
	}
}
