// Package prim_kruskal provides an implementation of Kruskal’s Minimum Spanning Tree algorithm.
// It assumes an undirected *core.Graph and produces a slice of edges forming the MST.
package prim_kruskal

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/disjointset"
)

// Kruskal computes the Minimum Spanning Tree (MST) of an undirected graph.
// It consumes a disjointset.DisjointSet (path compression and union by rank).
//
// Error Conditions:
//   - ErrInvalidGraph : if graph is nil or graph.Directed() == true.
//   - ErrDisconnected : if |V| == 0, or |V| > 1 but the graph is not fully connected.
//
// Steps:
//  1. Validate; a single vertex yields the empty tree with weight 0.
//  2. Collect all edges via graph.Edges() in insertion order.
//  3. Sort edges by ascending Weight (sort.SliceStable keeps insertion order for equal weights).
//  4. For each edge (u,v): skip self-loops; if Union(u,v) succeeds, include the edge.
//  5. Once the MST has |V|-1 edges, break. Fewer after the scan → ErrDisconnected.
//
// Complexity: O(E log E + α(V)·E) ≈ O(E log V). Memory: O(E + V).
func Kruskal(graph *core.Graph, opts ...Option) ([]core.Edge, float64, error) {
	cfg := buildOptions(opts)

	// 1. Validate.
	trivial, err := validate(graph)
	if err != nil {
		return nil, 0, err
	}
	if trivial {
		return []core.Edge{}, 0, nil
	}

	// 2-3. Stable sort by weight.
	edges := graph.Edges()
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// 4. Scan.
	var (
		n           = graph.VertexCount()
		ds          = disjointset.New(n)
		mst         = make([]core.Edge, 0, n-1)
		totalWeight float64
		stats       Stats
	)
	for _, e := range edges {
		stats.Considered++
		// Self-loops never join two components.
		if e.From == e.To || !ds.Union(e.From, e.To) {
			stats.Rejected++
			continue
		}
		mst = append(mst, e)
		totalWeight += e.Weight
		stats.Accepted++
		// 5. Spanning tree complete.
		if len(mst) == n-1 {
			break
		}
	}

	if len(mst) < n-1 {
		err = fmt.Errorf("%w: %d components remain", ErrDisconnected, ds.Count())
		report(cfg, MethodKruskal, stats, 0, err)
		return nil, 0, err
	}
	report(cfg, MethodKruskal, stats, totalWeight, nil)

	return mst, totalWeight, nil
}
