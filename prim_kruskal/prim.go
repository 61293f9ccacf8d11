// Package prim_kruskal provides an implementation of Prim’s Minimum Spanning Tree (MST) algorithm.
// It assumes an undirected *core.Graph and grows the MST from a root vertex using a min‐heap.
package prim_kruskal

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/wgraph/core"
)

// Prim computes the Minimum Spanning Tree (MST) of an undirected graph
// by growing outwards from root using a min‐heap of candidate edges.
//
// Error Conditions:
//   - ErrInvalidGraph   : if graph is nil or graph.Directed() == true.
//   - ErrVertexNotFound : if root is outside [0, n).
//   - ErrDisconnected   : if |V| == 0 (empty graph) or |V| > 1 but the graph is not fully connected.
//
// Steps:
//  1. Validate graph and root.
//  2. Mark root as visited and push every edge leaving root.
//  3. While the heap is not empty and MST has < |V|-1 edges:
//     a. Pop the lightest edge (u→v); ties break on v, then u.
//     b. If v is already visited, skip (stale: it would form a cycle).
//     c. Otherwise, add (u→v) to the MST, mark v, and push its edges to unvisited neighbors.
//  4. If MST size < |V|-1 after the loop → ErrDisconnected.
//
// Returned edges are oriented parent→child.
// Complexity: O(E log V) time, O(V + E) memory.
func Prim(graph *core.Graph, root int, opts ...Option) ([]core.Edge, float64, error) {
	cfg := buildOptions(opts)

	// 1. Validate.
	trivial, err := validate(graph)
	if err != nil {
		return nil, 0, err
	}
	if !graph.HasVertex(root) {
		return nil, 0, fmt.Errorf("%w: %d", ErrVertexNotFound, root)
	}
	if trivial {
		return []core.Edge{}, 0, nil
	}

	// 2. Initialize visited set and MST container.
	var (
		n           = graph.VertexCount()
		visited     = make([]bool, n)
		mst         = make([]core.Edge, 0, n-1)
		pq          = &edgePQ{}
		totalWeight float64
		stats       Stats
	)
	visit := func(u int) error {
		visited[u] = true
		neighbors, err := graph.Neighbors(u)
		if err != nil {
			return err
		}
		for _, e := range neighbors {
			if !visited[e.To] {
				heap.Push(pq, e)
			}
		}
		return nil
	}
	if err = visit(root); err != nil {
		return nil, 0, err
	}

	// 3. Main loop.
	for pq.Len() > 0 && len(mst) < n-1 {
		e := heap.Pop(pq).(core.Edge)
		stats.Considered++
		if visited[e.To] {
			stats.Rejected++
			continue
		}
		mst = append(mst, e)
		totalWeight += e.Weight
		stats.Accepted++
		if err = visit(e.To); err != nil {
			return nil, 0, err
		}
	}

	// 4. Coverage check.
	if len(mst) < n-1 {
		err = fmt.Errorf("%w: %d of %d vertices reached from %d", ErrDisconnected, len(mst)+1, n, root)
		report(cfg, MethodPrim, stats, 0, err)
		return nil, 0, err
	}
	report(cfg, MethodPrim, stats, totalWeight, nil)

	return mst, totalWeight, nil
}

// edgePQ implements heap.Interface for a min‐heap of core.Edge, ordered by
// Weight, then by the vertex being added, then by its parent.
type edgePQ []core.Edge

// Len returns the number of edges in the priority queue.
func (pq edgePQ) Len() int { return len(pq) }

// Less orders by weight with deterministic tie-breaks.
func (pq edgePQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.Weight != b.Weight {
		return a.Weight < b.Weight
	}
	if a.To != b.To {
		return a.To < b.To
	}

	return a.From < b.From
}

// Swap swaps elements at indices i and j.
func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a new core.Edge to the heap. Called by heap.Push.
func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(core.Edge)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	edge := old[n-1]
	*pq = old[:n-1]

	return edge
}
