// File: methods.go
// Role: Edge insertion and read-only queries over a Graph.
// Determinism:
//   - Edges() returns edges in insertion order.
//   - Neighbors(u) returns incident edges in insertion order, oriented out of u.
// Concurrency:
//   - AddEdge takes the write lock; every query takes the read lock.

package core

import (
	"fmt"
	"math"
)

// AddEdge inserts an edge between from and to.
//
// Steps:
//  1. Validate both endpoints lie in [0, n) (ErrVertexOutOfRange).
//  2. Reject NaN weights (ErrBadWeight) and self-loops unless WithLoops (ErrLoopNotAllowed).
//  3. Append the edge and link it into adjacency[from]; mirror into adjacency[to]
//     unless the graph is directed or the edge is a loop.
//
// Parallel edges are kept; algorithms simply see both.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int, weight float64) error {
	if from < 0 || from >= g.n || to < 0 || to >= g.n {
		return fmt.Errorf("%w: edge %d→%d with %d vertices", ErrVertexOutOfRange, from, to, g.n)
	}
	if math.IsNaN(weight) {
		return fmt.Errorf("%w: edge %d→%d weight is NaN", ErrBadWeight, from, to)
	}
	if from == to && !g.allowLoops {
		return ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	idx := len(g.edges)
	g.edges = append(g.edges, Edge{From: from, To: to, Weight: weight})
	g.adjacency[from] = append(g.adjacency[from], idx)
	if !g.directed && from != to {
		g.adjacency[to] = append(g.adjacency[to], idx)
	}

	return nil
}

// Neighbors returns every edge leaving u, oriented so that From == u.
// Undirected edges stored as (v,u) are flipped to (u,v).
// Complexity: O(deg(u)).
func (g *Graph) Neighbors(u int) ([]Edge, error) {
	if !g.HasVertex(u) {
		return nil, fmt.Errorf("%w: %d", ErrVertexOutOfRange, u)
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, len(g.adjacency[u]))
	var e Edge
	for _, idx := range g.adjacency[u] {
		e = g.edges[idx]
		if e.From != u {
			e.From, e.To = e.To, e.From
		}
		out = append(out, e)
	}

	return out, nil
}

// Edges returns a copy of all edges in insertion order.
// Undirected edges appear once, in the orientation they were added.
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// VertexCount returns n.
func (g *Graph) VertexCount() int { return g.n }

// EdgeCount returns the number of stored edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// HasVertex reports whether v is a valid vertex id.
func (g *Graph) HasVertex(v int) bool { return v >= 0 && v < g.n }

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool { return g.allowLoops }
