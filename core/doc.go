// Package core provides the small, thread-safe, dense-id Graph that every
// algorithm in wgraph consumes.
//
// The Graph G = (V,E) has V = {0, 1, ..., n-1}, fixed when the graph is
// created, and an append-only list of weighted edges:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Self-loops (WithLoops); rejected with ErrLoopNotAllowed otherwise
//   - Parallel edges are always kept, so callers can model multigraphs
//   - Weights are float64; NaN is rejected with ErrBadWeight
//
// Why dense ids?
//
//   - Distance tables, parent arrays and disjoint sets become plain slices.
//   - Referencing a vertex outside [0, n) is always a caller error, caught at
//     AddEdge time (ErrVertexOutOfRange) instead of deep inside an algorithm.
//
// Core Methods:
//
//	NewGraph(n int, opts ...GraphOption) *Graph              // O(n)
//	NewFromEdges(n int, edges []Edge, opts ...) (*Graph, error) // O(n+E)
//	AddEdge(from, to int, weight float64) error              // O(1) amortized
//	Neighbors(u int) ([]Edge, error)                         // O(deg(u)), oriented out of u
//	Edges() []Edge                                           // O(E), insertion order
//	VertexCount() int / EdgeCount() int
//	HasVertex(v int) bool / Directed() bool / Looped() bool
//
// Concurrency: one sync.RWMutex guards the edge list and adjacency, so any
// number of algorithms may read the same Graph in parallel.
package core
