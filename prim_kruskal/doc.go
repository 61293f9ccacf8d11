// Package prim_kruskal provides two algorithms for computing the Minimum Spanning Tree (MST)
// of an undirected, weighted *core.Graph: Prim’s algorithm and Kruskal’s algorithm.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a subset T ⊆ E that
//     connects all vertices in V and whose total weight is minimal. T has exactly |V|−1 edges.
//
//   - Why MST matters: cost-efficient network design, clustering by cutting the heaviest tree
//     edges, and as a subroutine of approximation algorithms.
//
// Algorithms Provided
//
//   - Kruskal(g, opts...) ([]core.Edge, float64, error)
//     Sort all edges by weight (stable, so equal weights keep insertion order), then scan them,
//     accepting an edge whenever a disjointset.DisjointSet reports that it joins two components.
//     Stops once |V|−1 edges have been accepted.
//     Time O(E log E + α(V)·E), space O(V + E).
//
//   - Prim(g, root, opts...) ([]core.Edge, float64, error)
//     Grow one tree from root. A min-heap holds candidate edges (weight, vertex, parent); an
//     extracted edge whose vertex is already in the tree is stale and skipped.
//     Time O(E log V), space O(V + E).
//
//   - Compute(g, opts...) dispatches on WithMethod(MethodKruskal | MethodPrim) and WithRoot.
//
// Both algorithms return the same total weight on every connected input; they may pick
// different trees when weights tie.
//
// Patterns
//
//	MinCostConnectPoints(points)           – Manhattan complete graph, Prim from point 0
//	MinCostToSupplyWater(n, wells, pipes)  – virtual water-source vertex 0, Kruskal
//
// Error Conditions
//
//   - ErrInvalidGraph   – graph is nil or directed.
//   - ErrVertexNotFound – Prim root outside [0, n).
//   - ErrDisconnected   – |V| == 0, or no spanning tree covers every vertex.
//   - ErrUnknownMethod  – Compute with an unrecognized Method.
//
// A single-vertex graph yields an empty edge list and weight 0.
//
// For examples of usage, see the example_test.go file in this package.
package prim_kruskal
