// Package wgraph is an in-memory toolkit of weighted-graph algorithms over
// dense integer vertex ids.
//
// What is in the box?
//
//	A small, thread-safe graph container and the algorithms built on it:
//		• Union–find: DisjointSet with path compression and union by rank
//		• Shortest paths: one generic priority-frontier engine behind Dijkstra,
//		  maximum-probability paths and resource-constrained searches
//		• Minimum spanning trees: Kruskal and Prim
//		• Traversals: BFS, DFS, topological orders, cycle detection
//
// Why dense ids?
//
//   - Distance tables, parents and disjoint sets are plain slices
//   - Every vertex is validated once, when its edge is added
//
// Packages:
//
//	core/         — Graph and Edge, the container every algorithm reads
//	disjointset/  — DisjointSet plus connectivity patterns
//	dijkstra/     — Search[W] with Additive, Multiplicative and HopCount metrics
//	prim_kruskal/ — Kruskal, Prim and MST-based patterns
//	bfs/, dfs/    — traversals and ordering
//	builder/      — deterministic graph constructors for tests and benchmarks
//	instrument/   — Prometheus collectors for search and MST statistics
//
// Quick Start:
//
//	g := core.NewGraph(3)
//	_ = g.AddEdge(0, 1, 1)
//	_ = g.AddEdge(1, 2, 2)
//	res, _ := dijkstra.Dijkstra(g, 0)
//	fmt.Println(res.Dist) // [0 1 3]
//
// Every algorithm is synchronous, owns its working state, and may run
// concurrently with others over one *core.Graph.
package wgraph
