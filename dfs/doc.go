// Package dfs implements depth‑first search traversal, cycle detection,
// and topological sort on a core.Graph.
//
// What:
//
//   - DFS: explores as far as possible along each branch before
//     backtracking. Supports pre‑ and post‑order hooks, cancellation via
//     context.Context, depth limiting, neighbor filtering and forest mode.
//   - TopologicalSort: linear ordering of a directed acyclic graph by
//     reverse post‑order, returning ErrCycleDetected if a back edge exists.
//   - HasCycle: back‑edge detection on directed graphs, union‑find on
//     undirected graphs.
//
// Why:
//   - Determine safe execution orders in dependency graphs
//   - Detect cycles to prevent infinite loops or inconsistent states
//
// Key Types & Constants:
//
//   - White, Gray, Black (visitation markers)
//   - Option / DFSOptions: Context, hooks, MaxDepth, FilterNeighbor, FullTraversal
//   - DFSResult: post‑order, Depth, Parent, Visited slices indexed by vertex
//
// Complexity:
//
//   - DFS:             Time O(V+E), Memory O(V)
//   - TopologicalSort: Time O(V+E), Memory O(V)
//   - HasCycle:        Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start vertex outside [0, n)
//   - ErrNotDirected          TopologicalSort on an undirected graph
//   - ErrCycleDetected        cycle discovered by TopologicalSort
//   - context.Canceled        traversal canceled via context
//   - hook errors             propagated from OnVisit or OnExit
package dfs
