// Package bfs implements breadth-first search and the queue-driven graph
// patterns built on it.
//
// What:
//
//   - BFS(g, start, opts...): hop distances, BFS-tree parents and visit
//     order from one start vertex; Result.PathTo rebuilds fewest-hop paths.
//     Hooks (OnEnqueue, OnDequeue, OnVisit), MaxDepth, FilterNeighbor and
//     context cancellation are configured with functional options.
//   - TopologicalOrder(g): Kahn's algorithm over in-degrees.
//   - CourseOrder(n, prerequisites): course schedule as a Kahn ordering.
//   - AlienOrder(words): letter order implied by a sorted dictionary.
//
// Determinism: neighbors are scanned in edge insertion order and Kahn's
// initial queue is filled in increasing vertex id order.
//
// Errors:
//
//   - ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation for bad input.
//   - ErrUnreachable from PathTo.
//   - ErrNotDirected, ErrCycleDetected from TopologicalOrder and CourseOrder.
//   - ErrInvalidOrdering from AlienOrder.
//
// Complexity: O(V + E) time and O(V) extra memory for every function.
package bfs
