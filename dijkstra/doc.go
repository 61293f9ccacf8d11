// Package dijkstra provides a generic priority-frontier search and the
// Dijkstra family built on it: shortest paths, maximum-probability paths and
// resource-constrained shortest paths.
//
// Overview:
//
//   - Search[W] computes, from one source, the best value of every reachable
//     vertex under a monotone Metric[W]: a start value, an Extend rule for
//     appending an edge, and a strict Better comparison.
//   - Additive() is classic Dijkstra (non-negative weights, sum, minimum).
//   - Multiplicative() maximizes the product of edge probabilities in [0, 1].
//   - HopCount() minimizes the number of edges and ignores weights.
//
// The frontier has no decrease-key. Each strict improvement pushes a fresh
// (value, vertex) entry; the old entry stays in the heap and is recognized as
// stale when popped, by comparing it with the distance table. Stats.Stale
// counts those skips.
//
// Entry points:
//
//	Dijkstra(g, source, opts...)                   – all destinations (+Inf if unreachable)
//	ShortestPath(g, source, target, opts...)       – early exit, path and cost
//	NetworkDelay(g, source, opts...)               – largest shortest distance
//	MaxProbability(g, source, target, opts...)     – best product of probabilities
//	CheapestWithinStops(g, source, target, k, ...) – at most k intermediate stops
//	GridShortestPath(grid, k, opts...)             – unit grid, eliminate ≤ k obstacles
//
// Error handling:
//
//   - Precondition violations (nil graph, vertex out of range, negative weight,
//     negative budget, malformed grid) return sentinel errors before any work.
//   - Unreachable destinations return ErrUnreachable; Dijkstra itself reports
//     them as +Inf entries instead.
//   - Stale frontier entries are routine and never surface as errors.
//
// Complexity:
//
//   - Time:  O((V + E) log V) for Search; constrained variants multiply V and
//     E by the number of resource levels.
//   - Space: O(V + E) under lazy decrease-key.
//
// Concurrency: each call owns its distance table and frontier, so searches
// from different sources may run in parallel over one *core.Graph.
package dijkstra
