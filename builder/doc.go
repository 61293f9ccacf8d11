// SPDX-License-Identifier: MIT
// Package builder provides deterministic graph constructors for tests,
// examples and benchmarks.
//
// One orchestrator, BuildGraph(n, gopts, bopts, cons...), creates a
// core.Graph over n vertices and applies constructors in order. Every
// constructor spans all n vertices of the graph it receives:
//
//	Path()           – i — i+1 for i = 0..n-2
//	Cycle()          – Path plus n-1 — 0 (n ≥ 3)
//	Complete()       – every unordered pair (i<j); every ordered pair if directed
//	RandomSparse(p)  – each admissible pair independently with probability p
//	RandomTree()     – vertex i>0 joins a uniformly chosen earlier vertex
//
// Determinism: same n, options, seed and constructor order ⇒ identical
// edge lists. Stochastic constructors require WithSeed or WithRand.
//
// Weights come from the configured WeightFn (default: constant 1).
// IntWeightFn yields integral weights so that sums are exact in float64,
// which keeps cross-algorithm total comparisons free of rounding noise.
package builder
