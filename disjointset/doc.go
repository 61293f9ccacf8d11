// Package disjointset provides a fixed-size disjoint-set (union-find) forest
// over the elements 0..n-1.
//
// What & Why
//
//   - A DisjointSet tracks a partition of n elements into non-overlapping
//     groups and answers "are x and y in the same group?" in near-constant
//     amortized time.
//   - It is the building block of Kruskal's MST (prim_kruskal.Kruskal), of
//     undirected cycle detection, and of connectivity bookkeeping in general.
//
// Guarantees
//
//   - Find uses two-pass path compression: the first pass walks to the root,
//     the second re-points every visited element directly at it. The walk is
//     iterative, so adversarial chains cannot exhaust the goroutine stack.
//   - Union uses union by rank. When both roots have equal rank the root of y
//     is attached under the root of x and x's root rank grows by one, so the
//     resulting forest is reproducible for a given sequence of calls.
//   - Together the two optimizations give the inverse-Ackermann amortized
//     bound O(α(n)) per operation.
//   - Count starts at n and drops by exactly one per successful Union.
//
// Preconditions
//
//   - New(n) panics for n < 0.
//   - Find, Union and Connected panic with an error wrapping ErrOutOfRange when
//     an element lies outside [0, n). Out-of-range elements are caller bugs,
//     not runtime conditions.
//
// Patterns
//
//	CountComponents(n, edges)          – number of connected components
//	RedundantConnection(n, edges)      – first edge that closes a cycle
//	MergeAccounts(accounts)            – merge accounts sharing an email
//	LongestConsecutive(nums)           – longest run of consecutive integers
package disjointset
