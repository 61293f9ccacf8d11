// Package dfs declares the colours, errors, options and result table used by
// the depth-first walks in this package. Every per-vertex table is a slice
// of length VertexCount(), indexed by vertex id.
package dfs

import (
	"context"
	"errors"
)

// Colours kept per vertex by TopologicalSort.
const (
	White = iota // not reached
	Gray         // on the stack of open frames
	Black        // closed, every descendant finished
)

var (
	// ErrGraphNil is returned by DFS, TopologicalSort and HasCycle for a nil graph.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start vertex lies outside [0, n).
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrCycleDetected indicates a back edge into a Gray vertex.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrNotDirected indicates that TopologicalSort was given an undirected graph.
	ErrNotDirected = errors.New("dfs: graph is not directed")
)

// Option mutates DFSOptions before a walk starts.
type Option func(*DFSOptions)

// DFSOptions tunes a single DFS call. Hooks run synchronously on the
// walking goroutine; the walk stays O(V+E) as long as they are O(1).
type DFSOptions struct {
	// Ctx is checked each time a vertex is entered. Never nil after
	// DefaultOptions.
	Ctx context.Context

	// OnVisit runs when a vertex is entered, before its neighbors are read.
	// A non-nil error stops the walk and is returned from DFS as is.
	OnVisit func(v int) error

	// OnExit runs when a vertex's frame is popped, just before v is
	// appended to DFSResult.Order. A non-nil error stops the walk.
	OnExit func(v int) error

	// MaxDepth bounds the depth of entered vertices, inclusive. Negative
	// means unbounded; 0 enters only the root.
	MaxDepth int

	// FilterNeighbor vetoes descent into an unvisited neighbor v when it
	// returns false. Already-visited neighbors are never offered.
	FilterNeighbor func(v int) bool

	// FullTraversal restarts the walk from every vertex still unvisited,
	// in id order, after the start vertex's tree is finished.
	FullTraversal bool
}

// DefaultOptions is a single-tree walk with no hooks, no filter and no
// depth bound.
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the cancellation context; nil keeps Background.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs the entry hook.
func WithOnVisit(fn func(v int) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithOnExit installs the finish hook.
func WithOnExit(fn func(v int) error) Option {
	return func(o *DFSOptions) {
		o.OnExit = fn
	}
}

// WithMaxDepth sets MaxDepth.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor sets FilterNeighbor. Each veto increments
// DFSResult.SkippedNeighbors.
func WithFilterNeighbor(fn func(v int) bool) Option {
	return func(o *DFSOptions) {
		o.FilterNeighbor = fn
	}
}

// WithFullTraversal turns the walk into a forest walk over all of V.
func WithFullTraversal() Option {
	return func(o *DFSOptions) {
		o.FullTraversal = true
	}
}

// DFSResult holds per-vertex tables of length n.
//
// Order   – finished vertices, post-order; unvisited ids are absent.
// Depth   – tree depth of v below its root, -1 if v was never entered.
// Parent  – id that first entered v, -1 for tree roots and unentered ids.
// Visited – Visited[v] is true iff Depth[v] >= 0.
type DFSResult struct {
	Order   []int
	Depth   []int
	Parent  []int
	Visited []bool

	// SkippedNeighbors counts FilterNeighbor vetoes over every tree walked.
	SkippedNeighbors int
}
