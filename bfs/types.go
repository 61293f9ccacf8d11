// Package bfs declares the options, errors and result tables shared by the
// breadth-first searches and Kahn orderings in this package.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Errors returned by BFS, PathTo and the orderings.
var (
	// ErrStartVertexNotFound is returned when the start vertex is outside [0, n).
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned for a nil *core.Graph.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation reports an Option given an out-of-range value.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrUnreachable is returned by PathTo for a vertex the search never reached.
	ErrUnreachable = errors.New("bfs: vertex not reached")

	// ErrNotDirected is returned by TopologicalOrder on an undirected graph.
	ErrNotDirected = errors.New("bfs: graph is not directed")

	// ErrCycleDetected is returned by TopologicalOrder and CourseOrder when
	// some vertices never reach in-degree zero.
	ErrCycleDetected = errors.New("bfs: cycle detected")

	// ErrInvalidOrdering is returned by AlienOrder when the word list
	// contradicts itself or places a word before its own prefix.
	ErrInvalidOrdering = errors.New("bfs: inconsistent word ordering")
)

// Option mutates BFSOptions. A bad value is remembered and reported by BFS
// as ErrOptionViolation instead of panicking.
type Option func(*BFSOptions)

// BFSOptions tunes a single BFS call. Every hook receives the vertex id and
// its hop depth from the start; hooks are never nil after DefaultOptions.
type BFSOptions struct {
	// Ctx is polled once per dequeued vertex.
	Ctx context.Context

	// OnEnqueue fires when v is first discovered and its Depth/Parent
	// entries are written.
	OnEnqueue func(v int, depth int)

	// OnDequeue fires when v leaves the queue, before it joins Order.
	OnDequeue func(v int, depth int)

	// OnVisit fires after v joins Order. A non-nil error stops the search
	// and is returned wrapped with v.
	OnVisit func(v int, depth int) error

	// MaxDepth is the deepest hop count that may be discovered, inclusive.
	// 0 means unbounded.
	MaxDepth int

	// FilterNeighbor is asked about every edge curr→neighbor before the
	// neighbor is discovered; false leaves it undiscovered through that edge.
	FilterNeighbor func(curr, neighbor int) bool

	err error
}

// DefaultOptions is an unbounded search with no-op hooks and no filter.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:            context.Background(),
		OnEnqueue:      func(int, int) {},
		OnDequeue:      func(int, int) {},
		OnVisit:        func(int, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(_, _ int) bool { return true },
	}
}

// WithContext sets the cancellation context; nil keeps Background.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue sets OnEnqueue; nil is ignored.
func WithOnEnqueue(fn func(v int, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue sets OnDequeue; nil is ignored.
func WithOnDequeue(fn func(v int, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit sets OnVisit; nil is ignored.
func WithOnVisit(fn func(v int, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth sets MaxDepth. A negative d is reported as ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterNeighbor sets FilterNeighbor; nil is ignored.
func WithFilterNeighbor(fn func(curr, neighbor int) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// BFSResult holds per-vertex tables of length n for one search.
//
// Order lists discovered vertices in nondecreasing Depth. Depth[v] is the
// hop count from Start, -1 if v was never discovered. Parent[v] is the
// vertex that discovered v, -1 for Start and for undiscovered ids.
type BFSResult struct {
	Start  int
	Order  []int
	Depth  []int
	Parent []int
}

// PathTo reconstructs the fewest-hop path from the start vertex to dest.
// Returns ErrUnreachable if dest was not reached.
func (r *BFSResult) PathTo(dest int) ([]int, error) {
	if dest < 0 || dest >= len(r.Depth) || r.Depth[dest] < 0 {
		return nil, fmt.Errorf("%w: %d", ErrUnreachable, dest)
	}
	// build reversed path
	path := make([]int, 0, r.Depth[dest]+1)
	for cur := dest; cur != -1; cur = r.Parent[cur] {
		path = append(path, cur)
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
