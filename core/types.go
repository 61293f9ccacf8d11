// Package core defines the dense-id Graph and Edge types shared by every
// algorithm package, and the sentinel errors raised while building a graph.
//
// Vertices are the integers 0..n-1, fixed at construction. Edges carry a
// float64 weight. The graph is undirected unless constructed WithDirected(true).
//
// Errors:
//
//	ErrVertexOutOfRange - an endpoint is outside [0, n).
//	ErrBadWeight        - the weight is NaN.
//	ErrLoopNotAllowed   - self-loop when loops are disabled.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexOutOfRange indicates an edge endpoint outside [0, VertexCount()).
	ErrVertexOutOfRange = errors.New("core: vertex out of range")

	// ErrBadWeight indicates a weight that cannot be ordered (NaN).
	ErrBadWeight = errors.New("core: bad edge weight")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Edge connects From to To with the given Weight.
//
// For undirected graphs the stored orientation is the one given to AddEdge;
// Neighbors re-orients edges so that From is always the queried vertex.
type Edge struct {
	// From is the source vertex.
	From int

	// To is the destination vertex.
	To int

	// Weight is the cost (or probability, or capacity) of the edge.
	Weight float64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets whether edges are one-way (true) or bidirectional (false).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is an in-memory graph over the vertices 0..n-1.
//
// edges keeps insertion order; adjacency[v] lists indices into edges for
// every edge leaving v (both endpoints for undirected edges).
// mu guards edges and adjacency so that concurrent readers may share a graph
// while another goroutine appends edges.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags
	directed   bool
	allowLoops bool

	// Storage
	n         int
	edges     []Edge
	adjacency [][]int
}

// NewGraph creates a Graph with n isolated vertices.
// By default, Graph is undirected and rejects self-loops.
// A negative n is a programming error and panics.
// Complexity: O(n)
func NewGraph(n int, opts ...GraphOption) *Graph {
	if n < 0 {
		panic("core: negative vertex count")
	}
	g := &Graph{
		n:         n,
		adjacency: make([][]int, n),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// NewFromEdges builds a Graph with n vertices and adds edges in order.
// The first failing edge aborts construction and its error is returned.
func NewFromEdges(n int, edges []Edge, opts ...GraphOption) (*Graph, error) {
	g := NewGraph(n, opts...)
	for _, e := range edges {
		if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, err
		}
	}

	return g, nil
}
