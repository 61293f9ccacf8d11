// Package prim_kruskal defines configuration options and sentinel errors for MST computation.
// It supports selecting between Kruskal and Prim algorithms via MSTOptions.
package prim_kruskal

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/wgraph/core"
)

// ErrInvalidGraph indicates that MST algorithms require an undirected graph.
// Returned when graph is nil or directed.
var ErrInvalidGraph = errors.New("prim_kruskal: MST requires undirected graph")

// ErrDisconnected indicates that the graph is not fully connected, so a spanning
// tree covering all vertices cannot be formed. An empty graph is reported the same way.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrVertexNotFound indicates that the Prim root lies outside [0, n).
var ErrVertexNotFound = errors.New("prim_kruskal: root vertex not found")

// ErrUnknownMethod indicates a Method other than MethodPrim or MethodKruskal.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm to run, and for Prim, which starting vertex to use.
// Use DefaultOptions() to get a default setup (Kruskal, root 0).
//
// Fields:
//
//	Method   string       — one of MethodPrim or MethodKruskal.
//	Root     int          — start vertex for Prim; ignored when Method == MethodKruskal.
//	Observer Observer     — optional sink for Stats.
//	Logger   *slog.Logger — optional; receives one debug record per run.
//
// Complexity: O(E log V) for Prim, O(E log E + α(V)·E) for Kruskal.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting vertex for Prim's algorithm. Unused by Kruskal.
	Root int

	// Observer receives Stats after each successful or failed run.
	Observer Observer

	// Logger, if non-nil, receives a debug summary.
	Logger *slog.Logger
}

// Option configures MSTOptions. All Option functions should modify the pointed MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
// Allowed values: MethodPrim, MethodKruskal.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting vertex for Prim's algorithm; ignored by Kruskal.
func WithRoot(root int) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// WithObserver registers a Stats sink. A nil observer is ignored.
func WithObserver(obs Observer) Option {
	return func(opts *MSTOptions) {
		if obs != nil {
			opts.Observer = obs
		}
	}
}

// WithLogger registers a structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(opts *MSTOptions) {
		opts.Logger = l
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal by default:
//
//	– Method = MethodKruskal
//	– Root   = 0 (ignored by Kruskal).
//
// Complexity: O(1) to construct.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodKruskal,
		Root:   0,
	}
}

func buildOptions(opts []Option) MSTOptions {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// Stats counts the work done by one spanning-tree run.
//
// Considered – edges examined (Kruskal) or popped from the frontier (Prim).
// Accepted   – edges added to the tree.
// Rejected   – considered edges that would have closed a cycle, self-loops included.
type Stats struct {
	Considered int
	Accepted   int
	Rejected   int
}

// Observer receives the Stats of every spanning-tree run.
type Observer interface {
	ObserveSpanningTree(algorithm string, s Stats)
}

// report hands stats to the observer and the logger, if any.
func report(cfg MSTOptions, algorithm string, s Stats, total float64, err error) {
	if cfg.Observer != nil {
		cfg.Observer.ObserveSpanningTree(algorithm, s)
	}
	if cfg.Logger != nil {
		cfg.Logger.Debug("spanning tree finished",
			"algorithm", algorithm,
			"considered", s.Considered,
			"accepted", s.Accepted,
			"rejected", s.Rejected,
			"total", total,
			"error", err,
		)
	}
}

// Compute selects and runs the MST algorithm based on the Method option.
//
//	– MethodKruskal: calls Kruskal(graph, opts...).
//	– MethodPrim:    calls Prim(graph, Root, opts...).
//	– Otherwise:     returns ErrUnknownMethod.
//
// Returns:
//
//	[]core.Edge — edges of the MST (empty if graph has a single vertex).
//	float64     — total weight of the MST (zero if no edges).
//	error       — non-nil if computation cannot proceed.
func Compute(graph *core.Graph, opts ...Option) ([]core.Edge, float64, error) {
	cfg := buildOptions(opts)
	// Dispatch by method name
	switch cfg.Method {
	case MethodKruskal:
		return Kruskal(graph, opts...)
	case MethodPrim:
		return Prim(graph, cfg.Root, opts...)
	default:
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownMethod, cfg.Method)
	}
}

// validate performs the checks shared by both algorithms. trivial is true
// when the graph has exactly one vertex and the empty tree is the answer.
func validate(graph *core.Graph) (trivial bool, err error) {
	if graph == nil || graph.Directed() {
		return false, ErrInvalidGraph
	}
	switch graph.VertexCount() {
	case 0:
		return false, fmt.Errorf("%w: no vertices", ErrDisconnected)
	case 1:
		return true, nil
	}

	return false, nil
}
