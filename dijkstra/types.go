// Package dijkstra defines the sentinel errors, functional options, result
// type and statistics shared by every search in this package.
//
// Options:
//
//	– WithTarget:           stop as soon as the target vertex is settled.
//	– WithReturnPath:       record predecessors so Result.PathTo works.
//	– WithMaxDistance:      additive searches do not expand beyond this cost.
//	– WithInfEdgeThreshold: edges with weight ≥ threshold are impassable.
//	– WithObserver:         receive Stats after each search.
//	– WithLogger:           receive a debug record after each search.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrVertexNotFound  if the source or target is outside [0, n).
//	– ErrNegativeWeight  if an additive search meets a negative edge weight.
//	– ErrBadProbability  if a multiplicative search meets a weight outside [0, 1].
//	– ErrBadMetric       if a Metric lacks Extend or Better.
//	– ErrUnreachable     if the requested destination cannot be reached.
//	– ErrNoPath          if PathTo is called on a result without predecessors.
//	– ErrBadResource     if a resource budget (stops, eliminations) is negative.
//	– ErrInvalidGrid     if a grid is empty, ragged, or holds values other than 0/1.
package dijkstra

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
)

// Sentinel errors returned by the searches in this package.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source or target lies outside [0, n).
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected.
	// Additive searches are undefined on such graphs, so none is attempted.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadProbability indicates an edge probability outside [0, 1].
	ErrBadProbability = errors.New("dijkstra: edge probability outside [0,1]")

	// ErrBadMetric indicates a Metric without Extend or Better.
	ErrBadMetric = errors.New("dijkstra: metric must define Extend and Better")

	// ErrUnreachable indicates the destination is not reachable from the source.
	ErrUnreachable = errors.New("dijkstra: destination unreachable")

	// ErrNoPath indicates predecessors were not recorded (see WithReturnPath).
	ErrNoPath = errors.New("dijkstra: predecessors not recorded")

	// ErrBadResource indicates a negative resource budget.
	ErrBadResource = errors.New("dijkstra: resource budget must be non-negative")

	// ErrInvalidGrid indicates an empty or ragged grid, or a cell not in {0, 1}.
	ErrInvalidGrid = errors.New("dijkstra: invalid grid")

	// ErrBadMaxDistance is the panic message for a negative or NaN MaxDistance.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold is the panic message for a non-positive InfEdgeThreshold.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// NoTarget means "settle every reachable vertex".
const NoTarget = -1

// Options configures a search.
//
// Target           – vertex that ends the search once settled, or NoTarget.
// ReturnPath       – if true, Result.Prev is filled; otherwise it is nil.
// MaxDistance      – cap on explored cost for metrics that define Beyond.
// InfEdgeThreshold – edges with weight ≥ threshold are never traversed.
// Observer         – optional sink for Stats.
// Logger           – optional structured logger; nil keeps the search silent.
type Options struct {
	Target           int
	ReturnPath       bool
	MaxDistance      float64
	InfEdgeThreshold float64
	Observer         Observer
	Logger           *slog.Logger
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// DefaultOptions returns Options with no target, no predecessors, no distance
// cap and no impassable edges.
func DefaultOptions() Options {
	return Options{
		Target:           NoTarget,
		ReturnPath:       false,
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}

// WithTarget ends the search once v is settled (single-destination form).
func WithTarget(v int) Option {
	return func(o *Options) {
		o.Target = v
	}
}

// WithReturnPath enables predecessor tracking.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance stops additive searches from expanding beyond max.
// Panics if max is negative or NaN.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats every edge with weight ≥ threshold as a wall.
// Panics if threshold is not positive.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if !(threshold > 0) {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// WithObserver registers a Stats sink. A nil observer is ignored.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		if obs != nil {
			o.Observer = obs
		}
	}
}

// WithLogger registers a logger that receives one debug record per search.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// Stats counts the work done by one search.
//
// Pops        – entries extracted from the frontier, stale ones included.
// Stale       – extracted entries superseded by a better value and skipped.
// Relaxations – edges examined while expanding settled vertices.
// Pushes      – entries inserted into the frontier, the seed included.
type Stats struct {
	Pops        int
	Stale       int
	Relaxations int
	Pushes      int
}

// Observer receives the Stats of every completed search.
// algorithm names the search ("dijkstra", "max-probability", ...).
type Observer interface {
	ObserveSearch(algorithm string, s Stats)
}

// Result is the outcome of Search.
//
// Dist[v] is the best value found for v, or the metric's Unreached value.
// With a target, only Dist[Target] (and every vertex settled before it) is
// guaranteed optimal; other entries may be tentative.
// Prev[v] is the predecessor of v on the recorded path, -1 for the source and
// for unreached vertices. Prev is nil unless WithReturnPath was given.
type Result[W Number] struct {
	Source int
	Target int
	Dist   []W
	Prev   []int
	Stats  Stats

	unreached W
}

// Reached reports whether v received a value.
func (r *Result[W]) Reached(v int) bool {
	return v >= 0 && v < len(r.Dist) && r.Dist[v] != r.unreached
}

// PathTo reconstructs the vertex sequence from Source to v.
func (r *Result[W]) PathTo(v int) ([]int, error) {
	if r.Prev == nil {
		return nil, ErrNoPath
	}
	if !r.Reached(v) {
		return nil, fmt.Errorf("%w: %d from %d", ErrUnreachable, v, r.Source)
	}
	// build reversed path
	path := []int{}
	for cur := v; cur != -1; cur = r.Prev[cur] {
		path = append(path, cur)
	}
	// reverse to get source → v
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
