// Package dijkstra implements the generic priority-frontier search that
// backs every shortest-path variant in this package.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all edges (O(E)) through Metric.Validate
//     and fail fast, so no search runs on a graph it is undefined for.
//   - We treat any edge with weight ≥ InfEdgeThreshold as an impassable wall.
//   - We use a lazy decrease-key strategy: every strict improvement pushes a
//     fresh entry and leaves the old one in the heap. On extraction an entry
//     whose value is worse than the distance table is stale and skipped.
//   - Insertions are gated by strict improvement, so zero-weight cycles and
//     self-loops cannot make the frontier grow without bound.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/wgraph/core"
)

// Search computes, for the given source, the best value of every vertex
// under metric m. See Options for the single-destination and path forms.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. source and, if set, the target must be vertices of g (ErrVertexNotFound).
//  3. m must define Extend and Better (ErrBadMetric).
//  4. Every edge must pass m.Validate (its error, wrapped with the edge).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Search[W Number](g *core.Graph, source int, m Metric[W], opts ...Option) (*Result[W], error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: source %d", ErrVertexNotFound, source)
	}
	if cfg.Target != NoTarget && !g.HasVertex(cfg.Target) {
		return nil, fmt.Errorf("%w: target %d", ErrVertexNotFound, cfg.Target)
	}
	if m.Extend == nil || m.Better == nil {
		return nil, ErrBadMetric
	}

	// 3) Pre-scan edges so that an inadmissible weight fails fast.
	if err := validateEdges(g, m.Validate); err != nil {
		return nil, err
	}

	// 4) Run
	r := newRunner(g, source, m, cfg)
	if err := r.process(); err != nil {
		return nil, err
	}

	res := &Result[W]{
		Source:    source,
		Target:    cfg.Target,
		Dist:      r.dist,
		Stats:     r.stats,
		unreached: m.Unreached,
	}
	if cfg.ReturnPath {
		res.Prev = r.prev
	}
	report(cfg, m.Name, r.stats)

	return res, nil
}

// validateEdges applies check to every edge weight, annotating the first failure.
func validateEdges(g *core.Graph, check func(float64) error) error {
	if check == nil {
		return nil
	}
	for _, e := range g.Edges() {
		if err := check(e.Weight); err != nil {
			return fmt.Errorf("%w: edge %d→%d weight=%g", err, e.From, e.To, e.Weight)
		}
	}

	return nil
}

// report hands stats to the observer and the logger, if any.
func report(cfg Options, algorithm string, s Stats) {
	if cfg.Observer != nil {
		cfg.Observer.ObserveSearch(algorithm, s)
	}
	if cfg.Logger != nil {
		cfg.Logger.Debug("search finished",
			"algorithm", algorithm,
			"pops", s.Pops,
			"stale", s.Stale,
			"relaxations", s.Relaxations,
			"pushes", s.Pushes,
		)
	}
}

// runner holds the mutable state for a single search.
type runner[W Number] struct {
	g      *core.Graph
	m      Metric[W]
	cfg    Options
	source int
	dist   []W          // authoritative best value per vertex
	prev   []int        // predecessor per vertex, -1 if none
	pq     *frontier[W] // lazy priority queue
	stats  Stats
}

// newRunner seeds dist with Unreached everywhere except the source and pushes
// the source onto the frontier.
func newRunner[W Number](g *core.Graph, source int, m Metric[W], cfg Options) *runner[W] {
	n := g.VertexCount()
	r := &runner[W]{
		g:      g,
		m:      m,
		cfg:    cfg,
		source: source,
		dist:   make([]W, n),
		prev:   make([]int, n),
		pq:     newFrontier[W](m.Better, n),
	}
	for v := 0; v < n; v++ {
		r.dist[v] = m.Unreached
		r.prev[v] = -1
	}
	r.dist[source] = m.Zero
	r.push(source, m.Zero)

	return r
}

func (r *runner[W]) push(v int, value W) {
	heap.Push(r.pq, frontierItem[W]{node: v, value: value})
	r.stats.Pushes++
}

// process is the core loop. It ends when the frontier is empty, when the
// target is settled, or when the cheapest entry lies beyond MaxDistance.
func (r *runner[W]) process() error {
	for r.pq.Len() > 0 {
		// 1) Pop the best entry.
		item := heap.Pop(r.pq).(frontierItem[W])
		r.stats.Pops++
		u := item.node

		// 2) Superseded by a later, better push: skip.
		if r.m.Better(r.dist[u], item.value) {
			r.stats.Stale++
			continue
		}

		// 3) Nothing cheaper remains in the heap either.
		if r.m.Beyond != nil && r.m.Beyond(item.value, r.cfg.MaxDistance) {
			break
		}

		// 4) Early exit for the single-destination form.
		if u == r.cfg.Target {
			break
		}

		// 5) Relax outgoing edges.
		if err := r.relax(u, item.value); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve every neighbor of u through u.
func (r *runner[W]) relax(u int, du W) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %d: %w", u, err)
	}

	var cand W
	for _, e := range neighbors {
		r.stats.Relaxations++
		if e.Weight >= r.cfg.InfEdgeThreshold {
			continue
		}

		cand = r.m.Extend(du, e.Weight)
		if r.m.Beyond != nil && r.m.Beyond(cand, r.cfg.MaxDistance) {
			continue
		}
		// Strict improvement only: equal values never re-enter the frontier.
		if !r.m.Better(cand, r.dist[e.To]) {
			continue
		}

		r.dist[e.To] = cand
		r.prev[e.To] = u
		r.push(e.To, cand)
	}

	return nil
}

// frontierItem is one (value, node) candidate. node may also encode an
// augmented state id, as the constrained searches do.
type frontierItem[W Number] struct {
	node  int
	value W
}

// frontier is a binary min-heap of frontierItem ordered by better, ties
// broken by the smaller node id so that results are reproducible.
type frontier[W Number] struct {
	items  []frontierItem[W]
	better func(a, b W) bool
}

func newFrontier[W Number](better func(a, b W) bool, capacity int) *frontier[W] {
	return &frontier[W]{items: make([]frontierItem[W], 0, capacity), better: better}
}

// Len returns the number of items in the heap.
func (f *frontier[W]) Len() int { return len(f.items) }

// Less orders by value, then by node.
func (f *frontier[W]) Less(i, j int) bool {
	a, b := f.items[i], f.items[j]
	if f.better(a.value, b.value) {
		return true
	}
	if f.better(b.value, a.value) {
		return false
	}

	return a.node < b.node
}

// Swap swaps two elements in the heap.
func (f *frontier[W]) Swap(i, j int) { f.items[i], f.items[j] = f.items[j], f.items[i] }

// Push is called by heap.Push; x must be a frontierItem[W].
func (f *frontier[W]) Push(x any) { f.items = append(f.items, x.(frontierItem[W])) }

// Pop is called by heap.Pop.
func (f *frontier[W]) Pop() any {
	old := f.items
	n := len(old)
	item := old[n-1]
	f.items = old[:n-1]

	return item
}
