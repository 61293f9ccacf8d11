// Package dfs provides core algorithms on directed graphs, including
// topological sort.
//
// TopologicalSort computes a linear ordering of vertices such that for
// every directed edge u→v, u appears before v in the ordering.
// If the graph contains a cycle, ErrCycleDetected is returned.
//
// Complexity:
//
//   - Time:   O(V + E) (each vertex and edge visited once)
//   - Memory: O(V)     (explicit stack and state slice)
package dfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/wgraph/core"
)

// TopoOption configures optional behavior for TopologicalSort.
type TopoOption func(*topoOptions)

// topoOptions holds settings for TopologicalSort, currently only cancellation.
type topoOptions struct {
	ctx context.Context // allows cancellation; defaults to Background
}

// defaultTopoOptions returns the default options (Background context).
func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background()}
}

// WithCancelContext returns a TopoOption that sets the cancellation context.
// Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter struct {
	graph *core.Graph // the graph being sorted
	opts  topoOptions // traversal options (cancellation)
	state []int       // visitation state: White, Gray, Black
	order []int       // recorded post-order sequence
}

// TopologicalSort computes a topological ordering of all vertices in g.
// Roots are tried in increasing id order and neighbors in insertion order,
// so the result is deterministic.
//
// If g is nil, returns ErrGraphNil.
// If g is undirected, returns ErrNotDirected.
// If a cycle is detected, returns ErrCycleDetected naming the back edge.
// You may pass WithCancelContext(ctx) to enable cancellation.
func TopologicalSort(g *core.Graph, options ...TopoOption) ([]int, error) {
	// 1. Validate graph pointer
	if g == nil {
		return nil, ErrGraphNil
	}
	// 2. Only directed graphs are supported
	if !g.Directed() {
		return nil, ErrNotDirected
	}
	// 3. Apply optional settings
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}
	// 4. Initialize sorter state
	n := g.VertexCount()
	sorter := &topoSorter{
		graph: g,
		opts:  opts,
		state: make([]int, n), // all vertices start as White (0)
		order: make([]int, 0, n),
	}
	// 5. Drive DFS from every unvisited vertex
	for v := 0; v < n; v++ {
		if sorter.state[v] == White {
			if err := sorter.visit(v); err != nil {
				return nil, err
			}
		}
	}
	// 6. Reverse post-order
	for i, j := 0, len(sorter.order)-1; i < j; i, j = i+1, j-1 {
		sorter.order[i], sorter.order[j] = sorter.order[j], sorter.order[i]
	}

	return sorter.order, nil
}

// visit explores everything reachable from root that is still White.
func (t *topoSorter) visit(root int) error {
	stack := make([]*frame, 0, 16)
	push := func(v int) error {
		// Check for cancellation
		if err := t.opts.ctx.Err(); err != nil {
			return err
		}
		nbs, err := t.graph.Neighbors(v)
		if err != nil {
			return fmt.Errorf("dfs: neighbors of %d: %w", v, err)
		}
		// Mark as visiting (Gray)
		t.state[v] = Gray
		stack = append(stack, &frame{v: v, nbs: nbs})
		return nil
	}

	if err := push(root); err != nil {
		return err
	}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.i == len(top.nbs) {
			// Mark as fully explored (Black) and record in post-order list
			stack = stack[:len(stack)-1]
			t.state[top.v] = Black
			t.order = append(t.order, top.v)
			continue
		}

		next := top.nbs[top.i].To
		top.i++
		switch t.state[next] {
		case Gray:
			return fmt.Errorf("%w: back edge %d→%d", ErrCycleDetected, top.v, next)
		case White:
			if err := push(next); err != nil {
				return err
			}
		}
	}

	return nil
}
