// Package dfs implements depth‑first search (single‑source and forest) on core.Graph.
//
// The walk keeps an explicit stack of frames instead of recursing, so very
// long paths cannot overflow the goroutine stack. Each frame remembers how
// many of its neighbors have been examined.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/wgraph/core"
)

// frame is one vertex on the explicit DFS stack.
type frame struct {
	v   int
	nbs []core.Edge
	i   int // next neighbor to examine
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph // underlying graph
	opts  DFSOptions  // traversal options
	res   *DFSResult  // result collector
}

// DFS performs depth‑first search on graph g. If opts include WithFullTraversal,
// it covers all disconnected components; otherwise, it starts only from start.
// Neighbors are explored in insertion order.
// Returns DFSResult or error if aborted by context or hook.
func DFS(g *core.Graph, start int, opts ...Option) (*DFSResult, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Validate start vertex
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	// 4. Initialize result
	n := g.VertexCount()
	res := &DFSResult{
		Order:   make([]int, 0, n),
		Depth:   make([]int, n),
		Parent:  make([]int, n),
		Visited: make([]bool, n),
	}
	for v := 0; v < n; v++ {
		res.Depth[v] = -1
		res.Parent[v] = -1
	}
	w := &dfsWalker{graph: g, opts: dopts, res: res}

	// 5. Walk from start, then (optionally) every remaining root in id order
	if err := w.walk(start); err != nil {
		return nil, err
	}
	if dopts.FullTraversal {
		for v := 0; v < n; v++ {
			if res.Visited[v] {
				continue
			}
			if err := w.walk(v); err != nil {
				return nil, err
			}
		}
	}

	return res, nil
}

// walk runs one DFS tree rooted at root.
func (w *dfsWalker) walk(root int) error {
	stack := make([]*frame, 0, 16)
	enter := func(v, parent, depth int) error {
		if err := w.opts.Ctx.Err(); err != nil {
			return err
		}
		w.res.Visited[v] = true
		w.res.Parent[v] = parent
		w.res.Depth[v] = depth
		if w.opts.OnVisit != nil {
			if err := w.opts.OnVisit(v); err != nil {
				return err
			}
		}
		nbs, err := w.graph.Neighbors(v)
		if err != nil {
			return fmt.Errorf("dfs: neighbors of %d: %w", v, err)
		}
		stack = append(stack, &frame{v: v, nbs: nbs})
		return nil
	}

	if err := enter(root, -1, 0); err != nil {
		return err
	}
	for len(stack) > 0 {
		top := stack[len(stack)-1]

		// 1) All neighbors examined: finish the vertex.
		if top.i == len(top.nbs) {
			stack = stack[:len(stack)-1]
			if w.opts.OnExit != nil {
				if err := w.opts.OnExit(top.v); err != nil {
					return err
				}
			}
			w.res.Order = append(w.res.Order, top.v)
			continue
		}

		// 2) Examine the next neighbor.
		next := top.nbs[top.i].To
		top.i++
		if w.res.Visited[next] {
			continue
		}
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(next) {
			w.res.SkippedNeighbors++
			continue
		}
		depth := w.res.Depth[top.v] + 1
		if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
			continue
		}
		if err := enter(next, top.v, depth); err != nil {
			return err
		}
	}

	return nil
}
