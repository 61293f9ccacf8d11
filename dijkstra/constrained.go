package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/wgraph/core"
)

// CheapestWithinStops returns the cheapest path from source to target that
// passes through at most k intermediate vertices (at most k+1 edges).
//
// The search runs on the augmented state (vertex, edges used). Popping in
// cost order means that once a vertex is expanded with e edges, any later
// state of that vertex using ≥ e edges is dominated and skipped; a later
// state with fewer edges is still expanded even though it costs more.
//
// A budget above n-1 stops cannot be used by a cheapest path, so k is
// capped at n-1 before the state table is sized.
//
// Options: WithInfEdgeThreshold, WithMaxDistance (paths costing more are
// discarded), WithObserver and WithLogger apply. The target is the
// argument and the path is always returned, so WithTarget and
// WithReturnPath have no effect.
//
// Errors: ErrNilGraph, ErrVertexNotFound, ErrBadResource (k < 0),
// ErrNegativeWeight, ErrUnreachable.
// Complexity: O(k·E·log(k·V)) time, O(k·V) space.
func CheapestWithinStops(g *core.Graph, source, target, k int, opts ...Option) (float64, []int, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return 0, nil, ErrNilGraph
	}
	if !g.HasVertex(source) || !g.HasVertex(target) {
		return 0, nil, fmt.Errorf("%w: %d→%d", ErrVertexNotFound, source, target)
	}
	if k < 0 {
		return 0, nil, fmt.Errorf("%w: k=%d", ErrBadResource, k)
	}
	if err := validateEdges(g, Additive().Validate); err != nil {
		return 0, nil, err
	}
	n := g.VertexCount()
	k = min(k, n-1)

	var (
		layers = k + 2 // edges used ∈ [0, k+1]
		best   = make([]float64, n*layers)
		prev   = make([]int, n*layers)
		fewest = make([]int, n) // fewest edges with which each vertex was expanded
		pq     = newFrontier[float64](func(a, b float64) bool { return a < b }, n)
		stats  Stats
	)
	for s := range best {
		best[s] = math.Inf(1)
		prev[s] = -1
	}
	for v := range fewest {
		fewest[v] = math.MaxInt
	}
	state := func(v, used int) int { return v*layers + used }

	start := state(source, 0)
	best[start] = 0
	heap.Push(pq, frontierItem[float64]{node: start, value: 0})
	stats.Pushes++

	for pq.Len() > 0 {
		item := heap.Pop(pq).(frontierItem[float64])
		stats.Pops++
		if item.value > best[item.node] {
			stats.Stale++
			continue
		}

		u, used := item.node/layers, item.node%layers
		if u == target {
			report(cfg, "cheapest-within-stops", stats)
			return item.value, statePath(prev, item.node, layers), nil
		}
		if used >= fewest[u] {
			stats.Stale++
			continue
		}
		fewest[u] = used
		if used == k+1 {
			continue
		}

		neighbors, err := g.Neighbors(u)
		if err != nil {
			return 0, nil, fmt.Errorf("dijkstra: failed to get neighbors of %d: %w", u, err)
		}
		for _, e := range neighbors {
			stats.Relaxations++
			if e.Weight >= cfg.InfEdgeThreshold {
				continue
			}
			next := state(e.To, used+1)
			cand := item.value + e.Weight
			if cand > cfg.MaxDistance || cand >= best[next] {
				continue
			}
			best[next] = cand
			prev[next] = item.node
			heap.Push(pq, frontierItem[float64]{node: next, value: cand})
			stats.Pushes++
		}
	}

	report(cfg, "cheapest-within-stops", stats)

	return 0, nil, fmt.Errorf("%w: %d from %d within %d stops", ErrUnreachable, target, source, k)
}

// statePath unwinds augmented-state predecessors into plain vertex ids.
func statePath(prev []int, s, layers int) []int {
	path := []int{}
	for ; s != -1; s = prev[s] {
		path = append(path, s/layers)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// GridShortestPath returns the fewest unit steps from the top-left to the
// bottom-right cell of grid, moving in four directions and eliminating at
// most k obstacles on the way. Cells are 0 (free) or 1 (obstacle); the
// start cell is never charged.
//
// The state is (row, col, eliminations left). Because several states share a
// cell, a cell may be revisited with more eliminations left at a higher step
// count. With rows+cols-2 eliminations the straight Manhattan walk is
// always open and no path is shorter, so k is capped there before the
// state table is sized.
//
// Options: WithMaxDistance bounds the number of steps; WithObserver and
// WithLogger apply. Cells carry no weights and the goal is fixed, so the
// other options have no effect.
//
// Errors: ErrInvalidGrid, ErrBadResource (k < 0), ErrUnreachable.
func GridShortestPath(grid [][]int, k int, opts ...Option) (int, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	rows, cols, err := gridShape(grid)
	if err != nil {
		return 0, err
	}
	if k < 0 {
		return 0, fmt.Errorf("%w: k=%d", ErrBadResource, k)
	}
	k = min(k, rows+cols-2)

	var (
		layers = k + 1 // eliminations left ∈ [0, k]
		best   = make([]int, rows*cols*layers)
		pq     = newFrontier[int](func(a, b int) bool { return a < b }, rows*cols)
		stats  Stats
		moves  = [4][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
		goal   = rows*cols - 1
	)
	for s := range best {
		best[s] = math.MaxInt
	}
	state := func(cell, left int) int { return cell*layers + left }

	start := state(0, k)
	best[start] = 0
	heap.Push(pq, frontierItem[int]{node: start, value: 0})
	stats.Pushes++

	for pq.Len() > 0 {
		item := heap.Pop(pq).(frontierItem[int])
		stats.Pops++
		if item.value > best[item.node] {
			stats.Stale++
			continue
		}

		cell, left := item.node/layers, item.node%layers
		if cell == goal {
			report(cfg, "grid-eliminate-obstacles", stats)
			return item.value, nil
		}

		r, c := cell/cols, cell%cols
		for _, mv := range moves {
			nr, nc := r+mv[0], c+mv[1]
			if nr < 0 || nr >= rows || nc < 0 || nc >= cols {
				continue
			}
			stats.Relaxations++
			nl := left - grid[nr][nc]
			if nl < 0 {
				continue
			}
			next := state(nr*cols+nc, nl)
			if float64(item.value+1) > cfg.MaxDistance || item.value+1 >= best[next] {
				continue
			}
			best[next] = item.value + 1
			heap.Push(pq, frontierItem[int]{node: next, value: item.value + 1})
			stats.Pushes++
		}
	}

	report(cfg, "grid-eliminate-obstacles", stats)

	return 0, fmt.Errorf("%w: grid corner with %d eliminations", ErrUnreachable, k)
}

// gridShape validates grid and returns its dimensions.
func gridShape(grid [][]int) (rows, cols int, err error) {
	rows = len(grid)
	if rows == 0 || len(grid[0]) == 0 {
		return 0, 0, fmt.Errorf("%w: empty", ErrInvalidGrid)
	}
	cols = len(grid[0])
	for i, row := range grid {
		if len(row) != cols {
			return 0, 0, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidGrid, i, len(row), cols)
		}
		for j, v := range row {
			if v != 0 && v != 1 {
				return 0, 0, fmt.Errorf("%w: cell (%d,%d)=%d", ErrInvalidGrid, i, j, v)
			}
		}
	}

	return rows, cols, nil
}
