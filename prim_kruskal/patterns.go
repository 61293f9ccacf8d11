package prim_kruskal

import (
	"fmt"

	"github.com/katalvlaran/wgraph/core"
)

// MinCostConnectPoints returns the minimum total Manhattan length of wires
// connecting every point. Fewer than two points cost nothing.
//
// The complete graph over the points is built once and handed to Prim from
// point 0. Complexity: O(P² log P).
func MinCostConnectPoints(points [][2]int, opts ...Option) (float64, error) {
	if len(points) < 2 {
		return 0, nil
	}

	g := core.NewGraph(len(points))
	for i := range points {
		for j := i + 1; j < len(points); j++ {
			d := abs(points[i][0]-points[j][0]) + abs(points[i][1]-points[j][1])
			if err := g.AddEdge(i, j, float64(d)); err != nil {
				return 0, err
			}
		}
	}
	_, total, err := Prim(g, 0, opts...)

	return total, err
}

// MinCostToSupplyWater returns the cheapest way to bring water to houses
// 1..n, where wells[i-1] is the cost of digging a well at house i and each
// pipe joins two houses at its Weight.
//
// A virtual vertex 0 stands for the water source: digging at house i is the
// edge 0—i. The answer is the MST weight of that augmented graph (Kruskal).
func MinCostToSupplyWater(n int, wells []float64, pipes []core.Edge, opts ...Option) (float64, error) {
	if len(wells) != n {
		return 0, fmt.Errorf("%w: %d wells for %d houses", ErrInvalidGraph, len(wells), n)
	}

	g := core.NewGraph(n + 1)
	for i, w := range wells {
		if err := g.AddEdge(0, i+1, w); err != nil {
			return 0, err
		}
	}
	for _, p := range pipes {
		if p.From < 1 || p.To < 1 {
			return 0, fmt.Errorf("%w: pipe %d—%d touches the water source", core.ErrVertexOutOfRange, p.From, p.To)
		}
		if err := g.AddEdge(p.From, p.To, p.Weight); err != nil {
			return 0, err
		}
	}
	_, total, err := Kruskal(g, opts...)

	return total, err
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
