package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/wgraph/bfs"
	"github.com/katalvlaran/wgraph/core"
)

// ExampleBFS finds the fewest-hop route on a small ring.
func ExampleBFS() {
	g := core.NewGraph(5)
	for i := 0; i < 5; i++ {
		_ = g.AddEdge(i, (i+1)%5, 1)
	}

	res, _ := bfs.BFS(g, 0)
	path, _ := res.PathTo(3)
	fmt.Println(res.Depth, path)
	// Output: [0 1 2 2 1] [0 4 3]
}

// ExampleCourseOrder schedules courses after their prerequisites.
func ExampleCourseOrder() {
	order, err := bfs.CourseOrder(4, [][2]int{{1, 0}, {2, 0}, {3, 1}, {3, 2}})
	fmt.Println(order, err)
	// Output: [0 1 2 3] <nil>
}

// ExampleAlienOrder recovers an alphabet from a sorted dictionary.
func ExampleAlienOrder() {
	order, _ := bfs.AlienOrder([]string{"wrt", "wrf", "er", "ett", "rftt"})
	fmt.Println(order)
	// Output: wertf
}
