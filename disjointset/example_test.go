package disjointset_test

import (
	"fmt"

	"github.com/katalvlaran/wgraph/disjointset"
)

// ExampleDisjointSet walks through three unions over five elements.
func ExampleDisjointSet() {
	d := disjointset.New(5)
	d.Union(0, 1)
	d.Union(1, 2)
	d.Union(3, 4)

	fmt.Println("groups:", d.Count())
	fmt.Println("0~2:", d.Connected(0, 2))
	fmt.Println("0~3:", d.Connected(0, 3))
	fmt.Println("redundant:", !d.Union(2, 0))
	// Output:
	// groups: 2
	// 0~2: true
	// 0~3: false
	// redundant: true
}

func ExampleRedundantConnection() {
	edge, ok := disjointset.RedundantConnection(4, [][2]int{{1, 2}, {1, 3}, {2, 3}})
	fmt.Println(edge, ok)
	// Output: [2 3] true
}
