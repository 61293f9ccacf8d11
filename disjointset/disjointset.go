package disjointset

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is wrapped by the panic value raised for elements outside [0, n).
var ErrOutOfRange = errors.New("disjointset: element out of range")

// DisjointSet is a union-find forest over 0..n-1.
// The zero value is an empty set of size 0.
type DisjointSet struct {
	parent []int // parent[x] == x for roots
	rank   []int // upper bound on the height of the tree rooted at x
	count  int   // number of disjoint groups remaining
}

// New returns a DisjointSet with n singleton groups.
// Complexity: O(n).
func New(n int) *DisjointSet {
	if n < 0 {
		panic(fmt.Errorf("%w: negative size %d", ErrOutOfRange, n))
	}
	d := &DisjointSet{
		parent: make([]int, n),
		rank:   make([]int, n),
		count:  n,
	}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d
}

// Len returns the number of elements n.
func (d *DisjointSet) Len() int { return len(d.parent) }

// Count returns the number of disjoint groups.
func (d *DisjointSet) Count() int { return d.count }

// Find returns the root of x's group and compresses the path from x.
func (d *DisjointSet) Find(x int) int {
	d.check(x)

	// 1) Walk to the root.
	root := x
	for d.parent[root] != root {
		root = d.parent[root]
	}

	// 2) Re-point every node on the path directly at the root.
	for x != root {
		next := d.parent[x]
		d.parent[x] = root
		x = next
	}

	return root
}

// Union merges the groups of x and y. It reports false when they were
// already in the same group, i.e. an edge x–y would close a cycle.
func (d *DisjointSet) Union(x, y int) bool {
	rx, ry := d.Find(x), d.Find(y)
	if rx == ry {
		return false
	}

	// Shallower tree goes under the deeper one; on a tie ry goes under rx.
	if d.rank[rx] < d.rank[ry] {
		rx, ry = ry, rx
	}
	d.parent[ry] = rx
	if d.rank[rx] == d.rank[ry] {
		d.rank[rx]++
	}
	d.count--

	return true
}

// Connected reports whether x and y share a group.
func (d *DisjointSet) Connected(x, y int) bool {
	return d.Find(x) == d.Find(y)
}

// Groups returns the members of every group, each sorted ascending, with
// groups ordered by their smallest member.
// Complexity: O(n·α(n)).
func (d *DisjointSet) Groups() [][]int {
	index := make(map[int]int, d.count) // root → position in out
	out := make([][]int, 0, d.count)
	for x := range d.parent {
		r := d.Find(x)
		pos, ok := index[r]
		if !ok {
			pos = len(out)
			index[r] = pos
			out = append(out, nil)
		}
		out[pos] = append(out[pos], x)
	}

	return out
}

func (d *DisjointSet) check(x int) {
	if x < 0 || x >= len(d.parent) {
		panic(fmt.Errorf("%w: %d not in [0,%d)", ErrOutOfRange, x, len(d.parent)))
	}
}
