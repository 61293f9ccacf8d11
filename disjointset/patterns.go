package disjointset

import (
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
)

// CountComponents returns the number of connected components of an
// undirected graph with n vertices and the given edges.
// Complexity: O(n + E·α(n)).
func CountComponents(n int, edges [][2]int) int {
	d := New(n)
	for _, e := range edges {
		d.Union(e[0], e[1])
	}

	return d.Count()
}

// RedundantConnection returns the first edge, in input order, whose endpoints
// are already connected by the edges before it. ok is false for a forest.
func RedundantConnection(n int, edges [][2]int) (edge [2]int, ok bool) {
	d := New(n)
	for _, e := range edges {
		if !d.Union(e[0], e[1]) {
			return e, true
		}
	}

	return [2]int{}, false
}

// MergeAccounts merges accounts that share at least one email.
//
// Each account is [name, email...]. The result holds one entry per merged
// account: the name of the first account in the group followed by its unique
// emails sorted ascending. Entries are ordered by the first input account that
// belongs to them. Accounts without emails are kept as-is.
func MergeAccounts(accounts [][]string) [][]string {
	// 1) Give every account an element; union accounts through shared emails.
	d := New(len(accounts))
	owner := make(map[string]int) // email → first account seen with it
	for i, acc := range accounts {
		for _, email := range acc[min(1, len(acc)):] {
			if j, seen := owner[email]; seen {
				d.Union(j, i)
				continue
			}
			owner[email] = i
		}
	}

	// 2) Collect unique emails per group in first-appearance order of groups.
	// order keeps group roots in output order; emails and names are keyed by root.
	var order []int
	emails := map[int]mapset.Set[string]{}
	names := map[int]string{}
	for i, acc := range accounts {
		r := d.Find(i)
		set, ok := emails[r]
		if !ok {
			set = mapset.NewThreadUnsafeSet[string]()
			emails[r] = set
			order = append(order, r)
			if len(acc) > 0 {
				names[r] = acc[0]
			}
		}
		for _, email := range acc[min(1, len(acc)):] {
			set.Add(email)
		}
	}

	// 3) Emit name followed by sorted emails.
	out := make([][]string, 0, len(order))
	for _, r := range order {
		list := emails[r].ToSlice()
		sort.Strings(list)
		out = append(out, append([]string{names[r]}, list...))
	}

	return out
}

// LongestConsecutive returns the length of the longest run of consecutive
// integers present in nums. Duplicates count once.
func LongestConsecutive(nums []int) int {
	if len(nums) == 0 {
		return 0
	}

	index := make(map[int]int, len(nums)) // value → element id
	for _, v := range nums {
		if _, ok := index[v]; !ok {
			index[v] = len(index)
		}
	}

	d := New(len(index))
	for v, id := range index {
		if next, ok := index[v+1]; ok {
			d.Union(id, next)
		}
	}

	best := 0
	for _, group := range d.Groups() {
		best = max(best, len(group))
	}

	return best
}
