package bfs

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/wgraph/core"
)

// AlienOrder derives a letter order consistent with words, which are
// sorted lexicographically in an unknown alphabet.
//
// Each adjacent pair contributes at most one constraint: the first letter
// where the words differ. A word followed by its own proper prefix is
// contradictory. Letters are numbered in code-point order and the order is
// produced by TopologicalOrder, so the result is deterministic. An empty
// word list yields "".
//
// Errors: ErrInvalidOrdering if the constraints are cyclic or a prefix
// follows its extension.
func AlienOrder(words []string) (string, error) {
	// 1) Collect letters.
	letters := mapset.NewThreadUnsafeSet[rune]()
	for _, w := range words {
		for _, r := range w {
			letters.Add(r)
		}
	}
	alphabet := letters.ToSlice()
	sort.Slice(alphabet, func(i, j int) bool { return alphabet[i] < alphabet[j] })
	id := make(map[rune]int, len(alphabet))
	for i, r := range alphabet {
		id[r] = i
	}

	// 2) One edge per distinct constraint.
	g := core.NewGraph(len(alphabet), core.WithDirected(true))
	seen := mapset.NewThreadUnsafeSet[[2]rune]()
	for i := 0; i+1 < len(words); i++ {
		a, b := []rune(words[i]), []rune(words[i+1])
		j := 0
		for j < len(a) && j < len(b) && a[j] == b[j] {
			j++
		}
		if j == len(a) || j == len(b) {
			if len(a) > len(b) {
				return "", fmt.Errorf("%w: %q precedes its prefix %q", ErrInvalidOrdering, words[i], words[i+1])
			}
			continue
		}
		if !seen.Add([2]rune{a[j], b[j]}) {
			continue
		}
		if err := g.AddEdge(id[a[j]], id[b[j]], 0); err != nil {
			return "", err
		}
	}

	// 3) Order.
	order, err := TopologicalOrder(g)
	if errors.Is(err, ErrCycleDetected) {
		return "", fmt.Errorf("%w: %v", ErrInvalidOrdering, err)
	}
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.Grow(len(order))
	for _, v := range order {
		sb.WriteRune(alphabet[v])
	}

	return sb.String(), nil
}
