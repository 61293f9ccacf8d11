package dijkstra

import (
	"github.com/katalvlaran/wgraph/core"
)

// MaxProbability returns the path from source to target whose product of edge
// probabilities is largest, together with that probability.
//
// Edge weights are read as success probabilities and must lie in [0, 1]
// (ErrBadProbability). Undirected graphs model two-way links.
// If target is unreachable, or only through zero-probability edges, it
// returns probability 0 and ErrUnreachable.
func MaxProbability(g *core.Graph, source, target int, opts ...Option) (float64, []int, error) {
	opts = append(opts[:len(opts):len(opts)], WithTarget(target), WithReturnPath())
	res, err := Search(g, source, Multiplicative(), opts...)
	if err != nil {
		return 0, nil, err
	}
	path, err := res.PathTo(target)
	if err != nil {
		return 0, nil, err
	}

	return res.Dist[target], path, nil
}
