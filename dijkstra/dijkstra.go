package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/wgraph/core"
)

// Dijkstra computes shortest distances from source to every vertex of g.
// Unreachable vertices keep +Inf. Edge weights must be non-negative.
//
// Options customization:
//
//   - WithReturnPath(): record predecessors for Result.PathTo.
//   - WithTarget(v): stop once v is settled.
//   - WithMaxDistance(x): vertices with distance > x are left unreached.
//   - WithInfEdgeThreshold(t): edges with weight ≥ t are skipped.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Dijkstra(g *core.Graph, source int, opts ...Option) (*Result[float64], error) {
	return Search(g, source, Additive(), opts...)
}

// ShortestPath returns the cheapest path from source to target and its cost.
// The search stops as soon as target is settled.
// If target is unreachable it returns ErrUnreachable and cost +Inf.
func ShortestPath(g *core.Graph, source, target int, opts ...Option) ([]int, float64, error) {
	opts = append(opts[:len(opts):len(opts)], WithTarget(target), WithReturnPath())
	res, err := Search(g, source, Additive(), opts...)
	if err != nil {
		return nil, math.Inf(1), err
	}
	path, err := res.PathTo(target)
	if err != nil {
		return nil, math.Inf(1), err
	}

	return path, res.Dist[target], nil
}

// NetworkDelay returns the time for a signal sent from source to reach every
// vertex, i.e. the largest shortest distance. If some vertex cannot be
// reached it returns ErrUnreachable naming the first such vertex.
func NetworkDelay(g *core.Graph, source int, opts ...Option) (float64, error) {
	res, err := Search(g, source, Additive(), opts...)
	if err != nil {
		return 0, err
	}

	var delay float64
	for v, d := range res.Dist {
		if math.IsInf(d, 1) {
			return 0, fmt.Errorf("%w: %d from %d", ErrUnreachable, v, source)
		}
		delay = max(delay, d)
	}

	return delay, nil
}
