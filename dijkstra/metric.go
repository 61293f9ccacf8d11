package dijkstra

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Number is the set of value types a Metric may accumulate.
type Number interface {
	constraints.Integer | constraints.Float
}

// Metric describes how a path value grows along an edge and which of two
// values is preferable. Search is only correct for monotone metrics:
// Extend(acc, w) must never be Better than acc for any admissible w.
//
// Name      – label passed to observers and loggers.
// Zero      – value of the source.
// Unreached – value left on vertices never reached.
// Extend    – value of a path ending in an edge of the given weight.
// Better    – strict preference; Better(a, a) must be false.
// Validate  – optional per-edge admissibility check, run before the search.
// Beyond    – optional; reports whether a value exceeds Options.MaxDistance.
type Metric[W Number] struct {
	Name      string
	Zero      W
	Unreached W
	Extend    func(acc W, weight float64) W
	Better    func(a, b W) bool
	Validate  func(weight float64) error
	Beyond    func(v W, limit float64) bool
}

// Additive is the shortest-path metric: costs add up and smaller is better.
// Negative weights are rejected with ErrNegativeWeight.
func Additive() Metric[float64] {
	return Metric[float64]{
		Name:      "dijkstra",
		Zero:      0,
		Unreached: math.Inf(1),
		Extend:    func(acc, w float64) float64 { return acc + w },
		Better:    func(a, b float64) bool { return a < b },
		Validate: func(w float64) error {
			if w < 0 {
				return ErrNegativeWeight
			}
			return nil
		},
		Beyond: func(v, limit float64) bool { return v > limit },
	}
}

// Multiplicative is the maximum-probability metric: edge weights are success
// probabilities, they multiply along a path and larger is better.
// Weights outside [0, 1] are rejected with ErrBadProbability.
func Multiplicative() Metric[float64] {
	return Metric[float64]{
		Name:      "max-probability",
		Zero:      1,
		Unreached: 0,
		Extend:    func(acc, p float64) float64 { return acc * p },
		Better:    func(a, b float64) bool { return a > b },
		Validate: func(p float64) error {
			if p < 0 || p > 1 {
				return fmt.Errorf("%w: %g", ErrBadProbability, p)
			}
			return nil
		},
	}
}

// HopCount ignores weights and minimizes the number of edges on a path.
func HopCount() Metric[int] {
	return Metric[int]{
		Name:      "hops",
		Zero:      0,
		Unreached: math.MaxInt,
		Extend:    func(acc int, _ float64) int { return acc + 1 },
		Better:    func(a, b int) bool { return a < b },
		Beyond:    func(v int, limit float64) bool { return float64(v) > limit },
	}
}
