// SPDX-License-Identifier: MIT
// Package: wgraph/builder
//
// impl_random.go — RandomSparse(p) and RandomTree() constructors.
//
// Canonical models:
//   • RandomSparse: Erdős–Rényi-like; each admissible pair is kept with
//     probability p. Undirected pairs i<j, directed ordered pairs i≠j.
//   • RandomTree: vertex i (i ≥ 1) joins rng.Intn(i); the result is a
//     spanning tree, so combining it with RandomSparse yields a connected graph.
//
// Contract:
//   • RandomSparse: 0 ≤ p ≤ 1 (else ErrInvalidProbability); rng required for 0<p<1.
//   • RandomTree: n ≥ 1; rng required when n > 2.
//   • Trial order is fixed (i asc, then j asc), so outcomes depend only on the seed.

package builder

import (
	"fmt"

	"github.com/katalvlaran/wgraph/core"
)

const (
	methodRandomSparse = "RandomSparse"
	methodRandomTree   = "RandomTree"
	probMin            = 0.0
	probMax            = 1.0
	minTreeNodes       = 1
)

// RandomSparse returns a Constructor that samples each admissible pair with probability p.
func RandomSparse(p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		n := g.VertexCount()
		for i := 0; i < n; i++ {
			j := i + 1
			if g.Directed() {
				j = 0
			}
			for ; j < n; j++ {
				if i == j {
					continue
				}
				keep := p == probMax
				if cfg.rng != nil && p > probMin && p < probMax {
					keep = cfg.rng.Float64() < p
				}
				if !keep {
					continue
				}
				if err := addEdge(g, cfg, methodRandomSparse, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// RandomTree returns a Constructor that adds a uniformly attached random spanning tree.
func RandomTree() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n := g.VertexCount()
		if n < minTreeNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomTree, n, minTreeNodes, ErrTooFewVertices)
		}
		if cfg.rng == nil && n > 2 {
			return fmt.Errorf("%s: %w", methodRandomTree, ErrNeedRandSource)
		}
		for i := 1; i < n; i++ {
			parent := 0
			if cfg.rng != nil {
				parent = cfg.rng.Intn(i)
			}
			if err := addEdge(g, cfg, methodRandomTree, parent, i); err != nil {
				return err
			}
		}

		return nil
	}
}
