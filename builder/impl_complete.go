// SPDX-License-Identifier: MIT
// Package: wgraph/builder
//
// impl_complete.go — Complete constructor.
//
// Contract:
//   • n ≥ 1.
//   • Undirected: unordered pairs {i,j}, i<j, i asc then j asc.
//   • Directed: ordered pairs (i,j), i≠j, i asc then j asc.

package builder

import (
	"fmt"

	"github.com/katalvlaran/wgraph/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that links every pair of vertices.
func Complete() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n := g.VertexCount()
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			j := i + 1
			if g.Directed() {
				j = 0
			}
			for ; j < n; j++ {
				if i == j {
					continue
				}
				if err := addEdge(g, cfg, methodComplete, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
