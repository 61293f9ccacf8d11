// SPDX-License-Identifier: MIT
// Package: wgraph/builder
//
// impl_path.go — Path and Cycle constructors.
//
// Contract:
//   • Path: n ≥ 2; edges i→i+1 for i=0..n-2.
//   • Cycle: n ≥ 3; Path edges followed by n-1→0.
//   • Emission order is increasing i.

package builder

import (
	"fmt"

	"github.com/katalvlaran/wgraph/core"
)

const (
	methodPath    = "Path"
	methodCycle   = "Cycle"
	minPathNodes  = 2
	minCycleNodes = 3
)

// Path returns a Constructor that links consecutive vertices.
func Path() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n := g.VertexCount()
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		for i := 0; i+1 < n; i++ {
			if err := addEdge(g, cfg, methodPath, i, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle returns a Constructor that builds the simple cycle C_n.
func Cycle() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n := g.VertexCount()
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			if err := addEdge(g, cfg, methodCycle, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
