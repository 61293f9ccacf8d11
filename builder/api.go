// SPDX-License-Identifier: MIT
// Package: wgraph/builder
//
// api.go — BuildGraph orchestrator and the Constructor type.

package builder

import (
	"fmt"

	"github.com/katalvlaran/wgraph/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters early, return sentinel
// errors (no panics) and preserve determinism for the same config.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a core.Graph over n vertices with graph options gopts,
// resolves the builder configuration from bopts, and applies all
// constructors in order. Any constructor error is wrapped with
// "BuildGraph: %w" and returned immediately.
func BuildGraph(n int, gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(n, gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addEdge emits u—v with the configured weight, wrapping core errors with method context.
func addEdge(g *core.Graph, cfg builderConfig, method string, u, v int) error {
	w := cfg.weightFn(cfg.rng)
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%d→%d, w=%g): %w", method, u, v, w, err)
	}

	return nil
}
