// SPDX-License-Identifier: MIT
// Package: spanforest/builder
//
// api.go - public entry points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildEdges(bopts, cons...). Resolves cfg, runs cons in order.
//   - Every constructor appends a fresh block of vertices, so composing
//     constructors yields the disjoint union of their graphs (one connected
//     component per connected constructor).
//   - Determinism: same constructors, options and seed ⇒ identical edge lists.
//   - Safety: never panic at build time; return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/spanforest/graph"
)

// Constructor appends one block of vertices and its edges to acc.
// Constructors MUST validate parameters first and leave acc untouched on error.
type Constructor func(acc *Accumulator, cfg builderConfig) error

// Accumulator collects vertices and edges while constructors run.
type Accumulator struct {
	n     int
	edges []graph.Edge
}

// N returns the number of vertices allocated so far.
func (a *Accumulator) N() int { return a.n }

// Edges returns the collected edges. The slice is owned by the accumulator.
func (a *Accumulator) Edges() []graph.Edge { return a.edges }

// block reserves k new vertices and returns the index of the first one.
func (a *Accumulator) block(k int) int {
	base := a.n
	a.n += k

	return base
}

// add appends the edge {u, v} with a weight drawn from cfg.
func (a *Accumulator) add(cfg builderConfig, u, v int) {
	a.edges = append(a.edges, graph.Edge{U: u, V: v, W: cfg.weightFn(cfg.rng)})
}

// BuildEdges resolves options and applies every constructor in order.
// Constructor errors are wrapped with "BuildEdges: %w".
//
// Complexity: Σ cost of each constructor.
func BuildEdges(bopts []BuilderOption, cons ...Constructor) (int, []graph.Edge, error) {
	cfg := newBuilderConfig(bopts...)
	acc := &Accumulator{}
	for i, fn := range cons {
		if fn == nil {
			return 0, nil, fmt.Errorf("BuildEdges: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(acc, cfg); err != nil {
			return 0, nil, fmt.Errorf("BuildEdges: %w", err)
		}
	}

	return acc.n, acc.edges, nil
}

// BuildGraph is BuildEdges followed by graph.New.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*graph.Graph, error) {
	n, edges, err := BuildEdges(bopts, cons...)
	if err != nil {
		return nil, err
	}
	g, err := graph.New(n, edges)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}
