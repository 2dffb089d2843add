// Package bfs builds breadth-first parent forests over a *graph.Graph,
// expressed as level-synchronous sparse vector-matrix products.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/spanforest/forest"
	"github.com/katalvlaran/spanforest/graph"
	"github.com/katalvlaran/spanforest/sparse"
)

// walker encapsulates mutable traversal state.
type walker struct {
	opts   BFSOptions
	adj    *sparse.Matrix
	parent *sparse.Vector[int] // absent = unassigned; roots hold themselves
	front  *sparse.Vector[int] // frontier, valued with its own indices
	next   *sparse.Vector[int] // newly reached, valued with discovering parent
}

// ParentForest runs a BFS from every vertex that is not yet reached, in
// ascending order, and returns the resulting parent forest. Each connected
// component becomes one tree rooted at its lowest vertex; every other vertex
// points at its lowest-index neighbour on the previous level. Edge weights are
// ignored and the forest weight is 0.
//
// Returns ErrGraphNil for a nil graph, ErrOptionViolation for bad options,
// the context error on cancellation, or a wrapped sparse error.
//
// Complexity: O(levels·n + E) with pull steps, O(n + E·log) with push steps.
func ParentForest(g *graph.Graph, opts ...Option) (*forest.Tree, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.N()
	w := &walker{
		opts:   o,
		adj:    g.Adjacency(),
		parent: sparse.MustVector[int](n),
		front:  sparse.MustVector[int](n),
		next:   sparse.MustVector[int](n),
	}
	for root := 0; root < n; root++ {
		if w.parent.Has(root) {
			continue
		}
		if err := w.tree(root); err != nil {
			return nil, err
		}
	}

	// Self-parented roots become forest.NoParent.
	return forest.FromParentVector(w.parent, 0)
}

// tree grows one BFS tree from root, level by level.
func (w *walker) tree(root int) error {
	if err := w.parent.Set(root, root); err != nil {
		return fmt.Errorf("bfs: root %d: %w", root, err)
	}
	w.front.Clear()
	if err := w.front.Set(root, root); err != nil {
		return fmt.Errorf("bfs: root %d: %w", root, err)
	}
	w.opts.OnRoot(root)

	for level := 1; ; level++ {
		// cancellation check (once per level)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		ex := w.opts.Executor
		// next[j] = min over frontier neighbours i of i, for unassigned j.
		err := sparse.VxM(ex, w.next, sparse.ComplementMask(w.parent), w.front, w.adj, sparse.MinFirstInt())
		if err != nil {
			return fmt.Errorf("bfs: root %d level %d: %w", root, level, err)
		}
		if w.next.Nvals() == 0 {
			return nil
		}
		if err = sparse.EWiseAdd(ex, w.parent, w.parent, w.next, sparse.Second[int], sparse.StructMask(w.next)); err != nil {
			return fmt.Errorf("bfs: root %d level %d: %w", root, level, err)
		}
		if err = sparse.Apply(ex, w.front, w.next, func(i, _ int) int { return i }); err != nil {
			return fmt.Errorf("bfs: root %d level %d: %w", root, level, err)
		}
		w.opts.OnLevel(root, level, w.front.Nvals())
	}
}
