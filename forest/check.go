// SPDX-License-Identifier: MIT

package forest

import (
	"fmt"

	"github.com/katalvlaran/spanforest/graph"
)

// Visitation colours for the parent walk.
const (
	white = iota // not seen
	gray         // on the current climb
	black        // known to reach a root
)

// Validate checks that every parent index lies in [-1, N) and that following
// parent links from any vertex reaches a root.
//
// Each climb marks vertices gray; meeting a gray vertex again is a cycle,
// meeting a black vertex or a root ends the climb and blackens the path.
// Complexity: O(N).
func (t *Tree) Validate() error {
	if len(t.Parent) != t.N {
		return fmt.Errorf("%w: len(Parent)=%d, N=%d", ErrSizeMismatch, len(t.Parent), t.N)
	}
	for v, p := range t.Parent {
		if p < NoParent || p >= t.N {
			return fmt.Errorf("%w: parent[%d] = %d", ErrParentRange, v, p)
		}
	}

	state := make([]uint8, t.N)
	path := make([]int, 0, 64)
	for v := 0; v < t.N; v++ {
		if state[v] != white {
			continue
		}
		// 1) Climb.
		path = path[:0]
		u := v
		for u != NoParent && state[u] == white {
			state[u] = gray
			path = append(path, u)
			u = t.Parent[u]
		}
		// 2) Gray means we came back onto this climb.
		if u != NoParent && state[u] == gray {
			return fmt.Errorf("%w: through vertex %d", ErrCycle, u)
		}
		// 3) Settle.
		for _, w := range path {
			state[w] = black
		}
	}

	return nil
}

// CheckSpanning verifies that t is a spanning forest of g: valid, every
// parent link is an edge of g, and each connected component of g is exactly
// one tree.
func CheckSpanning(t *Tree, g *graph.Graph) error {
	if g == nil {
		return graph.ErrNilGraph
	}
	if t.N != g.N() {
		return fmt.Errorf("%w: tree %d, graph %d", ErrSizeMismatch, t.N, g.N())
	}
	if err := t.Validate(); err != nil {
		return err
	}
	for v, p := range t.Parent {
		if p == NoParent {
			continue
		}
		if _, ok := g.Weight(v, p); !ok {
			return fmt.Errorf("%w: %d -> %d", ErrMissingEdge, v, p)
		}
	}

	// An acyclic forest whose links are graph edges never joins two
	// components, so it spans iff it has exactly one root per component.
	_, comps := g.Components()
	if roots := len(t.Roots()); roots != comps {
		return fmt.Errorf("%w: %d trees for %d components", ErrNotSpanning, roots, comps)
	}

	return nil
}

// EdgeWeight sums g's weights over t's parent links.
func EdgeWeight(t *Tree, g *graph.Graph) (float64, error) {
	if g == nil {
		return 0, graph.ErrNilGraph
	}
	if t.N != g.N() {
		return 0, fmt.Errorf("%w: tree %d, graph %d", ErrSizeMismatch, t.N, g.N())
	}
	var sum float64
	for v, p := range t.Parent {
		if p == NoParent {
			continue
		}
		w, ok := g.Weight(v, p)
		if !ok {
			return 0, fmt.Errorf("%w: %d -> %d", ErrMissingEdge, v, p)
		}
		sum += w
	}

	return sum, nil
}
