package msf

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/spanforest/forest"
	"github.com/katalvlaran/spanforest/graph"
	"github.com/katalvlaran/spanforest/unionfind"
)

// Kruskal computes a minimum spanning forest by scanning edges in ascending
// weight order and keeping those that join two components. It does not use
// the sparse backend and serves as the reference the other algorithms are
// checked against.
//
// Steps:
//  1. Copy the canonical edge list and stable-sort it by weight; equal
//     weights keep the graph's (U, V) order.
//  2. For each edge whose endpoints lie in different components, union them
//     and keep the edge.
//  3. Stop early once n-1 edges are kept.
//  4. Orient the kept edges into a parent array.
//
// Complexity: O(E log E + E·α(n)) time, O(n + E) memory.
func Kruskal(g *graph.Graph, _ ...Option) (*forest.Tree, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.N()

	// 1) Sort a private copy.
	edges := g.Edges()
	slices.SortStableFunc(edges, func(a, b graph.Edge) int { return cmp.Compare(a.W, b.W) })

	// 2) Union-find sweep.
	uf := unionfind.New(n)
	kept := make([]graph.Edge, 0, max(n-1, 0))
	for _, e := range edges {
		a, b := uf.Find(e.U), uf.Find(e.V)
		if a == b {
			continue
		}
		uf.Union(a, b)
		kept = append(kept, e)
		// 3) Spanning tree complete.
		if len(kept) == n-1 {
			break
		}
	}

	// 4) Orient.
	return forest.FromEdges(n, kept)
}
