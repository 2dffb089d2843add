package msf

import (
	"fmt"

	"github.com/katalvlaran/spanforest/forest"
	"github.com/katalvlaran/spanforest/graph"
	"github.com/katalvlaran/spanforest/sparse"
	"github.com/katalvlaran/spanforest/unionfind"
)

// Boruvka computes a minimum spanning forest by repeated component
// contraction.
//
// Steps (per round):
//  1. Snapshot the component root of every vertex.
//  2. Prune the working adjacency to entries joining different components;
//     stop when nothing is left.
//  3. Row-wise min of (weight, destination) keys: the cheapest outgoing edge
//     of every vertex.
//  4. Per component keep the cheapest vertex candidate; on equal weight the
//     lowest source vertex wins.
//  5. For each component root r in ascending order that is still a root,
//     join r with the component of the candidate's destination unless they
//     already merged this round, recording the edge.
//  6. Stop when a round merges nothing.
//
// The recorded edges are oriented into a parent array by forest.FromEdges.
// The input graph is never modified.
//
// Complexity: O(log n) rounds in practice, each O(n + E).
func Boruvka(g *graph.Graph, opts ...Option) (*forest.Tree, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := buildOptions(opts)
	n := g.N()
	if n <= 1 || g.M() == 0 {
		return forest.FromEdges(n, nil)
	}

	var (
		ex      = o.Executor
		uf      = unionfind.New(n)
		work    = g.Adjacency()
		cand    = sparse.MustVector[Key](n)
		best    = make([]int, n) // per root: source vertex of its candidate
		bestKey = make([]Key, n)
		chosen  = make([]graph.Edge, 0, n-1)
	)

	for round := 1; ; round++ {
		// 1) Component snapshot.
		roots := uf.Roots()
		components := uf.Count()

		// 2) Drop edges inside a component.
		var err error
		work, err = sparse.Select(ex, work, func(i, j int, _ float64) bool {
			return roots[i] != roots[j]
		})
		if err != nil {
			return nil, fmt.Errorf("msf.Boruvka: round %d: %w", round, err)
		}
		if work.Nvals() == 0 {
			break
		}

		// 3) Cheapest edge per vertex.
		err = sparse.ReduceRows(ex, cand, work, KeyMin(), func(_, j int, w float64) (Key, bool) {
			return Key{Weight: w, Dest: j}, true
		})
		if err != nil {
			return nil, fmt.Errorf("msf.Boruvka: round %d: %w", round, err)
		}

		// 4) Cheapest edge per component. Read is ascending, so strict <
		//    keeps the lowest source on ties.
		for i := range best {
			best[i] = -1
		}
		idx, keys := cand.Read()
		for k, u := range idx {
			r := roots[u]
			if best[r] < 0 || keys[k].Weight < bestKey[r].Weight {
				best[r], bestKey[r] = u, keys[k]
			}
		}

		// 5) Merge.
		merges := 0
		for r := 0; r < n; r++ {
			if best[r] < 0 || !uf.IsRoot(r) {
				continue
			}
			key := bestKey[r]
			r2 := uf.Find(key.Dest)
			if r2 == r {
				continue
			}
			uf.Union(r, r2)
			chosen = append(chosen, graph.Edge{U: best[r], V: key.Dest, W: key.Weight})
			merges++
		}

		if o.OnRound != nil {
			o.OnRound(round, components, merges)
		}
		// 6) Quiescence.
		if merges == 0 {
			break
		}
	}

	t, err := forest.FromEdges(n, chosen)
	if err != nil {
		return nil, fmt.Errorf("msf.Boruvka: %w", err)
	}

	return t, nil
}
