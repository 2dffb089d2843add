// Package msf computes minimum spanning forests of undirected, weighted
// *graph.Graph values. A spanning forest connects every vertex of each
// connected component with the minimum possible total weight; on a connected
// graph it is the minimum spanning tree.
//
// What & Why
//
//   - What is an MSF?
//     Given G = (V, E, w), an MSF is an acyclic subset F ⊆ E with exactly one
//     tree per connected component of G and minimum Σ w(e) over F.
//
//   - Why three algorithms?
//     The package exists to compare formulations of the same problem over a
//     generic sparse backend (package sparse):
//
//   - Boruvka(g, opts...) (*forest.Tree, error)
//
//   - Strategy: every round, each component picks its cheapest outgoing edge
//     (row-wise min over the pruned adjacency) and the components are
//     contracted through a union-find. Rounds repeat until no cross edge
//     remains.
//
//   - Complexity: O(log n) rounds, each O(n + E) and data-parallel.
//
//   - Prim(g, opts...) (*forest.Tree, error)
//
//   - Strategy: grow one tree at a time from every unvisited vertex,
//     attaching the closest outside vertex. Relaxation is expressed as sparse
//     vector operations; extraction is a full scan (StrategyScan) or a lazy
//     heap (StrategyOrdered).
//
//   - Complexity: O(n² + E) scan, O((n + E) log E) ordered.
//
//   - Kruskal(g) (*forest.Tree, error)
//
//   - Strategy: sort edges by weight and keep those joining two components.
//     Plain Go, no backend; the reference oracle for tests and benchmarks.
//
//   - Complexity: O(E log E).
//
// Determinism
//
//   - Boruvka candidates compare by (weight, destination); among equal-weight
//     component candidates the lowest source vertex wins.
//   - Prim breaks distance ties by the lowest vertex index; both strategies
//     therefore build the identical forest.
//   - All three agree on the forest weight for every input. With distinct
//     weights they also agree on the edge set.
//
// Options
//
//	WithExecutor(ex)   sparse.Sequential (default) or sparse.Parallel{...}
//	WithStrategy(s)    StrategyScan (default) or StrategyOrdered, Prim only
//	WithOnRound(fn)    Boruvka per-round hook (round, components, merges)
//
// Benchmark adapters
//
// NewBoruvkaAlgorithm, NewPrimAlgorithm and NewKruskalAlgorithm wrap the
// functions in the load/compute/result lifecycle of package algorithm.
package msf
