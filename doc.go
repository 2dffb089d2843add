// Package spanforest computes minimum spanning forests and breadth-first
// parent forests over large sparse undirected graphs, and benchmarks the
// algorithm variants against each other.
//
// What is here?
//
//	• Graph store: validated symmetric CSR adjacency built from edge lists or
//	  coordinate (MatrixMarket-style) files
//	• Sparse backend: generic vectors, masks, monoids and semirings with
//	  sequential and data-parallel executors
//	• Minimum spanning forests: Boruvka (component contraction), Prim (scan or
//	  ordered extraction) and a Kruskal reference
//	• BFS parent forests: level-synchronous, one tree per component
//	• Harness: warm-up and measured runs, timeouts, verification, CSV and
//	  Postgres reports, Prometheus metrics
//
// Packages:
//
//	unionfind/: disjoint sets with path compression and union by size
//	sparse/   : CSR matrix, sparse vectors, executors and bulk operations
//	mtx/      : coordinate file reader (mmap) and writer
//	graph/    : immutable undirected weighted graph
//	forest/   : Tree result, extraction from parents or edge sets, checks
//	msf/      : Boruvka, Prim, Kruskal
//	bfs/      : multi-source parent forest
//	algorithm/: load / compute / result lifecycle shared by all algorithms
//	builder/  : deterministic synthetic graphs (Trefethen, grid, G(n,p) ...)
//	bench/    : benchmark runner, metrics, tracing and sinks
//	config/   : environment and .env configuration
//	server/   : /metrics, /healthz and /report endpoints
//
// Quick example:
//
//	    0──1──2
//	    │ /
//	    3
//
//	g, _ := graph.New(4, []graph.Edge{
//		{U: 0, V: 1, W: 1}, {U: 1, V: 2, W: 4},
//		{U: 0, V: 3, W: 3}, {U: 1, V: 3, W: 2},
//	})
//	tr, _ := msf.Boruvka(g, msf.WithExecutor(sparse.Parallel{}))
//	fmt.Println(tr.Parent, tr.Weight) // [-1 0 1 1] 7
//
// Command forestbench (cmd/forestbench) runs the harness and generates
// benchmark inputs.
package spanforest
