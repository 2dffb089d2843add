// SPDX-License-Identifier: MIT

package graph

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/spanforest/mtx"
	"github.com/katalvlaran/spanforest/sparse"
	"github.com/katalvlaran/spanforest/unionfind"
)

// Graph is an immutable undirected graph. See the package doc for the
// normalization rules.
type Graph struct {
	n        int
	edges    []Edge // canonical U < V, sorted by (U, V), one per pair
	adj      *sparse.Matrix
	weighted bool
}

// New validates edges and builds the graph.
//
// Steps:
//  1. Validate endpoints, loops and weights.
//  2. Canonicalize each edge to U < V and sort by (U, V).
//  3. Collapse duplicate pairs to their minimum weight.
//  4. Materialize both directions in the CSR adjacency.
//
// Complexity: O(n + E log E).
func New(n int, edges []Edge, opts ...Option) (*Graph, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeOrder, n)
	}

	// 1) Validate and canonicalize into a private copy.
	canon := make([]Edge, 0, len(edges))
	for _, e := range edges {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			return nil, fmt.Errorf("%w: (%d, %d) with n=%d", ErrVertexRange, e.U, e.V, n)
		}
		if e.U == e.V {
			if o.SkipSelfLoops {
				continue
			}

			return nil, fmt.Errorf("%w: vertex %d", ErrSelfLoop, e.U)
		}
		if o.Unweighted {
			e.W = 1
		} else if math.IsNaN(e.W) || math.IsInf(e.W, 0) || e.W <= 0 {
			return nil, fmt.Errorf("%w: (%d, %d) weight %v", ErrBadWeight, e.U, e.V, e.W)
		}
		if e.U > e.V {
			e.U, e.V = e.V, e.U
		}
		canon = append(canon, e)
	}

	// 2) Sort by (U, V, W) so the first of every run is the minimum.
	slices.SortFunc(canon, func(a, b Edge) int {
		if c := cmp.Compare(a.U, b.U); c != 0 {
			return c
		}
		if c := cmp.Compare(a.V, b.V); c != 0 {
			return c
		}

		return cmp.Compare(a.W, b.W)
	})

	// 3) Collapse duplicates.
	canon = slices.CompactFunc(canon, func(a, b Edge) bool { return a.U == b.U && a.V == b.V })

	// 4) Both directions into the adjacency.
	entries := make([]sparse.Entry, 0, 2*len(canon))
	for _, e := range canon {
		entries = append(entries,
			sparse.Entry{Row: e.U, Col: e.V, Val: e.W},
			sparse.Entry{Row: e.V, Col: e.U, Val: e.W},
		)
	}
	adj, err := sparse.NewMatrix(n, entries, sparse.MinFloat)
	if err != nil {
		return nil, fmt.Errorf("graph.New: %w", err)
	}

	return &Graph{n: n, edges: slices.Clip(canon), adj: adj, weighted: !o.Unweighted}, nil
}

// Load reads a coordinate file and builds the graph. Self-loops in the file
// are skipped; with WithUnweighted the file is parsed in pattern mode.
func Load(path string, opts ...Option) (*Graph, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	f, err := mtx.ReadFile(path, mtx.WithPattern(o.Unweighted))
	if err != nil {
		return nil, fmt.Errorf("graph.Load: %w", err)
	}
	// A pattern banner makes the graph unweighted even without the option.
	if f.Pattern {
		opts = append(opts, WithUnweighted())
	}

	edges := make([]Edge, len(f.Entries))
	for i, e := range f.Entries {
		edges[i] = Edge{U: e.Row, V: e.Col, W: e.Val}
	}
	g, err := New(f.Rows, edges, opts...)
	if err != nil {
		return nil, fmt.Errorf("graph.Load %s: %w", path, err)
	}

	return g, nil
}

// N returns the vertex count.
func (g *Graph) N() int { return g.n }

// M returns the number of distinct undirected edges.
func (g *Graph) M() int { return len(g.edges) }

// Weighted reports whether edge weights are meaningful.
func (g *Graph) Weighted() bool { return g.weighted }

// Adjacency returns the symmetric adjacency matrix. Callers must not modify
// the slices returned by its Row method.
func (g *Graph) Adjacency() *sparse.Matrix { return g.adj }

// Degree returns the number of neighbours of v.
func (g *Graph) Degree(v int) int { return g.adj.Degree(v) }

// Neighbors returns v's neighbours in ascending order with aligned weights.
// The slices alias internal storage.
func (g *Graph) Neighbors(v int) ([]int, []float64) { return g.adj.Row(v) }

// Weight returns the weight of edge {u, v} and whether it exists.
// Complexity: O(log deg(u)).
func (g *Graph) Weight(u, v int) (float64, bool) { return g.adj.At(u, v) }

// Edges returns a copy of the canonical edge list (U < V, sorted).
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// Components returns, for each vertex, the smallest vertex index of its
// connected component, plus the number of components.
// Complexity: O(n + E·α(n)).
func (g *Graph) Components() ([]int, int) {
	uf := unionfind.New(g.n)
	for _, e := range g.edges {
		a, b := uf.Find(e.U), uf.Find(e.V)
		if a != b {
			uf.Union(a, b)
		}
	}

	label := make([]int, g.n)
	first := make(map[int]int, uf.Count())
	for v := 0; v < g.n; v++ {
		r := uf.Find(v)
		if _, ok := first[r]; !ok {
			first[r] = v
		}
		label[v] = first[r]
	}

	return label, uf.Count()
}

// Stats returns structural figures of the graph.
func (g *Graph) Stats() Stats {
	s := Stats{N: g.n, M: len(g.edges)}
	for v := 0; v < g.n; v++ {
		d := g.adj.Degree(v)
		if v == 0 || d < s.MinDegree {
			s.MinDegree = d
		}
		s.MaxDegree = max(s.MaxDegree, d)
		if d == 0 {
			s.Isolated++
		}
	}
	for _, e := range g.edges {
		s.TotalWeight += e.W
	}

	return s
}
