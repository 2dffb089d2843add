package forest

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/spanforest/graph"
	"github.com/katalvlaran/spanforest/sparse"
)

// Sentinel errors.
var (
	// ErrParentRange indicates a parent index outside [-1, n).
	ErrParentRange = errors.New("forest: parent index out of range")

	// ErrCycle indicates parent links (or input edges) that form a cycle.
	ErrCycle = errors.New("forest: cycle in parent links")

	// ErrSizeMismatch indicates a tree and a graph of different order.
	ErrSizeMismatch = errors.New("forest: vertex count mismatch")

	// ErrMissingEdge indicates a parent link that is not an edge of the graph.
	ErrMissingEdge = errors.New("forest: parent link is not a graph edge")

	// ErrNotSpanning indicates a graph component split over several trees.
	ErrNotSpanning = errors.New("forest: forest does not span the graph")
)

// NoParent marks a root.
const NoParent = -1

// Tree is a rooted forest over [0, N).
type Tree struct {
	N      int
	Parent []int
	Weight float64
}

// FromParents copies parent into a Tree after range-checking every entry.
// Cycles are not checked here; call Validate for that.
func FromParents(parent []int, weight float64) (*Tree, error) {
	n := len(parent)
	for v, p := range parent {
		if p < NoParent || p >= n {
			return nil, fmt.Errorf("%w: parent[%d] = %d with n=%d", ErrParentRange, v, p, n)
		}
	}

	return &Tree{N: n, Parent: slices.Clone(parent), Weight: weight}, nil
}

// FromParentVector converts a sparse parent vector of length n. Absent
// entries and self-parents become roots.
func FromParentVector(v *sparse.Vector[int], weight float64) (*Tree, error) {
	if v == nil {
		return nil, fmt.Errorf("forest: %w", sparse.ErrNilOperand)
	}
	n := v.Len()
	parent := make([]int, n)
	for i := range parent {
		parent[i] = NoParent
	}
	idx, vals := v.Read()
	for k, i := range idx {
		p := vals[k]
		if p < 0 || p >= n {
			return nil, fmt.Errorf("%w: parent[%d] = %d with n=%d", ErrParentRange, i, p, n)
		}
		if p != i {
			parent[i] = p
		}
	}

	return &Tree{N: n, Parent: parent, Weight: weight}, nil
}

// FromEdges orients an undirected edge forest into a parent array. Every
// component is rooted at its lowest-index vertex; Weight is the sum of the
// edge weights.
//
// Steps:
//  1. Bucket edge ids per endpoint (CSR, ascending edge order).
//  2. For each unvisited vertex v in ascending order, make v a root and walk
//     its component with an explicit stack, skipping the edge used to enter
//     each vertex.
//  3. Reaching an already-visited vertex through another edge is a cycle.
//
// Complexity: O(n + E) time and memory.
func FromEdges(n int, edges []graph.Edge) (*Tree, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrParentRange, n)
	}

	// 1) CSR of incident edge ids.
	start := make([]int, n+1)
	var total float64
	for _, e := range edges {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			return nil, fmt.Errorf("%w: edge (%d, %d) with n=%d", ErrParentRange, e.U, e.V, n)
		}
		if e.U == e.V {
			return nil, fmt.Errorf("%w: self-loop at %d", ErrCycle, e.U)
		}
		start[e.U+1]++
		start[e.V+1]++
		total += e.W
	}
	for i := 0; i < n; i++ {
		start[i+1] += start[i]
	}
	inc := make([]int, start[n])
	fill := slices.Clone(start[:n])
	for id, e := range edges {
		inc[fill[e.U]] = id
		fill[e.U]++
		inc[fill[e.V]] = id
		fill[e.V]++
	}

	// 2) Iterative DFS per component.
	parent := make([]int, n)
	via := make([]int, n) // edge id used to reach each vertex
	visited := make([]bool, n)
	stack := make([]int, 0, 64)
	for root := 0; root < n; root++ {
		if visited[root] {
			continue
		}
		visited[root] = true
		parent[root], via[root] = NoParent, -1
		stack = append(stack[:0], root)
		for len(stack) > 0 {
			u := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, id := range inc[start[u]:start[u+1]] {
				if id == via[u] {
					continue
				}
				e := edges[id]
				w := e.V
				if w == u {
					w = e.U
				}
				// 3) Second route into w.
				if visited[w] {
					return nil, fmt.Errorf("%w: edge (%d, %d) closes a cycle", ErrCycle, e.U, e.V)
				}
				visited[w] = true
				parent[w], via[w] = u, id
				stack = append(stack, w)
			}
		}
	}

	return &Tree{N: n, Parent: parent, Weight: total}, nil
}

// Roots returns the root vertices in ascending order.
func (t *Tree) Roots() []int {
	var roots []int
	for v, p := range t.Parent {
		if p == NoParent {
			roots = append(roots, v)
		}
	}

	return roots
}

// Depths returns every vertex's distance (in links) to its root.
// The tree must be valid.
func (t *Tree) Depths() []int {
	const unknown = -1
	depth := make([]int, t.N)
	for v := range depth {
		depth[v] = unknown
	}
	path := make([]int, 0, 64)
	for v := 0; v < t.N; v++ {
		// Climb until a vertex with known depth, then unwind.
		path = path[:0]
		u := v
		for depth[u] == unknown && t.Parent[u] != NoParent {
			path = append(path, u)
			u = t.Parent[u]
		}
		if depth[u] == unknown {
			depth[u] = 0
		}
		d := depth[u]
		for k := len(path) - 1; k >= 0; k-- {
			d++
			depth[path[k]] = d
		}
	}

	return depth
}
