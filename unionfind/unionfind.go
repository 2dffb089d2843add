// Package unionfind implements a fixed-size disjoint-set forest over the
// integer vertices [0, n) with full path compression and union by size.
//
// Find walks to the root once, then rewrites every visited node to point at
// the root directly. Union must be called with two roots and attaches the
// smaller set under the larger one, which keeps every chain O(log n) deep
// even before compression kicks in.
//
// Complexity:
//
//   - New:   O(n) time and memory.
//   - Find:  amortized O(α(n)).
//   - Union: O(1) (callers pass roots).
//
// A UnionFind is not safe for concurrent use.
package unionfind

// UnionFind tracks a partition of [0, n) into disjoint components.
type UnionFind struct {
	parent []int // parent[x] == x for roots
	size   []int // valid only at roots: number of members
	count  int   // number of components
}

// New returns a UnionFind with n singleton components.
// A negative n is treated as 0.
func New(n int) *UnionFind {
	if n < 0 {
		n = 0
	}
	uf := &UnionFind{
		parent: make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := range uf.parent {
		uf.parent[i] = i
		uf.size[i] = 1
	}

	return uf
}

// Len returns the number of elements.
func (uf *UnionFind) Len() int { return len(uf.parent) }

// Count returns the current number of components.
func (uf *UnionFind) Count() int { return uf.count }

// Find returns the root of x's component and points every node on the
// traversed path directly at that root.
func (uf *UnionFind) Find(x int) int {
	// 1) Locate the root.
	root := x
	for uf.parent[root] != root {
		root = uf.parent[root]
	}
	// 2) Compress: rewrite the path in a second pass.
	for uf.parent[x] != root {
		next := uf.parent[x]
		uf.parent[x] = root
		x = next
	}

	return root
}

// Union merges the components rooted at a and b and returns the new root.
// Both arguments must be roots. The smaller component is attached under the
// larger one; on equal sizes a is attached under b.
// If a == b nothing changes and a is returned.
func (uf *UnionFind) Union(a, b int) int {
	if a == b {
		return a
	}
	if uf.size[a] > uf.size[b] {
		a, b = b, a
	}
	uf.parent[a] = b
	uf.size[b] += uf.size[a]
	uf.count--

	return b
}

// Connected reports whether x and y are in the same component.
func (uf *UnionFind) Connected(x, y int) bool {
	return uf.Find(x) == uf.Find(y)
}

// Size returns the number of members in x's component.
func (uf *UnionFind) Size(x int) int {
	return uf.size[uf.Find(x)]
}

// IsRoot reports whether x is currently the root of its component.
func (uf *UnionFind) IsRoot(x int) bool {
	return uf.parent[x] == x
}

// Roots returns a fresh slice holding Find(i) for every element.
// Complexity: O(n·α(n)).
func (uf *UnionFind) Roots() []int {
	roots := make([]int, len(uf.parent))
	for i := range roots {
		roots[i] = uf.Find(i)
	}

	return roots
}
