// SPDX-License-Identifier: MIT
// Package sparse: square CSR matrix of float64 values.

package sparse

import (
	"cmp"
	"slices"
	"sort"
	"sync"
)

// Entry is one (row, col, value) triple.
type Entry struct {
	Row, Col int
	Val      float64
}

// Matrix is an n×n compressed-sparse-row matrix. Column indices inside a
// row are strictly ascending. A Matrix is immutable after construction and
// safe for concurrent reads.
type Matrix struct {
	n   int
	ptr []int     // len n+1; row i occupies [ptr[i], ptr[i+1])
	col []int     // column indices, ascending per row
	val []float64 // values aligned with col

	symOnce sync.Once
	sym     bool
}

// NewMatrix builds an n×n matrix from entries. Entries may come in any
// order; entries sharing a (row, col) are folded with dup in input order,
// or the last one wins when dup is nil.
//
// Errors: ErrBadShape for n < 0, ErrOutOfRange for indices outside [0, n).
// Complexity: O(E log E) time, O(n + E) memory.
func NewMatrix(n int, entries []Entry, dup BinaryOp[float64]) (*Matrix, error) {
	if n < 0 {
		return nil, sparseErrorf("NewMatrix", ErrBadShape)
	}
	for _, e := range entries {
		if e.Row < 0 || e.Row >= n || e.Col < 0 || e.Col >= n {
			return nil, sparseErrorf("NewMatrix", ErrOutOfRange)
		}
	}

	// 1) Stable sort a private copy by (row, col) so duplicates stay in input order.
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b Entry) int {
		if c := cmp.Compare(a.Row, b.Row); c != 0 {
			return c
		}

		return cmp.Compare(a.Col, b.Col)
	})

	// 2) Fold duplicates and emit CSR arrays in one pass.
	m := &Matrix{
		n:   n,
		ptr: make([]int, n+1),
		col: make([]int, 0, len(sorted)),
		val: make([]float64, 0, len(sorted)),
	}
	for k, e := range sorted {
		last := len(m.col) - 1
		if k > 0 && sorted[k-1].Row == e.Row && sorted[k-1].Col == e.Col {
			if dup != nil {
				m.val[last] = dup(m.val[last], e.Val)
			} else {
				m.val[last] = e.Val
			}
			continue
		}
		m.col = append(m.col, e.Col)
		m.val = append(m.val, e.Val)
		m.ptr[e.Row+1]++
	}
	// 3) Prefix-sum row counts into offsets.
	for i := 0; i < n; i++ {
		m.ptr[i+1] += m.ptr[i]
	}

	return m, nil
}

// N returns the dimension.
func (m *Matrix) N() int { return m.n }

// Nvals returns the number of stored entries.
func (m *Matrix) Nvals() int { return len(m.col) }

// Degree returns the number of stored entries in row i.
func (m *Matrix) Degree(i int) int { return m.ptr[i+1] - m.ptr[i] }

// Row returns the column indices and values of row i. The slices alias the
// matrix storage and must not be modified.
func (m *Matrix) Row(i int) ([]int, []float64) {
	lo, hi := m.ptr[i], m.ptr[i+1]

	return m.col[lo:hi:hi], m.val[lo:hi:hi]
}

// At returns the value at (i, j) and whether it is stored.
// Complexity: O(log deg(i)).
func (m *Matrix) At(i, j int) (float64, bool) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, false
	}
	cols, vals := m.Row(i)
	k := sort.SearchInts(cols, j)
	if k < len(cols) && cols[k] == j {
		return vals[k], true
	}

	return 0, false
}

// Entries returns every stored entry in row-major order.
func (m *Matrix) Entries() []Entry {
	out := make([]Entry, 0, len(m.col))
	for i := 0; i < m.n; i++ {
		cols, vals := m.Row(i)
		for k, j := range cols {
			out = append(out, Entry{Row: i, Col: j, Val: vals[k]})
		}
	}

	return out
}

// Symmetric reports whether m equals its transpose, structurally and by
// value. The answer is computed once and cached.
// Complexity: O(E log d) on first call.
func (m *Matrix) Symmetric() bool {
	m.symOnce.Do(func() {
		for i := 0; i < m.n; i++ {
			cols, vals := m.Row(i)
			for k, j := range cols {
				w, ok := m.At(j, i)
				if !ok || w != vals[k] {
					return
				}
			}
		}
		m.sym = true
	})

	return m.sym
}
