// SPDX-License-Identifier: MIT
// Package sparse: bulk operations.
//
// Every operation takes the Executor explicitly. Dense paths walk [0, n)
// through ex.Range and may run in parallel; sparse paths walk a short index
// list on the calling goroutine. Both visit contributions in ascending index
// order, so the result never depends on the path or the executor.

package sparse

import (
	"sync"
)

// sparseRatio selects the sparse path when k·sparseRatio < n.
const sparseRatio = 16

// ReduceRows writes, for every row i of m, the monoid fold of
// mapFn(i, j, m[i,j]) over the row's entries in ascending column order.
// Entries for which mapFn returns ok == false are skipped; rows with no
// surviving entry are absent from dst.
//
// Errors: ErrNilOperand, ErrDimensionMismatch, or whatever ex.Range returns.
// On error the contents of dst are unspecified.
// Complexity: O(n + E).
func ReduceRows[T any](
	ex Executor,
	dst *Vector[T],
	m *Matrix,
	mon Monoid[T],
	mapFn func(row, col int, w float64) (T, bool),
) error {
	const op = "ReduceRows"
	if ex == nil || dst == nil || m == nil || mon.Op == nil || mapFn == nil {
		return sparseErrorf(op, ErrNilOperand)
	}
	if dst.Len() != m.N() {
		return sparseErrorf(op, ErrDimensionMismatch)
	}

	err := ex.Range(m.N(), func(lo, hi int) error {
		for i := lo; i < hi; i++ {
			cols, vals := m.Row(i)
			acc, hit := mon.Identity, false
			for k, j := range cols {
				x, ok := mapFn(i, j, vals[k])
				if !ok {
					continue
				}
				acc, hit = mon.Op(acc, x), true
			}
			if hit {
				dst.denseStore(i, acc)
			} else {
				dst.denseDrop(i)
			}
		}

		return nil
	})
	dst.rebuild()
	if err != nil {
		return sparseErrorf(op, err)
	}

	return nil
}

// EWiseAdd computes the element-wise union of a and b into dst at the
// positions the mask allows:
//   - both present: op(a[i], b[i])
//   - one present:  that value
//   - neither:      dst[i] becomes absent
//
// Positions the mask rejects keep their previous dst value. dst may alias a
// or b.
func EWiseAdd[T any](ex Executor, dst, a, b *Vector[T], op BinaryOp[T], mask Mask) error {
	const name = "EWiseAdd"
	if ex == nil || dst == nil || a == nil || b == nil || op == nil {
		return sparseErrorf(name, ErrNilOperand)
	}
	n := dst.Len()
	if a.Len() != n || b.Len() != n || mask.check(n) != nil {
		return sparseErrorf(name, ErrDimensionMismatch)
	}

	one := func(i int) (T, bool) {
		av, aok := a.Get(i)
		bv, bok := b.Get(i)
		switch {
		case aok && bok:
			return op(av, bv), true
		case aok:
			return av, true
		case bok:
			return bv, true
		}
		var zero T

		return zero, false
	}

	if idx, ok := mask.sparseIndices(n); ok {
		for _, i := range idx {
			if x, hit := one(i); hit {
				dst.store(i, x)
			} else {
				dst.Remove(i)
			}
		}

		return nil
	}

	err := ex.Range(n, func(lo, hi int) error {
		for i := lo; i < hi; i++ {
			if !mask.Allows(i) {
				continue
			}
			if x, hit := one(i); hit {
				dst.denseStore(i, x)
			} else {
				dst.denseDrop(i)
			}
		}

		return nil
	})
	dst.rebuild()
	if err != nil {
		return sparseErrorf(name, err)
	}

	return nil
}

// AssignConstant stores x at every position the mask allows.
func AssignConstant[T any](ex Executor, dst *Vector[T], mask Mask, x T) error {
	const name = "AssignConstant"
	if ex == nil || dst == nil {
		return sparseErrorf(name, ErrNilOperand)
	}
	n := dst.Len()
	if mask.check(n) != nil {
		return sparseErrorf(name, ErrDimensionMismatch)
	}

	if idx, ok := mask.sparseIndices(n); ok {
		for _, i := range idx {
			dst.store(i, x)
		}

		return nil
	}

	err := ex.Range(n, func(lo, hi int) error {
		for i := lo; i < hi; i++ {
			if mask.Allows(i) {
				dst.denseStore(i, x)
			}
		}

		return nil
	})
	dst.rebuild()
	if err != nil {
		return sparseErrorf(name, err)
	}

	return nil
}

// Apply replaces dst with fn(i, src[i]) over the present positions of src.
// Positions absent from src become absent in dst.
func Apply[T, U any](ex Executor, dst *Vector[U], src *Vector[T], fn func(i int, x T) U) error {
	const name = "Apply"
	if ex == nil || dst == nil || src == nil || fn == nil {
		return sparseErrorf(name, ErrNilOperand)
	}
	n := dst.Len()
	if src.Len() != n {
		return sparseErrorf(name, ErrDimensionMismatch)
	}
	if any(dst) == any(src) {
		return sparseErrorf(name, ErrAliased)
	}

	if src.Nvals()*sparseRatio < n {
		dst.Clear()
		idx, vals := src.Read()
		for k, i := range idx {
			dst.store(i, fn(i, vals[k]))
		}

		return nil
	}

	err := ex.Range(n, func(lo, hi int) error {
		for i := lo; i < hi; i++ {
			if x, ok := src.Get(i); ok {
				dst.denseStore(i, fn(i, x))
			} else {
				dst.denseDrop(i)
			}
		}

		return nil
	})
	dst.rebuild()
	if err != nil {
		return sparseErrorf(name, err)
	}

	return nil
}

// SelectVector replaces dst with the entries of src for which keep returns
// true.
func SelectVector[T any](ex Executor, dst, src *Vector[T], keep func(i int, x T) bool) error {
	const name = "SelectVector"
	if ex == nil || dst == nil || src == nil || keep == nil {
		return sparseErrorf(name, ErrNilOperand)
	}
	n := dst.Len()
	if src.Len() != n {
		return sparseErrorf(name, ErrDimensionMismatch)
	}
	if dst == src {
		return sparseErrorf(name, ErrAliased)
	}

	if src.Nvals()*sparseRatio < n {
		dst.Clear()
		idx, vals := src.Read()
		for k, i := range idx {
			if keep(i, vals[k]) {
				dst.store(i, vals[k])
			}
		}

		return nil
	}

	err := ex.Range(n, func(lo, hi int) error {
		for i := lo; i < hi; i++ {
			if x, ok := src.Get(i); ok && keep(i, x) {
				dst.denseStore(i, x)
			} else {
				dst.denseDrop(i)
			}
		}

		return nil
	})
	dst.rebuild()
	if err != nil {
		return sparseErrorf(name, err)
	}

	return nil
}

// ExtractRow replaces dst with row i of m.
// Complexity: O(Nvals(dst) + deg(i)).
func ExtractRow(dst *Vector[float64], m *Matrix, i int) error {
	const name = "ExtractRow"
	if dst == nil || m == nil {
		return sparseErrorf(name, ErrNilOperand)
	}
	if dst.Len() != m.N() {
		return sparseErrorf(name, ErrDimensionMismatch)
	}
	if i < 0 || i >= m.N() {
		return sparseErrorf(name, ErrOutOfRange)
	}

	dst.Clear()
	cols, vals := m.Row(i)
	for k, j := range cols {
		dst.store(j, vals[k])
	}

	return nil
}

// Select returns a new matrix holding the entries of m for which keep
// returns true. keep is called twice per entry and must be pure.
// Complexity: O(n + E).
func Select(ex Executor, m *Matrix, keep func(i, j int, w float64) bool) (*Matrix, error) {
	const name = "Select"
	if ex == nil || m == nil || keep == nil {
		return nil, sparseErrorf(name, ErrNilOperand)
	}
	n := m.N()

	// 1) Count survivors per row.
	ptr := make([]int, n+1)
	err := ex.Range(n, func(lo, hi int) error {
		for i := lo; i < hi; i++ {
			cols, vals := m.Row(i)
			c := 0
			for k, j := range cols {
				if keep(i, j, vals[k]) {
					c++
				}
			}
			ptr[i+1] = c
		}

		return nil
	})
	if err != nil {
		return nil, sparseErrorf(name, err)
	}
	for i := 0; i < n; i++ {
		ptr[i+1] += ptr[i]
	}

	// 2) Fill each row's slot range.
	out := &Matrix{
		n:   n,
		ptr: ptr,
		col: make([]int, ptr[n]),
		val: make([]float64, ptr[n]),
	}
	err = ex.Range(n, func(lo, hi int) error {
		for i := lo; i < hi; i++ {
			cols, vals := m.Row(i)
			p := ptr[i]
			for k, j := range cols {
				if keep(i, j, vals[k]) {
					out.col[p], out.val[p] = j, vals[k]
					p++
				}
			}
		}

		return nil
	})
	if err != nil {
		return nil, sparseErrorf(name, err)
	}

	return out, nil
}

// ArgMin returns the index and value of the smallest present entry of v
// that the mask allows, ordered by less. Ties go to the lowest index.
// ok is false when no entry qualifies.
// Complexity: O(n).
func ArgMin[T any](ex Executor, v *Vector[T], mask Mask, less func(a, b T) bool) (idx int, val T, ok bool, err error) {
	const name = "ArgMin"
	if ex == nil || v == nil || less == nil {
		return -1, val, false, sparseErrorf(name, ErrNilOperand)
	}
	if mask.check(v.Len()) != nil {
		return -1, val, false, sparseErrorf(name, ErrDimensionMismatch)
	}

	var mu sync.Mutex
	best := -1
	var bestVal T
	err = ex.Range(v.Len(), func(lo, hi int) error {
		lb := -1
		var lv T
		for i := lo; i < hi; i++ {
			x, present := v.Get(i)
			if !present || !mask.Allows(i) {
				continue
			}
			if lb < 0 || less(x, lv) {
				lb, lv = i, x
			}
		}
		if lb < 0 {
			return nil
		}
		mu.Lock()
		if best < 0 || less(lv, bestVal) || (!less(bestVal, lv) && lb < best) {
			best, bestVal = lb, lv
		}
		mu.Unlock()

		return nil
	})
	if err != nil {
		return -1, val, false, sparseErrorf(name, err)
	}
	if best < 0 {
		return -1, val, false, nil
	}

	return best, bestVal, true, nil
}

// VxM computes out = x·m over the semiring sr with replace semantics: out is
// cleared, then out[j] = Add over present x[i] of Mul(x[i], m[i,j]) for
// every j the mask allows and that receives at least one contribution.
//
// Two strategies produce identical results:
//   - push: walk the present entries of x (sequential, O(k log k + Σdeg)).
//   - pull: for every allowed j scan row j of a symmetric m (parallel, O(n+E)).
//
// Pull is chosen when x holds more than n/sparseRatio entries and m is
// symmetric. out must not alias x.
func VxM[T any](ex Executor, out *Vector[T], mask Mask, x *Vector[T], m *Matrix, sr Semiring[T]) error {
	const name = "VxM"
	if ex == nil || out == nil || x == nil || m == nil || sr.Add.Op == nil || sr.Mul == nil {
		return sparseErrorf(name, ErrNilOperand)
	}
	n := m.N()
	if out.Len() != n || x.Len() != n || mask.check(n) != nil {
		return sparseErrorf(name, ErrDimensionMismatch)
	}
	if out == x {
		return sparseErrorf(name, ErrAliased)
	}

	if x.Nvals()*sparseRatio < n || !m.Symmetric() {
		out.Clear()
		idx, xs := x.Read()
		for k, i := range idx {
			cols, vals := m.Row(i)
			for kk, j := range cols {
				if !mask.Allows(j) {
					continue
				}
				p := sr.Mul(xs[k], vals[kk])
				if cur, ok := out.Get(j); ok {
					out.vals[j] = sr.Add.Op(cur, p)
				} else {
					out.store(j, sr.Add.Op(sr.Add.Identity, p))
				}
			}
		}

		return nil
	}

	err := ex.Range(n, func(lo, hi int) error {
		for j := lo; j < hi; j++ {
			if !mask.Allows(j) {
				out.denseDrop(j)
				continue
			}
			cols, vals := m.Row(j)
			acc, hit := sr.Add.Identity, false
			for kk, i := range cols {
				xi, ok := x.Get(i)
				if !ok {
					continue
				}
				acc, hit = sr.Add.Op(acc, sr.Mul(xi, vals[kk])), true
			}
			if hit {
				out.denseStore(j, acc)
			} else {
				out.denseDrop(j)
			}
		}

		return nil
	})
	out.rebuild()
	if err != nil {
		return sparseErrorf(name, err)
	}

	return nil
}
