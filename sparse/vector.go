// SPDX-License-Identifier: MIT
// Package sparse: generic sparse vector.
//
// Storage is a dense value slice, a position slice and a key list:
//   - pos[i] < 0 means index i is absent; otherwise keys[pos[i]] == i.
//   - keys lists present indices in insertion order (not sorted).
//
// Sequential writers (Set, Remove, the sparse kernel paths) keep keys exact
// in O(1) per write, so clearing or enumerating a vector costs O(nvals).
// Dense kernels let parallel grains flip pos[i] between absentPos and
// pendingPos for disjoint indices, then call rebuild once (O(n)).

package sparse

import "slices"

const (
	absentPos  = -1
	pendingPos = -2 // present, key not yet recorded (dense kernels only)
)

// Structure is anything that can answer "is index i present?". Every Vector
// is a Structure, so any vector can serve as a mask for any other.
type Structure interface {
	Len() int
	Has(i int) bool
}

// indexer is implemented by structures that can list their present indices
// cheaply; masks over such structures enable the sparse kernel paths.
type indexer interface {
	Nvals() int
	Indices() []int
}

// Vector is a length-n sparse vector of T. Absent indices read as the fill
// value (the zero value of T unless SetFill was called).
type Vector[T any] struct {
	vals []T
	pos  []int
	keys []int
	fill T
}

// NewVector returns an empty vector of length n.
// Returns ErrBadShape if n < 0.
func NewVector[T any](n int) (*Vector[T], error) {
	if n < 0 {
		return nil, sparseErrorf("NewVector", ErrBadShape)
	}
	v := &Vector[T]{
		vals: make([]T, n),
		pos:  make([]int, n),
	}
	for i := range v.pos {
		v.pos[i] = absentPos
	}

	return v, nil
}

// MustVector is NewVector for lengths already validated by the caller;
// it panics on a negative length (programmer error).
func MustVector[T any](n int) *Vector[T] {
	v, err := NewVector[T](n)
	if err != nil {
		panic(err)
	}

	return v
}

// Len returns the vector length.
func (v *Vector[T]) Len() int { return len(v.vals) }

// Nvals returns the number of stored values.
func (v *Vector[T]) Nvals() int { return len(v.keys) }

// Has reports whether index i holds a value. Out-of-range indices are absent.
func (v *Vector[T]) Has(i int) bool {
	return i >= 0 && i < len(v.pos) && v.pos[i] != absentPos
}

// Fill returns the value reported for absent indices.
func (v *Vector[T]) Fill() T { return v.fill }

// SetFill changes the value reported for absent indices.
func (v *Vector[T]) SetFill(x T) { v.fill = x }

// Get returns the value at i and whether it is stored. Absent and
// out-of-range indices return (Fill(), false).
func (v *Vector[T]) Get(i int) (T, bool) {
	if !v.Has(i) {
		return v.fill, false
	}

	return v.vals[i], true
}

// At returns the value at i, or Fill() if absent.
func (v *Vector[T]) At(i int) T {
	x, _ := v.Get(i)

	return x
}

// Set stores x at index i.
// Returns ErrOutOfRange if i is outside [0, Len()).
func (v *Vector[T]) Set(i int, x T) error {
	if i < 0 || i >= len(v.vals) {
		return sparseErrorf("Vector.Set", ErrOutOfRange)
	}
	v.store(i, x)

	return nil
}

// Remove deletes the value at i, if any.
func (v *Vector[T]) Remove(i int) {
	if v.Has(i) {
		v.drop(i)
	}
}

// Clear removes every value; the fill value is kept.
// Complexity: O(Nvals()).
func (v *Vector[T]) Clear() {
	var zero T
	for _, i := range v.keys {
		v.vals[i] = zero
		v.pos[i] = absentPos
	}
	v.keys = v.keys[:0]
}

// Indices returns the present indices in ascending order.
// Complexity: O(k log k) for k = Nvals().
func (v *Vector[T]) Indices() []int {
	idx := slices.Clone(v.keys)
	slices.Sort(idx)

	return idx
}

// Read enumerates the stored (index, value) pairs in ascending index order.
func (v *Vector[T]) Read() ([]int, []T) {
	idx := v.Indices()
	vals := make([]T, len(idx))
	for k, i := range idx {
		vals[k] = v.vals[i]
	}

	return idx, vals
}

// Dense returns a copy of the vector with absent positions holding Fill().
func (v *Vector[T]) Dense() []T {
	out := make([]T, len(v.vals))
	for i := range out {
		if v.pos[i] != absentPos {
			out[i] = v.vals[i]
		} else {
			out[i] = v.fill
		}
	}

	return out
}

// Clone returns a deep copy.
func (v *Vector[T]) Clone() *Vector[T] {
	return &Vector[T]{
		vals: slices.Clone(v.vals),
		pos:  slices.Clone(v.pos),
		keys: slices.Clone(v.keys),
		fill: v.fill,
	}
}

// store writes x at i, appending i to keys if it was absent.
func (v *Vector[T]) store(i int, x T) {
	v.vals[i] = x
	if v.pos[i] == absentPos {
		v.pos[i] = len(v.keys)
		v.keys = append(v.keys, i)
	}
}

// drop removes a present index by swapping the last key into its slot.
func (v *Vector[T]) drop(i int) {
	var zero T
	v.vals[i] = zero
	p := v.pos[i]
	last := v.keys[len(v.keys)-1]
	v.keys[p] = last
	v.pos[last] = p
	v.keys = v.keys[:len(v.keys)-1]
	v.pos[i] = absentPos
}

// denseStore and denseDrop are the lock-free writers used by dense kernels:
// they touch only index i and leave keys stale until rebuild.
func (v *Vector[T]) denseStore(i int, x T) {
	v.vals[i] = x
	v.pos[i] = pendingPos
}

func (v *Vector[T]) denseDrop(i int) {
	var zero T
	v.vals[i] = zero
	v.pos[i] = absentPos
}

// rebuild recomputes keys and pos after a dense kernel. Keys end up sorted.
func (v *Vector[T]) rebuild() {
	v.keys = v.keys[:0]
	for i, p := range v.pos {
		if p != absentPos {
			v.pos[i] = len(v.keys)
			v.keys = append(v.keys, i)
		}
	}
}

// Mask restricts the positions an operation may write. The zero Mask allows
// every position.
type Mask struct {
	s          Structure
	complement bool
}

// StructMask allows exactly the positions present in s.
func StructMask(s Structure) Mask { return Mask{s: s} }

// ComplementMask allows exactly the positions absent from s.
func ComplementMask(s Structure) Mask { return Mask{s: s, complement: true} }

// Allows reports whether position i may be written.
func (m Mask) Allows(i int) bool {
	if m.s == nil {
		return true
	}

	return m.s.Has(i) != m.complement
}

// check validates that the mask fits a vector of length n.
func (m Mask) check(n int) error {
	if m.s != nil && m.s.Len() != n {
		return ErrDimensionMismatch
	}

	return nil
}

// sparseIndices returns the allowed positions when the mask is a plain
// structural mask small enough for a sparse walk (k·sparseRatio < n).
func (m Mask) sparseIndices(n int) ([]int, bool) {
	if m.s == nil || m.complement {
		return nil, false
	}
	ix, ok := m.s.(indexer)
	if !ok || ix.Nvals()*sparseRatio >= n {
		return nil, false
	}

	return ix.Indices(), true
}
