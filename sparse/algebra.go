// SPDX-License-Identifier: MIT
// Package sparse: operators, monoids and semirings.

package sparse

import "math"

// BinaryOp combines two values of the same type.
type BinaryOp[T any] func(a, b T) T

// Monoid is an associative BinaryOp with its identity element. Reductions
// fold values in ascending index order starting from Identity.
type Monoid[T any] struct {
	Op       BinaryOp[T]
	Identity T
}

// Semiring pairs an additive monoid with a multiply that combines a vector
// value with a matrix value. VxM computes out[j] = Add over i of Mul(x[i], A[i,j]).
type Semiring[T any] struct {
	Add Monoid[T]
	Mul func(x T, a float64) T
}

// MinFloat returns the smaller of a and b.
func MinFloat(a, b float64) float64 { return math.Min(a, b) }

// PlusFloat returns a + b.
func PlusFloat(a, b float64) float64 { return a + b }

// First returns a; used as the "keep existing" assignment operator.
func First[T any](a, _ T) T { return a }

// Second returns b; used as the "overwrite" assignment operator.
func Second[T any](_, b T) T { return b }

// MinInt returns the smaller of a and b.
func MinInt(a, b int) int { return min(a, b) }

// MinFloatMonoid is the (min, +Inf) monoid.
func MinFloatMonoid() Monoid[float64] {
	return Monoid[float64]{Op: MinFloat, Identity: math.Inf(1)}
}

// PlusFloatMonoid is the (+, 0) monoid.
func PlusFloatMonoid() Monoid[float64] {
	return Monoid[float64]{Op: PlusFloat, Identity: 0}
}

// MinIntMonoid is the (min, MaxInt) monoid.
func MinIntMonoid() Monoid[int] {
	return Monoid[int]{Op: MinInt, Identity: math.MaxInt}
}

// MinFirstInt is the (min, first) semiring over int vector values: each
// output position receives the smallest vector value among its in-neighbours.
// With x[i] == i this yields the lowest-index discovering vertex.
func MinFirstInt() Semiring[int] {
	return Semiring[int]{
		Add: MinIntMonoid(),
		Mul: func(x int, _ float64) int { return x },
	}
}
