// SPDX-License-Identifier: MIT
// Package: spanforest/builder
//
// impl_trefethen.go - implementation of Trefethen(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Edge (i, j), i < j, exists iff j-i is a power of two. This is the
//     sparsity pattern of the Trefethen_N matrices used as MSF benchmarks.
//   - The graph is connected (every i links to i+1), so with the default
//     unit weight its spanning tree weighs exactly n-1.
//
// Complexity:
//   - Time: O(n log n). Space: O(n log n) edges.

package builder

import "fmt"

const (
	methodTrefethen   = "Trefethen"
	minTrefethenNodes = 1
)

// Trefethen returns a Constructor that builds the Trefethen power-of-two graph.
func Trefethen(n int) Constructor {
	return func(acc *Accumulator, cfg builderConfig) error {
		if n < minTrefethenNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodTrefethen, n, minTrefethenNodes, ErrTooFewVertices)
		}
		base := acc.block(n)
		for i := 0; i < n; i++ {
			for d := 1; i+d < n; d <<= 1 {
				acc.add(cfg, base+i, base+i+d)
			}
		}

		return nil
	}
}
