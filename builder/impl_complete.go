// SPDX-License-Identifier: MIT
// Package: spanforest/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Emits every pair (i, j), i < j, in lexicographic order.
//
// Complexity:
//   - Time: O(n²). Space: O(n²) edges.

package builder

import "fmt"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(acc *Accumulator, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		base := acc.block(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				acc.add(cfg, base+i, base+j)
			}
		}

		return nil
	}
}
