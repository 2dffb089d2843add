// SPDX-License-Identifier: MIT
// Package: spanforest/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Emits edges (i-1, i) for i=1..n-1 in stable increasing order.
//
// Complexity:
//   - Time: O(n). Space: O(n) edges.

package builder

import "fmt"

// File-local constants for method tagging and parameter minima.
const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(acc *Accumulator, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		base := acc.block(n)
		for i := 1; i < n; i++ {
			acc.add(cfg, base+i-1, base+i)
		}

		return nil
	}
}
