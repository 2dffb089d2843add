// SPDX-License-Identifier: MIT
// Package: spanforest/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Emits the path 0..n-1 then the closing edge (n-1, 0).
//
// Complexity:
//   - Time: O(n). Space: O(n) edges.

package builder

import "fmt"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds a simple cycle C_n.
func Cycle(n int) Constructor {
	return func(acc *Accumulator, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		base := acc.block(n)
		for i := 1; i < n; i++ {
			acc.add(cfg, base+i-1, base+i)
		}
		acc.add(cfg, base+n-1, base)

		return nil
	}
}
