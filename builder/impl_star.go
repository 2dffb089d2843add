// SPDX-License-Identifier: MIT
// Package: spanforest/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices); n counts the center.
//   - Center is the first vertex of the block; leaves follow in order.
//
// Complexity:
//   - Time: O(n). Space: O(n) edges.

package builder

import "fmt"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with one center and n-1 leaves.
func Star(n int) Constructor {
	return func(acc *Accumulator, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		center := acc.block(n)
		for i := 1; i < n; i++ {
			acc.add(cfg, center, center+i)
		}

		return nil
	}
}
