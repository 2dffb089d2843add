// SPDX-License-Identifier: MIT
// Package: spanforest/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Contract:
//   - n ≥ 4 (else ErrTooFewVertices); W_n = C_{n-1} + hub.
//   - Rim vertices come first, the hub is the last vertex of the block.
//   - Emission order: rim cycle edges, then spokes in rim order.
//
// Complexity:
//   - Time: O(n). Space: O(n) edges.

package builder

import "fmt"

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that builds the wheel graph W_n.
func Wheel(n int) Constructor {
	return func(acc *Accumulator, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		base := acc.block(n)
		rim := n - 1
		hub := base + rim
		for i := 1; i < rim; i++ {
			acc.add(cfg, base+i-1, base+i)
		}
		acc.add(cfg, base+rim-1, base)
		for i := 0; i < rim; i++ {
			acc.add(cfg, hub, base+i)
		}

		return nil
	}
}
