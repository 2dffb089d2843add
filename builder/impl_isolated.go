// SPDX-License-Identifier: MIT
// Package: spanforest/builder
//
// impl_isolated.go - implementation of Isolated(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Adds n vertices and no edges; each becomes its own forest root.

package builder

import "fmt"

const (
	methodIsolated   = "Isolated"
	minIsolatedNodes = 1
)

// Isolated returns a Constructor that adds n edgeless vertices.
func Isolated(n int) Constructor {
	return func(acc *Accumulator, _ builderConfig) error {
		if n < minIsolatedNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodIsolated, n, minIsolatedNodes, ErrTooFewVertices)
		}
		acc.block(n)

		return nil
	}
}
