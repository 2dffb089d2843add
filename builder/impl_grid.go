// SPDX-License-Identifier: MIT
// Package: spanforest/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   - Vertex (r, c) has index base + r*cols + c (row-major).
//   - Emission order: row-major; for each cell, right neighbour then down.
//
// Complexity:
//   - Time: O(rows*cols). Space: O(rows*cols) edges.

package builder

import "fmt"

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols 4-neighbour lattice.
func Grid(rows, cols int) Constructor {
	return func(acc *Accumulator, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d < min=%d: %w", methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		base := acc.block(rows * cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := base + r*cols + c
				if c+1 < cols {
					acc.add(cfg, u, u+1)
				}
				if r+1 < rows {
					acc.add(cfg, u, u+cols)
				}
			}
		}

		return nil
	}
}
