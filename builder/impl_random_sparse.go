// SPDX-License-Identifier: MIT
// Package: spanforest/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices), p ∈ [0,1] (else ErrInvalidProbability).
//   - cfg.rng must be set (else ErrNeedRandSource).
//   - Erdős–Rényi G(n, p): each pair (i, j), i < j, is kept with probability p,
//     visited in lexicographic order so a seed fixes the result.
//
// Complexity:
//   - Time: O(n²) Bernoulli trials. Space: O(p·n²) edges.

package builder

import "fmt"

const (
	methodRandomSparse   = "RandomSparse"
	minRandomSparseNodes = 1
)

// RandomSparse returns a Constructor that samples a G(n, p) random graph.
func RandomSparse(n int, p float64) Constructor {
	return func(acc *Accumulator, cfg builderConfig) error {
		if n < minRandomSparseNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minRandomSparseNodes, ErrTooFewVertices)
		}
		if p < 0 || p > 1 || p != p {
			return fmt.Errorf("%s: p=%g: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		base := acc.block(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.rng.Float64() < p {
					acc.add(cfg, base+i, base+j)
				}
			}
		}

		return nil
	}
}
