// Package builder generates deterministic test and benchmark graphs for the
// spanning-forest algorithms.
//
// A Constructor appends one block of vertices together with its edges.
// BuildEdges and BuildGraph run constructors in order, so listing several
// constructors yields their disjoint union, one connected component per
// connected block:
//
//	g, err := builder.BuildGraph(
//		[]builder.BuilderOption{builder.WithSeed(7), builder.WithIntWeight(1, 9)},
//		builder.Trefethen(1024),
//		builder.RandomSparse(200, 0.02),
//		builder.Isolated(3),
//	)
//
// The package offers:
//
//   - Constructors: Path, Cycle, Star, Wheel, Complete, Grid, Trefethen,
//     RandomSparse (Erdős–Rényi G(n,p)), Isolated.
//   - Edge-weight distributions (WeightFn): DefaultWeightFn, ConstantWeightFn,
//     UniformWeightFn, IntWeightFn, ExponentialWeightFn.
//   - Options: WithSeed, WithRand, WithWeightFn and the With*Weight helpers.
//
// Guarantees:
//
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors never panic; they return wrapped sentinel errors
//     (ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource).
//   - Same constructors, options and seed produce identical edge lists.
//
// Trefethen(n) reproduces the sparsity pattern of the Trefethen_N matrices,
// the reference input for MSF benchmarking: with the default unit weight every
// spanning tree weighs n-1.
package builder
