package msf

import (
	"github.com/katalvlaran/spanforest/algorithm"
	"github.com/katalvlaran/spanforest/forest"
	"github.com/katalvlaran/spanforest/graph"
)

// BoruvkaAlgorithm runs Boruvka inside the algorithm lifecycle.
type BoruvkaAlgorithm struct{ *algorithm.Session }

// NewBoruvkaAlgorithm returns an unloaded Boruvka instance.
func NewBoruvkaAlgorithm(opts ...Option) *BoruvkaAlgorithm {
	return &BoruvkaAlgorithm{algorithm.NewSession("Boruvka", bind(Boruvka, opts))}
}

// PrimAlgorithm runs Prim inside the algorithm lifecycle.
type PrimAlgorithm struct{ *algorithm.Session }

// NewPrimAlgorithm returns an unloaded Prim instance. The name carries the
// configured strategy, e.g. "Prim/ordered".
func NewPrimAlgorithm(opts ...Option) *PrimAlgorithm {
	name := "Prim/" + buildOptions(opts).Strategy.String()

	return &PrimAlgorithm{algorithm.NewSession(name, bind(Prim, opts))}
}

// KruskalAlgorithm runs the Kruskal reference inside the algorithm lifecycle.
type KruskalAlgorithm struct{ *algorithm.Session }

// NewKruskalAlgorithm returns an unloaded Kruskal instance.
func NewKruskalAlgorithm() *KruskalAlgorithm {
	return &KruskalAlgorithm{algorithm.NewSession("Kruskal", bind(Kruskal, nil))}
}

// bind closes fn over a private copy of opts.
func bind(fn func(*graph.Graph, ...Option) (*forest.Tree, error), opts []Option) algorithm.ComputeFunc {
	own := append([]Option(nil), opts...)

	return func(g *graph.Graph) (*forest.Tree, error) {
		return fn(g, own...)
	}
}
