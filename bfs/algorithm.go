package bfs

import (
	"github.com/katalvlaran/spanforest/algorithm"
	"github.com/katalvlaran/spanforest/forest"
	"github.com/katalvlaran/spanforest/graph"
)

// ParentAlgorithm runs ParentForest inside the algorithm lifecycle. Graphs
// are loaded unweighted: only the endpoint columns of the input are read.
type ParentAlgorithm struct{ *algorithm.Session }

// NewParentAlgorithm returns an unloaded BFS parent-forest instance.
func NewParentAlgorithm(opts ...Option) *ParentAlgorithm {
	own := append([]Option(nil), opts...)
	compute := func(g *graph.Graph) (*forest.Tree, error) {
		return ParentForest(g, own...)
	}

	return &ParentAlgorithm{algorithm.NewSession("ParentBFS", compute, graph.WithUnweighted())}
}
