package graph

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/spanforest/mtx"
)

// Sentinel errors for graph construction.
var (
	// ErrNegativeOrder indicates a negative vertex count.
	ErrNegativeOrder = fmt.Errorf("graph: %w: negative vertex count", mtx.ErrValidation)

	// ErrVertexRange indicates an edge endpoint outside [0, n).
	ErrVertexRange = fmt.Errorf("graph: %w", mtx.ErrVertexRange)

	// ErrBadWeight indicates a weight that is not finite or not positive.
	ErrBadWeight = fmt.Errorf("graph: %w", mtx.ErrBadWeight)

	// ErrSelfLoop indicates an edge from a vertex to itself.
	ErrSelfLoop = fmt.Errorf("graph: %w: self-loop", mtx.ErrValidation)

	// ErrNilGraph is returned by helpers handed a nil *Graph.
	ErrNilGraph = errors.New("graph: nil graph")
)

// Edge is one undirected weighted edge.
type Edge struct {
	U, V int
	W    float64
}

// Options configures construction.
type Options struct {
	// Unweighted marks the graph as unweighted; every edge then gets weight 1.
	// Load also parses the file in pattern mode.
	Unweighted bool

	// SkipSelfLoops drops u == v edges in New instead of failing.
	SkipSelfLoops bool
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the weighted, strict configuration.
func DefaultOptions() Options {
	return Options{}
}

// WithUnweighted builds (or loads) an unweighted graph.
func WithUnweighted() Option {
	return func(o *Options) { o.Unweighted = true }
}

// WithSkipSelfLoops makes New ignore self-loops like the file loader does.
func WithSkipSelfLoops() Option {
	return func(o *Options) { o.SkipSelfLoops = true }
}

// Stats is an O(n) snapshot of structural figures.
type Stats struct {
	N, M        int
	MinDegree   int
	MaxDegree   int
	Isolated    int
	TotalWeight float64
}
