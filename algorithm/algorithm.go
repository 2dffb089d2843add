// Package algorithm defines the load/compute/result lifecycle shared by every
// benchmarked algorithm, and Session, the reusable implementation of it.
//
// Lifecycle:
//
//	LoadGraph(path)  parse and validate the input; a failure leaves the
//	                 instance unloaded
//	Compute()        run on private scratch state and report the wall time;
//	                 may be repeated, each run replaces the previous result
//	Result()         the forest of the last successful Compute
//
// Calling Compute before a successful load returns ErrNotLoaded; calling
// Result before a successful Compute returns ErrNotComputed. Instances are
// not safe for concurrent Compute calls.
package algorithm

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/spanforest/forest"
	"github.com/katalvlaran/spanforest/graph"
)

var (
	// ErrNotLoaded is returned by Compute without a successfully loaded graph.
	ErrNotLoaded = errors.New("algorithm: graph not loaded")

	// ErrNotComputed is returned by Result before a successful Compute.
	ErrNotComputed = errors.New("algorithm: result not computed")
)

// Algorithm is the contract the benchmark harness drives.
type Algorithm interface {
	LoadGraph(path string) error
	Compute() (time.Duration, error)
	Result() (*forest.Tree, error)
}

// Named is implemented by algorithms that report a display name.
type Named interface {
	Name() string
}

// ComputeFunc turns a loaded graph into a forest.
type ComputeFunc func(g *graph.Graph) (*forest.Tree, error)

// Session implements Algorithm around a ComputeFunc. Concrete algorithms
// embed *Session and only supply the function and load options.
type Session struct {
	name     string
	compute  ComputeFunc
	loadOpts []graph.Option

	g    *graph.Graph
	tree *forest.Tree
}

// NewSession returns an unloaded session. loadOpts are passed to graph.Load.
func NewSession(name string, compute ComputeFunc, loadOpts ...graph.Option) *Session {
	return &Session{name: name, compute: compute, loadOpts: loadOpts}
}

// Name returns the display name given to NewSession.
func (s *Session) Name() string { return s.name }

// LoadGraph reads path. Any previous graph and result are discarded first,
// so a failed load leaves the session unloaded.
func (s *Session) LoadGraph(path string) error {
	s.g, s.tree = nil, nil
	g, err := graph.Load(path, s.loadOpts...)
	if err != nil {
		return fmt.Errorf("%s: load: %w", s.name, err)
	}
	s.g = g

	return nil
}

// SetGraph installs an in-memory graph, as if it had been loaded.
func (s *Session) SetGraph(g *graph.Graph) {
	s.g, s.tree = g, nil
}

// Graph returns the loaded graph or nil.
func (s *Session) Graph() *graph.Graph { return s.g }

// Compute runs the algorithm and returns its wall-clock duration.
// Errors from the algorithm are returned as-is after the name prefix; the
// duration is still reported.
func (s *Session) Compute() (time.Duration, error) {
	if s.g == nil {
		return 0, fmt.Errorf("%s: %w", s.name, ErrNotLoaded)
	}
	// A failed run must not leave the previous forest behind.
	s.tree = nil
	start := time.Now()
	t, err := s.compute(s.g)
	elapsed := time.Since(start)
	if err != nil {
		return elapsed, fmt.Errorf("%s: compute: %w", s.name, err)
	}
	s.tree = t

	return elapsed, nil
}

// Result returns the forest of the last Compute, which must have succeeded.
func (s *Session) Result() (*forest.Tree, error) {
	if s.tree == nil {
		return nil, fmt.Errorf("%s: %w", s.name, ErrNotComputed)
	}

	return s.tree, nil
}
