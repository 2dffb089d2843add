package bench

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/spanforest/algorithm"
	"github.com/katalvlaran/spanforest/bfs"
	"github.com/katalvlaran/spanforest/msf"
	"github.com/katalvlaran/spanforest/sparse"
)

// ErrUnknownAlgorithm is returned by Lookup for names not in the registry.
var ErrUnknownAlgorithm = errors.New("bench: unknown algorithm")

// Kind tells the verifier what a result forest must satisfy.
type Kind int

const (
	// KindMSF results must match the Kruskal reference weight.
	KindMSF Kind = iota
	// KindBFS results must weigh 0 and give every vertex its BFS distance
	// from its tree root as depth.
	KindBFS
)

// Factory creates a fresh, unloaded algorithm bound to ex. ctx is the run's
// context; algorithms that support cancellation should observe it.
type Factory func(ctx context.Context, ex sparse.Executor) algorithm.Algorithm

// Entry is one registered algorithm.
type Entry struct {
	Name string
	Kind Kind
	New  Factory
}

// Registry lists the benchmarkable algorithms in report order.
var Registry = []Entry{
	{"BoruvkaSparse", KindMSF, func(_ context.Context, ex sparse.Executor) algorithm.Algorithm {
		return msf.NewBoruvkaAlgorithm(msf.WithExecutor(ex))
	}},
	{"PrimScan", KindMSF, func(_ context.Context, ex sparse.Executor) algorithm.Algorithm {
		return msf.NewPrimAlgorithm(msf.WithExecutor(ex), msf.WithStrategy(msf.StrategyScan))
	}},
	{"PrimOrdered", KindMSF, func(_ context.Context, ex sparse.Executor) algorithm.Algorithm {
		return msf.NewPrimAlgorithm(msf.WithExecutor(ex), msf.WithStrategy(msf.StrategyOrdered))
	}},
	{"KruskalReference", KindMSF, func(context.Context, sparse.Executor) algorithm.Algorithm {
		return msf.NewKruskalAlgorithm()
	}},
	{"ParentBFS", KindBFS, func(ctx context.Context, ex sparse.Executor) algorithm.Algorithm {
		return bfs.NewParentAlgorithm(bfs.WithExecutor(ex), bfs.WithContext(ctx))
	}},
}

// Lookup resolves names in the given order; no names selects the whole
// registry.
func Lookup(names ...string) ([]Entry, error) {
	if len(names) == 0 {
		return append([]Entry(nil), Registry...), nil
	}
	out := make([]Entry, 0, len(names))
	for _, name := range names {
		e, ok := find(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
		}
		out = append(out, e)
	}

	return out, nil
}

func find(name string) (Entry, bool) {
	for _, e := range Registry {
		if e.Name == name {
			return e, true
		}
	}

	return Entry{}, false
}
