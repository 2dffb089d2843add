package msf_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/spanforest/builder"
	"github.com/katalvlaran/spanforest/forest"
	"github.com/katalvlaran/spanforest/graph"
	"github.com/katalvlaran/spanforest/msf"
	"github.com/katalvlaran/spanforest/sparse"
)

// BenchmarkMSF measures every algorithm on the Trefethen graph and a random
// sparse graph. Each graph is built once per case to isolate algorithmic cost.
func BenchmarkMSF(b *testing.B) {
	cases := []struct {
		name string
		cons builder.Constructor
	}{
		{"Trefethen2000", builder.Trefethen(2000)},
		{"Random1500", builder.RandomSparse(1500, 0.004)},
	}
	algos := []struct {
		name string
		fn   func(*graph.Graph, ...msf.Option) (*forest.Tree, error)
		opts []msf.Option
	}{
		{"Boruvka", msf.Boruvka, nil},
		{"BoruvkaParallel", msf.Boruvka, []msf.Option{msf.WithExecutor(sparse.Parallel{})}},
		{"PrimScan", msf.Prim, nil},
		{"PrimOrdered", msf.Prim, []msf.Option{msf.WithStrategy(msf.StrategyOrdered)}},
		{"Kruskal", msf.Kruskal, nil},
	}

	for _, tc := range cases {
		g, err := builder.BuildGraph(
			[]builder.BuilderOption{builder.WithSeed(42), builder.WithUniformWeight(1, 100)},
			tc.cons,
		)
		if err != nil {
			b.Fatalf("build %s: %v", tc.name, err)
		}
		for _, a := range algos {
			b.Run(fmt.Sprintf("%s/%s", tc.name, a.name), func(b *testing.B) {
				b.ReportAllocs()
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					if _, err := a.fn(g, a.opts...); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}
