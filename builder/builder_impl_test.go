// File: builder_impl_test.go
// Package builder_test contains functional tests for every Constructor in the
// builder package, verifying topology, counts, offsets and default weights.
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spanforest/builder"
	"github.com/katalvlaran/spanforest/graph"
)

type pair struct{ U, V int }

// edgeSet indexes edges by canonical (min, max) endpoints.
func edgeSet(edges []graph.Edge) map[pair]float64 {
	m := make(map[pair]float64, len(edges))
	for _, e := range edges {
		u, v := e.U, e.V
		if u > v {
			u, v = v, u
		}
		m[pair{u, v}] = e.W
	}

	return m
}

func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		ctor   builder.Constructor
		wantV  int
		wantE  int
		expect []pair
	}{
		{"Path(4)", builder.Path(4), 4, 3, []pair{{0, 1}, {1, 2}, {2, 3}}},
		{"Cycle(5)", builder.Cycle(5), 5, 5, []pair{{0, 1}, {3, 4}, {0, 4}}},
		{"Star(4)", builder.Star(4), 4, 3, []pair{{0, 1}, {0, 2}, {0, 3}}},
		{"Wheel(5)", builder.Wheel(5), 5, 8, []pair{{0, 1}, {0, 3}, {0, 4}, {3, 4}}},
		{"Complete(4)", builder.Complete(4), 4, 6, []pair{{0, 1}, {0, 3}, {2, 3}}},
		{"Grid(2,3)", builder.Grid(2, 3), 6, 7, []pair{{0, 1}, {0, 3}, {2, 5}, {4, 5}}},
		{"Trefethen(9)", builder.Trefethen(9), 9, 8 + 7 + 5 + 1, []pair{{0, 1}, {0, 8}, {1, 5}, {3, 7}}},
		{"Isolated(3)", builder.Isolated(3), 3, 0, nil},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			n, edges, err := builder.BuildEdges(nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, n)
			require.Len(t, edges, tc.wantE)

			set := edgeSet(edges)
			assert.Len(t, set, tc.wantE, "no duplicate edges")
			for _, p := range tc.expect {
				w, ok := set[p]
				assert.True(t, ok, "missing edge %v", p)
				assert.Equal(t, builder.DefaultEdgeWeight, w)
			}
			for _, e := range edges {
				assert.NotEqual(t, e.U, e.V, "self-loop emitted")
			}
		})
	}
}

func TestBuildEdges_DisjointBlocks(t *testing.T) {
	n, edges, err := builder.BuildEdges(nil, builder.Path(3), builder.Isolated(2), builder.Cycle(3))
	require.NoError(t, err)
	assert.Equal(t, 8, n)

	set := edgeSet(edges)
	assert.Contains(t, set, pair{0, 1})
	assert.Contains(t, set, pair{5, 6})
	assert.Contains(t, set, pair{5, 7})
	assert.NotContains(t, set, pair{2, 3})

	g, err := builder.BuildGraph(nil, builder.Path(3), builder.Isolated(2), builder.Cycle(3))
	require.NoError(t, err)
	_, k := g.Components()
	assert.Equal(t, 4, k)
}

func TestBuildEdges_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		ctor builder.Constructor
		opts []builder.BuilderOption
		want error
	}{
		{"Path(1)", builder.Path(1), nil, builder.ErrTooFewVertices},
		{"Cycle(2)", builder.Cycle(2), nil, builder.ErrTooFewVertices},
		{"Star(1)", builder.Star(1), nil, builder.ErrTooFewVertices},
		{"Wheel(3)", builder.Wheel(3), nil, builder.ErrTooFewVertices},
		{"Complete(0)", builder.Complete(0), nil, builder.ErrTooFewVertices},
		{"Grid(0,3)", builder.Grid(0, 3), nil, builder.ErrTooFewVertices},
		{"Trefethen(0)", builder.Trefethen(0), nil, builder.ErrTooFewVertices},
		{"Isolated(0)", builder.Isolated(0), nil, builder.ErrTooFewVertices},
		{"RandomSparse/p", builder.RandomSparse(5, 1.5), []builder.BuilderOption{builder.WithSeed(1)}, builder.ErrInvalidProbability},
		{"RandomSparse/rng", builder.RandomSparse(5, 0.5), nil, builder.ErrNeedRandSource},
		{"nil", nil, nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, _, err := builder.BuildEdges(tc.opts, tc.ctor)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestRandomSparse_Deterministic(t *testing.T) {
	opts := func() []builder.BuilderOption {
		return []builder.BuilderOption{builder.WithSeed(42), builder.WithUniformWeight(1, 10)}
	}
	n1, e1, err := builder.BuildEdges(opts(), builder.RandomSparse(40, 0.2))
	require.NoError(t, err)
	n2, e2, err := builder.BuildEdges(opts(), builder.RandomSparse(40, 0.2))
	require.NoError(t, err)
	assert.Equal(t, n1, n2)
	assert.Equal(t, e1, e2)
	assert.NotEmpty(t, e1)

	_, full, err := builder.BuildEdges([]builder.BuilderOption{builder.WithSeed(1)}, builder.RandomSparse(6, 1))
	require.NoError(t, err)
	assert.Len(t, full, 15)

	_, none, err := builder.BuildEdges([]builder.BuilderOption{builder.WithSeed(1)}, builder.RandomSparse(6, 0))
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestBuildGraph_Trefethen(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Trefethen(64))
	require.NoError(t, err)
	assert.Equal(t, 64, g.N())
	_, k := g.Components()
	assert.Equal(t, 1, k)
	// 63 + 62 + 60 + 56 + 48 + 32 pairs at distances 1..32.
	assert.Equal(t, 321, g.M())
}
