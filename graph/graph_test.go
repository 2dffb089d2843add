package graph_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spanforest/graph"
	"github.com/katalvlaran/spanforest/mtx"
)

func TestNew_NormalizesAndDeduplicates(t *testing.T) {
	g, err := graph.New(4, []graph.Edge{
		{U: 2, V: 0, W: 5},
		{U: 0, V: 2, W: 3}, // duplicate pair, lighter
		{U: 1, V: 3, W: 1},
	})
	require.NoError(t, err)

	assert.Equal(t, 4, g.N())
	assert.Equal(t, 2, g.M())
	assert.True(t, g.Weighted())
	assert.Equal(t, []graph.Edge{{U: 0, V: 2, W: 3}, {U: 1, V: 3, W: 1}}, g.Edges())

	w, ok := g.Weight(2, 0)
	assert.True(t, ok)
	assert.Equal(t, 3.0, w)
	_, ok = g.Weight(0, 1)
	assert.False(t, ok)

	assert.True(t, g.Adjacency().Symmetric())
	assert.Equal(t, 4, g.Adjacency().Nvals())
	nbrs, ws := g.Neighbors(2)
	assert.Equal(t, []int{0}, nbrs)
	assert.Equal(t, []float64{3}, ws)
}

func TestNew_Validation(t *testing.T) {
	cases := []struct {
		name  string
		n     int
		edges []graph.Edge
		want  error
	}{
		{"negative n", -1, nil, graph.ErrNegativeOrder},
		{"endpoint high", 2, []graph.Edge{{U: 0, V: 2, W: 1}}, graph.ErrVertexRange},
		{"endpoint negative", 2, []graph.Edge{{U: -1, V: 1, W: 1}}, graph.ErrVertexRange},
		{"self-loop", 2, []graph.Edge{{U: 1, V: 1, W: 1}}, graph.ErrSelfLoop},
		{"zero weight", 2, []graph.Edge{{U: 0, V: 1, W: 0}}, graph.ErrBadWeight},
		{"nan weight", 2, []graph.Edge{{U: 0, V: 1, W: math.NaN()}}, graph.ErrBadWeight},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := graph.New(tc.n, tc.edges)
			require.ErrorIs(t, err, tc.want)
			assert.ErrorIs(t, err, mtx.ErrValidation)
		})
	}
}

func TestNew_OptionsRelaxValidation(t *testing.T) {
	g, err := graph.New(3, []graph.Edge{{U: 1, V: 1, W: 2}, {U: 0, V: 1, W: -4}},
		graph.WithSkipSelfLoops(), graph.WithUnweighted())
	require.NoError(t, err)
	assert.False(t, g.Weighted())
	assert.Equal(t, []graph.Edge{{U: 0, V: 1, W: 1}}, g.Edges())
}

func TestNew_Empty(t *testing.T) {
	g, err := graph.New(0, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, g.N())
	assert.Equal(t, 0, g.M())

	labels, count := g.Components()
	assert.Empty(t, labels)
	assert.Equal(t, 0, count)
}

func TestComponentsAndStats(t *testing.T) {
	g, err := graph.New(6, []graph.Edge{
		{U: 0, V: 1, W: 1}, {U: 1, V: 2, W: 2},
		{U: 4, V: 3, W: 3},
	})
	require.NoError(t, err)

	labels, count := g.Components()
	assert.Equal(t, 3, count)
	assert.Equal(t, []int{0, 0, 0, 3, 3, 5}, labels)

	s := g.Stats()
	assert.Equal(t, graph.Stats{N: 6, M: 3, MinDegree: 0, MaxDegree: 2, Isolated: 1, TotalWeight: 6}, s)
}

func TestLoad_Fixtures(t *testing.T) {
	g, err := graph.Load(filepath.Join("..", "testdata", "test1.mtx"))
	require.NoError(t, err)
	assert.Equal(t, 6, g.N())
	assert.Equal(t, 9, g.M())

	u, err := graph.Load(filepath.Join("..", "testdata", "test1_unweighted.mtx"))
	require.NoError(t, err)
	assert.False(t, u.Weighted(), "pattern banner implies unweighted")
	assert.Equal(t, 9, u.M())

	p, err := graph.Load(filepath.Join("..", "testdata", "point.mtx"))
	require.NoError(t, err)
	assert.Equal(t, 1, p.N())
	assert.Equal(t, 0, p.M(), "self-loop skipped")
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.mtx")
	require.NoError(t, os.WriteFile(bad, []byte("2 2 1\n1 2 -5\n"), 0o644))

	_, err := graph.Load(bad)
	assert.ErrorIs(t, err, mtx.ErrBadWeight)

	_, err = graph.Load(filepath.Join(dir, "missing.mtx"))
	assert.ErrorIs(t, err, mtx.ErrIO)
}
