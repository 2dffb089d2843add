package main

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spanforest/graph"
	"github.com/katalvlaran/spanforest/msf"
)

func TestGen_TrefethenRoundTrip(t *testing.T) {
	out := filepath.Join(t.TempDir(), "trefethen.mtx")
	require.NoError(t, run([]string{"gen", "-kind", "trefethen", "-n", "300", "-out", out}))

	g, err := graph.Load(out)
	require.NoError(t, err)
	assert.Equal(t, 300, g.N())
	assert.False(t, g.Weighted())

	tr, err := msf.Kruskal(g)
	require.NoError(t, err)
	assert.Equal(t, 299.0, tr.Weight)
}

func TestGen_WeightedRandom(t *testing.T) {
	out := filepath.Join(t.TempDir(), "random.mtx")
	require.NoError(t, run([]string{"gen", "-kind", "random", "-n", "50", "-p", "0.2", "-max-weight", "9", "-seed", "3", "-out", out}))

	g, err := graph.Load(out)
	require.NoError(t, err)
	assert.True(t, g.Weighted())
	for _, e := range g.Edges() {
		assert.GreaterOrEqual(t, e.W, 1.0)
		assert.LessOrEqual(t, e.W, 9.0)
	}
}

func TestRun_Errors(t *testing.T) {
	assert.Error(t, run(nil))
	assert.Error(t, run([]string{"serve"}))
	assert.Error(t, run([]string{"gen", "-kind", "hypercube"}))
	assert.Error(t, run([]string{"gen", "-kind", "path", "-n", "1"}))
	assert.Error(t, run([]string{"run", "-algorithms", "Dijkstra", "-data", t.TempDir()}))
	assert.Error(t, run([]string{"run", "-data", t.TempDir()}), "empty data dir")
}

func TestRun_Bench(t *testing.T) {
	t.Setenv("FOREST_POSTGRES", "false")
	t.Setenv("METRICS_ADDR", "")
	report := filepath.Join(t.TempDir(), "results.csv")
	err := run([]string{
		"run", "-runs", "2", "-warmup", "0", "-workers", "2", "-log-level", "error",
		"-algorithms", "BoruvkaSparse,PrimOrdered,ParentBFS",
		"-csv", report,
		filepath.Join("..", "..", "testdata", "test1.mtx"),
		filepath.Join("..", "..", "testdata", "two_components_unw.mtx"),
	})
	require.NoError(t, err)

	f, err := os.Open(report)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 1+3*2)
	assert.Equal(t, []string{"Algorithm", "Graph", "1", "2"}, rows[0])
}
