package forest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spanforest/forest"
	"github.com/katalvlaran/spanforest/graph"
	"github.com/katalvlaran/spanforest/sparse"
)

func TestFromParents_RangeChecked(t *testing.T) {
	tr, err := forest.FromParents([]int{-1, 0, 1}, 4)
	require.NoError(t, err)
	assert.Equal(t, 3, tr.N)
	assert.Equal(t, []int{0}, tr.Roots())
	assert.Equal(t, 4.0, tr.Weight)

	_, err = forest.FromParents([]int{-1, 3, 0}, 0)
	assert.ErrorIs(t, err, forest.ErrParentRange)
	_, err = forest.FromParents([]int{-2}, 0)
	assert.ErrorIs(t, err, forest.ErrParentRange)
}

func TestFromParentVector_SelfAndAbsentAreRoots(t *testing.T) {
	v := sparse.MustVector[int](4)
	require.NoError(t, v.Set(0, 0)) // self
	require.NoError(t, v.Set(1, 0))
	require.NoError(t, v.Set(3, 1))
	// index 2 absent

	tr, err := forest.FromParentVector(v, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{-1, 0, -1, 1}, tr.Parent)
	assert.NoError(t, tr.Validate())

	empty, err := forest.FromParentVector(sparse.MustVector[int](2), 0)
	require.NoError(t, err)
	assert.Equal(t, []int{-1, -1}, empty.Parent)

	bad := sparse.MustVector[int](2)
	require.NoError(t, bad.Set(0, 5))
	_, err = forest.FromParentVector(bad, 0)
	assert.ErrorIs(t, err, forest.ErrParentRange)
}

func TestFromEdges_RootsAtLowestVertex(t *testing.T) {
	edges := []graph.Edge{
		{U: 3, V: 1, W: 2},
		{U: 1, V: 0, W: 1},
		{U: 4, V: 5, W: 7},
	}
	tr, err := forest.FromEdges(6, edges)
	require.NoError(t, err)

	assert.Equal(t, []int{-1, 0, -1, 1, -1, 4}, tr.Parent)
	assert.Equal(t, 10.0, tr.Weight)
	assert.Equal(t, []int{0, 2, 4}, tr.Roots())
	assert.Equal(t, []int{0, 1, 0, 2, 0, 1}, tr.Depths())
}

func TestFromEdges_RejectsCycles(t *testing.T) {
	_, err := forest.FromEdges(3, []graph.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 0}})
	assert.ErrorIs(t, err, forest.ErrCycle)

	_, err = forest.FromEdges(2, []graph.Edge{{U: 0, V: 1}, {U: 1, V: 0}})
	assert.ErrorIs(t, err, forest.ErrCycle, "parallel edges form a 2-cycle")

	_, err = forest.FromEdges(2, []graph.Edge{{U: 0, V: 2}})
	assert.ErrorIs(t, err, forest.ErrParentRange)
}

func TestFromEdges_DeepPathIsIterative(t *testing.T) {
	const n = 200_000
	edges := make([]graph.Edge, 0, n-1)
	for v := 1; v < n; v++ {
		edges = append(edges, graph.Edge{U: v - 1, V: v, W: 1})
	}
	tr, err := forest.FromEdges(n, edges)
	require.NoError(t, err)
	assert.Equal(t, float64(n-1), tr.Weight)
	assert.Equal(t, n-2, tr.Parent[n-1])
	assert.NoError(t, tr.Validate())
	assert.Equal(t, n-1, tr.Depths()[n-1])
}

func TestValidate_DetectsCycles(t *testing.T) {
	cases := map[string][]int{
		"self parent": {0},
		"two cycle":   {1, 0},
		"tail cycle":  {-1, 2, 3, 1},
	}
	for name, parent := range cases {
		t.Run(name, func(t *testing.T) {
			tr := &forest.Tree{N: len(parent), Parent: parent}
			assert.ErrorIs(t, tr.Validate(), forest.ErrCycle)
		})
	}

	short := &forest.Tree{N: 3, Parent: []int{-1}}
	assert.ErrorIs(t, short.Validate(), forest.ErrSizeMismatch)
}

func TestCheckSpanningAndEdgeWeight(t *testing.T) {
	g, err := graph.New(5, []graph.Edge{
		{U: 0, V: 1, W: 1}, {U: 1, V: 2, W: 2}, {U: 0, V: 2, W: 5},
		{U: 3, V: 4, W: 3},
	})
	require.NoError(t, err)

	good := &forest.Tree{N: 5, Parent: []int{-1, 0, 1, -1, 3}, Weight: 6}
	require.NoError(t, forest.CheckSpanning(good, g))
	w, err := forest.EdgeWeight(good, g)
	require.NoError(t, err)
	assert.Equal(t, 6.0, w)

	split := &forest.Tree{N: 5, Parent: []int{-1, 0, -1, -1, 3}}
	assert.ErrorIs(t, forest.CheckSpanning(split, g), forest.ErrNotSpanning)

	foreign := &forest.Tree{N: 5, Parent: []int{-1, 0, 1, 2, 3}}
	assert.ErrorIs(t, forest.CheckSpanning(foreign, g), forest.ErrMissingEdge)
	_, err = forest.EdgeWeight(foreign, g)
	assert.ErrorIs(t, err, forest.ErrMissingEdge)

	assert.ErrorIs(t, forest.CheckSpanning(&forest.Tree{N: 2, Parent: []int{-1, -1}}, g), forest.ErrSizeMismatch)
}
