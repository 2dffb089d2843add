package bfs_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spanforest/bfs"
	"github.com/katalvlaran/spanforest/builder"
	"github.com/katalvlaran/spanforest/forest"
	"github.com/katalvlaran/spanforest/graph"
	"github.com/katalvlaran/spanforest/sparse"
)

var executors = map[string]sparse.Executor{
	"seq": sparse.Sequential{},
	"par": sparse.Parallel{Workers: 4, Grain: 3},
}

// naiveDepths runs a queue BFS from the lowest vertex of every component.
func naiveDepths(g *graph.Graph) []int {
	n := g.N()
	depth := make([]int, n)
	for i := range depth {
		depth[i] = -1
	}
	queue := make([]int, 0, n)
	for root := 0; root < n; root++ {
		if depth[root] >= 0 {
			continue
		}
		depth[root] = 0
		queue = append(queue[:0], root)
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			nbrs, _ := g.Neighbors(u)
			for _, v := range nbrs {
				if depth[v] < 0 {
					depth[v] = depth[u] + 1
					queue = append(queue, v)
				}
			}
		}
	}

	return depth
}

// requireBFSForest checks spanning, level structure and lowest-parent choice.
func requireBFSForest(t *testing.T, g *graph.Graph, tr *forest.Tree) {
	t.Helper()
	require.NoError(t, forest.CheckSpanning(tr, g))
	assert.Zero(t, tr.Weight)

	want := naiveDepths(g)
	got := tr.Depths()
	require.Equal(t, want, got)

	for v, p := range tr.Parent {
		if p == forest.NoParent {
			continue
		}
		// The parent is the lowest neighbour one level up.
		nbrs, _ := g.Neighbors(v)
		for _, u := range nbrs {
			if want[u] == want[v]-1 {
				assert.Equal(t, u, p, "vertex %d", v)

				break
			}
		}
	}
}

func TestParentForest_Errors(t *testing.T) {
	_, err := bfs.ParentForest(nil)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g, err := graph.New(1, nil)
	require.NoError(t, err)
	_, err = bfs.ParentForest(g, bfs.WithExecutor(nil))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestParentForest_Trivial(t *testing.T) {
	empty, err := graph.New(0, nil)
	require.NoError(t, err)
	tr, err := bfs.ParentForest(empty)
	require.NoError(t, err)
	assert.Equal(t, 0, tr.N)

	bare, err := graph.New(3, nil)
	require.NoError(t, err)
	tr, err = bfs.ParentForest(bare)
	require.NoError(t, err)
	assert.Equal(t, []int{-1, -1, -1}, tr.Parent)
}

func TestParentForest_CycleAndDepths(t *testing.T) {
	// 0–1–2–3–0: depth-1 layer {1,3}, then 2 reached from 1.
	g, err := builder.BuildGraph(nil, builder.Cycle(4))
	require.NoError(t, err)
	tr, err := bfs.ParentForest(g)
	require.NoError(t, err)
	assert.Equal(t, []int{-1, 0, 1, 0}, tr.Parent)
	assert.Equal(t, []int{0, 1, 2, 1}, tr.Depths())
}

func TestParentForest_Fixtures(t *testing.T) {
	files := []struct {
		name  string
		roots int
	}{
		{"test1_unweighted.mtx", 1},
		{"small_unweighted.mtx", 1},
		{"two_components_unw.mtx", 2},
		{"point.mtx", 1},
	}
	for name, ex := range executors {
		for _, f := range files {
			t.Run(name+"/"+f.name, func(t *testing.T) {
				a := bfs.NewParentAlgorithm(bfs.WithExecutor(ex))
				assert.Equal(t, "ParentBFS", a.Name())
				require.NoError(t, a.LoadGraph(filepath.Join("..", "testdata", f.name)))
				_, err := a.Compute()
				require.NoError(t, err)
				tr, err := a.Result()
				require.NoError(t, err)
				assert.Len(t, tr.Roots(), f.roots)
				requireBFSForest(t, a.Graph(), tr)

				// Computing again on the same loaded graph gives the same forest.
				parent := append([]int(nil), tr.Parent...)
				_, err = a.Compute()
				require.NoError(t, err)
				again, err := a.Result()
				require.NoError(t, err)
				assert.Zero(t, again.Weight)
				assert.Equal(t, parent, again.Parent)
			})
		}
	}
}

// TestParentForest_WeightedInputIgnoresWeights loads a weighted file through
// the unweighted lifecycle.
func TestParentForest_WeightedInputIgnoresWeights(t *testing.T) {
	a := bfs.NewParentAlgorithm()
	require.NoError(t, a.LoadGraph(filepath.Join("..", "testdata", "test1.mtx")))
	assert.False(t, a.Graph().Weighted())
	_, err := a.Compute()
	require.NoError(t, err)
	tr, err := a.Result()
	require.NoError(t, err)
	requireBFSForest(t, a.Graph(), tr)
}

func TestParentForest_RandomAgreesAcrossExecutors(t *testing.T) {
	for seed := int64(1); seed <= 8; seed++ {
		g, err := builder.BuildGraph(
			[]builder.BuilderOption{builder.WithSeed(seed)},
			builder.RandomSparse(150, 0.02),
			builder.Grid(5, 9),
			builder.Isolated(2),
		)
		require.NoError(t, err)

		seq, err := bfs.ParentForest(g)
		require.NoError(t, err)
		par, err := bfs.ParentForest(g, bfs.WithExecutor(executors["par"]))
		require.NoError(t, err)
		require.Equal(t, seq.Parent, par.Parent, "seed %d", seed)

		_, k := g.Components()
		assert.Len(t, seq.Roots(), k)
		requireBFSForest(t, g, seq)
	}
}

func TestParentForest_Hooks(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Star(5), builder.Path(3))
	require.NoError(t, err)

	var roots []int
	type lvl struct{ root, level, size int }
	var levels []lvl
	_, err = bfs.ParentForest(g,
		bfs.WithOnRoot(func(r int) { roots = append(roots, r) }),
		bfs.WithOnLevel(func(r, l, s int) { levels = append(levels, lvl{r, l, s}) }),
	)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 5}, roots)
	assert.Equal(t, []lvl{{0, 1, 4}, {5, 1, 1}, {5, 2, 1}}, levels)
}

func TestParentForest_Cancelled(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Path(10))
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.ParentForest(g, bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParentForest_ReleasedBackend(t *testing.T) {
	h := sparse.Acquire(2)
	h.Release()
	g, err := graph.Load(filepath.Join("..", "testdata", "test1_unweighted.mtx"), graph.WithUnweighted())
	require.NoError(t, err)

	_, err = bfs.ParentForest(g, bfs.WithExecutor(h.Executor()))
	assert.ErrorIs(t, err, sparse.ErrReleased)
}

func TestParentForest_BoundExecutorCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g, err := graph.Load(filepath.Join("..", "testdata", "small_unweighted.mtx"), graph.WithUnweighted())
	require.NoError(t, err)

	_, err = bfs.ParentForest(g, bfs.WithExecutor(sparse.Bind(ctx, sparse.Sequential{})))
	assert.ErrorIs(t, err, sparse.ErrReleased)
	assert.ErrorIs(t, err, context.Canceled)
}
