package sparse_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spanforest/sparse"
)

func TestParallel_CoversRangeOnce(t *testing.T) {
	const n = 10_000
	hits := make([]int32, n)
	err := sparse.Parallel{Workers: 8, Grain: 97}.Range(n, func(lo, hi int) error {
		for i := lo; i < hi; i++ {
			atomic.AddInt32(&hits[i], 1)
		}

		return nil
	})
	require.NoError(t, err)
	for i, h := range hits {
		if h != 1 {
			t.Fatalf("index %d visited %d times", i, h)
		}
	}
}

func TestParallel_PropagatesErrorAndPanic(t *testing.T) {
	boom := errors.New("boom")
	err := sparse.Parallel{Workers: 2, Grain: 10}.Range(100, func(lo, _ int) error {
		if lo == 50 {
			return boom
		}

		return nil
	})
	assert.ErrorIs(t, err, boom)

	err = sparse.Sequential{}.Range(5, func(int, int) error { panic("bad grain") })
	assert.ErrorIs(t, err, sparse.ErrExecutor)
}

func TestHandle_ReleaseIsIdempotent(t *testing.T) {
	h := sparse.Acquire(1)
	assert.Equal(t, 1, h.Workers())
	ex := h.Executor()
	require.NoError(t, ex.Range(3, func(int, int) error { return nil }))

	h.Release()
	h.Release()
	assert.True(t, h.Released())

	err := ex.Range(3, func(int, int) error { return nil })
	assert.ErrorIs(t, err, sparse.ErrReleased)

	// Operations surface the release through their wrapped error.
	v := sparse.MustVector[int](3)
	err = sparse.AssignConstant(h.Executor(), v, sparse.ComplementMask(v), 1)
	assert.ErrorIs(t, err, sparse.ErrReleased)
}

func TestAcquire_DefaultsToGOMAXPROCS(t *testing.T) {
	h := sparse.Acquire(0)
	defer h.Release()
	assert.GreaterOrEqual(t, h.Workers(), 1)
}

func TestBind_StopsAfterCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	ex := sparse.Bind(ctx, sparse.Parallel{Workers: 1, Grain: 1})

	var grains atomic.Int32
	err := ex.Range(4, func(lo, hi int) error {
		grains.Add(1)

		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, int32(1), grains.Load(), "one worker runs the range inline")

	// Cancel from inside the first grain: the remaining grains never start.
	grains.Store(0)
	par := sparse.Bind(ctx, sparse.Parallel{Workers: 2, Grain: 1})
	err = par.Range(64, func(lo, hi int) error {
		if grains.Add(1) == 1 {
			cancel()
		}

		return nil
	})
	require.ErrorIs(t, err, sparse.ErrReleased)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, grains.Load(), int32(64))

	err = ex.Range(1, func(lo, hi int) error {
		t.Fatal("body ran after cancel")

		return nil
	})
	assert.ErrorIs(t, err, sparse.ErrReleased)
}
