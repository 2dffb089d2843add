// SPDX-License-Identifier: MIT
// Package sparse: executors and the scoped backend handle.
//
// An Executor only decides HOW the index space [0, n) is walked; the bulk
// operations themselves never depend on the schedule, so Sequential and
// Parallel produce identical results.

package sparse

import (
	"context"
	"fmt"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// DefaultGrain is the number of indices handed to one Parallel task when
// Parallel.Grain is not set.
const DefaultGrain = 2048

// Executor runs body over disjoint half-open ranges covering [0, n).
// Range returns only after every range completed; the first error wins.
type Executor interface {
	Range(n int, body func(lo, hi int) error) error
}

// Sequential runs the whole range inline on the calling goroutine.
type Sequential struct{}

// Range implements Executor.
func (Sequential) Range(n int, body func(lo, hi int) error) error {
	if n <= 0 {
		return nil
	}

	return guard(body, 0, n)
}

// Parallel splits [0, n) into Grain-sized ranges and runs them on at most
// Workers goroutines. Zero values pick GOMAXPROCS and DefaultGrain.
type Parallel struct {
	Workers int
	Grain   int
}

// Range implements Executor.
func (p Parallel) Range(n int, body func(lo, hi int) error) error {
	if n <= 0 {
		return nil
	}
	workers := p.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	grain := p.Grain
	if grain <= 0 {
		grain = DefaultGrain
	}
	// Not worth a goroutine.
	if workers == 1 || n <= grain {
		return guard(body, 0, n)
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for lo := 0; lo < n; lo += grain {
		hi := min(lo+grain, n)
		g.Go(func() error {
			return guard(body, lo, hi)
		})
	}

	return g.Wait()
}

// guard runs body and converts a panic into ErrExecutor.
func guard(body func(lo, hi int) error, lo, hi int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: range [%d,%d): %v", ErrExecutor, lo, hi, r)
		}
	}()

	return body(lo, hi)
}

// Handle owns the executor shared by one benchmark process. It replaces
// free-floating global backend state: Acquire once, defer Release.
type Handle struct {
	ex       Executor
	workers  int
	released atomic.Bool
}

// Acquire returns a handle backed by a Parallel executor with the given
// worker count, or by Sequential when workers == 1.
// workers <= 0 selects GOMAXPROCS.
func Acquire(workers int) *Handle {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	h := &Handle{workers: workers}
	if workers == 1 {
		h.ex = Sequential{}
	} else {
		h.ex = Parallel{Workers: workers}
	}

	return h
}

// Workers returns the worker count the handle was acquired with.
func (h *Handle) Workers() int { return h.workers }

// Executor returns the handle's executor. After Release the returned
// executor fails every Range call with ErrReleased.
func (h *Handle) Executor() Executor {
	return handleExecutor{h: h}
}

// Release marks the handle released. It is safe to call more than once.
func (h *Handle) Release() {
	h.released.Store(true)
}

// Released reports whether Release was called.
func (h *Handle) Released() bool { return h.released.Load() }

// handleExecutor checks the handle state on every Range call so that an
// executor captured before Release cannot outlive it.
type handleExecutor struct{ h *Handle }

func (e handleExecutor) Range(n int, body func(lo, hi int) error) error {
	if e.h.released.Load() {
		return ErrReleased
	}

	return e.h.ex.Range(n, body)
}

// Bind returns an executor that runs on ex until ctx is done. From then on
// every Range call, and every grain of a running call that has not started
// yet, fails with ErrReleased wrapping ctx.Err(). The benchmark runner binds
// each run to its own context so an abandoned Compute stops at its next
// bulk operation.
func Bind(ctx context.Context, ex Executor) Executor {
	return boundExecutor{ctx: ctx, ex: ex}
}

type boundExecutor struct {
	ctx context.Context
	ex  Executor
}

func (e boundExecutor) Range(n int, body func(lo, hi int) error) error {
	if err := e.done(); err != nil {
		return err
	}

	return e.ex.Range(n, func(lo, hi int) error {
		if err := e.done(); err != nil {
			return err
		}

		return body(lo, hi)
	})
}

func (e boundExecutor) done() error {
	if err := e.ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrReleased, err)
	}

	return nil
}
