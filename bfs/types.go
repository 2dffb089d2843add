// Package bfs provides tunable options and error definitions
// for the level-synchronous parent-forest traversal.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/spanforest/sparse"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. nil executor), it will be recorded
// internally and surfaced as ErrOptionViolation when ParentForest is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize the traversal.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines. It is checked once per level.
	Ctx context.Context

	// Executor schedules the bulk sparse operations.
	Executor sparse.Executor

	// OnRoot is called when an unassigned vertex starts a new tree.
	OnRoot func(root int)

	// OnLevel is called after every level with the root of the current
	// tree, the level just reached (1 for the root's neighbours) and the
	// number of vertices discovered at that level.
	OnLevel func(root, level, frontier int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - sequential executor
//   - no-op hooks (OnRoot, OnLevel)
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:      context.Background(),
		Executor: sparse.Sequential{},
		OnRoot:   func(int) {},
		OnLevel:  func(_, _, _ int) {},
		err:      nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithExecutor sets the executor for the sparse operations.
// A nil executor is invalid → ErrOptionViolation.
func WithExecutor(ex sparse.Executor) Option {
	return func(o *BFSOptions) {
		if ex == nil {
			o.err = fmt.Errorf("%w: nil executor", ErrOptionViolation)

			return
		}
		o.Executor = ex
	}
}

// WithOnRoot registers a callback to run when a new tree is started.
func WithOnRoot(fn func(root int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnRoot = fn
		}
	}
}

// WithOnLevel registers a callback to run after every completed level.
func WithOnLevel(fn func(root, level, frontier int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnLevel = fn
		}
	}
}
