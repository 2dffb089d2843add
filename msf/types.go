// Package msf defines configuration options and sentinel errors for minimum
// spanning forest computation.
package msf

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/spanforest/sparse"
)

// ErrNilGraph indicates that an MSF routine was handed a nil graph.
var ErrNilGraph = errors.New("msf: nil graph")

// ErrUnknownStrategy indicates an unrecognized Prim extraction strategy.
var ErrUnknownStrategy = errors.New("msf: unknown extraction strategy")

// Strategy selects how Prim picks the next vertex to attach.
type Strategy int

const (
	// StrategyScan finds the closest unvisited vertex with a full ArgMin
	// over the distance vector: O(n) per extraction.
	StrategyScan Strategy = iota

	// StrategyOrdered keeps (distance, vertex) pairs in a binary heap and
	// discards stale entries on pop: O(log E) per extraction.
	StrategyOrdered
)

// String returns the strategy's flag spelling.
func (s Strategy) String() string {
	switch s {
	case StrategyScan:
		return "scan"
	case StrategyOrdered:
		return "ordered"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps "scan" or "ordered" (case-insensitive) to a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "scan":
		return StrategyScan, nil
	case "ordered", "heap":
		return StrategyOrdered, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
}

// Options configures Boruvka, Prim and Kruskal.
//
// Fields:
//
//	Executor: schedules the bulk sparse operations (default sparse.Sequential).
//	Strategy: Prim extraction strategy; ignored by Boruvka and Kruskal.
//	OnRound : Boruvka hook called after every round with the component
//	           count at the start of the round and the merges performed.
type Options struct {
	Executor sparse.Executor
	Strategy Strategy
	OnRound  func(round, components, merges int)
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns a sequential executor and the scan strategy.
func DefaultOptions() Options {
	return Options{
		Executor: sparse.Sequential{},
		Strategy: StrategyScan,
	}
}

// WithExecutor sets the executor; nil is ignored.
func WithExecutor(ex sparse.Executor) Option {
	return func(o *Options) {
		if ex != nil {
			o.Executor = ex
		}
	}
}

// WithStrategy sets Prim's extraction strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) { o.Strategy = s }
}

// WithOnRound installs the Boruvka per-round hook.
func WithOnRound(fn func(round, components, merges int)) Option {
	return func(o *Options) { o.OnRound = fn }
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
