// Package solver defines sentinel errors, options, and the result type for
// the solver subpackage of github.com/katalvlaran/kropki.
package solver

import (
	"context"
	"errors"
)

// Sentinel errors for solver operations.
var (
	// ErrNilBoard is returned when Solve receives a nil *board.Board.
	ErrNilBoard = errors.New("solver: board is nil")

	// ErrNoSolution is returned when the puzzle is unsatisfiable: either the
	// given clues already contradict each other, or the search exhausted
	// every branch. It is a normal outcome, distinct from success, never a
	// crash.
	ErrNoSolution = errors.New("solver: no solution exists")

	// ErrNodeBudget is returned when the WithMaxNodes budget is exceeded
	// before the search reaches a verdict. The board is restored to its
	// pre-search assignment state on the way out.
	ErrNodeBudget = errors.New("solver: node budget exceeded")
)

// Option configures optional behavior of Solve.
// Use with Solve(b, opts...).
type Option func(*Options)

// Options holds configurable parameters for one search run.
// The defaults run the search to completion with no external bound,
// matching the baseline single-threaded, synchronous design.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancellation is checked once per node expansion and unwinds the search
	// with ctx.Err(), restoring the board along the way.
	Ctx context.Context

	// MaxNodes, if positive, bounds the number of tentative assignments the
	// search may make before failing with ErrNodeBudget. Zero means no limit.
	// The bound affects runtime only, never solution correctness when not
	// triggered.
	MaxNodes int64
}

// DefaultOptions returns an Options struct with:
//   - Background context (no cancellation)
//   - No node budget (MaxNodes = 0)
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxNodes: 0,
	}
}

// WithContext returns an Option that sets the Context for the search.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxNodes returns an Option that bounds the search to n tentative
// assignments. Non-positive n disables the bound.
func WithMaxNodes(n int64) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxNodes = n
		}
	}
}

// Result carries search diagnostics. The solution itself lives in the
// board passed to Solve, which is mutated in place.
type Result struct {
	// Nodes counts tentative assignments made during the search.
	Nodes int64

	// Backtracks counts assignments that were undone after their branch
	// failed (including immediate forward-check rejections).
	Backtracks int64
}
