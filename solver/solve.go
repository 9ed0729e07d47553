// Package solver - entry point and backtracking engine.
//
// Solve is the single public operation: it validates the given clues, primes
// the board with the initial propagation sweep, and runs the depth-first
// search. The board is the solution carrier — it is mutated in place and
// holds the completed grid on success; callers needing the original state
// must Clone before solving.
package solver

import "github.com/katalvlaran/kropki/board"

// searcher carries the per-run search state: options and diagnostics.
// One searcher exclusively owns its board for the duration of the run.
type searcher struct {
	opts Options
	res  Result
}

// Solve solves the puzzle held by b to a single solution, in place.
//
// Contracts:
//   - b must be non-nil and well-formed (board.New output); Solve checks the
//     given clues for mutual consistency but not structural validity.
//   - Not safe for concurrent use with any other access to b.
//
// Returns the search diagnostics and:
//   - nil on success (b now holds the completed grid);
//   - ErrNoSolution if the puzzle is unsatisfiable — contradictory clues or
//     full search exhaustion;
//   - ErrNodeBudget / the context's error if an external bound fired first,
//     with b's assignments restored to their pre-search state.
//
// Complexity: exponential worst case; recursion depth ≤ 81 frames.
func Solve(b *board.Board, opts ...Option) (Result, error) {
	// 1. Validate input board.
	if b == nil {
		return Result{}, ErrNilBoard
	}

	// 2. Apply options.
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Clues that already clash make the puzzle unsatisfiable before any
	// search; forward checking never re-examines assigned pairs, so this is
	// the only place that catches them.
	if !consistentGivens(b) {
		return Result{}, ErrNoSolution
	}

	// 4. Initial sweep: establish the starting domains from the clues.
	sweep(b)

	// 5. Depth-first backtracking.
	s := &searcher{opts: o}
	solved, err := s.backtrack(b)
	if err != nil {
		return s.res, err
	}
	if !solved {
		return s.res, ErrNoSolution
	}

	return s.res, nil
}

// backtrack is one recursive step of the search: pick the most constrained
// cell, try its candidate values in increasing order, forward-check each,
// recurse on consistency, and roll back exactly on failure.
//
// A true result propagates up immediately with all assignments kept. An
// error (cancellation or budget) unwinds like a failure so every frame
// restores its own trail, leaving the board at its pre-search assignments.
func (s *searcher) backtrack(b *board.Board) (bool, error) {
	// 1. External bound: checked once per node expansion.
	select {
	case <-s.opts.Ctx.Done():
		return false, s.opts.Ctx.Err()
	default:
	}

	// 2. Success: every cell assigned, all constraints maintained by
	// construction of the propagation.
	if b.Complete() {
		return true, nil
	}

	// 3. Variable ordering (MRV + degree); at least one cell is open here.
	pos, _ := selectCell(b)
	cell := b.At(pos.Row, pos.Col)

	// 4. Value ordering: ascending over the remaining candidates.
	for v := uint8(1); v <= board.Size; v++ {
		if !cell.Domain.Has(v) {
			continue
		}
		if s.opts.MaxNodes > 0 && s.res.Nodes >= s.opts.MaxNodes {
			return false, ErrNodeBudget
		}
		s.res.Nodes++

		// 4a. Tentative assignment + forward checking.
		cell.Value = v
		consistent, trail := forwardCheck(b, pos.Row, pos.Col)

		// 4b. Recurse only on consistency.
		if consistent {
			solved, err := s.backtrack(b)
			if solved {
				return true, nil // keep the assignment all the way up
			}
			if err != nil {
				rollback(b, trail)
				cell.Value = 0

				return false, err
			}
		}

		// 4c. Undo: restore recorded domains, reset the cell, next value.
		rollback(b, trail)
		cell.Value = 0
		s.res.Backtracks++
	}

	// 5. Every candidate failed; the caller undoes its own step.
	return false, nil
}

// dotHolds reports whether two assigned values satisfy a dot relation.
func dotHolds(dot board.Dot, a, w uint8) bool {
	switch dot {
	case board.DotWhite:
		return a+1 == w || w+1 == a
	case board.DotBlack:
		return a == 2*w || w == 2*a
	default:
		return true
	}
}

// consistentGivens scans the pre-filled cells for direct contradictions:
// a duplicate within a row, column, or box, or a dot relation violated by
// two assigned endpoints. Each pair is inspected once (forward scan; box
// pairs off the shared row/column via the strictly-below rows).
// Complexity: O(Size³) worst case, run once per Solve.
func consistentGivens(b *board.Board) bool {
	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			cell := b.At(r, c)
			if !cell.Assigned() {
				continue
			}
			v := cell.Value

			// Row and column duplicates.
			for k := c + 1; k < board.Size; k++ {
				if b.At(r, k).Value == v {
					return false
				}
			}
			for k := r + 1; k < board.Size; k++ {
				if b.At(k, c).Value == v {
					return false
				}
			}

			// Box duplicates not sharing this row or column.
			r0, c0 := r/board.BoxSize*board.BoxSize, c/board.BoxSize*board.BoxSize
			for k := r + 1; k < r0+board.BoxSize; k++ {
				for l := c0; l < c0+board.BoxSize; l++ {
					if l != c && b.At(k, l).Value == v {
						return false
					}
				}
			}

			// Dot relations with assigned neighbors (right and down cover
			// every edge exactly once).
			if cell.Right != board.DotNone {
				if nb := b.At(r, c+1); nb.Assigned() && !dotHolds(cell.Right, v, nb.Value) {
					return false
				}
			}
			if cell.Down != board.DotNone {
				if nb := b.At(r+1, c); nb.Assigned() && !dotHolds(cell.Down, v, nb.Value) {
					return false
				}
			}
		}
	}

	return true
}
