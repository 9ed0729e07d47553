// Package kropki solves Kropki Sudoku: a 9×9 grid under the standard
// row/column/box uniqueness rules, plus pairwise "dot" constraints between
// orthogonally adjacent cells — a white dot requires consecutive values,
// a black dot requires one value to be exactly double the other.
//
// 🚀 What is kropki?
//
//	A small, deterministic constraint-satisfaction engine built from three
//	pieces:
//		• board:  the mutable puzzle state — cells, 9-bit candidate domains,
//		          and immutable dot-edge metadata
//		• solver: forward-checking propagation with an undo trail, MRV +
//		          degree variable ordering, and depth-first backtracking
//		• puzzle: a text codec for the classic whitespace grid format
//
// ✨ Why choose kropki?
//
//   - Deterministic — no randomness anywhere; the same input always yields
//     the same output, heuristics included
//   - Exact — the search never prunes a valid solution and never accepts an
//     invalid one; unsatisfiable puzzles report a distinct failure value
//   - Allocation-lean — domains are fixed-width bitsets, the undo log is a
//     flat trail, the grid is a single [9][9] array owned by one search
//
// Quick ASCII example (● = black dot, ○ = white dot on the shared edge):
//
//	    ┌───┬───┐
//	    │ 2 ● 4 │      black: 4 = 2×2
//	    ├───┼───┤
//	    │ 3 ○ _ │      white: the blank must be 2 or 4
//	    └───┴───┘
//
// Typical use:
//
//	b, err := puzzle.Decode(r)      // or board.New(givens, horiz, vert)
//	res, err := solver.Solve(b)     // b now holds the solution in place
//
// The cmd/kropki binary wraps the same pipeline as a batch CLI driver.
//
//	go get github.com/katalvlaran/kropki
package kropki
