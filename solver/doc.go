// Package solver implements the Kropki Sudoku search engine: forward-checking
// constraint propagation with an undo trail, MRV + degree variable ordering,
// and depth-first backtracking over a board.Board mutated in place.
//
// What:
//
//   - Solve(b, opts...): primes the board with an initial propagation sweep,
//     then runs the recursive backtracking search to a single solution or a
//     definitive ErrNoSolution.
//   - Propagation: assigning value v to a cell removes v from every
//     unassigned cell sharing its row, column, or 3×3 box, and intersects
//     dot-edged neighbors with the values the dot relation still permits.
//   - Ordering: minimum-remaining-values first, ties broken by the number of
//     unassigned row/column/box neighbors, further ties by row-major scan.
//
// Why:
//
//   - Forward checking catches dead ends one level early, before recursing
//     into a branch whose failure is already forced.
//   - MRV + degree attacks the most constrained cell first, which keeps the
//     branching factor near its floor on typical puzzles.
//   - The undo trail makes rollback exact: every pruned domain is restored
//     bit-for-bit when a branch unwinds.
//
// Determinism:
//
//   - No randomness anywhere. Cell choice and value order (ascending 1–9)
//     are fully deterministic, so the same input always yields the same
//     solution, node count, and backtrack count.
//
// Options:
//
//   - WithContext(ctx): cancels the search at the next node expansion.
//   - WithMaxNodes(n): aborts after n tentative assignments.
//
// Errors:
//
//   - ErrNilBoard:   Solve received a nil board.
//   - ErrNoSolution: the puzzle is unsatisfiable (search exhausted, or the
//     given clues already contradict each other).
//   - ErrNodeBudget: the WithMaxNodes budget ran out before a verdict.
//
// Complexity: exponential in the worst case (the problem is NP-hard);
// propagation per assignment is O(Size) row + O(Size) column + O(BoxSize²)
// box + 4 dot edges, all with O(1) bitset operations.
package solver
