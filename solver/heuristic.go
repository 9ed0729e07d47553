package solver

import "github.com/katalvlaran/kropki/board"

// degree counts the unassigned cells sharing (r,c)'s row, column, or box.
// Dot-edged neighbors are deliberately not counted: dot edges always sit in
// the same row or column, and the tie-break keys on positional constraints
// only. Heuristic quality, never correctness, depends on this choice.
// Complexity: O(Size + BoxSize²).
func degree(b *board.Board, r, c int) int {
	deg := 0
	for k := 0; k < board.Size; k++ {
		if k != c && !b.At(r, k).Assigned() {
			deg++
		}
	}
	for k := 0; k < board.Size; k++ {
		if k != r && !b.At(k, c).Assigned() {
			deg++
		}
	}
	r0, c0 := r/board.BoxSize*board.BoxSize, c/board.BoxSize*board.BoxSize
	for k := r0; k < r0+board.BoxSize; k++ {
		for l := c0; l < c0+board.BoxSize; l++ {
			if k == r || l == c {
				continue
			}
			if !b.At(k, l).Assigned() {
				deg++
			}
		}
	}

	return deg
}

// selectCell picks the next cell to branch on:
//
//  1. Minimum remaining values: the unassigned cell with the smallest domain.
//  2. Tie-break: the highest degree (most unassigned row/column/box peers).
//  3. Further ties: the first candidate in row-major scan order.
//
// A single row-major pass suffices: the first cell of a new minimum becomes
// the candidate, and later ties replace it only on strictly greater degree —
// the same cell the two-stage MRV-set-then-degree scan would select.
//
// Must only be called while at least one cell is unassigned; ok is false
// otherwise. Deterministic and side-effect free.
// Complexity: O(Size²) cells, O(Size) degree per MRV tie.
func selectCell(b *board.Board) (pos board.Pos, ok bool) {
	var (
		bestRemain = board.Size + 1
		bestDeg    = -1
	)
	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			cell := b.At(r, c)
			if cell.Assigned() {
				continue
			}
			remain := cell.Remaining()
			if remain > bestRemain {
				continue
			}
			if remain < bestRemain {
				bestRemain = remain
				bestDeg = degree(b, r, c)
				pos, ok = board.Pos{Row: r, Col: c}, true

				continue
			}
			if d := degree(b, r, c); d > bestDeg {
				bestDeg = d
				pos = board.Pos{Row: r, Col: c}
			}
		}
	}

	return pos, ok
}
