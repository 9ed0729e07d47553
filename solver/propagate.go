package solver

import "github.com/katalvlaran/kropki/board"

// change is one undo-log entry: the domain a cell held before propagation
// touched it. A trail of changes is produced by each forwardCheck call and
// consumed exactly once by the matching rollback.
type change struct {
	pos   board.Pos
	prior board.Domain
}

// dotMask returns the candidate set a dot relation permits for the neighbor
// of a cell assigned value v.
//
// White: {v−1, v+1} ∩ [1,9].
// Black: {v/2 if v even, v×2 if v×2 ≤ 9} — empty for odd v > 3, which is a
// legitimate immediate contradiction for an unassigned neighbor.
//
// Complexity: O(1).
func dotMask(dot board.Dot, v uint8) board.Domain {
	var m board.Domain
	switch dot {
	case board.DotWhite:
		if v > 1 {
			m.Add(v - 1)
		}
		if v < board.Size {
			m.Add(v + 1)
		}
	case board.DotBlack:
		if v%2 == 0 {
			m.Add(v / 2)
		}
		if v*2 <= board.Size {
			m.Add(v * 2)
		}
	}

	return m
}

// pruneCell intersects one unassigned neighbor's domain with keep, recording
// the prior domain onto the trail first when one is supplied.
//
// Trail present (incremental mode): reports false on a domain wipe-out so the
// caller can short-circuit; the recorded entry still reaches the trail for
// rollback. Trail absent (initial sweep): always reports true — wipe-outs
// surface later through MRV selecting the dead cell.
func pruneCell(nb *board.Cell, keep board.Domain, r, c int, trail *[]change) bool {
	if trail != nil {
		*trail = append(*trail, change{pos: board.Pos{Row: r, Col: c}, prior: nb.Domain})
	}
	nb.Domain &= keep

	return trail == nil || !nb.Domain.Empty()
}

// propagate applies the consequences of the assignment at (r,c) to every
// directly constrained neighbor: the value is removed from unassigned cells
// in the same row, column, and 3×3 box, and dot-edged neighbors are
// intersected with the values their relation still permits.
//
// With a trail, this is forward checking: record-then-mutate one neighbor at
// a time, aborting on the first empty domain. With a nil trail it is the
// build-time sweep that establishes the starting domains.
//
// Complexity: O(Size) row + O(Size) column + O(BoxSize²) box + 4 dot edges.
func propagate(b *board.Board, r, c int, trail *[]change) bool {
	v := b.At(r, c).Value
	keep := board.Full &^ board.Single(v)

	// 1. Row neighbors.
	for k := 0; k < board.Size; k++ {
		if k == c {
			continue
		}
		if nb := b.At(r, k); !nb.Assigned() && !pruneCell(nb, keep, r, k, trail) {
			return false
		}
	}

	// 2. Column neighbors.
	for k := 0; k < board.Size; k++ {
		if k == r {
			continue
		}
		if nb := b.At(k, c); !nb.Assigned() && !pruneCell(nb, keep, k, c, trail) {
			return false
		}
	}

	// 3. Box neighbors not already covered by the row or column pass.
	r0, c0 := r/board.BoxSize*board.BoxSize, c/board.BoxSize*board.BoxSize
	for k := r0; k < r0+board.BoxSize; k++ {
		for l := c0; l < c0+board.BoxSize; l++ {
			if k == r || l == c {
				continue
			}
			if nb := b.At(k, l); !nb.Assigned() && !pruneCell(nb, keep, k, l, trail) {
				return false
			}
		}
	}

	// 4. Dot edges. New guarantees marked edges never point off the grid.
	cell := b.At(r, c)
	if cell.Up != board.DotNone {
		if nb := b.At(r-1, c); !nb.Assigned() && !pruneCell(nb, dotMask(cell.Up, v), r-1, c, trail) {
			return false
		}
	}
	if cell.Down != board.DotNone {
		if nb := b.At(r+1, c); !nb.Assigned() && !pruneCell(nb, dotMask(cell.Down, v), r+1, c, trail) {
			return false
		}
	}
	if cell.Left != board.DotNone {
		if nb := b.At(r, c-1); !nb.Assigned() && !pruneCell(nb, dotMask(cell.Left, v), r, c-1, trail) {
			return false
		}
	}
	if cell.Right != board.DotNone {
		if nb := b.At(r, c+1); !nb.Assigned() && !pruneCell(nb, dotMask(cell.Right, v), r, c+1, trail) {
			return false
		}
	}

	return true
}

// sweep runs the build-time propagation pass over every pre-filled cell,
// narrowing all unassigned domains with no rollback bookkeeping.
// Complexity: O(Size²) cells × O(Size) neighbors.
func sweep(b *board.Board) {
	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			if b.At(r, c).Assigned() {
				propagate(b, r, c, nil)
			}
		}
	}
}

// forwardCheck runs incremental propagation for the tentative assignment at
// (r,c). It returns the consistency flag and the accumulated trail — the
// trail is valid and must be rolled back even when consistent is false.
func forwardCheck(b *board.Board, r, c int) (consistent bool, trail []change) {
	trail = make([]change, 0, 3*board.Size)
	consistent = propagate(b, r, c, &trail)

	return consistent, trail
}

// rollback restores the domains recorded on the trail, newest first.
// Reverse order makes duplicate entries for a twice-pruned cell harmless:
// the oldest (pre-propagation) snapshot lands last.
func rollback(b *board.Board, trail []change) {
	for i := len(trail) - 1; i >= 0; i-- {
		b.At(trail[i].pos.Row, trail[i].pos.Col).Domain = trail[i].prior
	}
}
