package board

// Board owns the 81 cells of one puzzle. It is built once from external
// input and then mutated in place by a single search (domain pruning,
// value assignment, rollback); it must never be shared across searches.
type Board struct {
	cells [Size][Size]Cell
}

// New constructs a Board from the raw puzzle shape:
//
//   - givens[r][c]:     0 for an unfilled cell, 1–9 for a fixed clue;
//   - horizontal[r][c]: the dot on the edge between (r,c) and (r,c+1);
//   - vertical[r][c]:   the dot on the edge between (r,c) and (r+1,c).
//
// Every cell starts with the full nine-digit domain; the solver's initial
// sweep narrows them. Dot edges are wired symmetrically onto both cells,
// so edge metadata never needs a second lookup table during search.
// Returns ErrDigitRange if any given lies outside 0–9.
// Complexity: O(Size²) time and memory.
func New(givens [Size][Size]uint8, horizontal [Size][Size - 1]Dot, vertical [Size - 1][Size]Dot) (*Board, error) {
	b := &Board{}

	// 1. Seed values and full domains.
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if givens[r][c] > Size {
				return nil, ErrDigitRange
			}
			b.cells[r][c].Value = givens[r][c]
			b.cells[r][c].Domain = Full
		}
	}

	// 2. Wire horizontal dots onto both endpoint cells.
	for r := 0; r < Size; r++ {
		for c := 0; c < Size-1; c++ {
			if horizontal[r][c] == DotNone {
				continue
			}
			b.cells[r][c].Right = horizontal[r][c]
			b.cells[r][c+1].Left = horizontal[r][c]
		}
	}

	// 3. Wire vertical dots onto both endpoint cells.
	for r := 0; r < Size-1; r++ {
		for c := 0; c < Size; c++ {
			if vertical[r][c] == DotNone {
				continue
			}
			b.cells[r][c].Down = vertical[r][c]
			b.cells[r+1][c].Up = vertical[r][c]
		}
	}

	return b, nil
}

// At returns the cell at row r, column c for inspection or mutation.
// The pointer stays valid for the Board's lifetime.
// Complexity: O(1).
func (b *Board) At(r, c int) *Cell { return &b.cells[r][c] }

// Complete reports whether every cell carries a value.
// Complexity: O(Size²).
func (b *Board) Complete() bool {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if !b.cells[r][c].Assigned() {
				return false
			}
		}
	}

	return true
}

// Values returns a copy of the current assignment matrix
// (0 where a cell is still unassigned).
// Complexity: O(Size²).
func (b *Board) Values() [Size][Size]uint8 {
	var out [Size][Size]uint8
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			out[r][c] = b.cells[r][c].Value
		}
	}

	return out
}

// Clone returns an independent deep copy of the board.
// Useful for retaining the pre-search state, since Solve mutates in place.
// Complexity: O(Size²).
func (b *Board) Clone() *Board {
	cp := *b // cells is a value array, so this copies all 81 cells

	return &cp
}
