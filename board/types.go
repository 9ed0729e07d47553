// Package board defines core types and sentinel errors for the board
// subpackage of github.com/katalvlaran/kropki.
package board

import "errors"

// Sentinel errors for board construction.
var (
	// ErrDigitRange indicates a given clue outside the 0–9 range
	// (0 denotes an unfilled cell, 1–9 a fixed clue).
	ErrDigitRange = errors.New("board: given value must be in 0..9")
)

// Grid dimensions. Kropki Sudoku is fixed at 9×9 with 3×3 boxes.
const (
	// Size is the number of rows and columns.
	Size = 9
	// BoxSize is the side length of one 3×3 box.
	BoxSize = 3
)

// Dot classifies the constraint on the edge between two adjacent cells.
type Dot uint8

const (
	// DotNone marks an unconstrained edge.
	DotNone Dot = iota
	// DotWhite requires the two final values to be consecutive integers.
	DotWhite
	// DotBlack requires one final value to be exactly double the other.
	DotBlack
)

// Pos is a row-major cell coordinate: Row, Col ∈ [0, Size).
type Pos struct {
	Row, Col int
}

// Cell is one square of the grid.
// Value is authoritative once non-zero; Domain is only meaningful while
// the cell is unassigned. The four Dot fields are fixed by New and must
// never be mutated during search.
type Cell struct {
	// Value holds the assignment: 0 = unassigned, otherwise a digit 1–9.
	Value uint8
	// Domain holds the candidate digits still viable for this cell.
	Domain Domain
	// Up, Down, Left, Right describe the dot edge toward each neighbor.
	// Edges pointing off the grid are always DotNone.
	Up, Down, Left, Right Dot
}

// Assigned reports whether the cell carries a value.
// Complexity: O(1).
func (c *Cell) Assigned() bool { return c.Value != 0 }

// Remaining returns the number of candidate digits left in the domain.
// Complexity: O(1) (single popcount).
func (c *Cell) Remaining() int { return c.Domain.Count() }
