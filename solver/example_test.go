package solver_test

import (
	"fmt"

	"github.com/katalvlaran/kropki/board"
	"github.com/katalvlaran/kropki/solver"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Solve
////////////////////////////////////////////////////////////////////////////////

// ExampleSolve completes a classic grid with one blank cell and a white dot
// pinning the blank to a neighbor of its right-hand value.
// The board is mutated in place; Values() reads the finished grid.
func ExampleSolve() {
	givens := [board.Size][board.Size]uint8{
		{0, 2, 3, 4, 5, 6, 7, 8, 9}, // (0,0) is open; it can only be 1
		{4, 5, 6, 7, 8, 9, 1, 2, 3},
		{7, 8, 9, 1, 2, 3, 4, 5, 6},
		{2, 3, 1, 5, 6, 4, 8, 9, 7},
		{5, 6, 4, 8, 9, 7, 2, 3, 1},
		{8, 9, 7, 2, 3, 1, 5, 6, 4},
		{3, 1, 2, 6, 4, 5, 9, 7, 8},
		{6, 4, 5, 9, 7, 8, 3, 1, 2},
		{9, 7, 8, 3, 1, 2, 6, 4, 5},
	}
	var horizontal [board.Size][board.Size - 1]board.Dot
	horizontal[0][0] = board.DotWhite // 1 and 2 are consecutive

	b, _ := board.New(givens, horizontal, [board.Size - 1][board.Size]board.Dot{})
	res, err := solver.Solve(b)
	if err != nil {
		fmt.Println("unsolvable:", err)

		return
	}
	fmt.Println("cell (0,0):", b.Values()[0][0])
	fmt.Println("nodes:", res.Nodes)

	// Output:
	// cell (0,0): 1
	// nodes: 1
}
