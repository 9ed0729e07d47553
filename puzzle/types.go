// Package puzzle defines sentinel errors and format constants for the
// puzzle subpackage of github.com/katalvlaran/kropki.
package puzzle

import "errors"

// Sentinel errors for puzzle decoding and encoding.
var (
	// ErrTruncated indicates the input ended before all three sections
	// (values, horizontal dots, vertical dots) were read.
	ErrTruncated = errors.New("puzzle: input truncated before all sections were read")
	// ErrFieldCount indicates a line with the wrong number of fields.
	ErrFieldCount = errors.New("puzzle: wrong number of fields on line")
	// ErrBadDigit indicates a grid value outside 0–9.
	ErrBadDigit = errors.New("puzzle: grid value must be in 0..9")
	// ErrBadMarker indicates a dot marker outside {0, 1, 2}.
	ErrBadMarker = errors.New("puzzle: dot marker must be 0, 1, or 2")
	// ErrNilBoard indicates Encode received a nil board.
	ErrNilBoard = errors.New("puzzle: board is nil")
)

// Line counts of the three input sections, in file order.
const (
	valueLines      = 9  // 9 fields each: cell values
	horizontalLines = 9  // 8 fields each: dots between (r,c) and (r,c+1)
	verticalLines   = 8  // 9 fields each: dots between (r,c) and (r+1,c)
	totalLines      = valueLines + horizontalLines + verticalLines
)
