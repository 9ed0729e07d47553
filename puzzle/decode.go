package puzzle

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/kropki/board"
)

// Decode parses the text puzzle format from r and builds a *board.Board.
//
// The format is three stacked sections of whitespace-separated fields:
// 9 value rows (9 fields), 9 horizontal-dot rows (8 fields), and 8
// vertical-dot rows (9 fields). Blank lines anywhere are skipped, so the
// traditional single blank line between sections is accepted but not
// required.
//
// Errors: ErrTruncated, ErrFieldCount, ErrBadDigit, ErrBadMarker (all
// wrapped with the 1-based line position), plus any reader error.
// Complexity: O(input) time, O(Size²) memory.
func Decode(r io.Reader) (*board.Board, error) {
	// 1. Collect the non-blank lines, tokenized.
	sc := bufio.NewScanner(r)
	lines := make([][]string, 0, totalLines)
	for sc.Scan() && len(lines) < totalLines {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		lines = append(lines, fields)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("puzzle: read: %w", err)
	}
	if len(lines) < totalLines {
		return nil, fmt.Errorf("%w: got %d content lines, want %d", ErrTruncated, len(lines), totalLines)
	}

	// 2. Section one: the value grid.
	var givens [board.Size][board.Size]uint8
	for i := 0; i < valueLines; i++ {
		if len(lines[i]) != board.Size {
			return nil, fmt.Errorf("%w %d: got %d, want %d", ErrFieldCount, i+1, len(lines[i]), board.Size)
		}
		for j, f := range lines[i] {
			v, err := strconv.Atoi(f)
			if err != nil || v < 0 || v > board.Size {
				return nil, fmt.Errorf("%w: %q at line %d field %d", ErrBadDigit, f, i+1, j+1)
			}
			givens[i][j] = uint8(v)
		}
	}

	// 3. Section two: horizontal dots.
	var horizontal [board.Size][board.Size - 1]board.Dot
	for i := 0; i < horizontalLines; i++ {
		line := lines[valueLines+i]
		if len(line) != board.Size-1 {
			return nil, fmt.Errorf("%w %d: got %d, want %d", ErrFieldCount, valueLines+i+1, len(line), board.Size-1)
		}
		for j, f := range line {
			dot, err := parseDot(f)
			if err != nil {
				return nil, fmt.Errorf("%w: %q at line %d field %d", err, f, valueLines+i+1, j+1)
			}
			horizontal[i][j] = dot
		}
	}

	// 4. Section three: vertical dots.
	var vertical [board.Size - 1][board.Size]board.Dot
	for i := 0; i < verticalLines; i++ {
		line := lines[valueLines+horizontalLines+i]
		if len(line) != board.Size {
			return nil, fmt.Errorf("%w %d: got %d, want %d",
				ErrFieldCount, valueLines+horizontalLines+i+1, len(line), board.Size)
		}
		for j, f := range line {
			dot, err := parseDot(f)
			if err != nil {
				return nil, fmt.Errorf("%w: %q at line %d field %d",
					err, f, valueLines+horizontalLines+i+1, j+1)
			}
			vertical[i][j] = dot
		}
	}

	return board.New(givens, horizontal, vertical)
}

// parseDot maps a marker field to a board.Dot.
func parseDot(f string) (board.Dot, error) {
	switch f {
	case "0":
		return board.DotNone, nil
	case "1":
		return board.DotWhite, nil
	case "2":
		return board.DotBlack, nil
	default:
		return board.DotNone, ErrBadMarker
	}
}
