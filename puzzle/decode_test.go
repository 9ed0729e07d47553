package puzzle_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kropki/board"
	"github.com/katalvlaran/kropki/puzzle"
)

// sampleInput is the traditional file layout: value grid, blank line,
// horizontal dots, blank line, vertical dots.
const sampleInput = `0 2 0 0 0 0 0 0 0
0 0 0 0 0 0 0 0 0
0 0 0 0 0 0 0 0 0
0 0 0 0 0 0 0 0 0
0 0 0 0 4 0 0 0 0
0 0 0 0 0 0 0 0 0
0 0 0 0 0 0 0 0 0
0 0 0 0 0 0 0 0 0
0 0 0 0 0 0 0 0 7

1 0 0 0 0 0 0 0
0 0 0 0 0 0 0 0
0 0 0 0 0 0 0 0
0 0 0 0 0 0 0 0
0 0 0 0 0 0 0 0
0 0 0 0 0 0 0 0
0 0 0 0 0 0 0 0
0 0 0 0 0 0 0 0
0 0 0 0 0 0 0 0

0 0 0 0 0 0 0 0 0
0 0 0 0 0 0 0 0 0
0 0 0 0 0 0 0 0 0
0 0 0 0 2 0 0 0 0
0 0 0 0 0 0 0 0 0
0 0 0 0 0 0 0 0 0
0 0 0 0 0 0 0 0 0
0 0 0 0 0 0 0 0 0
`

// TestDecode_Sample parses the traditional layout and spot-checks values,
// dot placement, and dot symmetry.
func TestDecode_Sample(t *testing.T) {
	b, err := puzzle.Decode(strings.NewReader(sampleInput))
	require.NoError(t, err)

	require.Equal(t, uint8(2), b.At(0, 1).Value)
	require.Equal(t, uint8(4), b.At(4, 4).Value)
	require.Equal(t, uint8(7), b.At(8, 8).Value)
	require.Equal(t, uint8(0), b.At(3, 3).Value)

	// Horizontal white dot between (0,0) and (0,1), wired on both cells.
	require.Equal(t, board.DotWhite, b.At(0, 0).Right)
	require.Equal(t, board.DotWhite, b.At(0, 1).Left)

	// Vertical black dot between (3,4) and (4,4).
	require.Equal(t, board.DotBlack, b.At(3, 4).Down)
	require.Equal(t, board.DotBlack, b.At(4, 4).Up)

	// Everything else stays unmarked.
	require.Equal(t, board.DotNone, b.At(5, 5).Right)
	require.Equal(t, board.DotNone, b.At(5, 5).Down)
}

// TestDecode_NoBlankSeparators: the blank lines between sections are
// optional.
func TestDecode_NoBlankSeparators(t *testing.T) {
	compact := strings.ReplaceAll(sampleInput, "\n\n", "\n")
	b, err := puzzle.Decode(strings.NewReader(compact))
	require.NoError(t, err)
	require.Equal(t, uint8(4), b.At(4, 4).Value)
	require.Equal(t, board.DotWhite, b.At(0, 0).Right)
}

// TestDecode_Truncated: an input missing the vertical-dot section fails
// with ErrTruncated.
func TestDecode_Truncated(t *testing.T) {
	idx := strings.LastIndex(sampleInput, "\n\n")
	_, err := puzzle.Decode(strings.NewReader(sampleInput[:idx]))
	require.ErrorIs(t, err, puzzle.ErrTruncated)
}

// TestDecode_FieldCount: a short row fails with ErrFieldCount.
func TestDecode_FieldCount(t *testing.T) {
	broken := strings.Replace(sampleInput, "0 2 0 0 0 0 0 0 0", "0 2 0 0 0 0 0 0", 1)
	_, err := puzzle.Decode(strings.NewReader(broken))
	require.ErrorIs(t, err, puzzle.ErrFieldCount)
}

// TestDecode_BadDigit: out-of-range grid values are rejected.
func TestDecode_BadDigit(t *testing.T) {
	broken := strings.Replace(sampleInput, "0 2 0", "0 x 0", 1)
	_, err := puzzle.Decode(strings.NewReader(broken))
	require.ErrorIs(t, err, puzzle.ErrBadDigit)
}

// TestDecode_BadMarker: dot markers outside {0,1,2} are rejected.
func TestDecode_BadMarker(t *testing.T) {
	broken := strings.Replace(sampleInput, "1 0 0 0 0 0 0 0", "3 0 0 0 0 0 0 0", 1)
	_, err := puzzle.Decode(strings.NewReader(broken))
	require.ErrorIs(t, err, puzzle.ErrBadMarker)
}

// TestEncode writes the value grid back out, one space-separated row per
// line, zeros included for open cells.
func TestEncode(t *testing.T) {
	b, err := puzzle.Decode(strings.NewReader(sampleInput))
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, puzzle.Encode(&sb, b))

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	require.Len(t, lines, board.Size)
	require.Equal(t, "0 2 0 0 0 0 0 0 0", lines[0])
	require.Equal(t, "0 0 0 0 4 0 0 0 0", lines[4])
	require.Equal(t, "0 0 0 0 0 0 0 0 7", lines[8])
}

// TestEncode_NilBoard guards the entry contract.
func TestEncode_NilBoard(t *testing.T) {
	var sb strings.Builder
	require.ErrorIs(t, puzzle.Encode(&sb, nil), puzzle.ErrNilBoard)
}
