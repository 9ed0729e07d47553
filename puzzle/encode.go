package puzzle

import (
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/kropki/board"
)

// Encode writes b's value matrix to w: nine lines of nine space-separated
// digits, 0 standing in for any still-unassigned cell. Dot metadata is not
// part of the output — a solved puzzle is reported as its value grid only.
// Complexity: O(Size²).
func Encode(w io.Writer, b *board.Board) error {
	if b == nil {
		return ErrNilBoard
	}

	vals := b.Values()
	var sb strings.Builder
	sb.Grow(board.Size * board.Size * 2)
	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.Itoa(int(vals[r][c])))
		}
		sb.WriteByte('\n')
	}

	_, err := io.WriteString(w, sb.String())

	return err
}
