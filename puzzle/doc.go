// Package puzzle reads and writes the classic whitespace text format for
// Kropki Sudoku puzzles.
//
// What:
//
//   - Decode: parses the three input sections into a *board.Board —
//     9 rows × 9 values (0 = unfilled, 1–9 = clue), then 9 rows × 8
//     horizontal dot markers, then 8 rows × 9 vertical dot markers
//     (0 = none, 1 = white, 2 = black). Blank separator lines between
//     sections are ignored, so files with or without them both parse.
//   - Encode: writes the 9×9 value matrix, space-separated, one row per
//     line — the shape a solved puzzle is reported in.
//
// Why:
//
//   - The solver core assumes a well-formed board as a precondition;
//     every malformed-input concern (dimensions, digit range, marker
//     alphabet) is caught here, before the core runs.
//
// Errors:
//
//   - ErrTruncated:  fewer lines than the three sections require.
//   - ErrFieldCount: a line carries the wrong number of fields.
//   - ErrBadDigit:   a grid value outside 0–9.
//   - ErrBadMarker:  a dot marker outside {0, 1, 2}.
//   - ErrNilBoard:   Encode received a nil board.
package puzzle
