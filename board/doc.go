// Package board holds the mutable state of a Kropki Sudoku puzzle:
// 81 cells arranged as a 9×9 grid, each carrying an assigned value,
// a 9-bit candidate domain, and the dot-edge metadata fixed at build time.
//
// What:
//
//   - Domain: a fixed-width bitset over the digits 1–9 with O(1)
//     membership, removal, and popcount — no heap allocation per cell.
//   - Cell: value (0 = unassigned), domain, and the four dot edges.
//   - Board: owns the [9][9]Cell array; built once via New, then mutated
//     in place by the solver (domain pruning, value assignment, rollback).
//
// Why:
//
//   - The search engine needs cheap state queries and snapshot/restore of
//     domains; everything here is pure state plus O(1) accessors.
//   - Dot-edge symmetry (A→right white ⇔ B→left white) is established once
//     by New and never mutated afterwards, so the solver can trust it.
//
// Errors:
//
//   - ErrDigitRange: a given clue lies outside 0–9.
//
// No constraint or validation logic lives here; the solver owns semantics.
package board
