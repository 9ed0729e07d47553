package board

import "math/bits"

// Domain is a fixed-width bitset over the digits 1–9.
// Bit d being set means digit d+1 is still a viable candidate.
// The zero value is the empty domain; Full is the nine-digit domain.
type Domain uint16

// Full is the domain containing every digit 1–9 (low nine bits set).
const Full Domain = 1<<Size - 1

// Single returns the domain containing exactly the digit v.
// Callers must pass v in 1..9.
// Complexity: O(1).
func Single(v uint8) Domain { return 1 << (v - 1) }

// Has reports whether digit v is still a candidate.
// Complexity: O(1).
func (d Domain) Has(v uint8) bool { return d&Single(v) != 0 }

// Add marks digit v as a candidate.
// Complexity: O(1).
func (d *Domain) Add(v uint8) { *d |= Single(v) }

// Remove drops digit v from the candidates.
// Complexity: O(1).
func (d *Domain) Remove(v uint8) { *d &^= Single(v) }

// Count returns the number of candidate digits (popcount).
// Complexity: O(1).
func (d Domain) Count() int { return bits.OnesCount16(uint16(d)) }

// Empty reports whether no candidate remains — the dead-end signal
// that drives backtracking.
// Complexity: O(1).
func (d Domain) Empty() bool { return d == 0 }
