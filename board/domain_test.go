package board

import "testing"

// TestDomain_FullAndSingle checks the two mask constructors.
func TestDomain_FullAndSingle(t *testing.T) {
	if Full.Count() != Size {
		t.Fatalf("Full.Count() = %d; want %d", Full.Count(), Size)
	}
	for v := uint8(1); v <= Size; v++ {
		s := Single(v)
		if s.Count() != 1 {
			t.Errorf("Single(%d).Count() = %d; want 1", v, s.Count())
		}
		if !s.Has(v) {
			t.Errorf("Single(%d) does not contain %d", v, v)
		}
	}
}

// TestDomain_AddRemove exercises the mutation primitives used by the
// propagator: Remove must be exact and idempotent, Add must restore.
func TestDomain_AddRemove(t *testing.T) {
	d := Full
	d.Remove(5)
	if d.Has(5) {
		t.Fatal("Remove(5) left 5 in the domain")
	}
	if d.Count() != Size-1 {
		t.Fatalf("Count() = %d after one removal; want %d", d.Count(), Size-1)
	}
	d.Remove(5) // idempotent
	if d.Count() != Size-1 {
		t.Fatalf("second Remove(5) changed the domain: Count() = %d", d.Count())
	}
	d.Add(5)
	if d != Full {
		t.Fatalf("Add(5) did not restore Full: %09b", d)
	}
}

// TestDomain_Empty drains a domain one digit at a time and checks the
// dead-end signal fires exactly at zero candidates.
func TestDomain_Empty(t *testing.T) {
	d := Full
	for v := uint8(1); v <= Size; v++ {
		if d.Empty() {
			t.Fatalf("Empty() true with %d digits still to remove", Size-int(v)+1)
		}
		d.Remove(v)
	}
	if !d.Empty() {
		t.Fatalf("Empty() false after removing all digits: %09b", d)
	}
}
