// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package wheel

import "testing"

func TestNewAndAt(t *testing.T) {
	w := New([]rune("ABCD"))
	if w.Size() != 4 {
		t.Fatalf("Size() = %d, want 4", w.Size())
	}
	if got := w.At(0); got != 'A' {
		t.Errorf("At(0) = %c, want A", got)
	}
	if got := w.At(-1); got != 'D' {
		t.Errorf("At(-1) = %c, want D", got)
	}
	if got := w.At(4); got != 'A' {
		t.Errorf("At(4) = %c, want A (wraparound)", got)
	}
}

func TestSetDoesNotAliasInput(t *testing.T) {
	symbols := []rune("ABCD")
	w := New(symbols)
	w.Set(0, 'Z')
	if symbols[0] != 'A' {
		t.Fatalf("New() aliased caller's slice; mutating the wheel changed it")
	}
}

func TestRotateLeft(t *testing.T) {
	w := New([]rune("ABCDE"))
	w.RotateLeft(2)
	if got := w.String(); got != "CDEAB" {
		t.Fatalf("RotateLeft(2) = %q, want CDEAB", got)
	}
}

func TestRotateLeftNegative(t *testing.T) {
	w := New([]rune("ABCDE"))
	w.RotateLeft(-1)
	if got := w.String(); got != "EABCD" {
		t.Fatalf("RotateLeft(-1) = %q, want EABCD", got)
	}
}

func TestRotateLeftZeroIsNoOp(t *testing.T) {
	w := New([]rune("ABCDE"))
	w.RotateLeft(0)
	if got := w.String(); got != "ABCDE" {
		t.Fatalf("RotateLeft(0) = %q, want ABCDE", got)
	}
	w.RotateLeft(5)
	if got := w.String(); got != "ABCDE" {
		t.Fatalf("RotateLeft(5) = %q, want ABCDE (full turn)", got)
	}
}

func TestIndexOf(t *testing.T) {
	w := New([]rune("ABCDE"))
	idx, ok := w.IndexOf('D')
	if !ok || idx != 3 {
		t.Fatalf("IndexOf('D') = (%d, %v), want (3, true)", idx, ok)
	}
	if _, ok := w.IndexOf('Z'); ok {
		t.Fatalf("IndexOf('Z') reported found, want not found")
	}
}

func TestRemoveInsertForward(t *testing.T) {
	// Matches the plain-rotor shift the forward permutation step uses: remove
	// the symbol at slot 2 and reinsert it at slot 13.
	w := New([]rune("0123456789ABCDEFGHIJKLMNOP"))
	w.RemoveInsert(2, 13)
	got := w.String()
	want := "013456789ABCD2EFGHIJKLMNOP"
	if got != want {
		t.Fatalf("RemoveInsert(2, 13) = %q, want %q", got, want)
	}
}

func TestRemoveInsertBackward(t *testing.T) {
	// Matches the cipher-rotor shift the reverse permutation step uses:
	// remove the symbol at slot 13 and reinsert it at slot 1.
	w := New([]rune("0123456789ABCDEFGHIJKLMNOP"))
	w.RemoveInsert(13, 1)
	got := w.String()
	want := "0D123456789ABCEFGHIJKLMNOP"
	if got != want {
		t.Fatalf("RemoveInsert(13, 1) = %q, want %q", got, want)
	}
}

func TestRemoveInsertSamePositionIsNoOp(t *testing.T) {
	w := New([]rune("ABCDE"))
	w.RemoveInsert(2, 2)
	if got := w.String(); got != "ABCDE" {
		t.Fatalf("RemoveInsert(2, 2) = %q, want ABCDE", got)
	}
}

func TestRemoveInsertIsInvertible(t *testing.T) {
	w := New([]rune("ABCDEFGHIJKLMNOPQRSTUVWXYZ"))
	before := w.String()
	w.RemoveInsert(2, 13)
	w.RemoveInsert(13, 2) // removing from 13 and reinserting at 2 undoes the shift
	if got := w.String(); got != before {
		t.Fatalf("RemoveInsert(2,13) then RemoveInsert(13,2) = %q, want original %q", got, before)
	}
}

func TestClone(t *testing.T) {
	w := New([]rune("ABCDE"))
	clone := w.Clone()
	clone.Set(0, 'Z')
	if w.At(0) != 'A' {
		t.Fatalf("mutating clone affected original: At(0) = %c", w.At(0))
	}
	if clone.At(0) != 'Z' {
		t.Fatalf("Clone().Set did not take effect")
	}
}

func TestStringRendersUnknownSentinel(t *testing.T) {
	w := New([]rune{'A', 0, 'C'})
	if got := w.String(); got != "A?C" {
		t.Fatalf("String() = %q, want A?C", got)
	}
}
