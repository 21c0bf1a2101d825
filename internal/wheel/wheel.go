// Package wheel provides the circular-buffer primitive a Chaocipher rotor is
// built from: a fixed number of slots, addressed by a logical position that
// can be rotated, with a remove-then-insert compound operation as its only
// mutating primitive beyond rotation.
//
// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package wheel

// Wheel is a circular sequence of size slots, each holding a symbol (a rune,
// or alphabet.Unknown while a slot has not yet been determined). It is
// represented as a plain slice in logical order: Wheel.At(0) is always the
// slot at the wheel's current zenith. Rotation is a slice rotation rather
// than an index offset, which keeps RemoveInsert a simple slice splice
// instead of needing to reason about a separate base offset.
type Wheel struct {
	slots []rune
}

// New creates a Wheel from an ordered list of symbols. The symbols need not
// be distinct or complete; callers building a cracker rotor pass a slice of
// alphabet.Unknown sentinels.
func New(symbols []rune) *Wheel {
	slots := make([]rune, len(symbols))
	copy(slots, symbols)
	return &Wheel{slots: slots}
}

// Size returns the number of slots on the wheel.
func (w *Wheel) Size() int {
	return len(w.slots)
}

// At returns the symbol at logical position pos (taken modulo Size, and
// accepting negative positions, so At(-1) is the nadir).
func (w *Wheel) At(pos int) rune {
	return w.slots[w.norm(pos)]
}

// Set writes a symbol at logical position pos.
func (w *Wheel) Set(pos int, r rune) {
	w.slots[w.norm(pos)] = r
}

// norm reduces pos into [0, Size).
func (w *Wheel) norm(pos int) int {
	n := len(w.slots)
	pos %= n
	if pos < 0 {
		pos += n
	}
	return pos
}

// RotateLeft rotates the wheel so that the symbol currently at logical
// position k becomes the new zenith (position 0). k may be negative, which
// rotates right.
func (w *Wheel) RotateLeft(k int) {
	n := len(w.slots)
	if n == 0 {
		return
	}
	k = w.norm(k)
	if k == 0 {
		return
	}
	rotated := make([]rune, n)
	copy(rotated, w.slots[k:])
	copy(rotated[n-k:], w.slots[:k])
	w.slots = rotated
}

// IndexOf returns the logical position of the first occurrence of r, and
// whether it was found at all. Unknown slots never match.
func (w *Wheel) IndexOf(r rune) (int, bool) {
	for i, s := range w.slots {
		if s == r {
			return i, true
		}
	}
	return 0, false
}

// RemoveInsert removes the symbol currently at logical position from and
// reinserts it at logical position to, shifting the slots between the two
// positions by one to close/open the gap. This is the single compound
// primitive the Chaocipher permutation step is built from (spec.md §9 calls
// it "the only compound primitive").
func (w *Wheel) RemoveInsert(from, to int) {
	from = w.norm(from)
	to = w.norm(to)
	if from == to {
		return
	}

	value := w.slots[from]
	if from < to {
		copy(w.slots[from:to], w.slots[from+1:to+1])
	} else {
		copy(w.slots[to+1:from+1], w.slots[to:from])
	}
	w.slots[to] = value
}

// Clone returns an independent copy of the wheel.
func (w *Wheel) Clone() *Wheel {
	slots := make([]rune, len(w.slots))
	copy(slots, w.slots)
	return &Wheel{slots: slots}
}

// String renders the wheel's slots in logical order, using '?' for unknown
// slots, for debugging and test failure output.
func (w *Wheel) String() string {
	runes := make([]rune, len(w.slots))
	for i, s := range w.slots {
		if s == 0 {
			runes[i] = '?'
		} else {
			runes[i] = s
		}
	}
	return string(runes)
}
