// Package rotorstate implements the Chaocipher rotor primitive: the pair of
// circular wheels (plain and cipher), the forward and reverse permutation
// steps that advance or rewind them, and the traversal utility the cracker
// uses to move a state to an arbitrary text position.
//
// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package rotorstate

import (
	"fmt"

	"github.com/coredds/chaocipher/internal/alphabet"
	"github.com/coredds/chaocipher/internal/wheel"
)

// IncompatibleError reports that a driving character is not present in the
// rotor being used as the step's reference.
type IncompatibleError struct {
	Char rune
}

func (e *IncompatibleError) Error() string {
	return fmt.Sprintf("character %q is not present in the reference rotor", e.Char)
}

// State is the tuple described in spec.md §3.3: two wheels, the set of
// symbols each currently holds, and a cursor into the shared plaintext and
// ciphertext.
type State struct {
	Plain      *wheel.Wheel
	Cipher     *wheel.Wheel
	PlainSeen  map[rune]bool
	CipherSeen map[rune]bool
	TextIndex  int
}

// New builds a fully-known rotor state from a starting permutation of Σ: both
// wheels begin identical to it, as the reference Chaocipher implementation's
// standard_rotor does. This is the make_rotor operation from spec.md §6.
func New(permutation []rune) *State {
	seen := make(map[rune]bool, len(permutation))
	for _, r := range permutation {
		seen[r] = true
	}
	plainSeen := make(map[rune]bool, len(seen))
	cipherSeen := make(map[rune]bool, len(seen))
	for r := range seen {
		plainSeen[r] = true
		cipherSeen[r] = true
	}

	return &State{
		Plain:      wheel.New(permutation),
		Cipher:     wheel.New(permutation),
		PlainSeen:  plainSeen,
		CipherSeen: cipherSeen,
		TextIndex:  0,
	}
}

// NewEmpty builds a rotor state of the given size with every slot unknown,
// the starting point for the cracker's search before any slot is seeded.
func NewEmpty(size int) *State {
	empty := make([]rune, size)
	for i := range empty {
		empty[i] = alphabet.Unknown
	}

	return &State{
		Plain:      wheel.New(empty),
		Cipher:     wheel.New(empty),
		PlainSeen:  make(map[rune]bool, size),
		CipherSeen: make(map[rune]bool, size),
		TextIndex:  0,
	}
}

// Seed commits the single plaintext/ciphertext pair at the cracker's anchor:
// cipher[0] <- cipherChar, plain[-1] <- plainChar, both added to their
// seen-sets, and the cursor advanced by one (spec.md §4.5 step 1).
func (s *State) Seed(plainChar, cipherChar rune) {
	s.Cipher.Set(0, cipherChar)
	s.CipherSeen[cipherChar] = true
	s.Plain.Set(-1, plainChar)
	s.PlainSeen[plainChar] = true
	s.TextIndex++
}

// Forward applies the forward (encode-direction) permutation step described
// in spec.md §4.1. text is the driving text; useCipher selects which wheel
// is the reference (true: cipher, false: plain). It requires
// text[TextIndex] to already be present on the reference wheel.
func (s *State) Forward(text []rune, useCipher bool) error {
	if s.TextIndex < 0 || s.TextIndex >= len(text) {
		return fmt.Errorf("text index %d out of range [0, %d) for forward step", s.TextIndex, len(text))
	}

	reference := s.Plain
	if useCipher {
		reference = s.Cipher
	}

	driving := text[s.TextIndex]
	k, ok := reference.IndexOf(driving)
	if !ok {
		return &IncompatibleError{Char: driving}
	}

	s.Cipher.RotateLeft(k)
	s.Plain.RotateLeft(k)
	s.Plain.RotateLeft(1)
	s.Plain.RemoveInsert(2, 13)
	s.Cipher.RemoveInsert(1, 13)
	s.TextIndex++
	return nil
}

// Reverse applies the reverse (decode/rewind-direction) permutation step
// described in spec.md §4.1. It undoes Forward called with the same text and
// useCipher flag up to a common rotation of both wheels: the driving
// character ends at position 0 of the reference wheel, not at the position
// it held before Forward. Because Forward starts by rotating the driver to
// that zenith, the restored state steps and encodes exactly as the original.
// It requires text[TextIndex-1] to already be present on the reference wheel.
func (s *State) Reverse(text []rune, useCipher bool) error {
	if s.TextIndex <= 0 || s.TextIndex > len(text) {
		return fmt.Errorf("text index %d out of range (0, %d] for reverse step", s.TextIndex, len(text))
	}

	reference := s.Plain
	if useCipher {
		reference = s.Cipher
	}

	driving := text[s.TextIndex-1]
	k, ok := reference.IndexOf(driving)
	if !ok {
		return &IncompatibleError{Char: driving}
	}

	offset := 1
	if useCipher {
		offset = 0
	}

	s.Cipher.RotateLeft(k + offset)
	s.Plain.RotateLeft(k + offset)
	s.Cipher.RemoveInsert(13, 1)
	s.Plain.RotateLeft(-1)
	s.Plain.RemoveInsert(14, 3)
	s.TextIndex--
	return nil
}

// TraverseTo repeatedly steps forward or reverse, driven by text and
// useCipher, until TextIndex equals target. This is the traversal utility
// from spec.md §4.3.
func (s *State) TraverseTo(text []rune, target int, useCipher bool) error {
	for s.TextIndex < target {
		if err := s.Forward(text, useCipher); err != nil {
			return err
		}
	}
	for s.TextIndex > target {
		if err := s.Reverse(text, useCipher); err != nil {
			return err
		}
	}
	return nil
}

// Clone returns an independent deep copy of the state: fresh wheels, fresh
// seen-sets, same cursor. Branching in the search coordinator uses this to
// give every candidate its own state (spec.md §3.5).
func (s *State) Clone() *State {
	plainSeen := make(map[rune]bool, len(s.PlainSeen))
	for r := range s.PlainSeen {
		plainSeen[r] = true
	}
	cipherSeen := make(map[rune]bool, len(s.CipherSeen))
	for r := range s.CipherSeen {
		cipherSeen[r] = true
	}

	return &State{
		Plain:      s.Plain.Clone(),
		Cipher:     s.Cipher.Clone(),
		PlainSeen:  plainSeen,
		CipherSeen: cipherSeen,
		TextIndex:  s.TextIndex,
	}
}

// CheckInvariants verifies the invariants of spec.md §3.3: no symbol appears
// twice on either wheel, and each wheel's slot set matches its seen-set.
func (s *State) CheckInvariants() error {
	if err := checkWheelInvariant(s.Plain, s.PlainSeen, "plain"); err != nil {
		return err
	}
	if err := checkWheelInvariant(s.Cipher, s.CipherSeen, "cipher"); err != nil {
		return err
	}
	if len(s.PlainSeen) != len(s.CipherSeen) {
		return fmt.Errorf("pairing invariant violated: %d plain symbols seen, %d cipher symbols seen",
			len(s.PlainSeen), len(s.CipherSeen))
	}
	return nil
}

func checkWheelInvariant(w *wheel.Wheel, seen map[rune]bool, label string) error {
	counted := make(map[rune]int, w.Size())
	for i := 0; i < w.Size(); i++ {
		r := w.At(i)
		if r == alphabet.Unknown {
			continue
		}
		counted[r]++
		if counted[r] > 1 {
			return fmt.Errorf("%s rotor contains duplicate symbol %q", label, r)
		}
	}
	if len(counted) != len(seen) {
		return fmt.Errorf("%s rotor seen-set (%d) does not match populated slots (%d)", label, len(seen), len(counted))
	}
	for r := range counted {
		if !seen[r] {
			return fmt.Errorf("%s rotor holds symbol %q missing from its seen-set", label, r)
		}
	}
	return nil
}
