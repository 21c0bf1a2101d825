// Package cracker implements the known-plaintext attack against a Chaocipher
// rotor state: given a plaintext/ciphertext pair and a starting index, it
// recovers the rotor configuration that produces the ciphertext from the
// plaintext, using a depth-first search interleaved with forced deductions.
//
// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package cracker

import (
	"errors"
	"fmt"

	"github.com/coredds/chaocipher/internal/alphabet"
	"github.com/coredds/chaocipher/internal/rotorstate"
)

// ErrIncompleteRotor is returned alongside a non-nil state when the search
// range has grown to cover the whole text but one or more rotor slots are
// still undetermined. The returned state is a best-effort partial result;
// callers that need a guarantee should verify it against the original
// ciphertext before trusting it.
var ErrIncompleteRotor = errors.New("search exhausted the text but the rotor is not fully determined")

// ErrUnsolvable is returned when no rotor configuration consistent with the
// given plaintext/ciphertext pair could be found from the chosen anchor.
var ErrUnsolvable = errors.New("no rotor configuration is consistent with the given text pair")

// SearchRange is the contiguous window [Start, End) of text positions whose
// character pairs have already been committed to the rotor under
// construction.
type SearchRange struct {
	Start int
	End   int
}

// RotorKind names which of the two rotors an operation concerns.
type RotorKind int

const (
	PlainRotor RotorKind = iota
	CipherRotor
)

// Direction names which boundary of the search range an operation extends.
type Direction int

const (
	Forward Direction = iota
	Backward
)

// Crack recovers the rotor state that turns plaintext into ciphertext,
// anchored at startIndex. alphabetSize is the number of symbols in the
// working alphabet (the cracker supports only a complete, closed alphabet:
// every rotor slot must end up populated from symbols of that size).
func Crack(plaintext, ciphertext []rune, startIndex, alphabetSize int) (*rotorstate.State, error) {
	if len(plaintext) != len(ciphertext) {
		return nil, fmt.Errorf("plaintext and ciphertext must have equal length, got %d and %d", len(plaintext), len(ciphertext))
	}
	if len(plaintext) == 0 {
		return nil, fmt.Errorf("cannot crack an empty text")
	}
	if startIndex < 0 || startIndex >= len(plaintext) {
		return nil, fmt.Errorf("start index %d out of range [0, %d)", startIndex, len(plaintext))
	}

	state := rotorstate.NewEmpty(alphabetSize)
	state.TextIndex = startIndex
	state.Seed(plaintext[startIndex], ciphertext[startIndex])

	rng := SearchRange{Start: startIndex, End: startIndex + 1}
	result, err := dfs(plaintext, ciphertext, state, rng, alphabetSize)
	if err != nil && !errors.Is(err, ErrIncompleteRotor) {
		return nil, err
	}
	if result == nil {
		return nil, ErrUnsolvable
	}
	return result, err
}

// dfs is the recursive search routine from spec.md §4.5. A (nil, nil) return
// means this branch is a dead end; the caller should try the next candidate.
func dfs(plaintext, ciphertext []rune, state *rotorstate.State, rng SearchRange, alphabetSize int) (*rotorstate.State, error) {
	for checkFunction(plaintext, ciphertext, state, rng) {
		ok, err := fillIn(plaintext, ciphertext, state, &rng)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, nil
		}
	}

	if len(state.PlainSeen) == alphabetSize && len(state.CipherSeen) == alphabetSize {
		return state, nil
	}
	if rng.Start == 0 && rng.End == len(plaintext) {
		return state, ErrIncompleteRotor
	}

	traversePosition := decideDirection(plaintext, ciphertext, state, rng)
	searchPosition := traversePosition
	extendingBackward := traversePosition == rng.Start
	if extendingBackward {
		searchPosition = traversePosition - 1
	}

	if err := state.TraverseTo(plaintext, traversePosition, false); err != nil {
		return nil, err
	}

	for _, pos := range findOpenPositions(state, extendingBackward, alphabetSize) {
		branch := state.Clone()
		branch.Cipher.Set(pos[0], ciphertext[searchPosition])
		branch.Plain.Set(pos[1], plaintext[searchPosition])
		branch.CipherSeen[ciphertext[searchPosition]] = true
		branch.PlainSeen[plaintext[searchPosition]] = true

		completed, err := dfs(plaintext, ciphertext, branch, rng, alphabetSize)
		if err != nil && !errors.Is(err, ErrIncompleteRotor) {
			return nil, err
		}
		if completed != nil {
			return completed, err
		}
	}

	return nil, nil
}

// checkFunction reports whether a boundary deduction is still available: one
// of the two characters just outside the known window is already seen on its
// rotor, which forces the paired rotor's slot (spec.md §4.4).
func checkFunction(plaintext, ciphertext []rune, state *rotorstate.State, rng SearchRange) bool {
	if rng.End != len(plaintext) {
		if state.PlainSeen[plaintext[rng.End]] {
			return true
		}
		if state.CipherSeen[ciphertext[rng.End]] {
			return true
		}
	}
	if rng.Start != 0 {
		if state.PlainSeen[plaintext[rng.Start-1]] {
			return true
		}
		if state.CipherSeen[ciphertext[rng.Start-1]] {
			return true
		}
	}
	return false
}

// findOpenPositions enumerates free cipher/plain slot pairs for branching
// (spec.md §4.5.f). backward selects the reverse-extension indexing (plain
// slot offset by -1 relative to the cipher slot).
func findOpenPositions(state *rotorstate.State, backward bool, alphabetSize int) [][2]int {
	offset := 0
	if backward {
		offset = -1
	}
	var positions [][2]int
	for i := 0; i < alphabetSize; i++ {
		if state.Cipher.At(i) == alphabet.Unknown && state.Plain.At(i+offset) == alphabet.Unknown {
			positions = append(positions, [2]int{i, i + offset})
		}
	}
	return positions
}
