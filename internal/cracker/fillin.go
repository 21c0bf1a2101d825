// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package cracker

import (
	"github.com/coredds/chaocipher/internal/alphabet"
	"github.com/coredds/chaocipher/internal/rotorstate"
	"github.com/coredds/chaocipher/internal/wheel"
)

// fillIn runs the four boundary conditions of spec.md §4.4's table once,
// each of which may force and commit one rotor slot. It reports false on a
// contradiction (the engine must abandon this branch).
func fillIn(plaintext, ciphertext []rune, state *rotorstate.State, rng *SearchRange) (bool, error) {
	type attempt struct {
		kind RotorKind
		dir  Direction
	}
	// itertools.product(["forward", "back"], ["plain", "cipher"]) order.
	order := []attempt{
		{PlainRotor, Forward},
		{CipherRotor, Forward},
		{PlainRotor, Backward},
		{CipherRotor, Backward},
	}

	for _, a := range order {
		ok, err := tryDirection(plaintext, ciphertext, state, rng, a.kind, a.dir)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// tryDirection tests one of the four boundary conditions from spec.md §4.4's
// table: if the "known side" character at the relevant boundary is already
// on its rotor, traverse there and attempt to force the paired rotor's slot.
func tryDirection(plaintext, ciphertext []rune, state *rotorstate.State, rng *SearchRange, kind RotorKind, dir Direction) (bool, error) {
	var toFillWheel *wheel.Wheel
	var filledSet, toFillSet map[rune]bool
	var filledText, toFillText []rune

	if kind == PlainRotor {
		toFillWheel = state.Plain
		filledSet = state.CipherSeen
		toFillSet = state.PlainSeen
		filledText = ciphertext
		toFillText = plaintext
	} else {
		toFillWheel = state.Cipher
		filledSet = state.PlainSeen
		toFillSet = state.CipherSeen
		filledText = plaintext
		toFillText = ciphertext
	}

	var boundaryOK bool
	var filledPosition, traversePosition int
	if dir == Forward {
		boundaryOK = rng.End != len(plaintext)
		filledPosition = rng.End
		traversePosition = rng.End + 1
	} else {
		boundaryOK = rng.Start != 0
		filledPosition = rng.Start - 1
		traversePosition = rng.Start - 1
	}
	if !boundaryOK {
		return true, nil
	}

	filledChar := filledText[filledPosition]
	if !filledSet[filledChar] {
		return true, nil
	}

	useCipher := kind == PlainRotor
	if err := state.TraverseTo(filledText, traversePosition, useCipher); err != nil {
		return false, err
	}

	if !validMutation(toFillWheel, toFillSet, toFillText[filledPosition], kind, dir) {
		return false, nil
	}
	fillCharacter(plaintext, ciphertext, state, rng, dir, kind)
	return true, nil
}

// validMutation checks the slot we are about to write either already holds
// fillChar or is unpopulated, and that fillChar is not already placed
// elsewhere on that rotor (spec.md §4.4 step 2).
func validMutation(w *wheel.Wheel, seen map[rune]bool, fillChar rune, kind RotorKind, dir Direction) bool {
	pos := fillSlot(kind, dir)
	current := w.At(pos)
	slotOK := current == alphabet.Unknown || current == fillChar
	uniqueOK := current == fillChar || !seen[fillChar]
	return slotOK && uniqueOK
}

// fillCharacter commits the forced character and widens the search range by
// one (spec.md §4.4 step 3).
func fillCharacter(plaintext, ciphertext []rune, state *rotorstate.State, rng *SearchRange, dir Direction, kind RotorKind) {
	searchIndex := rng.End
	indexMod := 0
	if dir == Backward {
		searchIndex = rng.Start
		indexMod = -1
	}

	var w *wheel.Wheel
	var text []rune
	var seen map[rune]bool
	if kind == PlainRotor {
		w, text, seen = state.Plain, plaintext, state.PlainSeen
	} else {
		w, text, seen = state.Cipher, ciphertext, state.CipherSeen
	}

	ch := text[searchIndex+indexMod]
	w.Set(fillSlot(kind, dir), ch)
	seen[ch] = true

	if dir == Forward {
		rng.End++
	} else {
		rng.Start--
	}
}

// fillSlot is the write position noted in spec.md §4.4: forward-direction
// plain fills write to plain[-1]; every other combination writes to
// position 0 (the reverse step's post-traversal zenith, or the cipher
// rotor's always-fixed forward write slot).
func fillSlot(kind RotorKind, dir Direction) int {
	if kind == PlainRotor && dir == Forward {
		return -1
	}
	return 0
}
