// Package chaocipher is the public facade over the rotor primitive, the
// encode/decode driver, and the known-plaintext cracker: construct a Rotor
// from a permutation, a key, or randomness, then Encode/Decode text with it,
// or recover one from a plaintext/ciphertext pair with Crack.
//
// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package chaocipher

import "errors"

// ErrRotorIncompatible means a driving character was not present in the
// rotor being used as the step's reference (spec.md §7).
var ErrRotorIncompatible = errors.New("character not present in the reference rotor")

// ErrUnsolvable means Crack exhausted its search tree without finding any
// rotor configuration consistent with the given text pair.
var ErrUnsolvable = errors.New("no rotor configuration is consistent with the given plaintext and ciphertext")

// ErrIncompleteRotor is returned alongside a non-nil Rotor when Crack's
// search range grew to cover the whole text but left one or more rotor
// slots undetermined (spec.md §9's "incomplete success" open question). The
// returned Rotor is a best-effort partial result: verify it by re-encoding
// the plaintext and comparing against the ciphertext before trusting it.
var ErrIncompleteRotor = errors.New("search exhausted the text but the rotor is not fully determined")
