// Package chaocipher implements the Chaocipher rotor cipher: a pair of
// mutating alphabet wheels, the permutation step that advances them, and a
// known-plaintext attack that recovers a rotor configuration from a
// plaintext/ciphertext pair.
//
// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package chaocipher

// AlphabetStandard is the 26-symbol working alphabet the cracker supports.
var AlphabetStandard = []rune("abcdefghijklmnopqrstuvwxyz")

// AlphabetWithSpace is the 27-symbol convenience alphabet (spec.md §6):
// permitted for Encode/Decode, not supported by Crack.
var AlphabetWithSpace = []rune("abcdefghijklmnopqrstuvwxyz ")
