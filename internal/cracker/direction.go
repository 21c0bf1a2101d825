// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package cracker

import "github.com/coredds/chaocipher/internal/rotorstate"

// decideDirection picks which boundary of the search range to extend next
// (spec.md §4.6). It is a heuristic only: search correctness does not depend
// on it, only search cost.
//
// The forward- and backward-scanning loops below short-circuit as soon as
// the very first candidate fails to have both its plaintext and ciphertext
// characters already seen, rather than continuing to scan for the true
// distance to a fully-known pair. spec.md §9 notes this quirk explicitly and
// says it is preserved as specified, since it only affects search cost, not
// correctness.
func decideDirection(plaintext, ciphertext []rune, state *rotorstate.State, rng SearchRange) int {
	if rng.Start == 0 {
		return rng.End
	}
	if rng.End == len(plaintext) {
		return rng.Start
	}

	forward := 1
	for forward+rng.End < len(plaintext) &&
		(!state.PlainSeen[plaintext[rng.End+forward]] || !state.CipherSeen[ciphertext[rng.End+forward]]) {
		forward++
		if forward+rng.End < len(plaintext) {
			return rng.Start
		}
	}

	backward := -1
	for rng.Start+backward > 0 &&
		(!state.PlainSeen[plaintext[rng.Start+backward]] || !state.CipherSeen[ciphertext[rng.Start+backward]]) {
		backward--
		if rng.Start+backward > 0 {
			return rng.End
		}
	}

	if forward <= -backward {
		return rng.End
	}
	return rng.Start
}
