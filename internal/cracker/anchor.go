// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package cracker

import "fmt"

// DefaultWindowSize is the window width find_starting_position used in the
// reference implementation when none is supplied.
const DefaultWindowSize = 6

// FindAnchor slides a window of the given size across the text pair and
// returns the midpoint of the window with the lowest combined symbol
// diversity (spec.md §4.7): low diversity means early deductions cascade
// further, shrinking the search tree near the anchor.
func FindAnchor(plaintext, ciphertext []rune, windowSize int) (int, error) {
	if len(plaintext) != len(ciphertext) {
		return 0, fmt.Errorf("plaintext and ciphertext must have equal length, got %d and %d", len(plaintext), len(ciphertext))
	}
	if windowSize <= 0 || windowSize > len(plaintext) {
		return 0, fmt.Errorf("window size %d out of range (0, %d]", windowSize, len(plaintext))
	}

	bestIndex := 0
	bestDiversity := -1
	for i := 0; i+windowSize <= len(plaintext); i++ {
		plainSeen := make(map[rune]bool, windowSize)
		cipherSeen := make(map[rune]bool, windowSize)
		for j := i; j < i+windowSize; j++ {
			plainSeen[plaintext[j]] = true
			cipherSeen[ciphertext[j]] = true
		}
		diversity := len(plainSeen) + len(cipherSeen)
		if bestDiversity == -1 || diversity < bestDiversity {
			bestDiversity = diversity
			bestIndex = i + windowSize/2
		}
	}
	return bestIndex, nil
}
