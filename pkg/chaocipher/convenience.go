package chaocipher

import (
	"errors"
	"fmt"

	"github.com/coredds/chaocipher/internal/alphabet"
	"github.com/coredds/chaocipher/internal/cracker"
)

// QuickEncode is a one-shot convenience wrapper: build a rotor from
// permutation over AlphabetStandard and encode plaintext with it, mirroring
// the reference implementation's quick_encode helper.
func QuickEncode(plaintext string, permutation []rune) (string, error) {
	r, err := New(WithPermutation(permutation))
	if err != nil {
		return "", err
	}
	return r.Encode(plaintext)
}

// QuickDecode is QuickEncode's counterpart, mirroring quick_decode.
func QuickDecode(ciphertext string, permutation []rune) (string, error) {
	r, err := New(WithPermutation(permutation))
	if err != nil {
		return "", err
	}
	return r.Decode(ciphertext)
}

// FindAnchor locates the lowest-diversity window of the given size in the
// plaintext/ciphertext pair and returns its midpoint, a good starting index
// to pass to Crack (spec.md §4.7).
func FindAnchor(plaintext, ciphertext string, windowSize int) (int, error) {
	p, c := []rune(plaintext), []rune(ciphertext)
	return cracker.FindAnchor(p, c, windowSize)
}

// Crack recovers the Rotor that turns plaintext into ciphertext, searching
// outward from anchor, over AlphabetStandard (the cracker is defined only
// for a closed 26-symbol alphabet; spec.md's space-inclusive AlphabetWithSpace
// is not supported here).
//
// A non-nil Rotor may be returned alongside a non-nil error: if err wraps
// ErrIncompleteRotor, the search covered the entire text but left some rotor
// slots undetermined, and the returned Rotor is a best-effort partial
// result. Any other non-nil error means no Rotor was recovered.
func Crack(plaintext, ciphertext string, anchor int) (*Rotor, error) {
	alph, err := alphabet.New(AlphabetStandard)
	if err != nil {
		return nil, err
	}
	if invalid, verr := alph.ValidateString(plaintext); verr != nil {
		return nil, fmt.Errorf("plaintext contains %q, which is outside the 26-symbol cracking alphabet: %w", invalid, verr)
	}
	if invalid, verr := alph.ValidateString(ciphertext); verr != nil {
		return nil, fmt.Errorf("ciphertext contains %q, which is outside the 26-symbol cracking alphabet: %w", invalid, verr)
	}

	p, c := []rune(plaintext), []rune(ciphertext)
	state, err := cracker.Crack(p, c, anchor, alph.Size())
	if err != nil {
		if errors.Is(err, cracker.ErrIncompleteRotor) {
			return &Rotor{alphabet: alph, state: state, initial: state.Clone()}, ErrIncompleteRotor
		}
		if errors.Is(err, cracker.ErrUnsolvable) {
			return nil, ErrUnsolvable
		}
		return nil, err
	}

	return &Rotor{alphabet: alph, state: state, initial: state.Clone()}, nil
}

// CrackText is Crack followed immediately by re-Encoding plaintext with the
// recovered rotor, returning the re-derived ciphertext alongside the rotor
// so callers can check property 4 (search soundness) without re-deriving it
// themselves. It treats ErrIncompleteRotor as fatal, since a partial rotor
// cannot re-encode the whole text.
func CrackText(plaintext, ciphertext string, anchor int) (*Rotor, string, error) {
	r, err := Crack(plaintext, ciphertext, anchor)
	if err != nil {
		return nil, "", err
	}
	r.Reset()
	if err := r.state.TraverseTo([]rune(plaintext), 0, false); err != nil {
		return nil, "", fmt.Errorf("failed to rewind recovered rotor: %w", err)
	}
	r.initial = r.state.Clone()
	recovered, err := r.Encode(plaintext)
	if err != nil {
		return nil, "", fmt.Errorf("failed to verify recovered rotor: %w", err)
	}
	if recovered != ciphertext {
		return nil, "", fmt.Errorf("recovered rotor does not reproduce the given ciphertext")
	}
	r.Reset()
	return r, recovered, nil
}
