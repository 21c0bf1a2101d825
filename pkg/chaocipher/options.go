package chaocipher

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// rotorBuilder accumulates option settings before New validates and
// constructs the rotor state. It exists separately from Rotor because the
// alphabet must be finalized before a permutation can be checked against it.
type rotorBuilder struct {
	alphabet    []rune
	permutation []rune
	primingKeys []string
	random      bool
}

// Option configures a Rotor under construction, in the style of
// pkg/enigma's Option func(*Enigma) error.
type Option func(*rotorBuilder) error

// WithAlphabet sets the working alphabet Σ. If omitted, New uses
// AlphabetStandard.
func WithAlphabet(alphabet []rune) Option {
	return func(b *rotorBuilder) error {
		if len(alphabet) == 0 {
			return fmt.Errorf("alphabet cannot be empty")
		}
		b.alphabet = alphabet
		return nil
	}
}

// WithPermutation sets the rotor's starting permutation directly (the
// make_rotor operation from spec.md §6). It must be a permutation of
// whichever alphabet the Rotor ends up using.
func WithPermutation(permutation []rune) Option {
	return func(b *rotorBuilder) error {
		if len(permutation) == 0 {
			return fmt.Errorf("permutation cannot be empty")
		}
		b.permutation = permutation
		return nil
	}
}

// WithKey primes the rotor from a human-memorable key: the alphabet's
// identity permutation is driven forward one step per key character, then
// the cursor is reset to zero. This is the quick_encode/quick_decode priming
// ritual (see DESIGN.md), offered here as a supplemented construction path
// alongside the literal make_rotor(permutation).
func WithKey(key string) Option {
	return func(b *rotorBuilder) error {
		if key == "" {
			return fmt.Errorf("key cannot be empty")
		}
		b.primingKeys = append(b.primingKeys, key)
		return nil
	}
}

// WithRandomPermutation draws a uniformly random permutation of the
// alphabet using crypto/rand, the way pkg/enigma's WithRandomSettings draws
// its rotor wiring.
func WithRandomPermutation() Option {
	return func(b *rotorBuilder) error {
		b.random = true
		return nil
	}
}

// shuffle performs an in-place Fisher-Yates shuffle of symbols using
// crypto/rand, the same source pkg/enigma's randomization options use.
func shuffle(symbols []rune) error {
	for i := len(symbols) - 1; i > 0; i-- {
		jBig, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return fmt.Errorf("failed to generate random index: %w", err)
		}
		j := int(jBig.Int64())
		symbols[i], symbols[j] = symbols[j], symbols[i]
	}
	return nil
}
