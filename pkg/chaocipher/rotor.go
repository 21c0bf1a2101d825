package chaocipher

import (
	"fmt"

	"github.com/coredds/chaocipher/internal/alphabet"
	"github.com/coredds/chaocipher/internal/rotorstate"
)

// Rotor is a Chaocipher rotor pair over a fixed alphabet: a live state that
// Encode/Decode advance, and the initial configuration Reset restores. It is
// the public analogue of internal/rotorstate.State, the way pkg/enigma's
// Enigma type wraps its own internal rotor machinery.
type Rotor struct {
	alphabet *alphabet.Alphabet
	state    *rotorstate.State
	initial  *rotorstate.State
}

// New builds a Rotor from functional options. The starting permutation comes
// from WithPermutation or WithRandomPermutation; without either, the
// alphabet's own order (the identity permutation) is used, and WithKey then
// primes whichever permutation was chosen. The alphabet defaults to
// AlphabetStandard if WithAlphabet is not given.
func New(opts ...Option) (*Rotor, error) {
	b := &rotorBuilder{}
	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, fmt.Errorf("failed to apply rotor option: %w", err)
		}
	}

	alphabetRunes := b.alphabet
	if alphabetRunes == nil {
		alphabetRunes = AlphabetStandard
	}
	alph, err := alphabet.New(alphabetRunes)
	if err != nil {
		return nil, fmt.Errorf("invalid alphabet: %w", err)
	}

	if b.random {
		if b.permutation != nil {
			return nil, fmt.Errorf("WithRandomPermutation cannot be combined with WithPermutation")
		}
		shuffled := alph.Runes()
		if err := shuffle(shuffled); err != nil {
			return nil, err
		}
		b.permutation = shuffled
	}
	if b.permutation == nil {
		b.permutation = alph.Runes()
	}
	if len(b.permutation) != alph.Size() {
		return nil, fmt.Errorf("permutation has %d symbols, want %d", len(b.permutation), alph.Size())
	}
	for _, r := range b.permutation {
		if !alph.Contains(r) {
			return nil, fmt.Errorf("permutation contains %q, which is not in the alphabet", r)
		}
	}

	state := rotorstate.New(b.permutation)
	for _, key := range b.primingKeys {
		if err := primeWithKey(state, alph, key); err != nil {
			return nil, err
		}
	}

	return &Rotor{alphabet: alph, state: state, initial: state.Clone()}, nil
}

// primeWithKey advances state by driving it forward one step per key
// character, then resets the cursor to 0: the priming ritual quick_encode
// and quick_decode perform before processing the real message, so that a
// short human-memorable key produces a well-mixed starting rotor.
func primeWithKey(state *rotorstate.State, alph *alphabet.Alphabet, key string) error {
	keyRunes := []rune(key)
	if len(keyRunes) == 0 {
		return fmt.Errorf("priming key cannot be empty")
	}
	if _, err := alph.ValidateString(key); err != nil {
		return fmt.Errorf("priming key: %w", err)
	}
	for i := range keyRunes {
		state.TextIndex = i
		if err := state.Forward(keyRunes, false); err != nil {
			return fmt.Errorf("priming key: %w", err)
		}
	}
	state.TextIndex = 0
	return nil
}

// Encode runs plaintext through the rotor, advancing its state by one
// permutation step per character, and returns the resulting ciphertext
// (spec.md §4.1, forward direction).
func (r *Rotor) Encode(plaintext string) (string, error) {
	if invalid, err := r.alphabet.ValidateString(plaintext); err != nil {
		return "", fmt.Errorf("plaintext contains %q, which is not in the rotor's alphabet: %w", invalid, err)
	}

	runes := []rune(plaintext)
	start := r.state.TextIndex
	out := make([]rune, len(runes))
	for i := range runes {
		r.state.TextIndex = i
		if err := r.state.Forward(runes, false); err != nil {
			return "", fmt.Errorf("%w: %v", ErrRotorIncompatible, err)
		}
		out[i] = r.state.Cipher.At(0)
	}
	r.state.TextIndex = start + len(runes)
	return string(out), nil
}

// Decode runs ciphertext through the rotor and returns the plaintext that
// produced it. It drives the same forward permutation step as Encode, with
// the cipher wheel as reference, reading the plain wheel's nadir each step:
// this mirrors quick_decode's actual behavior in the reference
// implementation, which never calls the literal backward step despite its
// name (see DESIGN.md's "Decode semantics" entry).
func (r *Rotor) Decode(ciphertext string) (string, error) {
	if invalid, err := r.alphabet.ValidateString(ciphertext); err != nil {
		return "", fmt.Errorf("ciphertext contains %q, which is not in the rotor's alphabet: %w", invalid, err)
	}

	runes := []rune(ciphertext)
	start := r.state.TextIndex
	out := make([]rune, len(runes))
	for i := range runes {
		r.state.TextIndex = i
		if err := r.state.Forward(runes, true); err != nil {
			return "", fmt.Errorf("%w: %v", ErrRotorIncompatible, err)
		}
		out[i] = r.state.Plain.At(-1)
	}
	r.state.TextIndex = start + len(runes)
	return string(out), nil
}

// Reset restores the rotor to the configuration it had when it was built
// (before any Encode/Decode calls advanced it), mirroring pkg/enigma's
// Enigma.Reset against its captured initialSettings.
func (r *Rotor) Reset() {
	r.state = r.initial.Clone()
}

// Clone returns an independent copy of the rotor, including its current
// (possibly advanced) position and its reset point.
func (r *Rotor) Clone() *Rotor {
	return &Rotor{
		alphabet: r.alphabet,
		state:    r.state.Clone(),
		initial:  r.initial.Clone(),
	}
}

// Alphabet returns a copy of the rotor's working alphabet, in rotor order.
func (r *Rotor) Alphabet() []rune {
	return r.alphabet.Runes()
}

// TextIndex returns the rotor's current cursor position.
func (r *Rotor) TextIndex() int {
	return r.state.TextIndex
}
