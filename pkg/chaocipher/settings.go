package chaocipher

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/coredds/chaocipher/internal/alphabet"
	"github.com/coredds/chaocipher/internal/rotorstate"
)

// RotorStateSpec is the JSON-serializable snapshot of a Rotor, the
// chaocipher analogue of pkg/enigma's EnigmaSettings: alphabet plus both
// wheels' contents plus the cursor, enough to reconstruct an identical
// Rotor with FromSpec.
type RotorStateSpec struct {
	Alphabet  []rune
	Plain     []rune
	Cipher    []rune
	TextIndex int
}

// jsonRotorStateSpec is RotorStateSpec's wire representation: rune slices
// as strings, the way pkg/enigma's settings.go renders wiring tables as
// strings rather than rune/byte arrays.
type jsonRotorStateSpec struct {
	Alphabet  string `json:"alphabet"`
	Plain     string `json:"plain"`
	Cipher    string `json:"cipher"`
	TextIndex int    `json:"text_index"`
}

// MarshalJSON renders the spec's rune slices as strings. An Unknown slot
// (alphabet.Unknown) renders as an escaped NUL code point; a spec worth
// serializing will typically have every slot filled.
func (s RotorStateSpec) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonRotorStateSpec{
		Alphabet:  string(s.Alphabet),
		Plain:     string(s.Plain),
		Cipher:    string(s.Cipher),
		TextIndex: s.TextIndex,
	})
}

// UnmarshalJSON parses the wire representation back into rune slices.
func (s *RotorStateSpec) UnmarshalJSON(data []byte) error {
	var wire jsonRotorStateSpec
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	s.Alphabet = []rune(wire.Alphabet)
	s.Plain = []rune(wire.Plain)
	s.Cipher = []rune(wire.Cipher)
	s.TextIndex = wire.TextIndex
	return nil
}

// GetSettings returns the current rotor configuration as a RotorStateSpec,
// suitable for saving and later restoring with FromSpec.
func (r *Rotor) GetSettings() RotorStateSpec {
	size := r.alphabet.Size()
	plain := make([]rune, size)
	cipher := make([]rune, size)
	for i := 0; i < size; i++ {
		plain[i] = r.state.Plain.At(i)
		cipher[i] = r.state.Cipher.At(i)
	}
	return RotorStateSpec{
		Alphabet:  r.alphabet.Runes(),
		Plain:     plain,
		Cipher:    cipher,
		TextIndex: r.state.TextIndex,
	}
}

// FromSpec reconstructs a Rotor from a previously saved RotorStateSpec. The
// spec need not represent a fully-known rotor (a cracker result that hit
// ErrIncompleteRotor can round-trip through this too), but it must satisfy
// the same duplicate-free, seen-set-consistent invariants any rotor state
// does.
func FromSpec(spec RotorStateSpec) (*Rotor, error) {
	alph, err := alphabet.New(spec.Alphabet)
	if err != nil {
		return nil, fmt.Errorf("invalid alphabet in spec: %w", err)
	}
	if len(spec.Plain) != alph.Size() || len(spec.Cipher) != alph.Size() {
		return nil, fmt.Errorf("plain (%d) and cipher (%d) wheels must both have %d slots", len(spec.Plain), len(spec.Cipher), alph.Size())
	}

	state := rotorstate.NewEmpty(alph.Size())
	for i := 0; i < alph.Size(); i++ {
		state.Plain.Set(i, spec.Plain[i])
		state.Cipher.Set(i, spec.Cipher[i])
		if spec.Plain[i] != alphabet.Unknown {
			state.PlainSeen[spec.Plain[i]] = true
		}
		if spec.Cipher[i] != alphabet.Unknown {
			state.CipherSeen[spec.Cipher[i]] = true
		}
	}
	state.TextIndex = spec.TextIndex

	if err := state.CheckInvariants(); err != nil {
		return nil, fmt.Errorf("invalid rotor spec: %w", err)
	}

	return &Rotor{alphabet: alph, state: state, initial: state.Clone()}, nil
}

// SaveSettingsToJSON writes the rotor's current configuration to path as
// indented JSON.
func (r *Rotor) SaveSettingsToJSON(path string) error {
	data, err := json.MarshalIndent(r.GetSettings(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal rotor settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write rotor settings to %s: %w", path, err)
	}
	return nil
}

// LoadSettingsFromJSON reads a RotorStateSpec from path and builds a Rotor
// from it, validating the document against specSchema first.
func LoadSettingsFromJSON(path string) (*Rotor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rotor settings from %s: %w", path, err)
	}
	return NewFromJSON(data)
}

// NewFromJSON validates data against specSchema and builds a Rotor from it.
func NewFromJSON(data []byte) (*Rotor, error) {
	if err := ValidateSpecJSON(data); err != nil {
		return nil, fmt.Errorf("rotor spec failed schema validation: %w", err)
	}
	var spec RotorStateSpec
	if err := json.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal rotor spec: %w", err)
	}
	return FromSpec(spec)
}
