package chaocipher

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestGetSettingsFromSpecRoundTrip(t *testing.T) {
	r, err := New(WithPermutation(testPermutation()))
	require.NoError(t, err)
	_, err = r.Encode("advancethestate")
	require.NoError(t, err)

	spec := r.GetSettings()
	rebuilt, err := FromSpec(spec)
	require.NoError(t, err)

	if diff := cmp.Diff(spec, rebuilt.GetSettings()); diff != "" {
		t.Fatalf("settings round trip mismatch (-want +got):\n%s", diff)
	}

	ciphertext, err := r.Encode("more")
	require.NoError(t, err)
	rebuiltCiphertext, err := rebuilt.Encode("more")
	require.NoError(t, err)
	require.Equal(t, ciphertext, rebuiltCiphertext)
}

func TestFromSpecRejectsLengthMismatch(t *testing.T) {
	_, err := FromSpec(RotorStateSpec{
		Alphabet: AlphabetStandard,
		Plain:    []rune("abc"),
		Cipher:   AlphabetStandard,
	})
	require.Error(t, err)
}

func TestFromSpecRejectsDuplicateSymbol(t *testing.T) {
	broken := []rune(string(AlphabetStandard))
	broken[1] = broken[0]
	_, err := FromSpec(RotorStateSpec{
		Alphabet: AlphabetStandard,
		Plain:    broken,
		Cipher:   AlphabetStandard,
	})
	require.Error(t, err)
}

func TestSaveAndLoadSettingsToJSONFile(t *testing.T) {
	r, err := New(WithPermutation(testPermutation()))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "rotor.json")
	require.NoError(t, r.SaveSettingsToJSON(path))

	loaded, err := LoadSettingsFromJSON(path)
	require.NoError(t, err)

	want, err := r.Encode("checkthevalue")
	require.NoError(t, err)
	got, err := loaded.Encode("checkthevalue")
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestNewFromJSONRejectsSchemaViolation(t *testing.T) {
	_, err := NewFromJSON([]byte(`{"alphabet":"abc"}`))
	require.Error(t, err)
}

func TestNewFromJSONRejectsMalformedJSON(t *testing.T) {
	_, err := NewFromJSON([]byte(`not json`))
	require.Error(t, err)
}
