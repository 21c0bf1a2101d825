// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	ccipher "github.com/coredds/chaocipher/pkg/chaocipher"
	"github.com/spf13/cobra"
)

// newTestRootCmd builds a fresh root command tree for each test, wired to
// the production RunE functions but with fresh flag sets, the way the
// teacher's createTestRootCmd avoids flag-state pollution across test
// cases sharing the same package-level *cobra.Command vars.
func newTestRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "chaocipher",
		Version: "0.1.0",
	}
	root.AddCommand(newFreshEncodeCmd())
	root.AddCommand(newFreshDecodeCmd())
	root.AddCommand(newFreshCrackCmd())
	root.AddCommand(newFreshAnchorCmd())
	root.AddCommand(newFreshKeygenCmd())
	root.AddCommand(newFreshConfigCmd())
	root.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
	return root
}

func newFreshEncodeCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "encode", RunE: runEncode}
	cmd.Flags().String("text", "", "")
	cmd.Flags().String("file", "", "")
	cmd.Flags().String("output", "", "")
	cmd.Flags().String("key", "", "")
	cmd.Flags().String("permutation", "", "")
	cmd.Flags().String("config", "", "")
	cmd.Flags().Bool("space", false, "")
	cmd.Flags().String("save-config", "", "")
	return cmd
}

func newFreshDecodeCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "decode", RunE: runDecode}
	cmd.Flags().String("text", "", "")
	cmd.Flags().String("file", "", "")
	cmd.Flags().String("output", "", "")
	cmd.Flags().String("key", "", "")
	cmd.Flags().String("permutation", "", "")
	cmd.Flags().String("config", "", "")
	cmd.Flags().Bool("space", false, "")
	return cmd
}

func newFreshCrackCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "crack", RunE: runCrack}
	cmd.Flags().String("plaintext", "", "")
	cmd.Flags().String("ciphertext", "", "")
	cmd.Flags().Int("anchor", -1, "")
	cmd.Flags().Int("window", 6, "")
	cmd.Flags().String("output", "", "")
	return cmd
}

func newFreshAnchorCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "anchor", RunE: runAnchor}
	cmd.Flags().String("plaintext", "", "")
	cmd.Flags().String("ciphertext", "", "")
	cmd.Flags().Int("window", 6, "")
	return cmd
}

func newFreshKeygenCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "keygen", RunE: runKeygen}
	cmd.Flags().String("key", "", "")
	cmd.Flags().Bool("random", false, "")
	cmd.Flags().Bool("space", false, "")
	cmd.Flags().String("output", "", "")
	cmd.Flags().Bool("describe", false, "")
	return cmd
}

func newFreshConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config"}
	validate := &cobra.Command{Use: "validate", Args: cobra.ExactArgs(1), RunE: runConfigValidate}
	diff := &cobra.Command{Use: "diff", Args: cobra.ExactArgs(2), RunE: runConfigDiff}
	cmd.AddCommand(validate)
	cmd.AddCommand(diff)
	return cmd
}

func execute(root *cobra.Command, args ...string) (string, error) {
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRootCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{name: "version flag", args: []string{"--version"}, wantErr: false},
		{name: "help flag", args: []string{"--help"}, wantErr: false},
		{name: "invalid command", args: []string{"bogus-command"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(newTestRootCmd(), tt.args...)
			if tt.wantErr && err == nil {
				t.Fatalf("expected an error, got none")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestEncodeCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{name: "encode with text and key", args: []string{"encode", "--text", "hello", "--key", "mykey"}, wantErr: false},
		{name: "encode without input", args: []string{"encode", "--key", "mykey"}, wantErr: true},
		{name: "encode without rotor config", args: []string{"encode", "--text", "hello"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(newTestRootCmd(), tt.args...)
			if tt.wantErr && err == nil {
				t.Fatalf("expected an error, got none")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestEncodeDecodeRoundTripViaCommands(t *testing.T) {
	encodeOut, err := execute(newTestRootCmd(), "encode", "--text", "hello world", "--key", "mykey", "--space")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	ciphertext := strings.TrimSpace(encodeOut)

	decodeOut, err := execute(newTestRootCmd(), "decode", "--text", ciphertext, "--key", "mykey", "--space")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got := strings.TrimSpace(decodeOut); got != "hello world" {
		t.Fatalf("decode = %q, want %q", got, "hello world")
	}
}

const crackCommandPlaintext = "wellbegunishalfdonesaystheproverbandpracticemakesperfectwhenallelsefailsreadtheinstructions"

func writeTempFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.txt")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}
	return path
}

func TestCrackCommandRecoversRotor(t *testing.T) {
	perm := []rune("hxuczvamdslkpefjrigtwobnyq")
	ciphertext, err := ccipher.QuickEncode(crackCommandPlaintext, perm)
	if err != nil {
		t.Fatalf("QuickEncode: %v", err)
	}

	plaintextPath := writeTempFile(t, crackCommandPlaintext)
	ciphertextPath := writeTempFile(t, ciphertext)

	out, err := execute(newTestRootCmd(), "crack", "--plaintext", plaintextPath, "--ciphertext", ciphertextPath)
	if err != nil {
		t.Fatalf("crack: %v", err)
	}
	if !strings.Contains(out, `"alphabet"`) {
		t.Fatalf("crack output does not look like a RotorStateSpec: %s", out)
	}
}

func TestCrackCommandReportsUnsolvableAsExitCodeTwo(t *testing.T) {
	// "aa" cannot encode to "bb" under any rotor.
	plaintextPath := writeTempFile(t, "aa")
	ciphertextPath := writeTempFile(t, "bb")

	_, err := execute(newTestRootCmd(), "crack", "--plaintext", plaintextPath, "--ciphertext", ciphertextPath, "--anchor", "0")
	if err == nil {
		t.Fatalf("expected an error for an unsolvable rotor, got none")
	}

	var exitErr *ExitCodeError
	if !errors.As(err, &exitErr) {
		t.Fatalf("crack error = %v (%T), want *ExitCodeError", err, err)
	}
	if exitErr.Code != 2 {
		t.Fatalf("exit code = %d, want 2", exitErr.Code)
	}
}

func TestCrackCommandRequiresBothFiles(t *testing.T) {
	_, err := execute(newTestRootCmd(), "crack", "--plaintext", writeTempFile(t, "ab"))
	if err == nil {
		t.Fatalf("expected an error when --ciphertext is missing")
	}
	var exitErr *ExitCodeError
	if !errors.As(err, &exitErr) {
		t.Fatalf("crack error = %v (%T), want *ExitCodeError", err, err)
	}
	if exitErr.Code != 1 {
		t.Fatalf("exit code = %d, want 1", exitErr.Code)
	}
}

func TestConfigValidateCommand(t *testing.T) {
	r, err := ccipher.New(ccipher.WithPermutation([]rune("hxuczvamdslkpefjrigtwobnyq")))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	validPath := filepath.Join(t.TempDir(), "rotor.json")
	if err := r.SaveSettingsToJSON(validPath); err != nil {
		t.Fatalf("SaveSettingsToJSON: %v", err)
	}

	invalidPath := writeTempFile(t, "not json")

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{name: "valid rotor spec", path: validPath, wantErr: false},
		{name: "malformed json", path: invalidPath, wantErr: true},
		{name: "missing file", path: filepath.Join(t.TempDir(), "missing.json"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(newTestRootCmd(), "config", "validate", tt.path)
			if tt.wantErr && err == nil {
				t.Fatalf("expected an error, got none")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestConfigDiffCommand(t *testing.T) {
	perm := []rune("hxuczvamdslkpefjrigtwobnyq")
	rA, err := ccipher.New(ccipher.WithPermutation(perm))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	pathA := filepath.Join(t.TempDir(), "a.json")
	if err := rA.SaveSettingsToJSON(pathA); err != nil {
		t.Fatalf("SaveSettingsToJSON: %v", err)
	}

	out, err := execute(newTestRootCmd(), "config", "diff", pathA, pathA)
	if err != nil {
		t.Fatalf("config diff: %v", err)
	}
	if !strings.Contains(out, "identical") {
		t.Fatalf("diffing a file against itself should report no differences, got: %s", out)
	}

	rB, err := ccipher.New(ccipher.WithKey("adifferentkey"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	pathB := filepath.Join(t.TempDir(), "b.json")
	if err := rB.SaveSettingsToJSON(pathB); err != nil {
		t.Fatalf("SaveSettingsToJSON: %v", err)
	}

	out, err = execute(newTestRootCmd(), "config", "diff", pathA, pathB)
	if err != nil {
		t.Fatalf("config diff: %v", err)
	}
	if strings.Contains(out, "identical") {
		t.Fatalf("diffing two different rotors should report a difference, got: %s", out)
	}
}

func TestKeygenCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{name: "keygen with key", args: []string{"keygen", "--key", "mykey"}, wantErr: false},
		{name: "keygen random", args: []string{"keygen", "--random"}, wantErr: false},
		{name: "keygen without key or random", args: []string{"keygen"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(newTestRootCmd(), tt.args...)
			if tt.wantErr && err == nil {
				t.Fatalf("expected an error, got none")
			}
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if !strings.Contains(out, `"alphabet"`) {
					t.Fatalf("keygen output does not look like a RotorStateSpec: %s", out)
				}
			}
		})
	}
}
