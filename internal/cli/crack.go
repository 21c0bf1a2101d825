// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package cli

import (
	"errors"
	"fmt"
	"os"

	ccipher "github.com/coredds/chaocipher/pkg/chaocipher"
	"github.com/spf13/cobra"
)

var crackCmd = &cobra.Command{
	Use:   "crack",
	Short: "Recover a rotor's starting configuration from a known plaintext/ciphertext pair",
	Long: `Crack runs the known-plaintext attack described in spec.md §4.5: a
depth-first search with forced fill-in, seeded at an anchor position, that
recovers the rotor configuration consistent with the given plaintext and
ciphertext.

Exit codes: 0 on a fully-determined rotor, 1 on invalid input, 2 if no
rotor configuration is consistent with the given text (ErrUnsolvable). A
rotor that is recovered but left with undetermined slots (ErrIncompleteRotor)
is still written out with exit code 0; a warning about the undetermined
slots is printed only with --verbose.`,
	RunE: runCrack,
}

func init() {
	crackCmd.Flags().String("plaintext", "", "File containing the known plaintext")
	crackCmd.Flags().String("ciphertext", "", "File containing the matching ciphertext")
	crackCmd.Flags().Int("anchor", -1, "Text index to seed the search at (default: auto-detect via FindAnchor)")
	crackCmd.Flags().Int("window", 6, "Window size FindAnchor uses when --anchor is not given")
	crackCmd.Flags().String("output", "", "File to write the recovered RotorStateSpec JSON to (default: stdout)")
}

func runCrack(cmd *cobra.Command, args []string) error {
	plaintextPath, _ := cmd.Flags().GetString("plaintext")
	ciphertextPath, _ := cmd.Flags().GetString("ciphertext")
	if plaintextPath == "" || ciphertextPath == "" {
		return validationError(fmt.Errorf("both --plaintext and --ciphertext are required"))
	}

	plainBytes, err := os.ReadFile(plaintextPath)
	if err != nil {
		return validationError(fmt.Errorf("failed to read plaintext file %s: %w", plaintextPath, err))
	}
	cipherBytes, err := os.ReadFile(ciphertextPath)
	if err != nil {
		return validationError(fmt.Errorf("failed to read ciphertext file %s: %w", ciphertextPath, err))
	}
	plaintext, ciphertext := string(plainBytes), string(cipherBytes)

	anchor, _ := cmd.Flags().GetInt("anchor")
	if anchor < 0 {
		window, _ := cmd.Flags().GetInt("window")
		anchor, err = ccipher.FindAnchor(plaintext, ciphertext, window)
		if err != nil {
			return validationError(fmt.Errorf("failed to auto-detect an anchor: %w", err))
		}
	}

	r, err := ccipher.Crack(plaintext, ciphertext, anchor)
	incomplete := errors.Is(err, ccipher.ErrIncompleteRotor)
	if err != nil && !incomplete {
		if errors.Is(err, ccipher.ErrUnsolvable) {
			return unsolvableError(err)
		}
		return validationError(err)
	}

	settings := r.GetSettings()
	data, marshalErr := settingsToJSON(settings)
	if marshalErr != nil {
		return validationError(marshalErr)
	}

	if incomplete && setupVerbose(cmd) {
		fmt.Fprintln(cmd.ErrOrStderr(), "warning: search exhausted the text but left some rotor slots undetermined")
	}

	return writeOutput(cmd, data)
}
