// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package cli

import (
	"fmt"
	"os"

	ccipher "github.com/coredds/chaocipher/pkg/chaocipher"
	"github.com/spf13/cobra"
)

var anchorCmd = &cobra.Command{
	Use:   "anchor",
	Short: "Find a good starting index for crack from a plaintext/ciphertext pair",
	Long: `Anchor scans a plaintext/ciphertext pair for the lowest-diversity window
of the given size (spec.md §4.7) and prints its midpoint, a good --anchor
value to pass to crack.`,
	RunE: runAnchor,
}

func init() {
	anchorCmd.Flags().String("plaintext", "", "File containing the known plaintext")
	anchorCmd.Flags().String("ciphertext", "", "File containing the matching ciphertext")
	anchorCmd.Flags().Int("window", 6, "Sliding window size to scan for low symbol diversity")
}

func runAnchor(cmd *cobra.Command, args []string) error {
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

	window, _ := cmd.Flags().GetInt("window")
	anchor, err := ccipher.FindAnchor(string(plainBytes), string(cipherBytes), window)
	if err != nil {
		return validationError(err)
	}

	return writeOutput(cmd, fmt.Sprintf("%d", anchor))
}
