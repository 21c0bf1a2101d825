// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package cli

import (
	"fmt"

	"github.com/coredds/chaocipher"
	"github.com/spf13/cobra"
)

var decodeCmd = &cobra.Command{
	Use:   "decode",
	Short: "Decode ciphertext back into plaintext with a Chaocipher rotor",
	Long: `Decode reads ciphertext from --text, --file, or stdin, builds a rotor from
--key, --permutation, or --config, and writes the recovered plaintext.`,
	RunE: runDecode,
}

func init() {
	decodeCmd.Flags().String("text", "", "Ciphertext to decode")
	decodeCmd.Flags().String("file", "", "File containing ciphertext to decode")
	decodeCmd.Flags().String("output", "", "File to write plaintext to (default: stdout)")
	decodeCmd.Flags().String("key", "", "Human-memorable key to prime the rotor with")
	decodeCmd.Flags().String("permutation", "", "Explicit starting permutation for the rotor")
	decodeCmd.Flags().String("config", "", "Load the rotor from a saved RotorStateSpec JSON file")
	decodeCmd.Flags().Bool("space", false, "Use the 27-symbol alphabet that includes a space")
}

func runDecode(cmd *cobra.Command, args []string) error {
	text, err := getInputText(cmd)
	if err != nil {
		return validationError(err)
	}
	if text == "" {
		return validationError(fmt.Errorf("no ciphertext given: pass --text, --file, or pipe via stdin"))
	}

	r, err := buildRotor(cmd)
	if err != nil {
		return validationError(err)
	}

	result, err := r.Decode(text)
	if err != nil {
		return validationError(err)
	}

	if setupVerbose(cmd) {
		fmt.Fprintf(cmd.ErrOrStderr(), "chaocipher %s: decoded %d characters\n", chaocipher.GetVersion(), len(text))
	}

	return writeOutput(cmd, result)
}
