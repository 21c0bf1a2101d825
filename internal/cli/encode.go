// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package cli

import (
	"fmt"

	"github.com/coredds/chaocipher"
	ccipher "github.com/coredds/chaocipher/pkg/chaocipher"
	"github.com/spf13/cobra"
)

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Encode plaintext into ciphertext with a Chaocipher rotor",
	Long: `Encode reads plaintext from --text, --file, or stdin, builds a rotor from
--key, --permutation, or --config, and writes the resulting ciphertext.`,
	RunE: runEncode,
}

func init() {
	encodeCmd.Flags().String("text", "", "Plaintext to encode")
	encodeCmd.Flags().String("file", "", "File containing plaintext to encode")
	encodeCmd.Flags().String("output", "", "File to write ciphertext to (default: stdout)")
	encodeCmd.Flags().String("key", "", "Human-memorable key to prime the rotor with")
	encodeCmd.Flags().String("permutation", "", "Explicit starting permutation for the rotor")
	encodeCmd.Flags().String("config", "", "Load the rotor from a saved RotorStateSpec JSON file")
	encodeCmd.Flags().Bool("space", false, "Use the 27-symbol alphabet that includes a space")
	encodeCmd.Flags().String("save-config", "", "Save the rotor's post-encode state to this JSON file")
}

func runEncode(cmd *cobra.Command, args []string) error {
	text, err := getInputText(cmd)
	if err != nil {
		return validationError(err)
	}
	if text == "" {
		return validationError(fmt.Errorf("no plaintext given: pass --text, --file, or pipe via stdin"))
	}

	r, err := buildRotor(cmd)
	if err != nil {
		return validationError(err)
	}

	result, err := r.Encode(text)
	if err != nil {
		return validationError(err)
	}

	if saveConfig, _ := cmd.Flags().GetString("save-config"); saveConfig != "" {
		if err := r.SaveSettingsToJSON(saveConfig); err != nil {
			return validationError(err)
		}
	}

	if setupVerbose(cmd) {
		fmt.Fprintf(cmd.ErrOrStderr(), "chaocipher %s: encoded %d characters\n", chaocipher.GetVersion(), len(text))
	}

	return writeOutput(cmd, result)
}

// buildRotor resolves a Rotor from the --config, --permutation, --key, and
// --space flags shared by encode and decode, in that priority order.
func buildRotor(cmd *cobra.Command) (*ccipher.Rotor, error) {
	if configPath, _ := cmd.Flags().GetString("config"); configPath != "" {
		return ccipher.LoadSettingsFromJSON(configPath)
	}

	space, _ := cmd.Flags().GetBool("space")
	alph := chaocipher.AlphabetStandard
	if space {
		alph = chaocipher.AlphabetWithSpace
	}

	var opts []ccipher.Option
	opts = append(opts, ccipher.WithAlphabet(alph))

	if permutation, _ := cmd.Flags().GetString("permutation"); permutation != "" {
		opts = append(opts, ccipher.WithPermutation([]rune(permutation)))
	} else if key, _ := cmd.Flags().GetString("key"); key != "" {
		opts = append(opts, ccipher.WithKey(key))
	} else {
		return nil, fmt.Errorf("no rotor configuration given: pass --config, --permutation, or --key")
	}

	return ccipher.New(opts...)
}
