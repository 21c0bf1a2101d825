// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	ccipher "github.com/coredds/chaocipher/pkg/chaocipher"
	"github.com/spf13/cobra"
)

// settingsToJSON renders a RotorStateSpec as indented JSON text, the form
// both the crack and keygen commands write out.
func settingsToJSON(spec ccipher.RotorStateSpec) (string, error) {
	data, err := json.MarshalIndent(spec, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal rotor settings: %w", err)
	}
	return string(data), nil
}

// getInputText reads input text from a --text flag, a --file flag, or
// stdin, in that priority order, the way the teacher's encrypt/decrypt
// commands resolve their input.
func getInputText(cmd *cobra.Command) (string, error) {
	if text, _ := cmd.Flags().GetString("text"); text != "" {
		return text, nil
	}

	if filename, _ := cmd.Flags().GetString("file"); filename != "" {
		data, err := os.ReadFile(filename)
		if err != nil {
			return "", fmt.Errorf("failed to read file %s: %w", filename, err)
		}
		return string(data), nil
	}

	info, err := os.Stdin.Stat()
	if err != nil {
		return "", nil
	}
	if (info.Mode() & os.ModeCharDevice) != 0 {
		return "", nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read from stdin: %w", err)
	}
	return string(data), nil
}

// writeOutput writes text to the --output file if given, otherwise to the
// command's stdout.
func writeOutput(cmd *cobra.Command, text string) error {
	outputFile, _ := cmd.Flags().GetString("output")
	if outputFile == "" {
		fmt.Fprintln(cmd.OutOrStdout(), text)
		return nil
	}
	if err := os.WriteFile(outputFile, []byte(text+"\n"), 0o644); err != nil {
		return fmt.Errorf("failed to write output to %s: %w", outputFile, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Output written to: %s\n", outputFile)
	return nil
}
