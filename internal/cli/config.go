// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package cli

import (
	"fmt"
	"os"

	ccipher "github.com/coredds/chaocipher/pkg/chaocipher"
	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and validate saved RotorStateSpec configurations",
}

var configValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check that a file is a well-formed RotorStateSpec and a consistent rotor",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigValidate,
}

var configDiffCmd = &cobra.Command{
	Use:   "diff <file-a> <file-b>",
	Short: "Show the differences between two saved RotorStateSpec configurations",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigDiff,
}

func init() {
	configCmd.AddCommand(configValidateCmd)
	configCmd.AddCommand(configDiffCmd)
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return validationError(fmt.Errorf("failed to read %s: %w", path, err))
	}

	if err := ccipher.ValidateSpecJSON(data); err != nil {
		return validationError(fmt.Errorf("%s fails schema validation: %w", path, err))
	}
	if _, err := ccipher.NewFromJSON(data); err != nil {
		return validationError(fmt.Errorf("%s is not a consistent rotor: %w", path, err))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s is a valid rotor configuration\n", path)
	return nil
}

func runConfigDiff(cmd *cobra.Command, args []string) error {
	pathA, pathB := args[0], args[1]

	rotorA, err := ccipher.LoadSettingsFromJSON(pathA)
	if err != nil {
		return validationError(fmt.Errorf("failed to load %s: %w", pathA, err))
	}
	rotorB, err := ccipher.LoadSettingsFromJSON(pathB)
	if err != nil {
		return validationError(fmt.Errorf("failed to load %s: %w", pathB, err))
	}

	diff := cmp.Diff(rotorA.GetSettings(), rotorB.GetSettings())
	if diff == "" {
		fmt.Fprintf(cmd.OutOrStdout(), "%s and %s describe identical rotors\n", pathA, pathB)
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "--- %s\n+++ %s\n%s", pathA, pathB, diff)
	return nil
}
