// Package cli provides the command-line interface for chaocipher.
//
// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package cli

import (
	"github.com/coredds/chaocipher"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "chaocipher",
	Short: "A Chaocipher rotor machine and known-plaintext rotor cracker",
	Long: `chaocipher is a Go library and CLI tool implementing the Chaocipher rotor
cipher and a known-plaintext attack that recovers a rotor's starting
configuration from a plaintext/ciphertext pair.

Examples:
  chaocipher encode --text "hello world" --key "mykey"
  chaocipher decode --file encrypted.txt --config my-rotor.json
  chaocipher crack --plaintext plain.txt --ciphertext cipher.txt
  chaocipher anchor --plaintext plain.txt --ciphertext cipher.txt
  chaocipher keygen --key "mykey" --output my-rotor.json`,
	Version:           chaocipher.GetVersion(),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: nil,
}

// ExitCodeError wraps an error with the process exit code it should produce,
// per spec.md §6: 0 success, 1 input-validation failure, 2 no solution found.
type ExitCodeError struct {
	Code int
	Err  error
}

func (e *ExitCodeError) Error() string { return e.Err.Error() }
func (e *ExitCodeError) Unwrap() error { return e.Err }

// validationError wraps err as an exit-1 input-validation failure.
func validationError(err error) error {
	if err == nil {
		return nil
	}
	return &ExitCodeError{Code: 1, Err: err}
}

// unsolvableError wraps err as an exit-2 "no solution found" failure.
func unsolvableError(err error) error {
	if err == nil {
		return nil
	}
	return &ExitCodeError{Code: 2, Err: err}
}

// Execute runs the root command and returns any error it produced. Callers
// that care about spec.md §6's distinct exit codes should check for
// *ExitCodeError with errors.As; any other error is an exit-1 failure.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(crackCmd)
	rootCmd.AddCommand(anchorCmd)
	rootCmd.AddCommand(keygenCmd)
	rootCmd.AddCommand(configCmd)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
}

// setupVerbose mirrors the teacher's setupVerbose: a single persistent flag
// gates diagnostic output, rather than pulling in a logging framework.
func setupVerbose(cmd *cobra.Command) bool {
	verbose, _ := cmd.Flags().GetBool("verbose")
	return verbose
}
