// Package main provides the chaocipher command-line interface.
//
// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/coredds/chaocipher/internal/cli"
)

func main() {
	err := cli.Execute()
	if err == nil {
		os.Exit(0)
	}

	var exitErr *cli.ExitCodeError
	if errors.As(err, &exitErr) {
		fmt.Fprintln(os.Stderr, exitErr.Error())
		os.Exit(exitErr.Code)
	}

	fmt.Fprintln(os.Stderr, err.Error())
	os.Exit(1)
}
