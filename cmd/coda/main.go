// SPDX-License-Identifier: MIT

// Command coda applies compositional logratio transformations to abundance
// tables stored as TSV files.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/coda/cmd/coda/commands"
	"github.com/katalvlaran/coda/internal/logger"
)

func main() {
	err := commands.NewRootCmd().Execute()
	logger.Cleanup()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
