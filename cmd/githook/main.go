// Package main is the entry point for the githook CLI binary.
package main

import (
	"os"

	"github.com/devnanny/githook/cmd/githook/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
