// Package main is the entry point for the eurocalc CLI.
package main

import (
	"os"

	"eurocalc/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
