// Package cmd - version command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the tool version, overridable at build time
var Version = "dev"

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the eurocalc version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("eurocalc", Version)
	},
}
