// Package cmd provides the CLI commands for eurocalc.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"eurocalc/internal/config"
	"eurocalc/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "eurocalc",
	Short: "Generate LaTeX calculation reports for structural checks",
	Long: `eurocalc renders validated structural-engineering computations
into compilable LaTeX documents.

Examples:
  eurocalc demo -o demo.tex
  eurocalc render report.hcl -o report.tex`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is built-in defaults)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	if verbose {
		cfg := config.Get()
		cfg.Logging.Level = "debug"
		_ = logging.Initialize(cfg.Logging)
	}
}
