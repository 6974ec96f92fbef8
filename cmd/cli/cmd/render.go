// Package cmd - render command
package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"eurocalc/core/report"
	"eurocalc/internal/config"
	"eurocalc/internal/logging"
	"eurocalc/internal/reportdef"
)

var renderOutput string

// renderCmd represents the render command
var renderCmd = &cobra.Command{
	Use:   "render <definition.hcl>",
	Short: "Render an HCL report definition to a LaTeX document",
	Long: `Load a report definition authored in HCL and write the resulting
LaTeX document.

Examples:
  eurocalc render report.hcl
  eurocalc render report.hcl -o out/report.tex`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "output path (default from config)")
}

func runRender(cmd *cobra.Command, args []string) error {
	def, err := reportdef.Load(args[0])
	if err != nil {
		return err
	}

	r := report.New(def.Title)
	if err := def.Apply(r); err != nil {
		return err
	}

	out := renderOutput
	if out == "" {
		out = config.Get().Output.Path
	}
	doc := r.ToDocument()
	if err := os.WriteFile(out, []byte(doc), 0644); err != nil {
		return err
	}

	logging.Info("document written",
		zap.String("definition", args[0]),
		zap.String("output", out),
		zap.Int("bytes", len(doc)))
	return nil
}
