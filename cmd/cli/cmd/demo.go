// Package cmd - demo command
package cmd

import (
	"os"
	"sort"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"eurocalc/codes/en1992"
	"eurocalc/core/formula"
	"eurocalc/core/numeric"
	"eurocalc/core/report"
	"eurocalc/internal/config"
	"eurocalc/internal/logging"
)

var demoOutput string

// demoCmd represents the demo command
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Render the built-in sample report",
	Long: `Build a small concrete design report from the sample Eurocode 2
formulas and write it as a LaTeX document.`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func init() {
	demoCmd.Flags().StringVarP(&demoOutput, "output", "o", "", "output path (default from config)")
}

func runDemo(cmd *cobra.Command, args []string) error {
	fcm, err := en1992.NewForm3Dot1MeanCompressiveStrength(30)
	if err != nil {
		return err
	}
	fcd, err := en1992.NewForm3Dot15DesignCompressiveStrength(0.85, 30, 1.5)
	if err != nil {
		return err
	}
	crack, err := en1992.NewForm7Dot1CrackWidthCheck(0.25, 0.3)
	if err != nil {
		return err
	}

	fcmLatex, err := fcm.Latex()
	if err != nil {
		return err
	}
	fcdLatex, err := fcd.Latex()
	if err != nil {
		return err
	}
	crackLatex, err := crack.Latex()
	if err != nil {
		return err
	}

	r := report.New("Concrete design checks")
	r.AddSection("Material properties").
		AddText("Concrete C30/37, per "+en1992.SourceDocument+".").
		AddFormula(fcmLatex, report.Style(report.StyleCompleteWithUnits), report.Tag(fcm.Label())).
		AddFormula(fcdLatex, report.Style(report.StyleCompleteWithUnits), report.Tag(fcd.Label()))

	if detail, ok := formula.DetailedResultOf(fcd); ok {
		names := make([]string, 0, len(detail))
		for name := range detail {
			names = append(names, name)
		}
		sort.Strings(names)
		rows := make([][]string, 0, len(names))
		for _, name := range names {
			rows = append(rows, []string{name, numeric.StringFixed(detail[name], 2)})
		}
		r.AddSubsection("Intermediate results").
			AddTable([]string{"Term", "Value"}, rows)
	}

	r.AddSection("Serviceability").
		AddText("Crack width verification:", report.Bold()).
		AddFormula(crackLatex, report.Style(report.StyleComplete), report.Tag(crack.Label())).
		AddText("Utilization: "+numeric.StringFixed(crack.UnityCheck(), 2), report.Italic())

	if err := r.Err(); err != nil {
		return err
	}

	out := demoOutput
	if out == "" {
		out = config.Get().Output.Path
	}
	doc := r.ToDocument()
	if err := os.WriteFile(out, []byte(doc), 0644); err != nil {
		return err
	}

	logging.Info("demo document written",
		zap.String("output", out),
		zap.Bool("crack_check_ok", crack.Satisfied()))
	return nil
}
