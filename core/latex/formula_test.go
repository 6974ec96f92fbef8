package latex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"eurocalc/core/latex"
)

func TestFormulaRenderings(t *testing.T) {
	f := latex.New(latex.Params{
		ReturnSymbol:    `f_{cm}`,
		Result:          "48.00",
		Equation:        `f_{ck} + 8`,
		NumericEquation: "40.00 + 8",
	})

	assert.Equal(t, `f_{cm} = 48.00`, f.Short())
	assert.Equal(t, `f_{cm} = f_{ck} + 8 = 40.00 + 8 = 48.00`, f.Complete())
}

func TestFormulaShortMatchesFields(t *testing.T) {
	f := latex.New(latex.Params{ReturnSymbol: "x", Result: "1.00"})
	assert.Equal(t, f.ReturnSymbol()+" "+f.ComparisonOperatorLabel()+" "+f.Result(), f.Short())
}

func TestFormulaOmitsEmptyLayers(t *testing.T) {
	f := latex.New(latex.Params{
		ReturnSymbol:    `\sigma`,
		Result:          "12.00",
		NumericEquation: "24.00 / 2.00",
	})
	assert.Equal(t, `\sigma = 24.00 / 2.00 = 12.00`, f.Complete())
	assert.NotContains(t, f.Complete(), "= =")
}

func TestFormulaOperatorLabel(t *testing.T) {
	f := latex.New(latex.Params{
		ReturnSymbol:            "CHECK",
		Result:                  `\text{OK}`,
		Equation:                `w_{k} \leq w_{max}`,
		NumericEquation:         `0.25 \leq 0.30`,
		ComparisonOperatorLabel: `\to`,
	})
	assert.Equal(t, `CHECK \to w_{k} \leq w_{max} \to 0.25 \leq 0.30 \to \text{OK}`, f.Complete())
	assert.Equal(t, `CHECK \to \text{OK}`, f.Short())
}

func TestFormulaUnits(t *testing.T) {
	f := latex.New(latex.Params{
		ReturnSymbol:             `f_{cd}`,
		Result:                   "17.00",
		Equation:                 `\alpha_{cc} \cdot \frac{f_{ck}}{\gamma_{C}}`,
		NumericEquation:          `0.85 \cdot \frac{30.00}{1.50}`,
		NumericEquationWithUnits: `0.85 \cdot \frac{30.00\ \text{MPa}}{1.50}`,
		Unit:                     `\text{MPa}`,
	})

	assert.Equal(t, `f_{cd} = 17.00\ \text{MPa}`, f.Short())
	assert.Contains(t, f.CompleteWithUnits(), `30.00\ \text{MPa}`)
	assert.Contains(t, f.Complete(), `0.85 \cdot \frac{30.00}{1.50}`)
}

func TestFormulaWithUnitsFallsBack(t *testing.T) {
	f := latex.New(latex.Params{
		ReturnSymbol:    "x",
		Result:          "1.00",
		NumericEquation: "2.00 / 2.00",
	})
	assert.Equal(t, f.Complete(), f.CompleteWithUnits())
}
