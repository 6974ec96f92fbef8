package en1992

import (
	"eurocalc/core/formula"
	"eurocalc/core/guards"
	"eurocalc/core/latex"
	"eurocalc/core/numeric"
)

// Form7Dot1CrackWidthCheck verifies the calculated crack width against
// the recommended maximum, w_k <= w_max, per clause 7.3.1.
type Form7Dot1CrackWidthCheck struct {
	formula.Comparison

	wK   float64
	wMax float64
}

// NewForm7Dot1CrackWidthCheck validates the calculated crack width w_k (mm)
// and the crack width limit w_max (mm) and evaluates the check.
func NewForm7Dot1CrackWidthCheck(wK, wMax float64) (*Form7Dot1CrackWidthCheck, error) {
	c, err := formula.NewComparison("7.1", SourceDocument, formula.LessOrEqual,
		func() (float64, error) {
			if err := guards.IfNegative(guards.N("w_k", wK)); err != nil {
				return 0, err
			}
			return wK, nil
		},
		func() (float64, error) {
			if err := guards.IfLessOrEqualToZero(guards.N("w_max", wMax)); err != nil {
				return 0, err
			}
			return wMax, nil
		},
	)
	if err != nil {
		return nil, err
	}
	return &Form7Dot1CrackWidthCheck{Comparison: c, wK: wK, wMax: wMax}, nil
}

// Latex renders the check in verdict style
func (f *Form7Dot1CrackWidthCheck) Latex() (latex.Formula, error) {
	equation := `w_{k} \leq w_{max}`
	numericEquation, err := latex.Substitute(equation, map[string]string{
		`w_{k}`:   numeric.StringFixed(f.wK, 2),
		`w_{max}`: numeric.StringFixed(f.wMax, 2),
	}, true)
	if err != nil {
		return latex.Formula{}, err
	}
	return latex.New(latex.Params{
		ReturnSymbol:            "CHECK",
		Result:                  `\text{` + f.String() + `}`,
		Equation:                equation,
		NumericEquation:         numericEquation,
		ComparisonOperatorLabel: `\to`,
	}), nil
}
