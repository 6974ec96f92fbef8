package en1992

import (
	"eurocalc/core/formula"
	"eurocalc/core/guards"
	"eurocalc/core/latex"
	"eurocalc/core/numeric"
	"eurocalc/internal/errors"
)

// Form3Dot1MeanCompressiveStrength computes the mean compressive
// strength of concrete, f_cm = f_ck + 8 MPa, per formula 3.1.
type Form3Dot1MeanCompressiveStrength struct {
	formula.Formula

	fCk float64
}

// NewForm3Dot1MeanCompressiveStrength validates f_ck (MPa) and computes f_cm.
// The relation only holds up to the 90 MPa ceiling of Eurocode 2.
func NewForm3Dot1MeanCompressiveStrength(fCk float64) (*Form3Dot1MeanCompressiveStrength, error) {
	f, err := formula.New("3.1", SourceDocument, func() (float64, error) {
		if err := guards.IfLessOrEqualToZero(guards.N("f_ck", fCk)); err != nil {
			return 0, err
		}
		if fCk > 90 {
			return 0, errors.Domainf("f_ck exceeds the valid 90 MPa ceiling: %v MPa", fCk)
		}
		return fCk + 8, nil
	})
	if err != nil {
		return nil, err
	}
	return &Form3Dot1MeanCompressiveStrength{Formula: f, fCk: fCk}, nil
}

// Latex renders the formula layers
func (f *Form3Dot1MeanCompressiveStrength) Latex() (latex.Formula, error) {
	equation := `f_{ck} + 8`
	numericEquation, err := latex.Substitute(equation, map[string]string{
		"f_{ck}": numeric.StringFixed(f.fCk, 2),
	}, true)
	if err != nil {
		return latex.Formula{}, err
	}
	return latex.New(latex.Params{
		ReturnSymbol:    `f_{cm}`,
		Result:          f.Format(2),
		Equation:        equation,
		NumericEquation: numericEquation,
		Unit:            `\text{MPa}`,
	}), nil
}
