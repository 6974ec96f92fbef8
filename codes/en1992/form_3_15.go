package en1992

import (
	"eurocalc/core/formula"
	"eurocalc/core/guards"
	"eurocalc/core/latex"
	"eurocalc/core/numeric"
)

// Form3Dot15DesignCompressiveStrength computes the design compressive
// strength of concrete, f_cd = alpha_cc * f_ck / gamma_C, per formula 3.15.
type Form3Dot15DesignCompressiveStrength struct {
	formula.Formula

	alphaCC float64
	fCk     float64
	gammaC  float64
}

// NewForm3Dot15DesignCompressiveStrength validates the long-term effects
// coefficient alpha_cc (-), the characteristic strength f_ck (MPa) and
// the partial safety factor gamma_C (-) and computes f_cd.
func NewForm3Dot15DesignCompressiveStrength(alphaCC, fCk, gammaC float64) (*Form3Dot15DesignCompressiveStrength, error) {
	f, err := formula.New("3.15", SourceDocument, func() (float64, error) {
		if err := guards.IfLessOrEqualToZero(
			guards.N("alpha_cc", alphaCC),
			guards.N("f_ck", fCk),
			guards.N("gamma_C", gammaC),
		); err != nil {
			return 0, err
		}
		return alphaCC * fCk / gammaC, nil
	})
	if err != nil {
		return nil, err
	}
	return &Form3Dot15DesignCompressiveStrength{
		Formula: f,
		alphaCC: alphaCC,
		fCk:     fCk,
		gammaC:  gammaC,
	}, nil
}

// DetailedResult exposes the unfactored design strength for audit
func (f *Form3Dot15DesignCompressiveStrength) DetailedResult() map[string]float64 {
	return map[string]float64{
		"f_ck / gamma_C": f.fCk / f.gammaC,
	}
}

// Latex renders the formula layers
func (f *Form3Dot15DesignCompressiveStrength) Latex() (latex.Formula, error) {
	equation := `\alpha_{cc} \cdot \frac{f_{ck}}{\gamma_{C}}`
	numericEquation, err := latex.Substitute(equation, map[string]string{
		`\alpha_{cc}`: numeric.StringFixed(f.alphaCC, 2),
		`f_{ck}`:      numeric.StringFixed(f.fCk, 2),
		`\gamma_{C}`:  numeric.StringFixed(f.gammaC, 2),
	}, true)
	if err != nil {
		return latex.Formula{}, err
	}
	return latex.New(latex.Params{
		ReturnSymbol:    `f_{cd}`,
		Result:          f.Format(2),
		Equation:        equation,
		NumericEquation: numericEquation,
		Unit:            `\text{MPa}`,
	}), nil
}
