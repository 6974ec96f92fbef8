// Package latex provides the symbolic rendering layer: an immutable
// carrier for the textual forms of a computation and the substitution
// engine that produces the numeric form from a symbolic template.
package latex

import "strings"

// Params collects the textual layers of a rendered computation. Callers
// are responsible for numeric formatting; this package never computes.
type Params struct {
	// ReturnSymbol is the name of the quantity being computed
	ReturnSymbol string

	// Result is the pre-formatted numeric or verdict string
	Result string

	// Equation is the symbolic form with named unknowns
	Equation string

	// NumericEquation is the equation with symbols replaced by numbers
	NumericEquation string

	// NumericEquationWithUnits optionally carries units alongside numbers
	NumericEquationWithUnits string

	// ComparisonOperatorLabel joins the layers; empty means "="
	ComparisonOperatorLabel string

	// Unit is an optional trailing unit annotation
	Unit string
}

// Formula is an immutable bundle of the symbolic, numeric and result
// forms of one computation
type Formula struct {
	returnSymbol             string
	result                   string
	equation                 string
	numericEquation          string
	numericEquationWithUnits string
	operatorLabel            string
	unit                     string
}

// New freezes the given layers into a Formula
func New(p Params) Formula {
	op := p.ComparisonOperatorLabel
	if op == "" {
		op = "="
	}
	return Formula{
		returnSymbol:             p.ReturnSymbol,
		result:                   p.Result,
		equation:                 p.Equation,
		numericEquation:          p.NumericEquation,
		numericEquationWithUnits: p.NumericEquationWithUnits,
		operatorLabel:            op,
		unit:                     p.Unit,
	}
}

// ReturnSymbol returns the name of the computed quantity
func (f Formula) ReturnSymbol() string {
	return f.returnSymbol
}

// Result returns the pre-formatted result string
func (f Formula) Result() string {
	return f.result
}

// Equation returns the symbolic equation layer
func (f Formula) Equation() string {
	return f.equation
}

// NumericEquation returns the numerically substituted layer
func (f Formula) NumericEquation() string {
	return f.numericEquation
}

// NumericEquationWithUnits returns the with-units numeric layer
func (f Formula) NumericEquationWithUnits() string {
	return f.numericEquationWithUnits
}

// ComparisonOperatorLabel returns the operator joining the layers
func (f Formula) ComparisonOperatorLabel() string {
	return f.operatorLabel
}

// Unit returns the trailing unit annotation, possibly empty
func (f Formula) Unit() string {
	return f.unit
}

// Short renders "symbol = result"
func (f Formula) Short() string {
	return f.join(f.returnSymbol, f.resultWithUnit())
}

// Complete renders the non-empty subset of
// symbol, equation, numeric equation and result
func (f Formula) Complete() string {
	return f.join(f.returnSymbol, f.equation, f.numericEquation, f.resultWithUnit())
}

// CompleteWithUnits renders Complete with the with-units numeric layer.
// When no with-units layer was provided it falls back to the plain one.
func (f Formula) CompleteWithUnits() string {
	numeric := f.numericEquationWithUnits
	if numeric == "" {
		numeric = f.numericEquation
	}
	return f.join(f.returnSymbol, f.equation, numeric, f.resultWithUnit())
}

func (f Formula) resultWithUnit() string {
	if f.unit == "" || f.result == "" {
		return f.result
	}
	return f.result + `\ ` + f.unit
}

// join drops empty layers so a missing equation never renders as " = = "
func (f Formula) join(layers ...string) string {
	kept := layers[:0:0]
	for _, l := range layers {
		if l != "" {
			kept = append(kept, l)
		}
	}
	return strings.Join(kept, " "+f.operatorLabel+" ")
}
