package formula

import (
	"eurocalc/core/guards"
	"eurocalc/core/numeric"
	"eurocalc/internal/errors"
)

// Op is the comparison operator of a two-sided check. A formula picks one
// operator at the class level and never mixes directions.
type Op int

const (
	// LessOrEqual models lhs <= rhs
	LessOrEqual Op = iota

	// GreaterOrEqual models lhs >= rhs
	GreaterOrEqual

	// LessThan models lhs < rhs
	LessThan

	// GreaterThan models lhs > rhs
	GreaterThan
)

// Label returns the LaTeX operator symbol
func (op Op) Label() string {
	switch op {
	case LessOrEqual:
		return `\leq`
	case GreaterOrEqual:
		return `\geq`
	case LessThan:
		return `<`
	case GreaterThan:
		return `>`
	}
	return "?"
}

// Compare applies the operator to both sides
func (op Op) Compare(lhs, rhs float64) bool {
	switch op {
	case LessOrEqual:
		return lhs <= rhs
	case GreaterOrEqual:
		return lhs >= rhs
	case LessThan:
		return lhs < rhs
	case GreaterThan:
		return lhs > rhs
	}
	return false
}

// Comparison is an immutable two-sided inequality check. Both sides are
// evaluated independently at construction so a report can show them even
// when the check fails, and the verdict plus the utilization ratio are
// frozen alongside them.
type Comparison struct {
	label          string
	sourceDocument string
	op             Op
	lhs            float64
	rhs            float64
	satisfied      bool
	unityCheck     float64
}

// NewComparison evaluates both sides, verifies they can form a meaningful
// utilization ratio, and freezes the verdict. The ratio direction follows
// the operator: demand over capacity, so lhs/rhs for <= and <, rhs/lhs
// for >= and >.
func NewComparison(label, sourceDocument string, op Op, lhs, rhs Evaluator) (Comparison, error) {
	l, err := lhs()
	if err != nil {
		return Comparison{}, err
	}
	r, err := rhs()
	if err != nil {
		return Comparison{}, err
	}

	if err := guards.IfSignMismatch(guards.N("lhs", l), guards.N("rhs", r)); err != nil {
		return Comparison{}, err
	}

	var numerator, denominator float64
	switch op {
	case LessOrEqual, LessThan:
		numerator, denominator = l, r
	default:
		numerator, denominator = r, l
	}
	uc, err := numeric.Ratio(numerator, denominator)
	if err != nil {
		return Comparison{}, errors.Wrapf(errors.TypeDomain, err,
			"unity check of %s is undefined", label)
	}

	return Comparison{
		label:          label,
		sourceDocument: sourceDocument,
		op:             op,
		lhs:            l,
		rhs:            r,
		satisfied:      op.Compare(l, r),
		unityCheck:     uc,
	}, nil
}

// Label returns the identifier of the originating rule or clause
func (c Comparison) Label() string {
	return c.label
}

// SourceDocument returns the governing specification
func (c Comparison) SourceDocument() string {
	return c.sourceDocument
}

// Op returns the comparison operator
func (c Comparison) Op() Op {
	return c.op
}

// Lhs returns the left-hand side of the inequality
func (c Comparison) Lhs() float64 {
	return c.lhs
}

// Rhs returns the right-hand side of the inequality
func (c Comparison) Rhs() float64 {
	return c.rhs
}

// Satisfied reports whether the inequality holds
func (c Comparison) Satisfied() bool {
	return c.satisfied
}

// UnityCheck returns the utilization ratio, demand over capacity
func (c Comparison) UnityCheck() float64 {
	return c.unityCheck
}

// String returns the verdict as OK or NOT OK
func (c Comparison) String() string {
	if c.satisfied {
		return "OK"
	}
	return "NOT OK"
}
