// Package formula provides the computed-value abstraction every
// catalogued calculation is built on. A Formula wraps the numeric result
// of a validated evaluation together with provenance metadata (the rule
// label and the governing source document). Values are evaluated once,
// inside construction, and are immutable afterwards: the struct exposes
// read-only accessors and no setters, so a constructed Formula is safe
// to share across any number of call sites.
package formula

import (
	"strconv"

	"eurocalc/core/numeric"
)

// Evaluator computes the numeric result of a formula. Implementations run
// all applicable guards before any arithmetic and return a typed error on
// invalid input; on error no Formula value is produced.
type Evaluator func() (float64, error)

// Formula is an immutable computed value with provenance metadata
type Formula struct {
	value          float64
	label          string
	sourceDocument string
}

// New evaluates eval and freezes the result into a Formula.
// Validation failures inside eval surface unchanged; no partially
// constructed value is observable.
func New(label, sourceDocument string, eval Evaluator) (Formula, error) {
	v, err := eval()
	if err != nil {
		return Formula{}, err
	}
	return Formula{
		value:          v,
		label:          label,
		sourceDocument: sourceDocument,
	}, nil
}

// Value returns the numeric result
func (f Formula) Value() float64 {
	return f.value
}

// Label returns the identifier of the originating rule or clause
func (f Formula) Label() string {
	return f.label
}

// SourceDocument returns the governing specification
func (f Formula) SourceDocument() string {
	return f.sourceDocument
}

// String returns the shortest float representation of the result
func (f Formula) String() string {
	return strconv.FormatFloat(f.value, 'g', -1, 64)
}

// Format returns the result with a fixed number of decimals, half-up
func (f Formula) Format(decimals int) string {
	return numeric.StringFixed(f.value, decimals)
}

// DetailedResulter is implemented by formulas that expose their
// intermediate terms for audit. Absence of the interface is the normal
// case, not an error: callers query it only when they want the trail.
type DetailedResulter interface {
	// DetailedResult returns named partial results of the evaluation
	DetailedResult() map[string]float64
}

// DetailedResultOf returns the audit trail of v when it provides one
func DetailedResultOf(v interface{}) (map[string]float64, bool) {
	d, ok := v.(DetailedResulter)
	if !ok {
		return nil, false
	}
	return d.DetailedResult(), true
}
