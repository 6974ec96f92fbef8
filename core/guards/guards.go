// Package guards provides input validation for formula construction.
// Every guard is a pure predicate: it either returns nil or a typed error
// identifying the offending argument. Guards never recover or retry.
package guards

import (
	"eurocalc/internal/errors"
)

// Value is a named numeric argument under validation
type Value struct {
	// Name is the argument name as it appears in the formula signature
	Name string

	// V is the numeric value
	V float64
}

// N pairs an argument name with its value
func N(name string, v float64) Value {
	return Value{Name: name, V: v}
}

// Sequence is a named list argument under validation
type Sequence struct {
	// Name is the argument name as it appears in the formula signature
	Name string

	// Values is the list content
	Values []float64
}

// S pairs an argument name with its list
func S(name string, values []float64) Sequence {
	return Sequence{Name: name, Values: values}
}

// IfNegative fails on the first value below zero, in argument order
func IfNegative(values ...Value) error {
	for _, v := range values {
		if v.V < 0 {
			return errors.Negative(v.Name, v.V)
		}
	}
	return nil
}

// IfLessOrEqualToZero fails on the first value not strictly positive, in argument order
func IfLessOrEqualToZero(values ...Value) error {
	for _, v := range values {
		if v.V <= 0 {
			return errors.LessOrEqualToZero(v.Name, v.V)
		}
	}
	return nil
}

// IfSignMismatch fails when the values do not all share the same sign.
// Zero is sign-neutral and compatible with either sign.
func IfSignMismatch(values ...Value) error {
	sign := 0
	for _, v := range values {
		s := 0
		switch {
		case v.V > 0:
			s = 1
		case v.V < 0:
			s = -1
		}
		if s == 0 {
			continue
		}
		if sign == 0 {
			sign = s
			continue
		}
		if s != sign {
			names := make([]string, 0, len(values))
			for _, w := range values {
				names = append(names, w.Name)
			}
			return errors.SignMismatch(names...)
		}
	}
	return nil
}

// IfLengthMismatch fails when parallel sequences differ in length.
// A single sequence (or none) always passes.
func IfLengthMismatch(sequences ...Sequence) error {
	if len(sequences) < 2 {
		return nil
	}
	want := len(sequences[0].Values)
	for _, s := range sequences[1:] {
		if len(s.Values) != want {
			names := make([]string, 0, len(sequences))
			for _, q := range sequences {
				names = append(names, q.Name)
			}
			err := errors.LengthMismatch(names...)
			for _, q := range sequences {
				err = err.WithContext(q.Name, len(q.Values))
			}
			return err
		}
	}
	return nil
}
