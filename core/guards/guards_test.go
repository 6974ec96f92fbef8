package guards_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eurocalc/core/guards"
	"eurocalc/internal/errors"
)

func TestIfNegative(t *testing.T) {
	t.Run("AllNonNegative", func(t *testing.T) {
		err := guards.IfNegative(guards.N("b", 300), guards.N("h", 0))
		assert.NoError(t, err)
	})

	t.Run("FirstOffenderWins", func(t *testing.T) {
		err := guards.IfNegative(
			guards.N("b", 300),
			guards.N("h", -500),
			guards.N("d", -1),
		)
		require.Error(t, err)
		assert.True(t, errors.IsType(err, errors.TypeNegativeValue))
		assert.Contains(t, err.Error(), "h")
		assert.Contains(t, err.Error(), "-500")
	})
}

func TestIfLessOrEqualToZero(t *testing.T) {
	cases := []struct {
		name  string
		value float64
		ok    bool
	}{
		{"Positive", 12.5, true},
		{"Zero", 0, false},
		{"Negative", -3, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := guards.IfLessOrEqualToZero(guards.N("f_ck", tc.value))
			if tc.ok {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.IsType(err, errors.TypeLessOrEqualToZero))
			assert.Contains(t, err.Error(), "f_ck")
		})
	}
}

func TestIfSignMismatch(t *testing.T) {
	t.Run("SameSign", func(t *testing.T) {
		assert.NoError(t, guards.IfSignMismatch(guards.N("m_ed", -5), guards.N("m_rd", -10)))
		assert.NoError(t, guards.IfSignMismatch(guards.N("m_ed", 5), guards.N("m_rd", 10)))
	})

	t.Run("ZeroIsNeutral", func(t *testing.T) {
		assert.NoError(t, guards.IfSignMismatch(guards.N("a", 0), guards.N("b", -4)))
	})

	t.Run("Mismatch", func(t *testing.T) {
		err := guards.IfSignMismatch(guards.N("m_ed", -5), guards.N("m_rd", 10))
		require.Error(t, err)
		assert.True(t, errors.IsType(err, errors.TypeSignMismatch))
		assert.Contains(t, err.Error(), "m_ed")
		assert.Contains(t, err.Error(), "m_rd")
	})
}

func TestIfLengthMismatch(t *testing.T) {
	t.Run("EqualLengths", func(t *testing.T) {
		err := guards.IfLengthMismatch(
			guards.S("widths", []float64{200, 250}),
			guards.S("heights", []float64{500, 550}),
		)
		assert.NoError(t, err)
	})

	t.Run("SingleSequence", func(t *testing.T) {
		assert.NoError(t, guards.IfLengthMismatch(guards.S("widths", []float64{200})))
	})

	t.Run("Mismatch", func(t *testing.T) {
		err := guards.IfLengthMismatch(
			guards.S("widths", []float64{200, 250}),
			guards.S("heights", []float64{500}),
		)
		require.Error(t, err)
		assert.True(t, errors.IsType(err, errors.TypeLengthMismatch))
		assert.Contains(t, err.Error(), "widths")
		assert.Contains(t, err.Error(), "heights")
	})
}
