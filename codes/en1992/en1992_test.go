package en1992_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eurocalc/codes/en1992"
	"eurocalc/core/formula"
	"eurocalc/internal/errors"
)

func TestForm3Dot1(t *testing.T) {
	t.Run("Evaluation", func(t *testing.T) {
		f, err := en1992.NewForm3Dot1MeanCompressiveStrength(30)
		require.NoError(t, err)
		assert.InDelta(t, 38, f.Value(), 1e-9)
		assert.Equal(t, "3.1", f.Label())
		assert.Equal(t, "EN 1992-1-1", f.SourceDocument())
	})

	t.Run("Latex", func(t *testing.T) {
		f, err := en1992.NewForm3Dot1MeanCompressiveStrength(40)
		require.NoError(t, err)
		l, err := f.Latex()
		require.NoError(t, err)
		assert.Equal(t, `f_{cm} = 48.00\ \text{MPa}`, l.Short())
		assert.Equal(t, `f_{cm} = f_{ck} + 8 = 40.00 + 8 = 48.00\ \text{MPa}`, l.Complete())
	})

	t.Run("RejectsNonPositive", func(t *testing.T) {
		_, err := en1992.NewForm3Dot1MeanCompressiveStrength(0)
		require.Error(t, err)
		assert.True(t, errors.IsType(err, errors.TypeLessOrEqualToZero))
	})

	t.Run("RejectsAboveCeiling", func(t *testing.T) {
		_, err := en1992.NewForm3Dot1MeanCompressiveStrength(95)
		require.Error(t, err)
		assert.True(t, errors.IsType(err, errors.TypeDomain))
		assert.Contains(t, err.Error(), "90 MPa")
	})
}

func TestForm3Dot15(t *testing.T) {
	t.Run("Evaluation", func(t *testing.T) {
		f, err := en1992.NewForm3Dot15DesignCompressiveStrength(0.85, 30, 1.5)
		require.NoError(t, err)
		assert.InDelta(t, 17, f.Value(), 1e-9)
	})

	t.Run("DetailedResult", func(t *testing.T) {
		f, err := en1992.NewForm3Dot15DesignCompressiveStrength(0.85, 30, 1.5)
		require.NoError(t, err)
		detail, ok := formula.DetailedResultOf(f)
		require.True(t, ok)
		assert.InDelta(t, 20, detail["f_ck / gamma_C"], 1e-9)
	})

	t.Run("Latex", func(t *testing.T) {
		f, err := en1992.NewForm3Dot15DesignCompressiveStrength(0.85, 30, 1.5)
		require.NoError(t, err)
		l, err := f.Latex()
		require.NoError(t, err)
		assert.Equal(t,
			`f_{cd} = \alpha_{cc} \cdot \frac{f_{ck}}{\gamma_{C}} = 0.85 \cdot \frac{30.00}{1.50} = 17.00\ \text{MPa}`,
			l.Complete())
	})

	t.Run("RejectsNonPositiveFactor", func(t *testing.T) {
		_, err := en1992.NewForm3Dot15DesignCompressiveStrength(0.85, 30, 0)
		require.Error(t, err)
		assert.True(t, errors.IsType(err, errors.TypeLessOrEqualToZero))
		assert.Contains(t, err.Error(), "gamma_C")
	})
}

func TestForm7Dot1(t *testing.T) {
	t.Run("Satisfied", func(t *testing.T) {
		c, err := en1992.NewForm7Dot1CrackWidthCheck(0.25, 0.3)
		require.NoError(t, err)
		assert.True(t, c.Satisfied())
		assert.InDelta(t, 0.25/0.3, c.UnityCheck(), 1e-9)
	})

	t.Run("FailedCheckConstructs", func(t *testing.T) {
		c, err := en1992.NewForm7Dot1CrackWidthCheck(0.4, 0.3)
		require.NoError(t, err)
		assert.False(t, c.Satisfied())
		assert.InDelta(t, 0.4, c.Lhs(), 1e-9)
		assert.InDelta(t, 0.3, c.Rhs(), 1e-9)
	})

	t.Run("VerdictLatex", func(t *testing.T) {
		c, err := en1992.NewForm7Dot1CrackWidthCheck(0.25, 0.3)
		require.NoError(t, err)
		l, err := c.Latex()
		require.NoError(t, err)
		assert.Equal(t,
			`CHECK \to w_{k} \leq w_{max} \to 0.25 \leq 0.30 \to \text{OK}`,
			l.Complete())
		assert.Equal(t, `CHECK \to \text{OK}`, l.Short())
	})

	t.Run("RejectsNegativeCrackWidth", func(t *testing.T) {
		_, err := en1992.NewForm7Dot1CrackWidthCheck(-0.1, 0.3)
		require.Error(t, err)
		assert.True(t, errors.IsType(err, errors.TypeNegativeValue))
	})
}
