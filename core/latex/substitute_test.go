package latex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eurocalc/core/latex"
	"eurocalc/internal/errors"
)

func TestSubstitute(t *testing.T) {
	t.Run("EveryKeyOnce", func(t *testing.T) {
		out, err := latex.Substitute(
			`\frac{M_{Ed}}{M_{Rd}}`,
			map[string]string{"M_{Ed}": "120.00", "M_{Rd}": "200.00"},
			true,
		)
		require.NoError(t, err)
		assert.Equal(t, `\frac{120.00}{200.00}`, out)
		assert.NotContains(t, out, "M_{Ed}")
		assert.NotContains(t, out, "M_{Rd}")
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := latex.Substitute("A+B", map[string]string{"C": "x"}, true)
		require.Error(t, err)
		assert.True(t, errors.IsType(err, errors.TypeSymbolNotFound))
		assert.Contains(t, err.Error(), `"C"`)
	})

	t.Run("FoundMultipleTimes", func(t *testing.T) {
		_, err := latex.Substitute("A+A", map[string]string{"A": "x"}, true)
		require.Error(t, err)
		assert.True(t, errors.IsType(err, errors.TypeSymbolRepeated))
		assert.Contains(t, err.Error(), `"A"`)
	})

	t.Run("RepeatAllowedWithoutUniqueCheck", func(t *testing.T) {
		out, err := latex.Substitute("A+A", map[string]string{"A": "x"}, false)
		require.NoError(t, err)
		assert.Equal(t, "x+x", out)
	})

	t.Run("MissingAllowedWithoutUniqueCheck", func(t *testing.T) {
		out, err := latex.Substitute("A+B", map[string]string{"C": "x"}, false)
		require.NoError(t, err)
		assert.Equal(t, "A+B", out)
	})

	t.Run("LongestSymbolFirst", func(t *testing.T) {
		// Replacing "A" before "A_{1}" would corrupt the longer symbol.
		out, err := latex.Substitute("A + A_{1}", map[string]string{
			"A":     "10.00",
			"A_{1}": "20.00",
		}, true)
		require.NoError(t, err)
		assert.Equal(t, "10.00 + 20.00", out)
	})
}
