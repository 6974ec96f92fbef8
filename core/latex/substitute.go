package latex

import (
	"sort"
	"strings"

	"eurocalc/internal/errors"
)

// Substitute replaces every symbol of replacements inside template.
//
// Symbols are applied longest first so that a symbol which is a substring
// of another (say "A" and "A_1") can never corrupt the longer one. With
// uniqueCheck enabled every symbol must occur exactly once in the working
// string: zero occurrences means the template and the replacement mapping
// have drifted apart, more than one means the template author must opt
// out of the check. Both defects are authoring errors and fail loudly.
func Substitute(template string, replacements map[string]string, uniqueCheck bool) (string, error) {
	symbols := make([]string, 0, len(replacements))
	for s := range replacements {
		symbols = append(symbols, s)
	}
	sort.Slice(symbols, func(i, j int) bool {
		if len(symbols[i]) != len(symbols[j]) {
			return len(symbols[i]) > len(symbols[j])
		}
		return symbols[i] < symbols[j]
	})

	out := template
	for _, symbol := range symbols {
		n := strings.Count(out, symbol)
		if uniqueCheck {
			if n == 0 {
				return "", errors.SymbolNotFound(symbol)
			}
			if n > 1 {
				return "", errors.SymbolRepeated(symbol)
			}
		}
		out = strings.ReplaceAll(out, symbol, replacements[symbol])
	}
	return out, nil
}
