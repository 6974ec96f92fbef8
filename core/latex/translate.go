package latex

import "strings"

// Wildcard is the placeholder token a translation pattern may use to
// stand for an arbitrary substring in that position.
const Wildcard = "**"

// TableEntry maps an input pattern to an output pattern. Both sides may
// carry Wildcard tokens; captured substrings flow into the output slots
// in order of appearance.
type TableEntry struct {
	Pattern string
	Output  string
}

// MatchPattern reports whether s matches pattern and returns the
// substrings captured by the wildcard slots, in order. Literal segments
// anchor the match: the first must prefix s, the last must suffix it,
// and inner segments bind to their first occurrence.
func MatchPattern(pattern, s string) ([]string, bool) {
	parts := strings.Split(pattern, Wildcard)
	if len(parts) == 1 {
		if s == pattern {
			return nil, true
		}
		return nil, false
	}

	if !strings.HasPrefix(s, parts[0]) {
		return nil, false
	}
	rest := s[len(parts[0]):]

	captures := make([]string, 0, len(parts)-1)
	for i, lit := range parts[1:] {
		last := i == len(parts)-2
		if last {
			if !strings.HasSuffix(rest, lit) {
				return nil, false
			}
			captures = append(captures, rest[:len(rest)-len(lit)])
			return captures, true
		}
		idx := strings.Index(rest, lit)
		if idx < 0 || lit == "" {
			return nil, false
		}
		captures = append(captures, rest[:idx])
		rest = rest[idx+len(lit):]
	}
	return captures, true
}

// ExpandPattern fills the wildcard slots of output with the captures, in
// order. Missing captures leave their slot empty; surplus captures are
// dropped.
func ExpandPattern(output string, captures []string) string {
	parts := strings.Split(output, Wildcard)
	if len(parts) == 1 {
		return output
	}

	var sb strings.Builder
	for i, part := range parts {
		sb.WriteString(part)
		if i < len(parts)-1 {
			if i < len(captures) {
				sb.WriteString(captures[i])
			}
		}
	}
	return sb.String()
}

// TranslateWithTable translates s through a manual lookup table. Exact
// entries win over wildcard entries; within each group the first match
// wins. The second return reports whether any entry matched.
func TranslateWithTable(s string, table []TableEntry) (string, bool) {
	for _, entry := range table {
		if strings.Contains(entry.Pattern, Wildcard) {
			continue
		}
		if s == entry.Pattern {
			return entry.Output, true
		}
	}
	for _, entry := range table {
		if !strings.Contains(entry.Pattern, Wildcard) {
			continue
		}
		if captures, ok := MatchPattern(entry.Pattern, s); ok {
			return ExpandPattern(entry.Output, captures), true
		}
	}
	return s, false
}
