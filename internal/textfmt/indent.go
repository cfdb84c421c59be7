package textfmt

import "strings"

// Indent places each delim-separated segment of path on its own line,
// prefixed by unit once per level of depth. Empty segments are kept.
//
//	Indent("Home.Repairs.Kitchen", "  ", '.') == "Home\n  Repairs\n    Kitchen"
func Indent(path, unit string, delim rune) string {
	segments := strings.Split(path, string(delim))
	if len(segments) == 1 {
		return path
	}

	var b strings.Builder
	for depth, seg := range segments {
		if depth > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(strings.Repeat(unit, depth))
		b.WriteString(seg)
	}
	return b.String()
}
