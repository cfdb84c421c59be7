package column

import (
	"strings"

	"github.com/twiced-technology-gmbh/taskreport/internal/textfmt"
)

// Style selects how a hierarchical value is shaped before it is measured
// and rendered.
type Style int

const (
	// StyleInvalid marks an unrecognised style name. Measure reports it.
	StyleInvalid Style = iota
	// StyleFull renders the path unchanged.
	StyleFull
	// StyleParent renders only the top-level segment.
	StyleParent
	// StyleIndented renders one segment per line, indented by depth.
	StyleIndented
)

// Style names as they appear in configuration and column specs.
const (
	StyleNameFull     = "full"
	StyleNameParent   = "parent"
	StyleNameIndented = "indented"

	// styleNameDefault is the historical name for StyleFull.
	styleNameDefault = "default"
)

// indentUnit is the per-level prefix for StyleIndented.
const indentUnit = "  "

// ParseStyle maps a style name to its Style. Unknown names return
// StyleInvalid and false.
func ParseStyle(name string) (Style, bool) {
	switch name {
	case StyleNameFull, styleNameDefault:
		return StyleFull, true
	case StyleNameParent:
		return StyleParent, true
	case StyleNameIndented:
		return StyleIndented, true
	default:
		return StyleInvalid, false
	}
}

// String returns the canonical style name.
func (s Style) String() string {
	switch s {
	case StyleFull:
		return StyleNameFull
	case StyleParent:
		return StyleNameParent
	case StyleIndented:
		return StyleNameIndented
	default:
		return "invalid"
	}
}

// Resolve shapes raw according to style. StyleInvalid leaves raw unchanged.
func Resolve(style Style, raw string, delim rune) string {
	switch style {
	case StyleParent:
		if i := strings.IndexRune(raw, delim); i >= 0 {
			return raw[:i]
		}
		return raw
	case StyleIndented:
		return textfmt.Indent(raw, indentUnit, delim)
	default:
		return raw
	}
}
