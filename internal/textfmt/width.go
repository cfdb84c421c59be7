// Package textfmt provides the text-shaping primitives used by report
// columns: display width, word wrapping and hierarchy indentation.
package textfmt

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// Width returns the number of terminal columns s occupies. Wide and
// fullwidth runes count as 2, every other rune (including undecodable
// bytes) counts as 1.
func Width(s string) int {
	w := 0
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		w += runeWidth(r, size)
		i += size
	}
	return w
}

// narrow measures East-Asian ambiguous runes as single width, independent
// of the locale in the environment.
var narrow = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

func runeWidth(r rune, size int) int {
	if r == utf8.RuneError && size <= 1 {
		return 1
	}
	if narrow.RuneWidth(r) == 2 { //nolint:mnd // wide glyph
		return 2
	}
	return 1
}

// LongestWord returns the width of the widest whitespace-delimited word in s.
func LongestWord(s string) int {
	longest := 0
	for _, word := range fields(s) {
		longest = max(longest, Width(word))
	}
	return longest
}

// Truncate cuts s to at most width columns, ending in an ellipsis when
// anything was removed. A width of zero or less returns s unchanged.
func Truncate(s string, width int) string {
	if width <= 0 || Width(s) <= width {
		return s
	}
	return narrow.Truncate(s, width, ellipsis)
}

const ellipsis = "…"
