package textfmt

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const hyphen = "-"

// Wrap breaks s into lines no wider than width columns.
//
// Words are packed greedily, separated by single spaces. A word wider than
// width is split across lines with a trailing hyphen when hyphenate is set,
// and emitted unbroken on its own line otherwise. Newlines in s are hard
// breaks; the leading blanks of each paragraph are kept on all its lines
// unless they would push an unbreakable word, or a single wide rune, past
// width.
// A width of zero or less returns s as a single line.
func Wrap(s string, width int, hyphenate bool) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if width <= 0 {
		return []string{s}
	}

	var lines []string
	for _, para := range strings.Split(strings.TrimRight(s, "\n"), "\n") {
		lines = append(lines, wrapParagraph(para, width, hyphenate)...)
	}
	return lines
}

func wrapParagraph(para string, width int, hyphenate bool) []string {
	body := strings.TrimLeftFunc(para, isBlank)
	words := fields(body)
	if len(words) == 0 {
		return []string{""}
	}

	indent := para[:len(para)-len(body)]
	avail := width - Width(indent)
	if avail < widestRune(body) || (!hyphenate && LongestWord(body) > avail) {
		indent, avail = "", width
	}

	w := wrapper{width: avail, hyphenate: hyphenate}
	for _, word := range words {
		w.add(word)
	}
	w.flush()

	if indent != "" {
		for i := range w.lines {
			w.lines[i] = indent + w.lines[i]
		}
	}
	return w.lines
}

// wrapper accumulates words into lines for a single paragraph.
type wrapper struct {
	width     int
	hyphenate bool

	lines   []string
	current strings.Builder
	used    int
}

func (w *wrapper) add(word string) {
	ww := Width(word)
	if w.used > 0 && w.used+1+ww <= w.width {
		w.current.WriteByte(' ')
		w.current.WriteString(word)
		w.used += 1 + ww
		return
	}

	w.flush()
	if ww <= w.width {
		w.current.WriteString(word)
		w.used = ww
		return
	}
	if !w.hyphenate {
		w.lines = append(w.lines, word)
		return
	}

	for Width(word) > w.width {
		var head string
		head, word = splitHyphenated(word, w.width)
		w.lines = append(w.lines, head)
	}
	if word != "" {
		w.current.WriteString(word)
		w.used = Width(word)
	}
}

func (w *wrapper) flush() {
	if w.used == 0 {
		return
	}
	w.lines = append(w.lines, w.current.String())
	w.current.Reset()
	w.used = 0
}

// splitHyphenated cuts word so that head, including its trailing hyphen,
// fits in width. At least one rune is always consumed; when that rune and a
// hyphen do not fit together the rune is returned alone.
func splitHyphenated(word string, width int) (head, rest string) {
	budget := width - Width(hyphen)
	cut, used := 0, 0
	for cut < len(word) {
		r, size := utf8.DecodeRuneInString(word[cut:])
		rw := runeWidth(r, size)
		if used+rw > budget {
			break
		}
		used += rw
		cut += size
	}

	if cut == 0 {
		_, size := utf8.DecodeRuneInString(word)
		return word[:size], word[size:]
	}
	return word[:cut] + hyphen, word[cut:]
}

// widestRune returns the width of the widest single rune in s, the least
// room a hyphenated line needs.
func widestRune(s string) int {
	widest := 0
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		widest = max(widest, runeWidth(r, size))
		i += size
	}
	return widest
}

func fields(s string) []string {
	return strings.FieldsFunc(s, unicode.IsSpace)
}

func isBlank(r rune) bool {
	return r == ' ' || r == '\t'
}
