// Package column implements the pluggable report columns. A column turns one
// attribute of a record into a cell: Measure reports how narrow and how wide
// the cell may be, Render produces the lines for a negotiated width.
package column

import (
	"slices"
	"strings"

	"github.com/twiced-technology-gmbh/taskreport/internal/clierr"
	"github.com/twiced-technology-gmbh/taskreport/internal/i18n"
	"github.com/twiced-technology-gmbh/taskreport/internal/textfmt"
)

// Record is the row a column reads its attribute from.
type Record interface {
	Has(attr string) bool
	Get(attr string) string
}

// Painter colors a rendered line. lipgloss.Style satisfies it.
type Painter interface {
	Render(strs ...string) string
}

// WidthRange is the feasible width of a cell. Min is the widest word in the
// value, Max the width of the whole value. Both are 0 for a missing value.
type WidthRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Column is a report column.
type Column interface {
	Name() string
	Label() string
	Style() string
	Styles() []string
	Examples() []string

	// Measure reports the feasible width range for rec. It is the only
	// place a misconfigured style is reported.
	Measure(rec Record) (WidthRange, error)

	// Render returns the cell lines for rec at the given width. Lines are
	// padded to width but never truncated. A missing value yields no lines.
	Render(rec Record, width int, color Painter) []string
}

// Options configures a column at construction. Columns copy what they need
// and never consult configuration afterwards.
type Options struct {
	// Style is the style name; empty selects the column's first style.
	Style string
	// Hyphenate allows over-wide words to be split with a trailing hyphen.
	Hyphenate bool
	// Printer resolves labels, examples and error messages. Nil uses the
	// default locale.
	Printer *i18n.Printer
}

func (o Options) printer() *i18n.Printer {
	if o.Printer == nil {
		return i18n.NewPrinter("")
	}
	return o.Printer
}

// base carries the identity metadata shared by all columns.
type base struct {
	name        string
	attr        string
	labelKey    string
	styles      []string
	exampleKeys []string
	style       string
	printer     *i18n.Printer
}

func newBase(name, attr, labelKey string, styles, exampleKeys []string, opts Options) base {
	style := opts.Style
	if style == "" {
		style = styles[0]
	}
	return base{
		name:        name,
		attr:        attr,
		labelKey:    labelKey,
		styles:      styles,
		exampleKeys: exampleKeys,
		style:       style,
		printer:     opts.printer(),
	}
}

func (b *base) Name() string       { return b.name }
func (b *base) Style() string      { return b.style }
func (b *base) Label() string      { return b.printer.Sprintf(b.labelKey) }
func (b *base) Styles() []string   { return slices.Clone(b.styles) }
func (b *base) Examples() []string { return b.sprintAll(b.exampleKeys) }

func (b *base) sprintAll(keys []string) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = b.printer.Sprintf(k)
	}
	return out
}

// validate reports a BadColumnStyle error when the configured style is not
// one of the column's styles.
func (b *base) validate() error {
	if slices.Contains(b.styles, b.style) {
		return nil
	}
	return badStyle(b.printer, b.name, b.style, b.styles)
}

func badStyle(p *i18n.Printer, column, style string, allowed []string) *clierr.Error {
	return clierr.New(clierr.BadColumnStyle, p.Sprintf(i18n.ColumnBadFormat, column, style)).
		WithDetails(map[string]any{
			"column":  column,
			"style":   style,
			"allowed": allowed,
		})
}

// alignLeft pads line with spaces to width display columns.
func alignLeft(line string, width int, color Painter) string {
	if pad := width - textfmt.Width(line); pad > 0 {
		line += strings.Repeat(" ", pad)
	}
	return paint(line, color)
}

// alignRight pads line on the left to width display columns.
func alignRight(line string, width int, color Painter) string {
	if pad := width - textfmt.Width(line); pad > 0 {
		line = strings.Repeat(" ", pad) + line
	}
	return paint(line, color)
}

func paint(line string, color Painter) string {
	if color == nil {
		return line
	}
	return color.Render(line)
}
