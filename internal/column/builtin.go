package column

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/twiced-technology-gmbh/taskreport/internal/i18n"
	"github.com/twiced-technology-gmbh/taskreport/internal/textfmt"
)

// Record attributes read by the built-in columns.
const (
	AttrID          = "id"
	AttrStatus      = "status"
	AttrPriority    = "priority"
	AttrDescription = "description"
)

const (
	styleNumber    = "number"
	styleLong      = "long"
	styleShort     = "short"
	styleTruncated = "truncated"

	// truncatedMin is the narrowest a truncated description is negotiated to.
	truncatedMin = 10
)

// scalarColumn renders a short single-line value that is never wrapped.
type scalarColumn struct {
	base
	right bool
	title bool // title-case the long style
}

// NewID builds the task ID column.
func NewID(opts Options) Column {
	return &scalarColumn{
		base:  newBase(AttrID, AttrID, i18n.IDLabel, []string{styleNumber}, []string{i18n.IDExample}, opts),
		right: true,
	}
}

// NewStatus builds the status column. The long style is title-cased, the
// short style shows the initial.
func NewStatus(opts Options) Column {
	return &scalarColumn{
		base: newBase(AttrStatus, AttrStatus, i18n.StatusLabel,
			[]string{styleLong, styleShort}, []string{i18n.StatusExample}, opts),
		title: true,
	}
}

// NewPriority builds the priority column. The short style shows the initial.
func NewPriority(opts Options) Column {
	return &scalarColumn{
		base: newBase(AttrPriority, AttrPriority, i18n.PriorityLabel,
			[]string{styleLong, styleShort}, []string{i18n.PriorityExample}, opts),
	}
}

func (c *scalarColumn) Measure(rec Record) (WidthRange, error) {
	if !rec.Has(c.attr) {
		return WidthRange{}, nil
	}
	if err := c.validate(); err != nil {
		return WidthRange{}, err
	}
	w := textfmt.Width(c.value(rec))
	return WidthRange{Min: w, Max: w}, nil
}

func (c *scalarColumn) Render(rec Record, width int, color Painter) []string {
	if !rec.Has(c.attr) {
		return nil
	}
	if c.right {
		return []string{alignRight(c.value(rec), width, color)}
	}
	return []string{alignLeft(c.value(rec), width, color)}
}

func (c *scalarColumn) value(rec Record) string {
	v := rec.Get(c.attr)
	if v == "" {
		return v
	}
	// Casers carry state, so each call gets its own.
	switch {
	case c.style == styleShort:
		r, _ := utf8.DecodeRuneInString(v)
		return cases.Upper(language.Und).String(string(r))
	case c.title:
		return cases.Title(language.Und).String(v)
	}
	return v
}

// description wraps free text, or truncates it to a single line.
type description struct {
	base
	hyphenate bool
}

// NewDescription builds the description column.
func NewDescription(opts Options) Column {
	return &description{
		base: newBase(AttrDescription, AttrDescription, i18n.DescLabel,
			[]string{StyleNameFull, styleTruncated}, []string{i18n.DescExample}, opts),
		hyphenate: opts.Hyphenate,
	}
}

func (c *description) Measure(rec Record) (WidthRange, error) {
	if !rec.Has(c.attr) {
		return WidthRange{}, nil
	}
	if err := c.validate(); err != nil {
		return WidthRange{}, err
	}

	v := rec.Get(c.attr)
	if c.style == styleTruncated {
		v = singleLine(v)
		w := textfmt.Width(v)
		return WidthRange{Min: min(w, truncatedMin), Max: w}, nil
	}
	return WidthRange{Min: textfmt.LongestWord(v), Max: textfmt.Width(v)}, nil
}

func (c *description) Render(rec Record, width int, color Painter) []string {
	if !rec.Has(c.attr) {
		return nil
	}

	v := rec.Get(c.attr)
	if c.style == styleTruncated {
		return []string{alignLeft(textfmt.Truncate(singleLine(v), width), width, color)}
	}

	raw := textfmt.Wrap(v, width, c.hyphenate)
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		lines = append(lines, alignLeft(line, width, color))
	}
	return lines
}

func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
