package column

import (
	"github.com/twiced-technology-gmbh/taskreport/internal/i18n"
	"github.com/twiced-technology-gmbh/taskreport/internal/textfmt"
)

const (
	// ProjectName is the registry name of the project column.
	ProjectName = "projectheader"
	// AttrProject is the record attribute holding the project path.
	AttrProject = "project"
	// ProjectDelimiter separates project path segments.
	ProjectDelimiter = '.'
)

var projectStyles = []string{StyleNameFull, StyleNameParent, StyleNameIndented}

// ProjectHeader renders a dot-separated project path in one of the full,
// parent or indented styles.
type ProjectHeader struct {
	base
	parsed    Style
	hyphenate bool
}

// NewProjectHeader builds the project column. The style name is parsed once;
// an unrecognised name is reported by Measure.
func NewProjectHeader(opts Options) *ProjectHeader {
	b := newBase(ProjectName, AttrProject, i18n.ProjectLabel, projectStyles,
		[]string{i18n.ProjectExampleFull, i18n.ProjectExampleParent, i18n.ProjectExampleIndent}, opts)
	parsed, _ := ParseStyle(b.style)
	return &ProjectHeader{base: b, parsed: parsed, hyphenate: opts.Hyphenate}
}

// Measure returns the widest word and the full width of the styled project.
// Hyphenation is not considered.
func (c *ProjectHeader) Measure(rec Record) (WidthRange, error) {
	if !rec.Has(c.attr) {
		return WidthRange{}, nil
	}
	if c.parsed == StyleInvalid {
		return WidthRange{}, badStyle(c.printer, c.name, c.style, c.styles)
	}

	project := c.value(rec)
	return WidthRange{
		Min: textfmt.LongestWord(project),
		Max: textfmt.Width(project),
	}, nil
}

// Render wraps the styled project to width and left-aligns each line.
func (c *ProjectHeader) Render(rec Record, width int, color Painter) []string {
	if !rec.Has(c.attr) {
		return nil
	}

	raw := textfmt.Wrap(c.value(rec), width, c.hyphenate)
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		lines = append(lines, alignLeft(line, width, color))
	}
	return lines
}

func (c *ProjectHeader) value(rec Record) string {
	return Resolve(c.parsed, rec.Get(c.attr), ProjectDelimiter)
}
