package report

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/twiced-technology-gmbh/taskreport/internal/column"
)

// Theme holds the lipgloss styles a report paints with.
type Theme struct {
	Header     *lipgloss.Style
	Statuses   map[string]lipgloss.Style
	Priorities map[string]lipgloss.Style
	Project    *lipgloss.Style
}

// DefaultTheme returns the colored theme used on terminals.
func DefaultTheme() Theme {
	header := lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("244"))
	project := lipgloss.NewStyle().Foreground(lipgloss.Color("110"))
	return Theme{
		Header: &header,
		Statuses: map[string]lipgloss.Style{
			"pending":     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
			"in-progress": lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
			"waiting":     lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
			"done":        lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
		},
		Priorities: map[string]lipgloss.Style{
			"high":   lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
			"medium": lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
			"low":    lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
		},
		Project: &project,
	}
}

func (t Theme) header(line string) string {
	if t.Header == nil {
		return line
	}
	return t.Header.Render(line)
}

// cell picks the painter for a column's cell in rec. A nil painter leaves
// the cell plain.
func (t Theme) cell(name string, rec column.Record) column.Painter {
	var (
		st lipgloss.Style
		ok bool
	)
	switch name {
	case column.AttrStatus:
		st, ok = t.Statuses[rec.Get(column.AttrStatus)]
	case column.AttrPriority:
		st, ok = t.Priorities[rec.Get(column.AttrPriority)]
	case column.ProjectName:
		if t.Project != nil {
			st, ok = *t.Project, true
		}
	}
	if !ok {
		return nil
	}
	return st
}
