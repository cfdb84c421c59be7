package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/twiced-technology-gmbh/taskreport/internal/task"
	"github.com/twiced-technology-gmbh/taskreport/internal/textfmt"
)

const dateLayout = "2006-01-02"

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	labelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("244"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	tagStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("110"))
)

// DisableColor strips all styling from detail output.
func DisableColor() {
	titleStyle = lipgloss.NewStyle()
	labelStyle = lipgloss.NewStyle()
	dimStyle = lipgloss.NewStyle()
	tagStyle = lipgloss.NewStyle()
}

// TaskDetail renders a single task with full detail.
func TaskDetail(w io.Writer, t *task.Task) {
	titleLine := fmt.Sprintf("Task #%d: %s", t.ID, t.Description)
	fmt.Fprintln(w, titleStyle.Render(titleLine))
	fmt.Fprintln(w, strings.Repeat("─", textfmt.Width(titleLine)))

	printField(w, "Status", t.Status)
	printField(w, "Priority", stringOrDash(t.Priority))
	printField(w, "Project", stringOrDash(t.Project))
	if len(t.Tags) > 0 {
		printField(w, "Tags", tagStyle.Render(strings.Join(t.Tags, ", ")))
	} else {
		printField(w, "Tags", dimStyle.Render("--"))
	}
	printField(w, "Created", t.Created.Format("2006-01-02 15:04"))
	printField(w, "Updated", t.Updated.Format("2006-01-02 15:04"))

	if t.Notes != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, t.Notes)
	}
}

// ColumnTable renders the registered columns with their styles and an
// example value per style.
func ColumnTable(w io.Writer, cols []ColumnInfo) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Column", "Style", "Example"})

	for _, c := range cols {
		for i, s := range c.Styles {
			name := ""
			if i == 0 {
				name = c.Name
			}
			example := ""
			if i < len(c.Examples) {
				example = c.Examples[i]
			}
			t.AppendRow(table.Row{name, s, example})
		}
	}
	t.Render()
}

// Messagef prints a simple formatted message line.
func Messagef(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, format+"\n", args...)
}

func printField(w io.Writer, label, value string) {
	fmt.Fprintf(w, "  %s %s\n", labelStyle.Render(padRight(label+":", 12)), value) //nolint:mnd // label column width
}

// padRight pads s with spaces to the given visible width, accounting for ANSI
// escape codes that are invisible but consume bytes.
func padRight(s string, width int) string {
	visible := lipgloss.Width(s)
	if visible >= width {
		return s
	}
	return s + strings.Repeat(" ", width-visible)
}

func stringOrDash(s string) string {
	if s == "" {
		return dimStyle.Render("--")
	}
	return s
}
