package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/twiced-technology-gmbh/taskreport/internal/task"
)

// TaskCompact renders a list of tasks in one-line-per-record compact format.
func TaskCompact(w io.Writer, tasks []*task.Task) {
	for _, t := range tasks {
		fmt.Fprintln(w, formatTaskLine(t))
	}
}

// TaskDetailCompact renders a single task with detail in compact format.
func TaskDetailCompact(w io.Writer, t *task.Task) {
	fmt.Fprintln(w, formatTaskLine(t))
	fmt.Fprintln(w, "  created:"+t.Created.Format(dateLayout)+" updated:"+t.Updated.Format(dateLayout))

	if t.Notes != "" {
		for _, line := range strings.Split(t.Notes, "\n") {
			fmt.Fprintln(w, "  "+line)
		}
	}
}

// ColumnCompact renders registered columns one per line.
func ColumnCompact(w io.Writer, cols []ColumnInfo) {
	for _, c := range cols {
		fmt.Fprintln(w, c.Name+" ["+strings.Join(c.Styles, ",")+"]")
	}
}

// formatTaskLine builds the one-line representation of a task.
func formatTaskLine(t *task.Task) string {
	line := "#" + strconv.Itoa(t.ID) + " [" + t.Status
	if t.Priority != "" {
		line += "/" + t.Priority
	}
	line += "] " + t.Description

	if t.Project != "" {
		line += " project:" + t.Project
	}
	if len(t.Tags) > 0 {
		line += " (" + strings.Join(t.Tags, ", ") + ")"
	}

	return line
}
