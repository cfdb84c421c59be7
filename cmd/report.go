package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/twiced-technology-gmbh/taskreport/internal/board"
	"github.com/twiced-technology-gmbh/taskreport/internal/column"
	"github.com/twiced-technology-gmbh/taskreport/internal/config"
	"github.com/twiced-technology-gmbh/taskreport/internal/i18n"
	"github.com/twiced-technology-gmbh/taskreport/internal/output"
	"github.com/twiced-technology-gmbh/taskreport/internal/report"
	"github.com/twiced-technology-gmbh/taskreport/internal/task"
	"github.com/twiced-technology-gmbh/taskreport/internal/watcher"
)

var reportCmd = &cobra.Command{
	Use:     "report",
	Aliases: []string{"list", "ls"},
	Short:   "Print tasks as a table report",
	Long: `Prints tasks as a table whose column widths are negotiated against the
terminal width. Columns are given as name or name.style, e.g.
"id,project.indented,description". Run 'taskreport columns' for the list.`,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringSlice("status", nil, "filter by status (comma-separated)")
	reportCmd.Flags().StringSlice("priority", nil, "filter by priority (comma-separated)")
	reportCmd.Flags().String("tag", "", "filter by tag")
	reportCmd.Flags().String("project", "", "filter by project and its subprojects")
	reportCmd.Flags().StringP("search", "s", "", "search description, notes, or tags (case-insensitive)")
	reportCmd.Flags().String("sort", "id", "sort field ("+strings.Join(board.SortFields, ", ")+")")
	reportCmd.Flags().BoolP("reverse", "r", false, "reverse sort order")
	reportCmd.Flags().IntP("limit", "n", 0, "limit number of results")
	reportCmd.Flags().StringSlice("columns", nil, "columns to show (default from config)")
	reportCmd.Flags().String("style", "", "project column style: full, parent or indented (default from config)")
	reportCmd.Flags().Bool("hyphenate", false, "hyphenate words wider than their column (default from config)")
	reportCmd.Flags().Int("width", 0, "total report width (default: config, then terminal width)")
	reportCmd.Flags().BoolP("watch", "w", false, "re-print the report when tasks change")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	settings := reportSettings(cmd, cfg)
	cols, err := report.Columns(column.NewRegistry(), settings)
	if err != nil {
		return err
	}

	theme := report.DefaultTheme()
	if colorDisabled() {
		theme = report.Theme{}
	}
	rep := report.New(cols, report.Options{
		Width:  reportWidth(cmd, cfg),
		Theme:  theme,
		Logger: logger,
	})
	printer := i18n.NewPrinter(settings.Locale)
	list := listOptions(cmd)

	render := func(w io.Writer) error {
		tasks, warnings, err := board.List(cfg, list)
		if err != nil {
			return err
		}
		printWarnings(warnings)
		return writeReport(w, rep, printer, tasks)
	}

	if err := render(os.Stdout); err != nil {
		return err
	}

	if watch, _ := cmd.Flags().GetBool("watch"); watch {
		return watchReport(cmd.Context(), cfg, render)
	}
	return nil
}

func reportSettings(cmd *cobra.Command, cfg *config.Config) report.Settings {
	s := report.SettingsFrom(cfg)
	if v, _ := cmd.Flags().GetStringSlice("columns"); len(v) > 0 {
		s.Columns = v
	}
	if v, _ := cmd.Flags().GetString("style"); v != "" {
		s.ProjectStyle = v
	}
	if cmd.Flags().Changed("hyphenate") {
		s.Hyphenate, _ = cmd.Flags().GetBool("hyphenate")
	}
	return s
}

// reportWidth picks the total width: --width, then report.width, then the
// terminal width. 0 means unbounded.
func reportWidth(cmd *cobra.Command, cfg *config.Config) int {
	if cmd.Flags().Changed("width") {
		w, _ := cmd.Flags().GetInt("width")
		return max(w, 0)
	}
	if cfg.Report.Width > 0 {
		return cfg.Report.Width
	}
	fd := int(os.Stdout.Fd()) //nolint:gosec // stdout fd fits in int
	if !term.IsTerminal(fd) {
		return 0
	}
	w, _, err := term.GetSize(fd)
	if err != nil {
		logger.Debug("terminal size unavailable", "error", err)
		return 0
	}
	return w
}

func listOptions(cmd *cobra.Command) board.ListOptions {
	statuses, _ := cmd.Flags().GetStringSlice("status")
	priorities, _ := cmd.Flags().GetStringSlice("priority")
	tag, _ := cmd.Flags().GetString("tag")
	project, _ := cmd.Flags().GetString("project")
	search, _ := cmd.Flags().GetString("search")
	sortBy, _ := cmd.Flags().GetString("sort")
	reverse, _ := cmd.Flags().GetBool("reverse")
	limit, _ := cmd.Flags().GetInt("limit")

	return board.ListOptions{
		Filter: board.FilterOptions{
			Statuses:   statuses,
			Priorities: priorities,
			Tag:        tag,
			Project:    project,
			Search:     search,
		},
		SortBy:  sortBy,
		Reverse: reverse,
		Limit:   limit,
	}
}

// reportJSON is the JSON form of a report: the negotiated columns and the
// tasks they were measured over.
type reportJSON struct {
	Columns []columnJSON `json:"columns"`
	Tasks   []*task.Task `json:"tasks"`

	// Projects counts the listed tasks per top-level project.
	Projects map[string]int `json:"projects"`
}

type columnJSON struct {
	Name  string `json:"name"`
	Style string `json:"style"`
	column.WidthRange
	Width int `json:"width"`
}

func writeReport(w io.Writer, rep *report.Report, printer *i18n.Printer, tasks []*task.Task) error {
	rows := make([]column.Record, len(tasks))
	for i, t := range tasks {
		rows[i] = t
	}

	switch outputFormat() {
	case output.FormatJSON:
		ranges, err := rep.Measure(rows)
		if err != nil {
			return err
		}
		widths := rep.Widths(ranges)
		out := reportJSON{
			Columns:  make([]columnJSON, len(ranges)),
			Tasks:    tasks,
			Projects: board.CountByProject(tasks),
		}
		for i, col := range rep.Columns() {
			out.Columns[i] = columnJSON{Name: col.Name(), Style: col.Style(), WidthRange: ranges[i], Width: widths[i]}
		}
		if out.Tasks == nil {
			out.Tasks = []*task.Task{}
		}
		return output.JSON(w, out)
	case output.FormatCompact:
		output.TaskCompact(w, tasks)
		return nil
	}

	if len(tasks) == 0 {
		fmt.Fprintln(os.Stderr, printer.Sprintf(i18n.NoTasks))
		return nil
	}
	if err := rep.Write(w, rows); err != nil {
		return err
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, printer.Sprintf(i18n.ReportTaskCount, len(tasks)))
	return nil
}

// watchReport re-renders whenever the tasks directory or config changes,
// until ctx is canceled.
func watchReport(ctx context.Context, cfg *config.Config, render func(io.Writer) error) error {
	out := termenv.NewOutput(os.Stdout)
	var mu sync.Mutex

	w, err := watcher.New([]string{cfg.TasksPath(), cfg.Dir()}, func() {
		mu.Lock()
		defer mu.Unlock()
		out.ClearScreen()
		if err := render(out); err != nil {
			logger.Error("refreshing report", "error", err)
		}
	}, watcher.Options{
		Ignore: func(name string) bool { return name == config.LockFileName },
		Logger: logger,
	})
	if err != nil {
		return err
	}
	defer w.Close()

	logger.Info("watching for changes", "dir", cfg.Dir())
	w.Run(ctx)
	return nil
}
