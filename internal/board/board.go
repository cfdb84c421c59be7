package board

import (
	"strconv"
	"strings"

	"github.com/twiced-technology-gmbh/taskreport/internal/clierr"
	"github.com/twiced-technology-gmbh/taskreport/internal/config"
	"github.com/twiced-technology-gmbh/taskreport/internal/task"
)

// ListOptions controls how tasks are listed.
type ListOptions struct {
	Filter  FilterOptions
	SortBy  string
	Reverse bool
	Limit   int
}

// List loads all tasks, applies filters and sorting.
// Uses lenient parsing: malformed task files are skipped and returned as warnings.
func List(cfg *config.Config, opts ListOptions) ([]*task.Task, []task.ReadWarning, error) {
	allTasks, warnings, err := task.ReadAllLenient(cfg.TasksPath())
	if err != nil {
		return nil, nil, err
	}

	tasks := Filter(allTasks, opts.Filter)

	sortField := opts.SortBy
	if sortField == "" {
		sortField = fieldID
	}
	Sort(tasks, sortField, opts.Reverse, cfg)

	if opts.Limit > 0 && len(tasks) > opts.Limit {
		tasks = tasks[:opts.Limit]
	}

	return tasks, warnings, nil
}

// maxIDRange bounds how many IDs a single "a-b" range may expand to.
const maxIDRange = 1000

// ParseIDs parses a comma-separated list of IDs and inclusive ranges such
// as "1,4-6". The result keeps first-seen order with duplicates removed.
func ParseIDs(arg string) ([]int, error) {
	seen := make(map[int]bool)
	var ids []int
	add := func(id int) {
		if !seen[id] {
			ids = append(ids, id)
			seen[id] = true
		}
	}

	for _, p := range strings.Split(arg, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		lo, hi, isRange := strings.Cut(p, "-")
		if !isRange {
			id, err := parseID(p)
			if err != nil {
				return nil, err
			}
			add(id)
			continue
		}
		first, err := parseID(strings.TrimSpace(lo))
		if err != nil {
			return nil, err
		}
		last, err := parseID(strings.TrimSpace(hi))
		if err != nil {
			return nil, err
		}
		if last < first || last-first >= maxIDRange {
			return nil, clierr.Newf(clierr.InvalidTaskID, "invalid ID range %q", p).
				WithDetails(map[string]any{"range": p})
		}
		for id := first; id <= last; id++ {
			add(id)
		}
	}
	if len(ids) == 0 {
		return nil, clierr.New(clierr.InvalidTaskID, "no valid task IDs provided")
	}
	return ids, nil
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id < 1 {
		return 0, task.ValidateTaskID(s)
	}
	return id, nil
}

// CountByProject returns the number of tasks under each top-level project.
// Tasks without a project are counted under "".
func CountByProject(tasks []*task.Task) map[string]int {
	counts := make(map[string]int)
	for _, t := range tasks {
		top, _, _ := strings.Cut(t.Project, task.ProjectDelimiter)
		counts[top]++
	}
	return counts
}
