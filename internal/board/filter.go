// Package board provides board-level operations on task collections.
package board

import (
	"slices"
	"strings"

	"github.com/twiced-technology-gmbh/taskreport/internal/task"
)

// FilterOptions defines which tasks to include.
type FilterOptions struct {
	Statuses        []string
	ExcludeStatuses []string // statuses to exclude from results
	Priorities      []string
	Tag             string
	Project         string // project prefix: "Home" matches "Home" and "Home.*"
	Search          string // case-insensitive substring match across description, notes, and tags
}

// Filter returns tasks matching all specified criteria (AND logic).
func Filter(tasks []*task.Task, opts FilterOptions) []*task.Task {
	var result []*task.Task
	for _, t := range tasks {
		if matchesFilter(t, opts) {
			result = append(result, t)
		}
	}
	return result
}

func matchesFilter(t *task.Task, opts FilterOptions) bool {
	if !matchesStatus(t.Status, opts.Statuses, opts.ExcludeStatuses) {
		return false
	}
	if len(opts.Priorities) > 0 && !slices.Contains(opts.Priorities, t.Priority) {
		return false
	}
	if opts.Tag != "" && !slices.Contains(t.Tags, opts.Tag) {
		return false
	}
	if opts.Project != "" && !MatchesProject(t.Project, opts.Project) {
		return false
	}
	if opts.Search != "" && !matchesSearch(t, opts.Search) {
		return false
	}
	return true
}

func matchesStatus(status string, include, exclude []string) bool {
	if len(include) > 0 && !slices.Contains(include, status) {
		return false
	}
	if len(exclude) > 0 && slices.Contains(exclude, status) {
		return false
	}
	return true
}

// MatchesProject reports whether project is prefix or one of its
// descendants. Matching is on whole segments: "Home" does not match
// "Homework".
func MatchesProject(project, prefix string) bool {
	prefix = strings.TrimSuffix(prefix, task.ProjectDelimiter)
	if project == prefix {
		return true
	}
	return strings.HasPrefix(project, prefix+task.ProjectDelimiter)
}

// matchesSearch performs case-insensitive substring matching across description, notes, and tags.
func matchesSearch(t *task.Task, query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(t.Description), q) {
		return true
	}
	if strings.Contains(strings.ToLower(t.Notes), q) {
		return true
	}
	for _, tag := range t.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}
