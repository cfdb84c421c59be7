package board

import (
	"sort"

	"github.com/twiced-technology-gmbh/taskreport/internal/config"
	"github.com/twiced-technology-gmbh/taskreport/internal/task"
)

const (
	fieldID       = "id"
	fieldStatus   = "status"
	fieldPriority = "priority"
	fieldProject  = "project"
	fieldCreated  = "created"
	fieldUpdated  = "updated"
)

// SortFields lists the accepted values for Sort's field argument.
var SortFields = []string{fieldID, fieldStatus, fieldPriority, fieldProject, fieldCreated, fieldUpdated}

// Sort sorts tasks by the given field. For status and priority,
// the config order is used (not alphabetical). Ties keep ID order.
func Sort(tasks []*task.Task, field string, reverse bool, cfg *config.Config) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]
		if reverse {
			a, b = b, a
		}
		return compareTasks(a, b, field, cfg)
	})
}

func compareTasks(a, b *task.Task, field string, cfg *config.Config) bool {
	switch field {
	case fieldStatus:
		return cfg.StatusIndex(a.Status) < cfg.StatusIndex(b.Status)
	case fieldPriority:
		return cfg.PriorityIndex(a.Priority) < cfg.PriorityIndex(b.Priority)
	case fieldProject:
		return compareProject(a, b)
	case fieldCreated:
		return a.Created.Before(b.Created)
	case fieldUpdated:
		return a.Updated.Before(b.Updated)
	default:
		return a.ID < b.ID
	}
}

// compareProject orders by project path; tasks without a project sort last.
func compareProject(a, b *task.Task) bool {
	if a.Project == "" || b.Project == "" {
		return a.Project != "" && b.Project == ""
	}
	return a.Project < b.Project
}
