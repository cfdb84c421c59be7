// Package config handles task list configuration.
package config

const (
	// DefaultDir is the default board directory name.
	DefaultDir = "taskreport"
	// DefaultTasksDir is the default tasks subdirectory name.
	DefaultTasksDir = "tasks"
	// DefaultStatus is the default status for new tasks.
	DefaultStatus = "pending"
	// DefaultPriority is the default priority for new tasks.
	DefaultPriority = "medium"
	// DefaultProjectStyle is the default style of the project column.
	DefaultProjectStyle = "full"
	// DefaultLocale selects the message catalog language.
	DefaultLocale = "en"

	// ConfigFileName is the name of the config file within the board directory.
	ConfigFileName = "config.yml"
	// LockFileName is the lock file guarding next_id, beside the config.
	LockFileName = ".lock"

	// CurrentVersion is the current config schema version.
	CurrentVersion = 2

	// maxReportWidth bounds report.width to something a terminal can show.
	maxReportWidth = 1000
)

// Default slice values for a new board (slices cannot be const).
var (
	DefaultStatuses = []string{
		"pending",
		"in-progress",
		"waiting",
		"done",
	}

	DefaultPriorities = []string{
		"low",
		"medium",
		"high",
	}

	DefaultColumns = []string{
		"id",
		"status.short",
		"priority",
		"project",
		"description",
	}
)
