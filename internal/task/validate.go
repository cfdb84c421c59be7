package task

import (
	"slices"
	"strings"
	"unicode"

	"github.com/twiced-technology-gmbh/taskreport/internal/clierr"
)

// ProjectDelimiter separates the segments of a project path.
const ProjectDelimiter = "."

// ValidateStatus checks that a status is in the allowed list.
func ValidateStatus(status string, allowed []string) error {
	if slices.Contains(allowed, status) {
		return nil
	}
	return clierr.Newf(clierr.InvalidStatus, "invalid status %q", status).
		WithDetails(map[string]any{
			"status":  status,
			"allowed": allowed,
		})
}

// ValidatePriority checks that a priority is in the allowed list.
func ValidatePriority(priority string, allowed []string) error {
	if slices.Contains(allowed, priority) {
		return nil
	}
	return clierr.Newf(clierr.InvalidPriority, "invalid priority %q", priority).
		WithDetails(map[string]any{
			"priority": priority,
			"allowed":  allowed,
		})
}

// ValidateProject checks that a project path has no empty segments and no
// surrounding or embedded line breaks. Spaces inside a segment are allowed.
func ValidateProject(project string) error {
	if project == "" {
		return nil
	}
	for _, seg := range strings.Split(project, ProjectDelimiter) {
		if strings.TrimSpace(seg) == "" {
			return invalidProject(project, "empty segment")
		}
		if seg != strings.TrimSpace(seg) {
			return invalidProject(project, "segment has leading or trailing whitespace")
		}
		if strings.ContainsFunc(seg, func(r rune) bool { return r == '\n' || unicode.IsControl(r) }) {
			return invalidProject(project, "segment contains control characters")
		}
	}
	return nil
}

func invalidProject(project, reason string) *clierr.Error {
	return clierr.Newf(clierr.InvalidProject, "invalid project %q: %s", project, reason).
		WithDetails(map[string]any{
			"project": project,
			"reason":  reason,
		})
}

// ValidateTaskID returns a CLIError for invalid task ID input.
func ValidateTaskID(input string) *clierr.Error {
	return clierr.Newf(clierr.InvalidTaskID, "invalid task ID %q", input).
		WithDetails(map[string]any{"input": input})
}
