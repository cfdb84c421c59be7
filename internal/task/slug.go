package task

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	maxSlugLength = 50
	minIDDigits   = 3
)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// GenerateSlug converts a description to a filename-friendly slug, cut at a
// word boundary when longer than maxSlugLength.
func GenerateSlug(description string) string {
	slug := strings.Trim(nonAlphanumeric.ReplaceAllString(strings.ToLower(description), "-"), "-")
	if len(slug) <= maxSlugLength {
		return slug
	}

	truncated := slug[:maxSlugLength]
	if slug[maxSlugLength] != '-' {
		if idx := strings.LastIndex(truncated, "-"); idx > 0 {
			truncated = truncated[:idx]
		}
	}
	return strings.TrimRight(truncated, "-")
}

// GenerateFilename creates a task filename from an ID and slug.
func GenerateFilename(id int, slug string) string {
	if slug == "" {
		slug = "task"
	}
	return fmt.Sprintf("%0*d-%s%s", minIDDigits, id, slug, taskExt)
}
