// Package task handles task files and their frontmatter.
package task

import (
	"strconv"
	"strings"
	"time"
)

// Task represents a task parsed from a markdown file.
type Task struct {
	ID          int       `yaml:"id" json:"id"`
	Description string    `yaml:"description" json:"description"`
	Status      string    `yaml:"status" json:"status"`
	Priority    string    `yaml:"priority,omitempty" json:"priority,omitempty"`
	Project     string    `yaml:"project,omitempty" json:"project,omitempty"`
	Tags        []string  `yaml:"tags,omitempty" json:"tags,omitempty"`
	Created     time.Time `yaml:"created" json:"created"`
	Updated     time.Time `yaml:"updated" json:"updated"`

	// Notes is the markdown content below the frontmatter (not in YAML).
	Notes string `yaml:"-" json:"notes,omitempty"`

	// File is the path to the task file (not in YAML).
	File string `yaml:"-" json:"file,omitempty"`
}

// Attribute names understood by Get and Has.
const (
	AttrID          = "id"
	AttrDescription = "description"
	AttrStatus      = "status"
	AttrPriority    = "priority"
	AttrProject     = "project"
	AttrTags        = "tags"
)

// Has reports whether the task carries a non-empty value for attr.
func (t *Task) Has(attr string) bool {
	return t.Get(attr) != ""
}

// Get returns the string form of attr, or "" when unset or unknown.
func (t *Task) Get(attr string) string {
	switch attr {
	case AttrID:
		if t.ID == 0 {
			return ""
		}
		return strconv.Itoa(t.ID)
	case AttrDescription:
		return t.Description
	case AttrStatus:
		return t.Status
	case AttrPriority:
		return t.Priority
	case AttrProject:
		return t.Project
	case AttrTags:
		return strings.Join(t.Tags, ",")
	default:
		return ""
	}
}
