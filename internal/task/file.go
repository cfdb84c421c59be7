package task

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"
)

const (
	fileMode  = 0o600
	fenceLine = "---\n"
)

var (
	errNoFrontmatter       = errors.New("file does not start with YAML frontmatter (---)")
	errUnclosedFrontmatter = errors.New("unclosed frontmatter (missing closing ---)")
)

// Read parses a task file and returns the Task with notes populated.
func Read(path string) (*Task, error) {
	data, err := os.ReadFile(path) //nolint:gosec // task path from trusted source
	if err != nil {
		return nil, fmt.Errorf("reading task file: %w", err)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	t.File = path
	return t, nil
}

// Parse decodes a task from markdown with YAML frontmatter.
func Parse(data []byte) (*Task, error) {
	fm, notes, err := splitFrontmatter(string(data))
	if err != nil {
		return nil, err
	}

	var t Task
	if err := yaml.Unmarshal([]byte(fm), &t); err != nil {
		return nil, fmt.Errorf("parsing frontmatter: %w", err)
	}
	t.Notes = notes
	return &t, nil
}

// Write serializes a task to a markdown file with YAML frontmatter.
func Write(path string, t *Task) error {
	data, err := Marshal(t)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, fileMode)
}

// Marshal encodes t as markdown with YAML frontmatter.
func Marshal(t *Task) ([]byte, error) {
	fm, err := yaml.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("marshaling frontmatter: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString(fenceLine)
	buf.Write(fm)
	buf.WriteString(fenceLine)
	if t.Notes != "" {
		buf.WriteByte('\n')
		buf.WriteString(strings.TrimRight(t.Notes, "\n"))
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

// splitFrontmatter returns the YAML between the opening and closing fences
// and the notes that follow. A closing fence at EOF without a newline is
// accepted.
func splitFrontmatter(content string) (fm, notes string, err error) {
	rest, ok := strings.CutPrefix(content, fenceLine)
	if !ok {
		return "", "", errNoFrontmatter
	}

	if after, ok := strings.CutPrefix(rest, fenceLine); ok {
		return "", strings.Trim(after, "\n"), nil
	}
	if idx := strings.Index(rest, "\n"+fenceLine); idx >= 0 {
		return rest[:idx], strings.Trim(rest[idx+len(fenceLine)+1:], "\n"), nil
	}
	if trimmed, ok := strings.CutSuffix(rest, "\n---"); ok {
		return trimmed, "", nil
	}
	return "", "", errUnclosedFrontmatter
}
