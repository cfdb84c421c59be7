// Package output handles formatting CLI output as table, JSON, or compact.
package output

import (
	"os"
	"strings"
)

// EnvFormat names the environment variable selecting the default format.
const EnvFormat = "TASKREPORT_OUTPUT"

// Format represents an output format.
type Format int

const (
	// FormatTable outputs a human-readable table.
	FormatTable Format = iota
	// FormatJSON outputs JSON.
	FormatJSON
	// FormatCompact outputs one-line-per-record compact format.
	FormatCompact
)

var formatNames = map[string]Format{
	"table":   FormatTable,
	"json":    FormatJSON,
	"compact": FormatCompact,
	"oneline": FormatCompact,
}

// ParseFormat maps a format name (table, json, compact, oneline) to a
// Format. Matching ignores case and surrounding space.
func ParseFormat(name string) (Format, bool) {
	f, ok := formatNames[strings.ToLower(strings.TrimSpace(name))]
	return f, ok
}

// String returns the canonical name of the format.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatCompact:
		return "compact"
	default:
		return "table"
	}
}

// Detect returns the format selected by flags, then by EnvFormat, and
// falls back to table.
func Detect(jsonFlag, compactFlag bool) Format {
	switch {
	case jsonFlag:
		return FormatJSON
	case compactFlag:
		return FormatCompact
	}
	if f, ok := ParseFormat(os.Getenv(EnvFormat)); ok {
		return f
	}
	return FormatTable
}
