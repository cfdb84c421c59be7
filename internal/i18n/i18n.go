// Package i18n holds the localized message catalog for column labels,
// usage examples and user-facing error templates.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys. Keys are stable identifiers; the text lives in the catalog.
const (
	ColumnBadFormat = "column.bad_format"
	UnknownColumn   = "column.unknown"

	ProjectLabel         = "column.project.label"
	ProjectExampleFull   = "column.project.example.full"
	ProjectExampleParent = "column.project.example.parent"
	ProjectExampleIndent = "column.project.example.indented"

	IDLabel         = "column.id.label"
	IDExample       = "column.id.example"
	StatusLabel     = "column.status.label"
	StatusExample   = "column.status.example"
	PriorityLabel   = "column.priority.label"
	PriorityExample = "column.priority.example"
	DescLabel       = "column.description.label"
	DescExample     = "column.description.example"

	NoTasks         = "report.no_tasks"
	ReportTaskCount = "report.task_count"
)

// DefaultLocale is used when no locale is configured or the configured one
// is not in the catalog.
var DefaultLocale = language.English

var (
	cat     = catalog.NewBuilder(catalog.Fallback(DefaultLocale))
	matcher language.Matcher
)

var english = map[string]string{
	ColumnBadFormat: "Unrecognized column format '%[1]s.%[2]s'",
	UnknownColumn:   "Unrecognized column name '%[1]s'.",

	ProjectLabel:         "Project",
	ProjectExampleFull:   "home.garden",
	ProjectExampleParent: "home",
	ProjectExampleIndent: "  home.garden",

	IDLabel:         "ID",
	IDExample:       "123",
	StatusLabel:     "Status",
	StatusExample:   "in-progress",
	PriorityLabel:   "Pri",
	PriorityExample: "high",
	DescLabel:       "Description",
	DescExample:     "Move your clothes down on to the lower peg",
	NoTasks:         "No matches.",
	ReportTaskCount: "%[1]d tasks",
}

var german = map[string]string{
	ColumnBadFormat: "Unbekanntes Spaltenformat '%[1]s.%[2]s'",
	UnknownColumn:   "Unbekannter Spaltenname '%[1]s'.",
	ProjectLabel:    "Projekt",
	StatusLabel:     "Status",
	PriorityLabel:   "Pri",
	DescLabel:       "Beschreibung",
	NoTasks:         "Keine Übereinstimmungen.",
	ReportTaskCount: "%[1]d Aufgaben",
}

func init() {
	register(language.English, english)
	register(language.German, english)
	register(language.German, german)
	matcher = language.NewMatcher(cat.Languages())
}

// register adds msgs for tag. Later calls for the same tag override
// earlier ones, so a partial translation is layered over English.
func register(tag language.Tag, msgs map[string]string) {
	for key, msg := range msgs {
		// SetString only fails on malformed keys, which are compile-time constants here.
		_ = cat.SetString(tag, key, msg)
	}
}

// Printer resolves catalog keys for one locale.
type Printer struct {
	p *message.Printer
}

// NewPrinter returns a Printer for the given BCP 47 locale string. Unknown
// or empty locales fall back to DefaultLocale.
func NewPrinter(locale string) *Printer {
	tag := DefaultLocale
	if locale != "" {
		if parsed, err := language.Parse(locale); err == nil {
			if _, idx, conf := matcher.Match(parsed); conf != language.No {
				tag = cat.Languages()[idx]
			}
		}
	}
	return &Printer{p: message.NewPrinter(tag, message.Catalog(cat))}
}

// Sprintf formats the message stored under key with positional args.
func (p *Printer) Sprintf(key string, args ...any) string {
	return p.p.Sprintf(message.Key(key, key), args...)
}
