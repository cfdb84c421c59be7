package report

import (
	"github.com/twiced-technology-gmbh/taskreport/internal/column"
	"github.com/twiced-technology-gmbh/taskreport/internal/config"
	"github.com/twiced-technology-gmbh/taskreport/internal/i18n"
)

// Settings is the snapshot of configuration the report columns are built
// from. Columns keep copies, so later config changes do not affect them.
type Settings struct {
	Columns      []string
	ProjectStyle string
	Hyphenate    bool
	Locale       string
}

// SettingsFrom copies the report settings out of a board config.
func SettingsFrom(cfg *config.Config) Settings {
	return Settings{
		Columns:      append([]string(nil), cfg.Report.Columns...),
		ProjectStyle: cfg.Report.ProjectStyle,
		Hyphenate:    cfg.Report.Hyphenate,
		Locale:       cfg.Report.Locale,
	}
}

// Columns builds the report columns from s. A project column spec without a
// style takes s.ProjectStyle; other columns use their own default.
func Columns(reg *column.Registry, s Settings) ([]column.Column, error) {
	printer := i18n.NewPrinter(s.Locale)
	cols := make([]column.Column, 0, len(s.Columns))
	for _, spec := range s.Columns {
		name, style := column.SplitSpec(spec)
		opts := column.Options{Hyphenate: s.Hyphenate, Printer: printer}
		if style == "" && reg.Canonical(name) == column.ProjectName {
			opts.Style = s.ProjectStyle
		}
		col, err := reg.New(spec, opts)
		if err != nil {
			return nil, err
		}
		cols = append(cols, col)
	}
	return cols, nil
}
