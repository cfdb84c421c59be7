package config

import "fmt"

// migration moves a config from one schema version to the next.
type migration struct {
	from  int
	about string
	apply func(*Config)
}

// migrations are applied in order; entry i upgrades version i+1.
var migrations = []migration{
	{from: 1, about: "report columns and hyphenation", apply: reportV2},
}

// migrate upgrades cfg in place to CurrentVersion and reports the steps
// it applied. Configs newer than this binary are rejected.
func migrate(cfg *Config) ([]string, error) {
	switch {
	case cfg.Version > CurrentVersion:
		return nil, fmt.Errorf(
			"%w: config version %d is newer than supported version %d (upgrade taskreport)",
			ErrInvalid, cfg.Version, CurrentVersion,
		)
	case cfg.Version < 1:
		return nil, fmt.Errorf("%w: config version %d is invalid", ErrInvalid, cfg.Version)
	}

	var applied []string
	for _, m := range migrations[cfg.Version-1:] {
		if m.from != cfg.Version {
			return applied, fmt.Errorf("%w: no migration path from version %d", ErrInvalid, cfg.Version)
		}
		m.apply(cfg)
		cfg.Version = m.from + 1
		applied = append(applied, fmt.Sprintf("v%d: %s", m.from, m.about))
	}
	return applied, nil
}

// reportV2 renames the "default" project style to "full" and fills in the
// report columns and hyphenation flag, which v1 did not store.
func reportV2(cfg *Config) {
	if cfg.Report.ProjectStyle == "default" || cfg.Report.ProjectStyle == "" {
		cfg.Report.ProjectStyle = DefaultProjectStyle
	}
	if len(cfg.Report.Columns) == 0 {
		cfg.Report.Columns = append([]string{}, DefaultColumns...)
	}
	cfg.Report.Hyphenate = true
}
