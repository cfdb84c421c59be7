package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"go.yaml.in/yaml/v3"

	"github.com/twiced-technology-gmbh/taskreport/internal/clierr"
)

const fileMode = 0o600

// Sentinel errors.
var (
	ErrNotFound = errors.New("no task board found (run 'taskreport init' to create one)")
	ErrInvalid  = errors.New("invalid config")
)

// Config represents the task board configuration.
type Config struct {
	Version    int            `yaml:"version"`
	Board      BoardConfig    `yaml:"board"`
	TasksDir   string         `yaml:"tasks_dir"`
	Statuses   []string       `yaml:"statuses"`
	Priorities []string       `yaml:"priorities"`
	Defaults   DefaultsConfig `yaml:"defaults"`
	Report     ReportConfig   `yaml:"report"`
	NextID     int            `yaml:"next_id"`

	// dir is the absolute path to the board directory (not serialized).
	dir string `yaml:"-"`
}

// BoardConfig holds board metadata.
type BoardConfig struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
}

// DefaultsConfig holds default values for new tasks.
type DefaultsConfig struct {
	Status   string `yaml:"status"`
	Priority string `yaml:"priority"`
}

// ReportConfig controls the table report.
type ReportConfig struct {
	// Columns lists column specs ("name" or "name.style") in display order.
	Columns []string `yaml:"columns"`
	// ProjectStyle is the project column style when its spec names none.
	// It is validated when the report measures the column, not here.
	ProjectStyle string `yaml:"project_style"`
	// Hyphenate splits over-wide words with a trailing hyphen.
	Hyphenate bool `yaml:"hyphenate"`
	// Width is the total report width; 0 uses the terminal width.
	Width int `yaml:"width,omitempty"`
	// Locale selects the language of labels and messages.
	Locale string `yaml:"locale,omitempty"`
}

// Dir returns the absolute path to the board directory.
func (c *Config) Dir() string {
	return c.dir
}

// SetDir sets the board directory path on the config.
func (c *Config) SetDir(dir string) {
	c.dir = dir
}

// TasksPath returns the absolute path to the tasks directory.
func (c *Config) TasksPath() string {
	return filepath.Join(c.dir, c.TasksDir)
}

// ConfigPath returns the absolute path to the config file.
func (c *Config) ConfigPath() string {
	return filepath.Join(c.dir, ConfigFileName)
}

// NewDefault creates a Config with default values.
func NewDefault(name string) *Config {
	return &Config{
		Version:    CurrentVersion,
		Board:      BoardConfig{Name: name},
		TasksDir:   DefaultTasksDir,
		Statuses:   append([]string{}, DefaultStatuses...),
		Priorities: append([]string{}, DefaultPriorities...),
		Defaults: DefaultsConfig{
			Status:   DefaultStatus,
			Priority: DefaultPriority,
		},
		Report: ReportConfig{
			Columns:      append([]string{}, DefaultColumns...),
			ProjectStyle: DefaultProjectStyle,
			Hyphenate:    true,
			Locale:       DefaultLocale,
		},
		NextID: 1,
	}
}

// Validate checks the config for errors.
func (c *Config) Validate() error {
	if c.Version != CurrentVersion {
		return fmt.Errorf("%w: unsupported version %d (expected %d)", ErrInvalid, c.Version, CurrentVersion)
	}
	if c.Board.Name == "" {
		return fmt.Errorf("%w: board.name is required", ErrInvalid)
	}
	if c.TasksDir == "" {
		return fmt.Errorf("%w: tasks_dir is required", ErrInvalid)
	}
	if len(c.Statuses) < 1 {
		return fmt.Errorf("%w: at least 1 status is required", ErrInvalid)
	}
	if hasDuplicates(c.Statuses) {
		return fmt.Errorf("%w: statuses contain duplicates", ErrInvalid)
	}
	if len(c.Priorities) < 1 {
		return fmt.Errorf("%w: at least 1 priority is required", ErrInvalid)
	}
	if hasDuplicates(c.Priorities) {
		return fmt.Errorf("%w: priorities contain duplicates", ErrInvalid)
	}
	if !slices.Contains(c.Statuses, c.Defaults.Status) {
		return fmt.Errorf("%w: default status %q not in statuses list", ErrInvalid, c.Defaults.Status)
	}
	if !slices.Contains(c.Priorities, c.Defaults.Priority) {
		return fmt.Errorf("%w: default priority %q not in priorities list", ErrInvalid, c.Defaults.Priority)
	}
	if err := c.validateReport(); err != nil {
		return err
	}
	if c.NextID < 1 {
		return fmt.Errorf("%w: next_id must be >= 1", ErrInvalid)
	}
	return nil
}

func (c *Config) validateReport() error {
	if len(c.Report.Columns) == 0 {
		return fmt.Errorf("%w: report.columns must list at least one column", ErrInvalid)
	}
	if c.Report.Width < 0 || c.Report.Width > maxReportWidth {
		return fmt.Errorf("%w: report.width must be between 0 and %d", ErrInvalid, maxReportWidth)
	}
	return nil
}

// Save writes the config to its config file.
func (c *Config) Save() error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(c.ConfigPath(), data, fileMode)
}

// Init creates a new board in the given directory. Each edit adjusts the
// default settings before they are validated and written.
func Init(dir, name string, edits ...func(*Config) error) (*Config, error) {
	const dirMode = 0o750

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	if _, err := os.Stat(filepath.Join(absDir, ConfigFileName)); err == nil {
		return nil, clierr.Newf(clierr.BoardAlreadyExists, "board already initialized in %s", absDir).
			WithDetails(map[string]any{"dir": absDir})
	}

	cfg := NewDefault(name)
	cfg.SetDir(absDir)
	for _, edit := range edits {
		if err := edit(cfg); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(cfg.TasksPath(), dirMode); err != nil {
		return nil, fmt.Errorf("creating tasks directory: %w", err)
	}
	if err := cfg.Save(); err != nil {
		return nil, fmt.Errorf("writing config: %w", err)
	}
	return cfg, nil
}

// Load reads, migrates and validates a config from the given board directory.
func Load(dir string) (*Config, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	data, err := os.ReadFile(filepath.Join(absDir, ConfigFileName)) //nolint:gosec // config path from trusted source
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.dir = absDir

	applied, err := migrate(&cfg)
	if err != nil {
		return nil, err
	}
	if len(applied) > 0 {
		slog.Info("migrated config", "path", cfg.ConfigPath(), "steps", applied)
		if err := cfg.Save(); err != nil {
			return nil, fmt.Errorf("saving migrated config: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// FindDir walks upward from startDir looking for a board directory
// containing config.yml. Returns the absolute path to the board directory.
func FindDir(startDir string) (string, error) {
	absStart, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	dir := absStart
	for {
		candidate := filepath.Join(dir, DefaultDir, ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return filepath.Join(dir, DefaultDir), nil
		}

		// Also check if we're inside the board directory itself.
		if _, err := os.Stat(filepath.Join(dir, ConfigFileName)); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", clierr.New(clierr.BoardNotFound, ErrNotFound.Error())
		}
		dir = parent
	}
}

// StatusIndex returns the index of a status in the configured order, or -1.
func (c *Config) StatusIndex(status string) int {
	return slices.Index(c.Statuses, status)
}

// PriorityIndex returns the index of a priority in the configured order, or -1.
func (c *Config) PriorityIndex(priority string) int {
	return slices.Index(c.Priorities, priority)
}

func hasDuplicates(slice []string) bool {
	seen := make(map[string]bool, len(slice))
	for _, s := range slice {
		if seen[s] {
			return true
		}
		seen[s] = true
	}
	return false
}
