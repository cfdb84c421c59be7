package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/twiced-technology-gmbh/taskreport/internal/clierr"
	"github.com/twiced-technology-gmbh/taskreport/internal/column"
	"github.com/twiced-technology-gmbh/taskreport/internal/config"
	"github.com/twiced-technology-gmbh/taskreport/internal/i18n"
	"github.com/twiced-technology-gmbh/taskreport/internal/output"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or modify board configuration",
	Long:  `View the full configuration, get a specific key, or set a writable value.`,
	RunE:  runConfigShow,
}

var configGetCmd = &cobra.Command{
	Use:   "get KEY",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2), //nolint:mnd // key and value
	RunE:  runConfigSet,
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

// configAccessor describes how to get and set a config key.
type configAccessor struct {
	get      func(*config.Config) any
	set      func(*config.Config, string) error
	writable bool
}

func configAccessors() map[string]configAccessor {
	accessors := boardConfigAccessors()
	addReportConfigAccessors(accessors)
	return accessors
}

func boardConfigAccessors() map[string]configAccessor {
	return map[string]configAccessor{
		"board.name": {
			get:      func(c *config.Config) any { return c.Board.Name },
			set:      func(c *config.Config, v string) error { c.Board.Name = v; return nil },
			writable: true,
		},
		"board.description": {
			get:      func(c *config.Config) any { return c.Board.Description },
			set:      func(c *config.Config, v string) error { c.Board.Description = v; return nil },
			writable: true,
		},
		"statuses": {
			get: func(c *config.Config) any { return c.Statuses },
		},
		"priorities": {
			get: func(c *config.Config) any { return c.Priorities },
		},
		"defaults.status": {
			get: func(c *config.Config) any { return c.Defaults.Status },
			set: func(c *config.Config, v string) error {
				if c.StatusIndex(v) < 0 {
					return clierr.Newf(clierr.InvalidInput,
						"invalid default status %q; allowed: %s", v, strings.Join(c.Statuses, ", "))
				}
				c.Defaults.Status = v
				return nil
			},
			writable: true,
		},
		"defaults.priority": {
			get: func(c *config.Config) any { return c.Defaults.Priority },
			set: func(c *config.Config, v string) error {
				if c.PriorityIndex(v) < 0 {
					return clierr.Newf(clierr.InvalidInput,
						"invalid default priority %q; allowed: %s", v, strings.Join(c.Priorities, ", "))
				}
				c.Defaults.Priority = v
				return nil
			},
			writable: true,
		},
		"tasks_dir": {
			get: func(c *config.Config) any { return c.TasksDir },
		},
		"next_id": {
			get: func(c *config.Config) any { return c.NextID },
		},
		"version": {
			get: func(c *config.Config) any { return c.Version },
		},
	}
}

func addReportConfigAccessors(accessors map[string]configAccessor) {
	accessors["report.columns"] = configAccessor{
		get: func(c *config.Config) any { return c.Report.Columns },
		set: func(c *config.Config, v string) error {
			reg := column.NewRegistry()
			specs := splitList(v)
			for _, spec := range specs {
				if _, err := reg.New(spec, column.Options{Printer: i18n.NewPrinter(c.Report.Locale)}); err != nil {
					return err
				}
			}
			c.Report.Columns = specs
			return nil
		},
		writable: true,
	}
	accessors["report.project_style"] = configAccessor{
		get: func(c *config.Config) any { return c.Report.ProjectStyle },
		set: func(c *config.Config, v string) error {
			if _, ok := column.ParseStyle(v); !ok {
				return clierr.Newf(clierr.InvalidInput,
					"invalid report.project_style %q; allowed: full, parent, indented", v)
			}
			c.Report.ProjectStyle = v
			return nil
		},
		writable: true,
	}
	accessors["report.hyphenate"] = configAccessor{
		get: func(c *config.Config) any { return c.Report.Hyphenate },
		set: func(c *config.Config, v string) error {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return clierr.Newf(clierr.InvalidInput,
					"invalid report.hyphenate %q: must be true or false", v)
			}
			c.Report.Hyphenate = b
			return nil
		},
		writable: true,
	}
	accessors["report.width"] = configAccessor{
		get: func(c *config.Config) any { return c.Report.Width },
		set: func(c *config.Config, v string) error {
			n, err := strconv.Atoi(v)
			if err != nil {
				return clierr.Newf(clierr.InvalidInput,
					"invalid report.width %q: must be an integer", v)
			}
			c.Report.Width = n
			return nil // validation handles range check
		},
		writable: true,
	}
	accessors["report.locale"] = configAccessor{
		get:      func(c *config.Config) any { return c.Report.Locale },
		set:      func(c *config.Config, v string) error { c.Report.Locale = v; return nil },
		writable: true,
	}
}

// allConfigKeys returns config keys in display order.
func allConfigKeys() []string {
	return []string{
		"version",
		"board.name",
		"board.description",
		"tasks_dir",
		"statuses",
		"priorities",
		"defaults.status",
		"defaults.priority",
		"report.columns",
		"report.project_style",
		"report.hyphenate",
		"report.width",
		"report.locale",
		"next_id",
	}
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	accessors := configAccessors()

	if outputFormat() == output.FormatJSON {
		m := make(map[string]any, len(accessors))
		for _, key := range allConfigKeys() {
			m[key] = accessors[key].get(cfg)
		}
		return output.JSON(os.Stdout, m)
	}

	for _, key := range allConfigKeys() {
		val := accessors[key].get(cfg)
		fmt.Fprintf(os.Stdout, "%-22s %v\n", key, formatConfigValue(val))
	}
	return nil
}

func runConfigGet(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	key := args[0]
	acc, ok := configAccessors()[key]
	if !ok {
		return unknownConfigKey(key)
	}

	val := acc.get(cfg)

	if outputFormat() == output.FormatJSON {
		return output.JSON(os.Stdout, val)
	}

	fmt.Fprintln(os.Stdout, formatConfigValue(val))
	return nil
}

func runConfigSet(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	key, value := args[0], args[1]
	acc, ok := configAccessors()[key]
	if !ok {
		return unknownConfigKey(key)
	}
	if !acc.writable {
		return clierr.Newf(clierr.InvalidConfigKey, "config key %q is read-only", key).
			WithDetails(map[string]any{"key": key})
	}

	if err := acc.set(cfg, value); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return clierr.New(clierr.InvalidInput, err.Error())
	}

	if err := cfg.Save(); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	logger.Info("config updated", "key", key, "value", acc.get(cfg))

	if outputFormat() == output.FormatJSON {
		return output.JSON(os.Stdout, map[string]any{"key": key, "value": acc.get(cfg)})
	}

	output.Messagef(os.Stdout, "Set %s = %v", key, formatConfigValue(acc.get(cfg)))
	return nil
}

func unknownConfigKey(key string) error {
	return clierr.Newf(clierr.InvalidConfigKey, "unknown config key %q", key).
		WithDetails(map[string]any{"key": key, "available": allConfigKeys()})
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func formatConfigValue(val any) string {
	switch v := val.(type) {
	case []string:
		if len(v) == 0 {
			return "--"
		}
		return strings.Join(v, ", ")
	case string:
		if v == "" {
			return "--"
		}
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}
