package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/twiced-technology-gmbh/taskreport/internal/config"
	"github.com/twiced-technology-gmbh/taskreport/internal/output"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new task board",
	Long: `Creates a taskreport directory with config.yml and tasks/ subdirectory.

Report settings can be chosen up front; they accept the same values as
'taskreport config set report.<key>'.`,
	Example: `  taskreport init --name chores
  taskreport init --columns id,project.indented,description --width 80`,
	RunE: runInit,
}

// initReportFlags maps init flags to the report config keys they set.
var initReportFlags = map[string]string{
	"columns":       "report.columns",
	"project-style": "report.project_style",
	"width":         "report.width",
	"locale":        "report.locale",
}

func init() {
	f := initCmd.Flags()
	f.String("name", "", "board name (defaults to current directory name)")
	f.String("columns", "", "comma-separated report columns, e.g. id,project.parent,description")
	f.String("project-style", "", "project column style: full, parent or indented")
	f.String("width", "", "report width in cells (0 follows the terminal)")
	f.String("locale", "", "language of report labels and messages")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, _ []string) error {
	dir := flagDir
	if dir == "" {
		dir = config.DefaultDir
	}

	name, _ := cmd.Flags().GetString("name")
	if name == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting working directory: %w", err)
		}
		name = filepath.Base(cwd)
	}

	cfg, err := config.Init(dir, name, initEdits(cmd)...)
	if err != nil {
		return err
	}
	logger.Info("board initialized", "dir", cfg.Dir(), "name", name)

	if outputFormat() == output.FormatJSON {
		return output.JSON(os.Stdout, map[string]any{
			"status":        "initialized",
			"dir":           cfg.Dir(),
			"name":          name,
			"config":        cfg.ConfigPath(),
			"tasks":         cfg.TasksPath(),
			"columns":       cfg.Report.Columns,
			"project_style": cfg.Report.ProjectStyle,
		})
	}

	output.Messagef(os.Stdout, "Initialized board %q in %s", name, cfg.Dir())
	output.Messagef(os.Stdout, "  Config:  %s", cfg.ConfigPath())
	output.Messagef(os.Stdout, "  Tasks:   %s", cfg.TasksPath())
	output.Messagef(os.Stdout, "  Columns: %s", strings.Join(cfg.Report.Columns, ", "))
	return nil
}

// initEdits turns the report flags the user set into config edits that go
// through the same accessors as 'config set'.
func initEdits(cmd *cobra.Command) []func(*config.Config) error {
	accessors := configAccessors()
	var edits []func(*config.Config) error
	for flag, key := range initReportFlags {
		if !cmd.Flags().Changed(flag) {
			continue
		}
		value, _ := cmd.Flags().GetString(flag)
		set := accessors[key].set
		edits = append(edits, func(c *config.Config) error { return set(c, value) })
	}
	return edits
}
